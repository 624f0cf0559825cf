package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/relevant-community/signedrank/srwr"
	"github.com/relevant-community/signedrank/vis"
)

var visCmd = &cobra.Command{
	Use:   "vis",
	Short: "Render the ranked graph as an HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		rows, err := s.rank()
		if err != nil && !errors.Is(err, srwr.ErrNotConverged) {
			return err
		}
		results := make([]srwr.Result, len(rows))
		for i, r := range rows {
			results[i] = r.result
		}

		out, _ := cmd.Flags().GetString("out")
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		title := "seed: " + s.graph.ID(s.seed)
		if err := vis.Render(f, s.graph, s.seed, results, title); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		s.logger.Info("chart written", "path", out)

		addr, _ := cmd.Flags().GetString("serve")
		if addr == "" {
			return nil
		}
		s.logger.Info("serving chart", "addr", addr)
		http.Handle("/", http.FileServer(http.Dir(filepath.Dir(out))))
		return http.ListenAndServe(addr, nil)
	},
}

func init() {
	visCmd.Flags().StringP("out", "o", "index.html", "output file")
	visCmd.Flags().String("serve", "", "serve the output directory on this address, eg. :7000")
	rootCmd.AddCommand(visCmd)
}
