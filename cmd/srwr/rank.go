package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relevant-community/signedrank/detsrwr"
	"github.com/relevant-community/signedrank/srwr"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print every node ranked by net trust from the seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		rows, err := s.rank()
		if err != nil && !errors.Is(err, srwr.ErrNotConverged) {
			return err
		}
		if top := s.cfg.Top; top > 0 && top < len(rows) {
			rows = rows[:top]
		}
		if werr := printRows(cmd.OutOrStdout(), s.graph, rows); werr != nil {
			return werr
		}
		// still non-zero exit when the ranking did not converge
		return err
	},
}

func init() {
	rankCmd.Flags().IntP("top", "n", 0, "only print the first n nodes")
	_ = viper.BindPFlag("top", rankCmd.Flags().Lookup("top"))
	rootCmd.AddCommand(rankCmd)
}

// row is one ranked node, score is kept as text so fixed point results print exactly
type row struct {
	result srwr.Result
	score  string
}

func (s *session) rank() ([]row, error) {
	if s.cfg.Deterministic {
		return s.rankFixedPoint()
	}

	ranker, err := srwr.NewWithParams(s.graph, s.seed, s.cfg.Params())
	if err != nil {
		return nil, err
	}
	ranker.Logger = s.logger
	results, err := ranker.Run()
	stats := ranker.Stats()
	s.logger.Info("ranking done", "rounds", stats.Rounds, "residual", stats.Residual,
		"positive_mass", stats.PositiveMass, "negative_mass", stats.NegativeMass)

	rows := make([]row, len(results))
	for i, res := range results {
		rows[i] = row{result: res, score: strconv.FormatFloat(res.Score, 'f', 6, 64)}
	}
	return rows, err
}

func (s *session) rankFixedPoint() ([]row, error) {
	graph, err := detsrwr.FromGraph(s.graph)
	if err != nil {
		return nil, err
	}
	params, err := detsrwr.FromParams(s.cfg.Params())
	if err != nil {
		return nil, err
	}
	ranker, err := detsrwr.NewWithParams(graph, s.seed, params)
	if err != nil {
		return nil, err
	}
	results, err := ranker.Run()
	rounds, residual := ranker.Rounds()
	s.logger.Info("ranking done", "rounds", rounds, "residual", residual.String(), "deterministic", true)

	rows := make([]row, len(results))
	for i, res := range results {
		rows[i] = row{
			result: srwr.Result{
				Node:  res.Node,
				Score: detsrwr.DtoF(res.Score),
				PRank: detsrwr.DtoF(res.PRank),
				NRank: detsrwr.DtoF(res.NRank),
			},
			score: res.Score.String(),
		}
	}
	return rows, err
}

func printRows(w io.Writer, graph *srwr.WeightedGraph, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNODE\tSCORE")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, graph.ID(r.result.Node), r.score)
	}
	return tw.Flush()
}
