package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relevant-community/signedrank/config"
	"github.com/relevant-community/signedrank/edgelist"
	"github.com/relevant-community/signedrank/logging"
	"github.com/relevant-community/signedrank/srwr"
)

var rootCmd = &cobra.Command{
	Use:   "srwr",
	Short: "Signed random walk with restart ranking",
	Long: "srwr ranks the nodes of a signed weighted graph by trust net of distrust, " +
		"personalized to a seed node.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := srwr.DefaultParams()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .srwr.yaml)")
	flags.BoolP("verbose", "v", false, "log every round")
	flags.StringP("graph", "g", "", "edge list CSV: source,target[,weight]")
	flags.StringP("seed", "s", "", "name of the seed node")
	flags.Float64("damping", defaults.Damping, "probability of following a link")
	flags.Float64("beta", defaults.Beta, "share of distrust-of-distrust that becomes trust")
	flags.Float64("gamma", defaults.Gamma, "share of distrust over a trust link that stays distrust")
	flags.Float64("tolerance", defaults.Tolerance, "residual threshold, <= 0 runs a fixed number of rounds")
	flags.Int("iterations", defaults.Iterations, "rounds in fixed-count mode")
	flags.Int("max-iterations", defaults.MaxIterations, "round cap in threshold mode")
	flags.Int("workers", defaults.Workers, "goroutines per round")
	flags.Bool("deterministic", false, "use fixed point arithmetic")

	for key, flag := range map[string]string{
		"damping":        "damping",
		"beta":           "beta",
		"gamma":          "gamma",
		"tolerance":      "tolerance",
		"iterations":     "iterations",
		"max_iterations": "max-iterations",
		"workers":        "workers",
		"deterministic":  "deterministic",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".srwr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SRWR")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// session is what every subcommand needs before ranking
type session struct {
	cfg    config.Config
	logger *slog.Logger
	graph  *srwr.WeightedGraph
	seed   int
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	logger := logging.New(os.Stderr, cfg.Log)

	path, _ := cmd.Flags().GetString("graph")
	if path == "" {
		return nil, errors.New("--graph is required")
	}
	graph, err := edgelist.Load(path)
	if err != nil {
		return nil, err
	}

	name, _ := cmd.Flags().GetString("seed")
	seed, ok := graph.Index(name)
	if !ok {
		return nil, errors.Wrapf(srwr.ErrSeedOutOfRange, "seed %q is not in %s", name, path)
	}

	logger.Info("graph loaded", "path", path, "nodes", graph.Size(), "seed", name)
	return &session{cfg: cfg, logger: logger, graph: graph, seed: seed}, nil
}
