package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/relevant-community/signedrank/srwr"
)

// LogConfig controls structured logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text|json
}

// Config holds the settings of a ranking run.
// Values are populated from .srwr.yaml, SRWR_* env vars, and CLI flags.
type Config struct {
	Damping       float64   `mapstructure:"damping"`
	Beta          float64   `mapstructure:"beta"`
	Gamma         float64   `mapstructure:"gamma"`
	Tolerance     float64   `mapstructure:"tolerance"`
	Iterations    int       `mapstructure:"iterations"`
	MaxIterations int       `mapstructure:"max_iterations"`
	Workers       int       `mapstructure:"workers"`
	Deterministic bool      `mapstructure:"deterministic"`
	Top           int       `mapstructure:"top"`
	Log           LogConfig `mapstructure:"log"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	defaults := srwr.DefaultParams()
	v.SetDefault("damping", defaults.Damping)
	v.SetDefault("beta", defaults.Beta)
	v.SetDefault("gamma", defaults.Gamma)
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("iterations", defaults.Iterations)
	v.SetDefault("max_iterations", defaults.MaxIterations)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("deterministic", false)
	v.SetDefault("top", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "cannot decode config")
	}
	if err := cfg.Params().Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Top < 0 {
		return Config{}, errors.Errorf("top %d < 0", cfg.Top)
	}
	return cfg, nil
}

// Params returns the ranking parameters.
func (cfg Config) Params() srwr.Params {
	return srwr.Params{
		Damping:       cfg.Damping,
		Beta:          cfg.Beta,
		Gamma:         cfg.Gamma,
		Tolerance:     cfg.Tolerance,
		Iterations:    cfg.Iterations,
		MaxIterations: cfg.MaxIterations,
		Workers:       cfg.Workers,
	}
}
