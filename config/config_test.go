package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/relevant-community/signedrank/srwr"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(srwr.DefaultParams(), cfg.Params()); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Error("unexpected log config", cfg.Log)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srwr.yaml")
	content := []byte(`damping: 0.9
tolerance: 0.0001
max_iterations: 50
beta: 0.2
log:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}

	params := cfg.Params()
	if !params.Threshold() || params.MaxIterations != 50 || params.Damping != 0.9 || params.Beta != 0.2 {
		t.Error("unexpected params", params)
	}
	if params.Gamma != 0.5 {
		t.Error("Expected", 0.5, "but got", params.Gamma)
	}
	if cfg.Log.Level != "debug" {
		t.Error("Expected", "debug", "but got", cfg.Log.Level)
	}
}

func TestLoadInvalid(t *testing.T) {
	v := viper.New()
	v.Set("damping", 1.5)
	if _, err := Load(v); !errors.Is(err, srwr.ErrInvalidParams) {
		t.Error("Expected", srwr.ErrInvalidParams, "but got", err)
	}

	v = viper.New()
	v.Set("top", -1)
	if _, err := Load(v); err == nil {
		t.Error("Expected an error for negative top")
	}
}
