package app

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	return set
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Parse(newFlagSet(), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Cells != 30 || cfg.WindowSize != 700 || cfg.Epochs != 100 || cfg.Interval != 100*time.Millisecond || !cfg.ResetOnFinish {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	lc := cfg.LifeConfig()
	if lc.Width != 30 || lc.Height != 30 || lc.Epochs != 100 {
		t.Fatalf("unexpected life config %+v", lc)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := NewConfig()
	args := []string{"-cells", "12", "-epochs", "7", "-interval", "250ms", "-reset-on-finish=false"}
	if err := cfg.Parse(newFlagSet(), args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Cells != 12 || cfg.Epochs != 7 || cfg.Interval != 250*time.Millisecond || cfg.ResetOnFinish {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseConfigFileWithFlagOverride(t *testing.T) {
	path := writeConfig(t, `{"cells": 20, "window_size": 600, "epochs": 10, "interval": 50000000}`)
	cfg := NewConfig()
	if err := cfg.Parse(newFlagSet(), []string{"-config", path, "-epochs", "3"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Cells != 20 || cfg.WindowSize != 600 || cfg.Interval != 50*time.Millisecond {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Epochs != 3 {
		t.Fatalf("explicit flag must win over file, epochs=%d", cfg.Epochs)
	}
	if l := cfg.Layout(); l.Cols != 20 || l.CellW != 30 {
		t.Fatalf("unexpected layout %+v", l)
	}
}

func TestLoadErrors(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}

	path := writeConfig(t, `{"cells": "many"}`)
	if err := cfg.Load(path); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"cells":    func(c *Config) { c.Cells = 0 },
		"window":   func(c *Config) { c.WindowSize = 60 },
		"epochs":   func(c *Config) { c.Epochs = -1 },
		"interval": func(c *Config) { c.Interval = 0 },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
