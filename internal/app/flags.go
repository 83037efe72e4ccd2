package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/life"
	"lifeboard/internal/ui"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cells         int           `json:"cells"`
	WindowSize    int           `json:"window_size"`
	Epochs        int           `json:"epochs"`
	Interval      time.Duration `json:"interval"`
	ResetOnFinish bool          `json:"reset_on_finish"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cells:         30,
		WindowSize:    700,
		Epochs:        100,
		Interval:      100 * time.Millisecond,
		ResetOnFinish: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cells, "cells", c.Cells, "number of cells per board side")
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "window width and height in pixels")
	fs.IntVar(&c.Epochs, "epochs", c.Epochs, "number of generations per run")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "pause between generations")
	fs.BoolVar(&c.ResetOnFinish, "reset-on-finish", c.ResetOnFinish, "clear the board when a run ends")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON configuration file")
}

// Load overlays values from a JSON file onto c.
func (c *Config) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Cells <= 0:
		return errors.Errorf("[Validate] cells must be positive, got %d", c.Cells)
	case c.WindowSize <= ui.MenuHeight:
		return errors.Errorf("[Validate] window must be larger than %d, got %d", ui.MenuHeight, c.WindowSize)
	case c.Epochs < 0:
		return errors.Errorf("[Validate] epochs must not be negative, got %d", c.Epochs)
	case c.Interval <= 0:
		return errors.Errorf("[Validate] interval must be positive, got %v", c.Interval)
	}
	return nil
}

// Parse binds c to fs, parses args and applies the optional -config file.
// Flags given explicitly on the command line win over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Parse] bad flags")
	}
	if c.ConfigFile != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := c.Load(c.ConfigFile); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return errors.Wrapf(err, "[Parse] reapplying -%s", name)
			}
		}
	}
	return c.Validate()
}

// LifeConfig returns the engine configuration for a square board.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Width: c.Cells, Height: c.Cells, Epochs: c.Epochs}
}

// Layout returns the window geometry for the configured board.
func (c *Config) Layout() ui.Layout {
	return ui.NewLayout(c.WindowSize, c.Cells, c.Cells)
}
