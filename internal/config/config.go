// SPDX-License-Identifier: MIT

// Package config holds the YAML-backed settings of the dynarray CLI.
//
// A file only needs the keys it overrides; Load starts from DefaultConfig.
//
//	appends: 100
//	resize_to: -1
//	max_capacity: 0
//	plot:
//	  enabled: true
//	  height: 12
//	  width: 72
//	  caption: capacity per step
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAppends     = 32
	DefaultResizeTo    = -1 // negative ⇒ no resize step
	DefaultMaxCapacity = 0  // 0 ⇒ library default
	DefaultPlotHeight  = 10
	DefaultPlotWidth   = 64
	DefaultPlotCaption = "capacity after each operation"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config drives a growth trace.
type Config struct {
	Appends     int        `yaml:"appends"`
	ResizeTo    int        `yaml:"resize_to"`
	MaxCapacity int        `yaml:"max_capacity"`
	Plot        PlotConfig `yaml:"plot"`
}

// PlotConfig controls the ASCII capacity chart.
type PlotConfig struct {
	Enabled bool   `yaml:"enabled"`
	Height  int    `yaml:"height"`
	Width   int    `yaml:"width"`
	Caption string `yaml:"caption"`
}

func DefaultConfig() *Config {
	return &Config{
		Appends:     DefaultAppends,
		ResizeTo:    DefaultResizeTo,
		MaxCapacity: DefaultMaxCapacity,
		Plot: PlotConfig{
			Enabled: true,
			Height:  DefaultPlotHeight,
			Width:   DefaultPlotWidth,
			Caption: DefaultPlotCaption,
		},
	}
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	switch {
	case c.Appends < 0:
		return fmt.Errorf("%w: appends must be >= 0, got %d", ErrInvalidConfig, c.Appends)
	case c.MaxCapacity < 0:
		return fmt.Errorf("%w: max_capacity must be >= 0, got %d", ErrInvalidConfig, c.MaxCapacity)
	case c.Plot.Enabled && c.Plot.Height <= 0:
		return fmt.Errorf("%w: plot.height must be > 0, got %d", ErrInvalidConfig, c.Plot.Height)
	case c.Plot.Enabled && c.Plot.Width < 0:
		return fmt.Errorf("%w: plot.width must be >= 0, got %d", ErrInvalidConfig, c.Plot.Width)
	}

	return nil
}

// Load reads path over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
