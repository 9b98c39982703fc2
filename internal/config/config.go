package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth          = 15
	DefaultHeight         = 10
	DefaultTicksPerSecond = 2
	MaxTicksPerSecond     = 1000
	DefaultDensity        = 0.3
	DefaultGenerations    = 200
	DefaultTheme          = "retro"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	TicksPerSecond int     `yaml:"ticks_per_second"`
	Pattern        string  `yaml:"pattern"`
	PatternFile    string  `yaml:"pattern_file,omitempty"`
	Seed           int64   `yaml:"seed"`
	Density        float64 `yaml:"density"`
	Generations    int     `yaml:"generations"`
	Theme          string  `yaml:"theme"`
}

// DefaultConfig is a 15x10 empty field ticking at 2 Hz.
func DefaultConfig() *Config {
	return &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		TicksPerSecond: DefaultTicksPerSecond,
		Density:        DefaultDensity,
		Generations:    DefaultGenerations,
		Theme:          DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: field size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.TicksPerSecond <= 0 || c.TicksPerSecond > MaxTicksPerSecond {
		return fmt.Errorf("%w: ticks_per_second must be within [1,%d], got %d", ErrInvalid, MaxTicksPerSecond, c.TicksPerSecond)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density must be within [0,1], got %g", ErrInvalid, c.Density)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalid, c.Generations)
	}
	return nil
}
