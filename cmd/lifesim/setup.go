package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/pattern"
)

const logFileName = "lifesim.log"

// resolveConfig layers defaults, the preset, the config file and any flag the
// user actually set, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("tps") {
		cfg.TicksPerSecond = tps
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternName
		cfg.PatternFile = ""
	}
	if flags.Changed("pattern-file") {
		cfg.PatternFile = patternFile
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}

	if cfg.Generations == 0 {
		cfg.Generations = config.DefaultGenerations
	}
	if cfg.Pattern == pattern.Soup && cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildField creates the field described by cfg and returns it with the name
// of what was placed on it.
func buildField(cfg *config.Config) (*life.Field, string, error) {
	f, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, "", err
	}
	name, err := pattern.Fill(f, cfg.Pattern, cfg.PatternFile, cfg.Seed, cfg.Density)
	if err != nil {
		return nil, "", err
	}
	return f, name, nil
}

func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "lifesim",
	}), nil
}

// openLogFile is where the interactive board logs while it owns the terminal.
func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dataDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
