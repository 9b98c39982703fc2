package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
)

// Scenario is a scripted batch of headless runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep describes one run. Unset fields come from Preset, or from the
// default configuration when no preset is named. Seed and Density are
// pointers so an explicit zero overrides the preset.
type ScenarioStep struct {
	Preset      string   `yaml:"preset"`
	Pattern     string   `yaml:"pattern"`
	PatternFile string   `yaml:"pattern_file"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Seed        *int64   `yaml:"seed"`
	Density     *float64 `yaml:"density"`
	Generations int      `yaml:"generations"`
	StopOnCycle bool     `yaml:"stop_on_cycle"`
}

// StepResult pairs a finished step with the id it was saved under, if any.
type StepResult struct {
	Pattern string
	RunID   string
	Result  *sim.Result
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}

	return &scenario, nil
}

// Config resolves the step against its preset and the defaults.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		if cfg = config.GetPreset(s.Preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if s.Pattern != "" {
		cfg.Pattern = s.Pattern
	}
	if s.PatternFile != "" {
		cfg.PatternFile = s.PatternFile
	}
	if s.Width != 0 {
		cfg.Width = s.Width
	}
	if s.Height != 0 {
		cfg.Height = s.Height
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
	if s.Density != nil {
		cfg.Density = *s.Density
	}
	if s.Generations != 0 {
		cfg.Generations = s.Generations
	}
	if cfg.Generations == 0 {
		cfg.Generations = config.DefaultGenerations
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes every step in order and saves each result to st
// when st is non-nil. It stops at the first failing step.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, logger *log.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		f, err := life.New(cfg.Width, cfg.Height)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		name, err := pattern.Fill(f, cfg.Pattern, cfg.PatternFile, cfg.Seed, cfg.Density)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		logger.Info("running step", "step", i+1, "of", len(scenario.Steps), "pattern", name, "generations", cfg.Generations)

		s := sim.NewSimulator(logger)
		s.AddMetric(metrics.NewPopulation())
		s.AddMetric(metrics.NewPeakPopulation())
		s.AddMetric(metrics.NewActivity())

		result, err := s.Run(ctx, f, sim.Config{Generations: cfg.Generations, StopOnCycle: step.StopOnCycle})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Pattern: name, Result: result}
		if st != nil {
			sr.RunID, err = st.Save(storage.RunMetadata{
				Pattern:     name,
				Seed:        cfg.Seed,
				Density:     cfg.Density,
				Generations: cfg.Generations,
			}, result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}
