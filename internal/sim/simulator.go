package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/san-kum/lifesim/internal/life"
)

// Simulator advances a field as fast as possible, without a clock, for
// batch runs and analysis.
type Simulator struct {
	metrics   []Metric
	observers []StepObserver
	logger    *log.Logger
}

func NewSimulator(logger *log.Logger) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]StepObserver, 0),
		logger:    logger,
	}
}

func (s *Simulator) AddMetric(m Metric)         { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o StepObserver) { s.observers = append(s.observers, o) }

// Run advances f in place. If ctx is cancelled the partial result is
// returned along with ctx.Err().
func (s *Simulator) Run(ctx context.Context, f *life.Field, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Population: make([]int, 0, cfg.Generations+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	seen := map[string]int{f.String(): 0}
	s.observe(result, f, 0)

	var runErr error
	for gen := 1; gen <= cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		f.Update()
		result.StepsTaken++
		s.observe(result, f, gen)

		if seen == nil {
			continue
		}
		key := f.String()
		if first, ok := seen[key]; ok {
			result.CycleStart = first
			result.CyclePeriod = gen - first
			seen = nil
			s.logger.Debug("cycle detected", "start", first, "period", result.CyclePeriod)
			if cfg.StopOnCycle {
				break
			}
			continue
		}
		seen[key] = gen
	}

	result.Final = f
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}

func (s *Simulator) observe(result *Result, f *life.Field, gen int) {
	result.Population = append(result.Population, f.Population())
	for _, m := range s.metrics {
		m.Observe(f, gen)
	}
	for _, obs := range s.observers {
		obs.OnStep(f, gen)
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	return nil
}
