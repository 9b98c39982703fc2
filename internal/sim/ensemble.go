package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lifesim/internal/life"
)

// Ensemble runs one configuration over many starting fields, one after
// another, each with a fresh Simulator so metrics never leak between runs.
type Ensemble struct {
	newSim func() *Simulator
}

func NewEnsemble(newSim func() *Simulator) *Ensemble {
	return &Ensemble{newSim: newSim}
}

// Run advances every field in turn. It stops at the first failure and
// returns the results gathered so far.
func (e *Ensemble) Run(ctx context.Context, fields []*life.Field, cfg Config) ([]*Result, error) {
	results := make([]*Result, 0, len(fields))
	for i, f := range fields {
		r, err := e.newSim().Run(ctx, f, cfg)
		if err != nil {
			return results, fmt.Errorf("ensemble run %d: %w", i, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// MeanLifespan averages Result.Lifespan over results.
func MeanLifespan(results []*Result) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Lifespan()
	}
	return float64(total) / float64(len(results))
}
