package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/optim"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/sim"
)

var (
	densities  []float64
	sweepSeeds int
)

// sweepDensities looks for the random fill density whose soups take longest
// to settle, averaging over several seeds per density.
func sweepDensities(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if sweepSeeds <= 0 {
		return fmt.Errorf("seeds must be positive, got %d", sweepSeeds)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ensemble := sim.NewEnsemble(func() *sim.Simulator { return sim.NewSimulator(logger) })
	runCfg := sim.Config{Generations: cfg.Generations, StopOnCycle: true}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tMEAN LIFESPAN")

	objective := func(ctx context.Context, params map[string]float64) (float64, error) {
		d := params["density"]
		fields := make([]*life.Field, sweepSeeds)
		for i := range fields {
			f, err := life.New(cfg.Width, cfg.Height)
			if err != nil {
				return 0, err
			}
			pattern.Random(f, cfg.Seed+int64(i), d)
			fields[i] = f
		}
		results, err := ensemble.Run(ctx, fields, runCfg)
		if err != nil {
			return 0, err
		}
		mean := sim.MeanLifespan(results)
		fmt.Fprintf(w, "%.2f\t%.1f\n", d, mean)
		return mean, nil
	}

	fmt.Printf("sweeping %d densities x %d seeds on %dx%d (limit %d generations)\n\n",
		len(densities), sweepSeeds, cfg.Width, cfg.Height, cfg.Generations)

	best, score, err := optim.NewGridSearch([]string{"density"}, [][]float64{densities}).Maximize().Search(ctx, objective)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nlongest lived: density %.2f, mean lifespan %.1f generations\n", best["density"], score)
	return nil
}
