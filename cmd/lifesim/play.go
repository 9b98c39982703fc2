package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/sim"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/tui"
	"github.com/san-kum/lifesim/internal/viz"
)

func playInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	field, name, err := buildField(cfg)
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}
	logger.Info("starting board", "pattern", name, "width", cfg.Width, "height", cfg.Height, "tps", cfg.TicksPerSecond)

	opts := viz.Options{
		Title:     "lifesim · " + name,
		Theme:     cfg.Theme,
		Seed:      cfg.Seed,
		Density:   cfg.Density,
		AutoStart: autoStart,
		Logger:    logger,
	}
	return viz.Run(field, opts, sim.WithTicksPerSecond(cfg.TicksPerSecond), sim.WithLogger(logger))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	field, name, err := buildField(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if watch {
		if err := watchRun(ctx, os.Stdout, field.Clone(), cfg, name, logger); err != nil {
			return err
		}
	}

	s := sim.NewSimulator(logger)
	s.AddMetric(metrics.NewPopulation())
	s.AddMetric(metrics.NewPeakPopulation())
	s.AddMetric(metrics.NewActivity())

	fmt.Printf("running %s on %dx%d for %d generations\n", name, cfg.Width, cfg.Height, cfg.Generations)
	result, err := s.Run(ctx, field, sim.Config{Generations: cfg.Generations, StopOnCycle: stopOnCycle})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		logger.Warn("run interrupted, saving partial result", "steps", result.StepsTaken)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Pattern:     name,
		Seed:        cfg.Seed,
		Density:     cfg.Density,
		Generations: cfg.Generations,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("run saved: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if result.CyclePeriod > 0 {
		fmt.Printf("cycle: period %d from generation %d\n", result.CyclePeriod, result.CycleStart)
	}
	fmt.Println("\nmetrics:")
	for _, k := range slices.Sorted(maps.Keys(result.Metrics)) {
		fmt.Printf("  %s: %.4f\n", k, result.Metrics[k])
	}
	return nil
}

// watchRun animates field on out in real time until cfg.Generations is
// reached or ctx is cancelled.
func watchRun(ctx context.Context, out io.Writer, field *life.Field, cfg *config.Config, title string, logger *log.Logger) error {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := sim.NewEventLoop()
	app := sim.NewApp(field, loop, sim.WithTicksPerSecond(cfg.TicksPerSecond), sim.WithLogger(logger))

	renderer := tui.NewLiveRenderer(out, title, true)
	app.AddObserver(renderer)
	app.AddObserver(&generationLimit{app: app, limit: cfg.Generations, done: cancel})

	renderer.Start()
	defer renderer.Stop()

	loop.Post(app.Start)
	_ = loop.Run(loopCtx)

	// Only an interrupt of the parent is an error; reaching the limit is not.
	return ctx.Err()
}

// generationLimit stops the App once it has drawn the last wanted generation.
// The stop happens inside the redraw, so the generation is neither advanced
// past the limit nor drawn again.
type generationLimit struct {
	app   *sim.App
	limit int
	done  func()
}

func (g *generationLimit) OnCellChanged(x, y int, alive bool) {}

func (g *generationLimit) OnGenerationAdvanced(f *life.Field, generation int) {
	if generation >= g.limit {
		g.app.Stop()
		g.done()
	}
}
