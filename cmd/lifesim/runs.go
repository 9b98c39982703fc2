package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATTERN\tTIME\tSIZE\tSTEPS\tCYCLE")

	for _, run := range runs {
		cycle := "-"
		if run.CyclePeriod > 0 {
			cycle = fmt.Sprintf("p%d@%d", run.CyclePeriod, run.CycleStart)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\n",
			run.ID,
			run.Pattern,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.StepsTaken,
			cycle,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pop, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(pop) < 2 {
		return fmt.Errorf("not enough generations to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n", meta.Pattern)
	fmt.Printf("generations: %d\n\n", len(pop)-1)

	graph := asciigraph.Plot(analysis.Float64s(pop),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("population"),
	)
	fmt.Println(graph)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pop, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	if len(pop) < 4 {
		return fmt.Errorf("not enough generations to analyze")
	}

	fmt.Printf("population analysis: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n\n", meta.Pattern)

	series := analysis.Float64s(pop)
	ps := analysis.PowerSpectrum(series)
	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (population)"),
	)
	fmt.Println(graph)
	fmt.Println()

	if period, ok := analysis.DominantPeriod(series); ok {
		fmt.Printf("dominant period: %.2f generations\n", period)
	} else {
		fmt.Println("dominant period: none (constant population)")
	}
	if meta.CyclePeriod > 0 {
		fmt.Printf("exact cycle: period %d from generation %d\n", meta.CyclePeriod, meta.CycleStart)
	}
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	final, err := st.LoadFinal(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pattern: %s\n", meta.Pattern)
	fmt.Printf("time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("size: %dx%d\n", meta.Width, meta.Height)
	fmt.Printf("steps: %d of %d\n", meta.StepsTaken, meta.Generations)
	for _, k := range slices.Sorted(maps.Keys(meta.Metrics)) {
		fmt.Printf("%s: %.4f\n", k, meta.Metrics[k])
	}
	fmt.Println()
	return pattern.Encode(os.Stdout, meta.ID, final)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	pop, err := st.LoadPopulation(runID)
	if err != nil {
		return err
	}
	final, err := st.LoadFinal(runID)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := storage.ExportJSON(w, meta, pop, final); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Printf("exported to %s\n", outFile)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	name := theme
	if name == "" {
		name = config.DefaultTheme
	}
	colors := viz.GetTheme(name)

	var svg string
	if population {
		pop, err := st.LoadPopulation(runID)
		if err != nil {
			return err
		}
		svg = export.PopulationToSVG(pop, 800, 300, string(colors.Primary))
	} else {
		final, err := st.LoadFinal(runID)
		if err != nil {
			return err
		}
		svg = export.FieldToSVG(final, 10, string(colors.Alive), string(colors.Dead))
	}

	out := outFile
	if out == "" {
		out = runID + ".svg"
	}
	if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", out)
	return nil
}

func listPatterns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, n := range pattern.Names() {
		p, err := pattern.Get(n)
		if err != nil {
			return err
		}
		pw, ph := p.Bounds()
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", n, pw, ph, len(p.Cells), p.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPATTERN\tSIZE\tTPS\tGENERATIONS")
	for _, n := range config.ListPresets() {
		p := config.GetPreset(n)
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\n", n, p.Pattern, p.Width, p.Height, p.TicksPerSecond, p.Generations)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nthemes: %s\n", strings.Join(viz.ThemeNames(), ", "))
	return nil
}

func saveConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", args[0])
	return nil
}
