package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string

	width       int
	height      int
	tps         int
	patternName string
	patternFile string
	seed        int64
	density     float64
	theme       string
	autoStart   bool

	generations int
	stopOnCycle bool
	watch       bool

	outFile    string
	population bool
)

// main registers the lifesim commands and runs the interactive board when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "lifesim",
		Short:         "conway's game of life in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          playInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifesim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	addFieldFlags(rootCmd)
	rootCmd.Flags().BoolVar(&autoStart, "start", false, "start the loop immediately")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive board (default)",
		Args:  cobra.NoArgs,
		RunE:  playInteractive,
	}
	addFieldFlags(playCmd)
	playCmd.Flags().BoolVar(&autoStart, "start", false, "start the loop immediately")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run generations headless and save the result",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	addFieldFlags(runCmd)
	runCmd.Flags().IntVar(&generations, "generations", 0, "generations to compute (default from config)")
	runCmd.Flags().BoolVar(&stopOnCycle, "stop-on-cycle", false, "stop at the first repeated generation")
	runCmd.Flags().BoolVar(&watch, "watch", false, "animate the run in the terminal before saving it")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population spectrum and dominant period",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata and final generation",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the final generation or population curve as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().BoolVar(&population, "population", false, "plot population instead of the final generation")
	exportSVGCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		Args:  cobra.NoArgs,
		RunE:  listPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  saveConfig,
	}
	addFieldFlags(saveConfigCmd)
	saveConfigCmd.Flags().IntVar(&generations, "generations", 0, "generations for headless runs")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "find the random density that lives longest",
		Args:  cobra.NoArgs,
		RunE:  sweepDensities,
	}
	addFieldFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&generations, "generations", 0, "generation limit per run")
	sweepCmd.Flags().Float64SliceVar(&densities, "densities", []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, "densities to try")
	sweepCmd.Flags().IntVar(&sweepSeeds, "seeds", 5, "seeds per density")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted batch of headless runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(playCmd, runCmd, listCmd, plotCmd, analyzeCmd, showCmd,
		exportJSONCmd, exportSVGCmd, patternsCmd, presetsCmd, saveConfigCmd, sweepCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", 0, "field width in cells")
	cmd.Flags().IntVar(&height, "height", 0, "field height in cells")
	cmd.Flags().IntVar(&tps, "tps", 0, "ticks per second")
	cmd.Flags().StringVarP(&patternName, "pattern", "p", "", "built-in pattern, \"random\" or \"empty\"")
	cmd.Flags().StringVar(&patternFile, "pattern-file", "", "plaintext .cells pattern file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().Float64Var(&density, "density", 0, "live fraction for random fills")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme")
}
