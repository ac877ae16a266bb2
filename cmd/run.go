package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/harmonic-analysis/internal/app"
)

var (
	runProfileFile string
	runOutputFile  string
	runFrequencies []float64
	runSeed        uint64
	runShowTiming  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full synthesize, analyze and visualize pipeline",
	Long: `Run the complete pipeline with the configured frequencies.

The dataset is written to <project-root>/output/data.csv, its five strongest
spectral components are reported in the selected output format and the
reconstruction plot is saved next to the dataset as data_harmonic.pdf.

Examples:
  harmonic-analysis run
  harmonic-analysis run --frequencies 1,3,5 --seed 42
  harmonic-analysis run --profile run.yaml -o json --output-file report.json`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runProfileFile, "profile", "",
		"run profile file (YAML or JSON) overriding configuration")
	runCmd.Flags().StringVar(&runOutputFile, "output-file", "",
		"write the report to a file instead of stdout")
	runCmd.Flags().Float64SliceVar(&runFrequencies, "frequencies", nil,
		"input frequencies (default 1,2,3)")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0,
		"noise seed (0 draws unseeded noise)")
	runCmd.Flags().BoolVar(&runShowTiming, "timing", false,
		"print stage timings to stderr")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	timer := NewPerformanceTimer()

	appCtx := &app.Context{
		ProfileFile:  runProfileFile,
		OutputFile:   runOutputFile,
		OutputFormat: outputFormat,
		ProjectRoot:  projectRoot,
		Frequencies:  runFrequencies,
		Seed:         runSeed,
		Verbose:      verbose || logLevel == "debug",
		Stdout:       cmd.OutOrStdout(),
	}

	pipelineApp, err := app.NewPipelineApp(appCtx)
	if err != nil {
		return err
	}
	timer.Checkpoint("setup")

	// Cancel between stages on interrupt
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := pipelineApp.Run(ctx)
	if err != nil {
		return err
	}
	timer.Checkpoint("pipeline")

	if runShowTiming {
		stderr := cmd.ErrOrStderr()
		for _, st := range summary.Stages {
			printKeyValue(stderr, st.Stage, st.Duration)
		}
		timer.Print(stderr)
	}

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "plot written to %s\n", summary.PlotPath)
	}

	return nil
}
