package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/harmonic-analysis/pkg/harmonic"
	"github.com/RyanBlaney/harmonic-analysis/pkg/spectral"
)

var (
	visualizeFile        string
	visualizeFrequencies []float64
	visualizeAmplitudes  []float64
	visualizePhases      []float64
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Plot a dataset against its harmonic reconstruction",
	Long: `Reconstruct a signal from the given components around the mean of the
dataset and save both curves as <name>_harmonic.pdf next to the dataset.

When no components are given, the dataset is analyzed first.

Examples:
  harmonic-analysis visualize --file output/data.csv
  harmonic-analysis visualize --file output/data.csv \
    --frequencies 1,2,3 --amplitudes 1,1,1 --phases 0,0,0`,
	RunE: runVisualize,
}

func init() {
	rootCmd.AddCommand(visualizeCmd)

	visualizeCmd.Flags().StringVar(&visualizeFile, "file", "",
		"dataset path (default <project-root>/output/data.csv)")
	visualizeCmd.Flags().Float64SliceVar(&visualizeFrequencies, "frequencies", nil,
		"component frequencies")
	visualizeCmd.Flags().Float64SliceVar(&visualizeAmplitudes, "amplitudes", nil,
		"component amplitudes")
	visualizeCmd.Flags().Float64SliceVar(&visualizePhases, "phases", nil,
		"component phases")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	pipelineApp, err := newCommandApp(cmd, nil, 0)
	if err != nil {
		return err
	}
	cfg := pipelineApp.Config()
	logger := pipelineApp.Logger()

	path := visualizeFile
	if path == "" {
		path = cfg.DatasetPath()
	}

	var components []spectral.Component
	if len(visualizeFrequencies) == 0 && len(visualizeAmplitudes) == 0 && len(visualizePhases) == 0 {
		result, err := spectral.NewAnalyzer(
			spectral.WithTopComponents(cfg.Analysis.TopComponents),
			spectral.WithLogger(logger),
		).Analyze(path)
		if err != nil {
			return err
		}
		components = result.Components
	} else {
		components, err = harmonic.Components(visualizeFrequencies, visualizeAmplitudes, visualizePhases)
		if err != nil {
			return err
		}
	}

	visualizer := harmonic.NewVisualizer(
		harmonic.WithSuffix(cfg.Plot.Suffix),
		harmonic.WithSize(cfg.Plot.Width, cfg.Plot.Height),
		harmonic.WithLabels(cfg.Plot.Title, cfg.Plot.XLabel, cfg.Plot.YLabel),
		harmonic.WithLogger(logger),
	)

	rec, err := visualizer.VisualizeFile(path, components)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), true, fmt.Sprintf("plot written to %s", rec.PlotPath))
	return nil
}
