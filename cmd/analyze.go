package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/harmonic-analysis/internal/pipeline"
	"github.com/RyanBlaney/harmonic-analysis/pkg/spectral"
)

var (
	analyzeFile string
	analyzeTop  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report the strongest spectral components of a dataset",
	Long: `Read an X,Y CSV dataset, compute its one-sided amplitude spectrum and
report the strongest components in descending amplitude order.

Examples:
  harmonic-analysis analyze --file output/data.csv
  harmonic-analysis analyze --file output/data.csv -o json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "",
		"dataset path (default <project-root>/output/data.csv)")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0,
		"number of components to report (default from configuration)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	pipelineApp, err := newCommandApp(cmd, nil, 0)
	if err != nil {
		return err
	}
	cfg := pipelineApp.Config()

	path := analyzeFile
	if path == "" {
		path = cfg.DatasetPath()
	}

	top := cfg.Analysis.TopComponents
	if analyzeTop > 0 {
		top = analyzeTop
	}

	result, err := spectral.NewAnalyzer(
		spectral.WithTopComponents(top),
		spectral.WithLogger(pipelineApp.Logger()),
	).Analyze(path)
	if err != nil {
		return err
	}

	return pipelineApp.OutputResults(&pipeline.ComponentReport{
		DatasetPath: path,
		Result:      result,
		Precision:   cfg.Output.Precision,
	})
}
