package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/harmonic-analysis/internal/app"
)

// newCommandApp builds the application context shared by the single stage
// commands
func newCommandApp(cmd *cobra.Command, frequencies []float64, seed uint64) (*app.PipelineApp, error) {
	return app.NewPipelineApp(&app.Context{
		OutputFormat: outputFormat,
		ProjectRoot:  projectRoot,
		Frequencies:  frequencies,
		Seed:         seed,
		Verbose:      verbose || logLevel == "debug",
		Stdout:       cmd.OutOrStdout(),
	})
}
