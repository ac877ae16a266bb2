package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/harmonic-analysis/configs"
	"github.com/RyanBlaney/harmonic-analysis/pkg/geometry"
	"github.com/RyanBlaney/harmonic-analysis/pkg/harmonic"
)

// configTestCmd represents the config test command
var configTestCmd = &cobra.Command{
	Use:   "config-test",
	Short: "Test and display all configuration values",
	Long: `Load the configuration and display every value in a structured format
to verify that the YAML file and HARMONIC_ANALYSIS_* variables are parsed
correctly.

Examples:
  # Test with default config file
  harmonic-analysis config-test

  # Test with specific config file
  harmonic-analysis --config /path/to/config.yaml config-test`,
	RunE: runConfigTest,
}

func init() {
	rootCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "HARMONIC ANALYSIS CONFIGURATION TEST")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if used := viper.ConfigFileUsed(); used != "" {
		printKeyValue(w, "config_file", used)
	} else {
		printKeyValue(w, "config_file", "(defaults only)")
	}

	printSection(w, "application settings")
	printKeyValue(w, "verbose", config.Verbose)
	printKeyValue(w, "log_level", config.LogLevel)
	printKeyValue(w, "output_format", config.OutputFormat)
	printKeyValue(w, "project_root", config.ProjectRoot)

	printSection(w, "synthesis")
	printKeyValue(w, "frequencies", formatFloats(config.Synth.Frequencies))
	printKeyValue(w, "samples", config.Synth.Samples)
	if config.Synth.Seed == 0 {
		printKeyValue(w, "seed", "unseeded")
	} else {
		printKeyValue(w, "seed", config.Synth.Seed)
	}
	printKeyValue(w, "dataset_path", config.DatasetPath())

	printSection(w, "analysis")
	printKeyValue(w, "top_components", config.Analysis.TopComponents)

	printSection(w, "plot")
	suffix := config.Plot.Suffix
	if suffix == "" {
		suffix = harmonic.DefaultSuffix
	}
	printKeyValue(w, "suffix", suffix)
	printKeyValue(w, "size", fmt.Sprintf("%.1f x %.1f in", config.Plot.Width, config.Plot.Height))
	printKeyValue(w, "title", config.Plot.Title)
	printKeyValue(w, "x_label", config.Plot.XLabel)
	printKeyValue(w, "y_label", config.Plot.YLabel)

	printSection(w, "output")
	printKeyValue(w, "precision", config.Output.Precision)
	printKeyValue(w, "pretty", config.Output.Pretty)

	printSection(w, "utility")
	printKeyValue(w, "area_radius", config.Utility.AreaRadius)
	if area, err := geometry.AreaCirc(config.Utility.AreaRadius); err == nil {
		printKeyValue(w, "circle_area", area)
	}

	fmt.Fprintln(w)
	if err := configs.ValidateConfig(config); err != nil {
		printResult(w, false, fmt.Sprintf("configuration invalid: %v", err))
		return err
	}
	printResult(w, true, "configuration valid")
	return nil
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
