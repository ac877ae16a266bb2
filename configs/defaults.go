package configs

import (
	"github.com/spf13/viper"
)

// setDefaults sets default configuration values for all components
func setDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.Set("output_format", "table")
	}
	if !v.IsSet("project_root") {
		v.Set("project_root", ".")
	}

	// Synthesis defaults
	if !v.IsSet("synth.frequencies") {
		v.Set("synth.frequencies", []float64{1, 2, 3})
	}
	if !v.IsSet("synth.samples") {
		v.Set("synth.samples", 1000)
	}
	if !v.IsSet("synth.seed") {
		v.Set("synth.seed", 0)
	}
	if !v.IsSet("synth.output_dir") {
		v.Set("synth.output_dir", "output")
	}
	if !v.IsSet("synth.data_file") {
		v.Set("synth.data_file", "data.csv")
	}

	// Analysis defaults
	if !v.IsSet("analysis.top_components") {
		v.Set("analysis.top_components", 5)
	}

	// Plot defaults
	if !v.IsSet("plot.suffix") {
		v.Set("plot.suffix", "_harmonic")
	}
	if !v.IsSet("plot.width") {
		v.Set("plot.width", 6.4)
	}
	if !v.IsSet("plot.height") {
		v.Set("plot.height", 4.8)
	}
	if !v.IsSet("plot.title") {
		v.Set("plot.title", "")
	}
	if !v.IsSet("plot.x_label") {
		v.Set("plot.x_label", "X")
	}
	if !v.IsSet("plot.y_label") {
		v.Set("plot.y_label", "Y")
	}

	// Output defaults
	if !v.IsSet("output.precision") {
		v.Set("output.precision", 6)
	}
	if !v.IsSet("output.pretty") {
		v.Set("output.pretty", true)
	}

	// Utility defaults
	if !v.IsSet("utility.area_radius") {
		v.Set("utility.area_radius", 2.3)
	}
}

// GetDefaultConfig returns a Config struct with all default values set
func GetDefaultConfig() *Config {
	return &Config{
		// Application settings defaults
		Verbose:      false,
		LogLevel:     "info",
		OutputFormat: "table",
		ProjectRoot:  ".",

		Synth:    GetDefaultSynthConfig(),
		Analysis: AnalysisConfig{TopComponents: 5},
		Plot:     GetDefaultPlotConfig(),
		Output:   GetDefaultOutputConfig(),
		Utility:  UtilityConfig{AreaRadius: 2.3},
	}
}

// GetDefaultSynthConfig returns the frequency list and dataset location used
// by the default pipeline run
func GetDefaultSynthConfig() SynthConfig {
	return SynthConfig{
		Frequencies: []float64{1, 2, 3},
		Samples:     1000,
		OutputDir:   "output",
		DataFile:    "data.csv",
	}
}

// GetDefaultPlotConfig returns default plot settings
func GetDefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Suffix: "_harmonic",
		Width:  6.4,
		Height: 4.8,
		XLabel: "X",
		YLabel: "Y",
	}
}

// GetDefaultOutputConfig returns default report settings
func GetDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Precision: 6,
		Pretty:    true,
	}
}
