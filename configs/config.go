package configs

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`
	ProjectRoot  string `mapstructure:"project_root"`

	// Signal synthesis configuration
	Synth SynthConfig `mapstructure:"synth"`

	// Spectral analysis configuration
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Plot configuration
	Plot PlotConfig `mapstructure:"plot"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`

	// Utility configuration
	Utility UtilityConfig `mapstructure:"utility"`
}

// SynthConfig contains signal synthesis settings
type SynthConfig struct {
	Frequencies []float64 `mapstructure:"frequencies"`
	Samples     int       `mapstructure:"samples"`
	Seed        uint64    `mapstructure:"seed"` // 0 draws unseeded noise
	OutputDir   string    `mapstructure:"output_dir"`
	DataFile    string    `mapstructure:"data_file"`
}

// AnalysisConfig contains spectral analysis settings
type AnalysisConfig struct {
	TopComponents int `mapstructure:"top_components"`
}

// PlotConfig contains plot rendering settings
type PlotConfig struct {
	Suffix string  `mapstructure:"suffix"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Title  string  `mapstructure:"title"`
	XLabel string  `mapstructure:"x_label"`
	YLabel string  `mapstructure:"y_label"`
}

// OutputConfig contains report formatting settings
type OutputConfig struct {
	Precision int  `mapstructure:"precision"`
	Pretty    bool `mapstructure:"pretty"`
}

// UtilityConfig contains settings for the helpers run after the pipeline
type UtilityConfig struct {
	AreaRadius float64 `mapstructure:"area_radius"`
}

// DatasetPath returns the location of the synthesized dataset
func (c *Config) DatasetPath() string {
	return filepath.Join(c.ProjectRoot, c.Synth.OutputDir, c.Synth.DataFile)
}

// LoadConfig loads configuration from the global viper instance
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom loads configuration from v, filling unset keys with defaults
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if len(config.Synth.Frequencies) == 0 {
		return fmt.Errorf("at least one synthesis frequency is required")
	}

	for _, f := range config.Synth.Frequencies {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("synthesis frequencies must be positive, got %v", f)
		}
	}

	if config.Synth.Samples < 2 {
		return fmt.Errorf("synthesis sample count must be at least 2")
	}

	if config.Synth.DataFile == "" {
		return fmt.Errorf("dataset file name cannot be empty")
	}

	if config.Analysis.TopComponents <= 0 {
		return fmt.Errorf("top components must be positive")
	}

	if config.Plot.Width <= 0 || config.Plot.Height <= 0 {
		return fmt.Errorf("plot width and height must be positive")
	}

	if config.Output.Precision < 0 {
		return fmt.Errorf("output precision cannot be negative")
	}

	return nil
}
