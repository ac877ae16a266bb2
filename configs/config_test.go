package configs

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, filepath.Join("output", "data.csv"), cfg.DatasetPath())
}

func TestLoadConfigOverrides(t *testing.T) {
	v := viper.New()
	v.Set("synth.frequencies", []float64{1, 3, 5})
	v.Set("synth.seed", 9)
	v.Set("analysis.top_components", 3)
	v.Set("project_root", "/srv/signal")

	cfg, err := LoadConfigFrom(v)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 3, 5}, cfg.Synth.Frequencies)
	assert.Equal(t, uint64(9), cfg.Synth.Seed)
	assert.Equal(t, 3, cfg.Analysis.TopComponents)
	assert.Equal(t, "/srv/signal/output/data.csv", cfg.DatasetPath())
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no frequencies", func(c *Config) { c.Synth.Frequencies = nil }},
		{"zero frequency", func(c *Config) { c.Synth.Frequencies = []float64{1, 0} }},
		{"negative frequency", func(c *Config) { c.Synth.Frequencies = []float64{-1} }},
		{"too few samples", func(c *Config) { c.Synth.Samples = 1 }},
		{"empty data file", func(c *Config) { c.Synth.DataFile = "" }},
		{"no components", func(c *Config) { c.Analysis.TopComponents = 0 }},
		{"zero plot width", func(c *Config) { c.Plot.Width = 0 }},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}
