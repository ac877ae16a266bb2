package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/harmonic-analysis/configs"
	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
	"github.com/RyanBlaney/harmonic-analysis/pkg/geometry"
)

func testConfig(t *testing.T) *configs.Config {
	cfg := configs.GetDefaultConfig()
	cfg.ProjectRoot = t.TempDir()
	cfg.Synth.Seed = 21
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ProjectRoot, cfg.Synth.OutputDir), 0755))
	return cfg
}

func TestOrchestratorRun(t *testing.T) {
	cfg := testConfig(t)
	o, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)

	summary, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cfg.DatasetPath(), summary.DatasetPath)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, "output", "data_harmonic.pdf"), summary.PlotPath)
	assert.FileExists(t, summary.DatasetPath)
	assert.FileExists(t, summary.PlotPath)

	assert.Equal(t, 1000, summary.SampleCount)
	require.Len(t, summary.Components, 5)
	for i := 1; i < len(summary.Components); i++ {
		assert.LessOrEqual(t, summary.Components[i].Amplitude, summary.Components[i-1].Amplitude)
	}

	require.NotNil(t, summary.Fit)
	assert.Equal(t, 1000, summary.Fit.Residuals.Count)

	want, _ := geometry.AreaCirc(2.3)
	assert.Equal(t, want, summary.CircleArea)

	stages := make([]string, len(summary.Stages))
	for i, s := range summary.Stages {
		stages[i] = s.Stage
	}
	assert.Equal(t, []string{StageSynthesize, StageAnalyze, StageVisualize, StageScore, StageUtility}, stages)
	assert.Len(t, summary.Rows(), 5)
}

func TestOrchestratorMissingOutputDir(t *testing.T) {
	cfg := configs.GetDefaultConfig()
	cfg.ProjectRoot = t.TempDir()

	o, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)

	_, err = o.Run(context.Background())
	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.ErrCodeWrite))
}

func TestOrchestratorNegativeRadius(t *testing.T) {
	cfg := testConfig(t)
	cfg.Utility.AreaRadius = -1

	o, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)

	_, err = o.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrNegativeRadius)
}

func TestOrchestratorCancelled(t *testing.T) {
	cfg := testConfig(t)
	o, err := NewOrchestrator(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = o.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, cfg.DatasetPath())
}

func TestNewOrchestratorInvalidConfig(t *testing.T) {
	cfg := configs.GetDefaultConfig()
	cfg.Synth.Frequencies = []float64{0}

	_, err := NewOrchestrator(cfg, nil)
	assert.Error(t, err)

	_, err = NewOrchestrator(nil, nil)
	assert.Error(t, err)
}
