package harmonic

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
	"github.com/RyanBlaney/harmonic-analysis/pkg/dataset"
	"github.com/RyanBlaney/harmonic-analysis/pkg/spectral"
	"github.com/RyanBlaney/harmonic-analysis/pkg/synth"
)

func TestPlotPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"output/data.csv", filepath.Join("output", "data_harmonic.pdf")},
		{"/tmp/run/signal.txt", "/tmp/run/signal_harmonic.pdf"},
		{"data.csv", "data_harmonic.pdf"},
		{"noext", "noext_harmonic.pdf"},
		{"a.b/data.v2.csv", filepath.Join("a.b", "data.v2_harmonic.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, PlotPath(tt.input))
		})
	}
}

func TestTimeAxis(t *testing.T) {
	axis := TimeAxis(5, 0.5)
	require.Len(t, axis, 5)
	assert.Equal(t, 0.0, axis[0])
	assert.InDelta(t, 2.5, axis[4], 1e-12)
	assert.InDelta(t, 0.625, axis[1], 1e-12)

	assert.Nil(t, TimeAxis(0, 1))
	assert.Equal(t, []float64{0}, TimeAxis(1, 1))
}

func TestReconstruct(t *testing.T) {
	tt := []float64{0, 0.25, 0.5}
	components := []spectral.Component{
		{Frequency: 1, Amplitude: 2, Phase: 0},
		{Frequency: 0, Amplitude: 1, Phase: math.Pi / 2},
	}

	got := Reconstruct(tt, components, 10)
	require.Len(t, got, 3)
	assert.InDelta(t, 11.0, got[0], 1e-12)
	assert.InDelta(t, 13.0, got[1], 1e-12)
	assert.InDelta(t, 11.0, got[2], 1e-12)
}

func TestReconstructNoComponents(t *testing.T) {
	got := Reconstruct([]float64{0, 1, 2}, nil, 4.5)
	assert.Equal(t, []float64{4.5, 4.5, 4.5}, got)
}

func TestComponentsLengthMismatch(t *testing.T) {
	_, err := Components([]float64{1, 2}, []float64{1}, []float64{0, 0})
	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.ErrCodeInvalidInput))
}

func TestVisualizeWritesPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, synth.NewSynthesizer(synth.WithSeed(5)).Synthesize([]float64{1, 2, 3}, path))

	freqs, amps, phases, err := spectral.Analyze(path)
	require.NoError(t, err)

	require.NoError(t, Visualize(path, freqs, amps, phases))

	plotPath := filepath.Join(dir, "data_harmonic.pdf")
	raw, err := os.ReadFile(plotPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	// a second call overwrites the same artifact
	require.NoError(t, Visualize(path, freqs, amps, phases))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestVisualizeFileReconstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.csv")
	ds, err := dataset.New([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, dataset.Write(path, ds))

	v := NewVisualizer(WithSuffix("_fit"), WithSize(4, 3), WithLabels("fit", "t", "y"))
	rec, err := v.VisualizeFile(path, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "flat_fit.pdf"), rec.PlotPath)
	assert.InDelta(t, 2.5, rec.Offset, 1e-12)
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, rec.Values)
	assert.FileExists(t, rec.PlotPath)
}

func TestVisualizeMissingDataset(t *testing.T) {
	err := Visualize(filepath.Join(t.TempDir(), "missing.csv"), []float64{1}, []float64{1}, []float64{0})
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}
