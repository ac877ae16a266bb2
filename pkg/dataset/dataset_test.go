package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	ds, err := New([]float64{0, 0.5, 1, 1.5}, []float64{3, 4.25, -1e-7, 2})
	require.NoError(t, err)

	require.NoError(t, Write(path, ds))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "X,Y", lines[0])
	assert.Equal(t, "0.0,3.0", lines[1])
	assert.Len(t, lines, 5)

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, ds.X, loaded.X)
	assert.Equal(t, ds.Y, loaded.Y)
	assert.InDelta(t, 0.5, loaded.Step(), 1e-15)
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	first, _ := New([]float64{0, 1, 2}, []float64{1, 1, 1})
	second, _ := New([]float64{0, 1}, []float64{2, 2})

	require.NoError(t, Write(path, first))
	require.NoError(t, Write(path, second))

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.csv")
	ds, _ := New([]float64{0, 1}, []float64{0, 0})

	err := Write(path, ds)
	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.ErrCodeWrite))
}

func TestReadNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing Y column", "X,Z\n0,1\n1,2\n"},
		{"non numeric", "X,Y\n0,1\n1,abc\n"},
		{"single row", "X,Y\n0,1\n"},
		{"header only", "X,Y\n"},
		{"non increasing", "X,Y\n1,1\n1,2\n"},
		{"ragged row", "X,Y\n0,1\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestDecodeColumnOrder(t *testing.T) {
	ds, err := Decode(strings.NewReader("Y,extra,X\n5,a,0\n6,b,0.1\n7,c,0.2\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.1, 0.2}, ds.X)
	assert.Equal(t, []float64{5, 6, 7}, ds.Y)
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B\n1,2\n"), 0644))

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, common.IsMalformed(err))
}
