package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"scalar", 2.3, "2.3", true},
		{"bool", true, "true", true},
		{"float slice", []float64{1, 2.5, 3}, "1,2.5,3", true},
		{"yaml list", []any{1, 3, 5}, "1,3,5", true},
		{"section", map[string]any{"precision": 6}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flagValue(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAreaCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"area", "--radius", "2"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "12.566370614359172", strings.TrimSpace(out.String()))
}

func TestAreaCommandRejectsNegativeRadius(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"area", "--radius=-1"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		areaRadius = 2.3
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radius")
}

func TestPerformanceTimer(t *testing.T) {
	timer := NewPerformanceTimer()
	timer.Checkpoint("first")
	timer.Checkpoint("second")

	var out bytes.Buffer
	timer.Print(&out)

	assert.Contains(t, out.String(), "First:")
	assert.Contains(t, out.String(), "Second:")
	assert.Contains(t, out.String(), "Total:")
	assert.GreaterOrEqual(t, timer.Total(), timer.checkpoints[0].elapsed)
}

func TestSynthesizeHelpMatchesSignal(t *testing.T) {
	assert.Contains(t, synthesizeCmd.Long, "y = len(f) + Σ sin(f·x) + Poisson(len(f) + Σ sin(f·x))")
	assert.NotContains(t, synthesizeCmd.Long, "1 + sum")
}
