package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePerfectFit(t *testing.T) {
	mc := NewMetricsCalculator(nil)
	observed := []float64{1, 2, 3, 4}

	metrics, err := mc.Calculate(observed, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, metrics.RMSE)
	assert.Equal(t, 0.0, metrics.MAE)
	assert.InDelta(t, 1.0, metrics.RSquared, 1e-12)
	assert.Equal(t, 4, metrics.Residuals.Count)
}

func TestCalculateResiduals(t *testing.T) {
	mc := NewMetricsCalculator(nil)

	metrics, err := mc.Calculate([]float64{1, 2, 3, 4}, []float64{0, 2, 4, 4})
	require.NoError(t, err)

	// residuals: 1, 0, -1, 0
	assert.InDelta(t, math.Sqrt(0.5), metrics.RMSE, 1e-12)
	assert.InDelta(t, 0.5, metrics.MAE, 1e-12)
	assert.InDelta(t, 0.0, metrics.Residuals.Mean, 1e-12)
	assert.Equal(t, -1.0, metrics.Residuals.Min)
	assert.Equal(t, 1.0, metrics.Residuals.Max)
	assert.InDelta(t, 1-2.0/5.0, metrics.RSquared, 1e-12)
}

func TestCalculateConstantObservation(t *testing.T) {
	metrics, err := NewMetricsCalculator(nil).Calculate([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, metrics.RSquared)
}

func TestCalculateErrors(t *testing.T) {
	mc := NewMetricsCalculator(nil)

	_, err := mc.Calculate([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = mc.Calculate(nil, nil)
	assert.Error(t, err)
}

func TestCalculateSingleSample(t *testing.T) {
	metrics, err := NewMetricsCalculator(nil).Calculate([]float64{3}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, metrics.Residuals.StdDev)
	assert.Equal(t, 2.0, metrics.RMSE)
}
