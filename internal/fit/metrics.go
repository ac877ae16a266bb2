package fit

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MetricsCalculator scores a reconstruction against the observed signal
type MetricsCalculator struct {
	logger logging.Logger
}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator(logger logging.Logger) *MetricsCalculator {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &MetricsCalculator{
		logger: logger,
	}
}

// ResidualStats represents statistical measures of observed - reconstructed
type ResidualStats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Count  int     `json:"count" yaml:"count"`
}

// Metrics represents how closely the harmonic reconstruction follows the data
type Metrics struct {
	RMSE      float64       `json:"rmse" yaml:"rmse"`
	MAE       float64       `json:"mae" yaml:"mae"`
	RSquared  float64       `json:"r_squared" yaml:"r_squared"`
	Residuals ResidualStats `json:"residuals" yaml:"residuals"`
}

// Calculate compares observed and reconstructed sample by sample
func (mc *MetricsCalculator) Calculate(observed, reconstructed []float64) (*Metrics, error) {
	if len(observed) != len(reconstructed) {
		return nil, fmt.Errorf("length mismatch: %d observed, %d reconstructed samples",
			len(observed), len(reconstructed))
	}
	if len(observed) == 0 {
		return nil, fmt.Errorf("no samples to compare")
	}

	n := float64(len(observed))
	residuals := make([]float64, len(observed))
	floats.SubTo(residuals, observed, reconstructed)

	mean, std := stat.MeanStdDev(residuals, nil)
	if len(residuals) < 2 {
		std = 0
	}

	metrics := &Metrics{
		RMSE:     floats.Norm(residuals, 2) / math.Sqrt(n),
		MAE:      floats.Norm(residuals, 1) / n,
		RSquared: rSquared(reconstructed, observed),
		Residuals: ResidualStats{
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(residuals),
			Max:    floats.Max(residuals),
			Count:  len(residuals),
		},
	}

	mc.logger.Debug("Reconstruction metrics calculated", logging.Fields{
		"rmse":      metrics.RMSE,
		"mae":       metrics.MAE,
		"r_squared": metrics.RSquared,
		"samples":   len(residuals),
	})

	return metrics, nil
}

// rSquared is undefined for a constant observation; report zero then
func rSquared(estimates, values []float64) float64 {
	r2 := stat.RSquaredFrom(estimates, values, nil)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return 0
	}
	return r2
}
