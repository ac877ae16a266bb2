// Package synth generates noisy multi-harmonic test signals.
//
// The noise rate len(f) + Σ sin(f·x) is never negative because the offset
// equals the number of unit sines, so the zero clamp in the rate function
// only guards that function and cannot trigger from Generate.
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
	"github.com/RyanBlaney/harmonic-analysis/pkg/dataset"
)

// DefaultSamples is the number of points in a synthesized dataset
const DefaultSamples = 1000

// Synthesizer builds a sum of unit sinusoids over one period of the lowest
// frequency and adds Poisson noise whose rate is the noiseless signal value
type Synthesizer struct {
	samples int
	src     rand.Source
	logger  logging.Logger
}

// Option configures a Synthesizer
type Option func(*Synthesizer)

// WithSource draws noise from src instead of the process-global generator
func WithSource(src rand.Source) Option {
	return func(s *Synthesizer) {
		s.src = src
	}
}

// WithSeed draws noise from a PCG generator seeded with seed
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

// WithSamples overrides the number of generated points
func WithSamples(n int) Option {
	return func(s *Synthesizer) {
		s.samples = n
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSynthesizer creates a synthesizer. Without WithSource or WithSeed the
// noise is unseeded and differs between runs.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		samples: DefaultSamples,
		logger: logging.WithFields(logging.Fields{
			"component": "synthesizer",
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize generates a dataset for frequencies and writes it to outputPath
// using unseeded noise
func Synthesize(frequencies []float64, outputPath string) error {
	return NewSynthesizer().Synthesize(frequencies, outputPath)
}

// Synthesize generates a dataset for frequencies and writes it to outputPath,
// overwriting any existing file. The directory is not created.
func (s *Synthesizer) Synthesize(frequencies []float64, outputPath string) error {
	ds, err := s.Generate(frequencies)
	if err != nil {
		return err
	}

	if err := dataset.Write(outputPath, ds); err != nil {
		s.logger.Error(err, "Failed to write synthesized dataset", logging.Fields{
			"output_path": outputPath,
		})
		return err
	}

	s.logger.Info("Synthesized dataset written", logging.Fields{
		"output_path": outputPath,
		"rows":        ds.Len(),
	})
	return nil
}

// Generate builds the noisy signal in memory
func (s *Synthesizer) Generate(frequencies []float64) (*dataset.Dataset, error) {
	if err := validateFrequencies(frequencies); err != nil {
		return nil, err
	}
	if s.samples < dataset.MinRows {
		return nil, common.NewAnalysisError(common.StageSynthesize, "", common.ErrCodeInvalidInput,
			fmt.Sprintf("sample count must be at least %d, got %d", dataset.MinRows, s.samples), nil)
	}

	minFreq := floats.Min(frequencies)
	x := floats.Span(make([]float64, s.samples), 0, 2*math.Pi/minFreq)

	logger := s.logger.WithFields(logging.Fields{
		"function":    "Generate",
		"frequencies": frequencies,
		"samples":     s.samples,
	})
	logger.Debug("Generating synthetic signal")

	offset := float64(len(frequencies))
	y := make([]float64, s.samples)
	clamped := 0
	for i, xi := range x {
		v := offset
		for _, f := range frequencies {
			v += math.Sin(f * xi)
		}

		noise, ok := s.poisson(v)
		if !ok {
			clamped++
		}
		y[i] = v + noise
	}

	if clamped > 0 {
		logger.Warn("Negative noise rate clamped to zero", logging.Fields{
			"clamped_points": clamped,
		})
	}

	return dataset.New(x, y)
}

// poisson draws one sample with the given rate. A rate below zero is
// clamped to zero, which always yields zero; ok reports whether the rate was
// used unchanged.
func (s *Synthesizer) poisson(rate float64) (sample float64, ok bool) {
	if rate <= 0 {
		return 0, rate == 0
	}
	dist := distuv.Poisson{Lambda: rate, Src: s.src}
	return dist.Rand(), true
}

func validateFrequencies(frequencies []float64) error {
	if len(frequencies) == 0 {
		return common.NewAnalysisError(common.StageSynthesize, "", common.ErrCodeInvalidInput,
			"frequency list must not be empty", nil)
	}
	for i, f := range frequencies {
		if !(f > 0) || math.IsInf(f, 0) {
			return common.NewAnalysisError(common.StageSynthesize, "", common.ErrCodeInvalidInput,
				fmt.Sprintf("frequency %d must be positive and finite, got %v", i, f), nil)
		}
	}
	return nil
}
