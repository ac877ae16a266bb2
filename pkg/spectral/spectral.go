// Package spectral recovers the dominant frequency components of a dataset.
//
// The transform output is reduced to its magnitude before amplitude and phase
// are derived, so every reported phase is the angle of a non-negative real
// number. Callers that need true phase information must not rely on Phase.
package spectral

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
	"github.com/RyanBlaney/harmonic-analysis/pkg/dataset"
)

// DefaultTopComponents is the number of components returned by Analyze
const DefaultTopComponents = 5

// Component is a single spectral line
type Component struct {
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Phase     float64 `json:"phase" yaml:"phase"`
}

// Result holds the ranked components of one analysis run
type Result struct {
	Components  []Component `json:"components" yaml:"components"`
	SampleCount int         `json:"sample_count" yaml:"sample_count"`
	SampleStep  float64     `json:"sample_step" yaml:"sample_step"`
	Nyquist     float64     `json:"nyquist" yaml:"nyquist"`
}

// Frequencies returns the component frequencies in ranked order
func (r *Result) Frequencies() []float64 {
	out := make([]float64, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Frequency
	}
	return out
}

// Amplitudes returns the component amplitudes in ranked order
func (r *Result) Amplitudes() []float64 {
	out := make([]float64, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Amplitude
	}
	return out
}

// Phases returns the component phases in ranked order
func (r *Result) Phases() []float64 {
	out := make([]float64, len(r.Components))
	for i, c := range r.Components {
		out[i] = c.Phase
	}
	return out
}

// Spectrum is the one-sided amplitude and phase spectrum of a dataset
type Spectrum struct {
	Frequencies []float64
	Amplitudes  []float64
	Phases      []float64
}

// Analyzer computes spectra and selects the strongest components
type Analyzer struct {
	topComponents int
	logger        logging.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithTopComponents limits the number of returned components. A
// non-positive count keeps DefaultTopComponents.
func WithTopComponents(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topComponents = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer returning the DefaultTopComponents
// strongest components unless configured otherwise
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		topComponents: DefaultTopComponents,
		logger: logging.WithFields(logging.Fields{
			"component": "spectral_analyzer",
		}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze loads the dataset at inputPath and returns the frequencies,
// amplitudes and phases of its five strongest components
func Analyze(inputPath string) (frequencies, amplitudes, phases []float64, err error) {
	result, err := NewAnalyzer().Analyze(inputPath)
	if err != nil {
		return nil, nil, nil, err
	}
	return result.Frequencies(), result.Amplitudes(), result.Phases(), nil
}

// Analyze loads the dataset at inputPath and ranks its components
func (a *Analyzer) Analyze(inputPath string) (*Result, error) {
	ds, err := dataset.Read(inputPath)
	if err != nil {
		a.logger.Error(err, "Failed to load dataset", logging.Fields{
			"input_path": inputPath,
		})
		return nil, err
	}
	return a.AnalyzeDataset(ds)
}

// AnalyzeDataset ranks the components of an in-memory dataset
func (a *Analyzer) AnalyzeDataset(ds *dataset.Dataset) (*Result, error) {
	if err := ds.Validate(); err != nil {
		return nil, common.NewAnalysisError(common.StageAnalyze, "", common.ErrCodeMalformed,
			"empty or malformed data", err)
	}

	spectrum := ComputeSpectrum(ds)
	components := a.selectComponents(spectrum)

	dt := ds.Step()
	result := &Result{
		Components:  components,
		SampleCount: ds.Len(),
		SampleStep:  dt,
		Nyquist:     0.5 / dt,
	}

	a.logger.Debug("Spectral analysis completed", logging.Fields{
		"sample_count": result.SampleCount,
		"sample_step":  result.SampleStep,
		"nyquist":      result.Nyquist,
		"bins":         len(spectrum.Amplitudes),
		"selected":     len(components),
	})

	if len(components) < a.topComponents {
		a.logger.Warn("Spectrum shorter than requested component count", logging.Fields{
			"bins":      len(spectrum.Amplitudes),
			"requested": a.topComponents,
		})
	}

	return result, nil
}

// ComputeSpectrum returns the one-sided spectrum of ds: N/2 bins spanning
// 0 to the Nyquist frequency 0.5/dt inclusive. Amplitudes are scaled by 2/N.
func ComputeSpectrum(ds *dataset.Dataset) *Spectrum {
	n := ds.Len()
	half := n / 2

	freqs := make([]float64, half)
	switch {
	case half >= 2:
		floats.Span(freqs, 0, 0.5/ds.Step())
	case half == 1:
		freqs[0] = 0
	}

	coeffs := fft.FFTReal(ds.Y)
	magnitude := make([]float64, n)
	for i, c := range coeffs {
		magnitude[i] = cmplx.Abs(c)
	}

	amplitudes := make([]float64, half)
	phases := make([]float64, half)
	scale := 2.0 / float64(n)
	for i := 0; i < half; i++ {
		amplitudes[i] = scale * math.Abs(magnitude[i])
		phases[i] = cmplx.Phase(complex(magnitude[i], 0))
	}

	return &Spectrum{
		Frequencies: freqs,
		Amplitudes:  amplitudes,
		Phases:      phases,
	}
}

// selectComponents ranks bins by descending amplitude and keeps the first
// topComponents. Equal amplitudes keep reversed index order.
func (a *Analyzer) selectComponents(spectrum *Spectrum) []Component {
	bins := len(spectrum.Amplitudes)
	sorted := make([]float64, bins)
	copy(sorted, spectrum.Amplitudes)
	inds := make([]int, bins)
	floats.ArgsortStable(sorted, inds)

	count := min(a.topComponents, bins)
	components := make([]Component, 0, count)
	for k := bins - 1; k >= bins-count; k-- {
		idx := inds[k]
		components = append(components, Component{
			Frequency: spectrum.Frequencies[idx],
			Amplitude: spectrum.Amplitudes[idx],
			Phase:     spectrum.Phases[idx],
		})
	}
	return components
}
