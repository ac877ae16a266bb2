// Package harmonic rebuilds a signal from ranked spectral components and
// plots it against the original data.
//
// The reconstruction runs on its own time axis, N points from 0 to N*dt,
// rather than on the dataset's X column. Both axes agree only when X is
// uniformly sampled from zero, which the pipeline assumes but never checks.
package harmonic

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
	"github.com/RyanBlaney/harmonic-analysis/pkg/dataset"
	"github.com/RyanBlaney/harmonic-analysis/pkg/spectral"
)

const (
	// DefaultSuffix is inserted between the dataset basename and the plot extension
	DefaultSuffix = "_harmonic"
	// PlotExtension selects the PDF backend
	PlotExtension = ".pdf"
)

// Reconstruction is the harmonic approximation of a dataset
type Reconstruction struct {
	Time     []float64 `json:"-" yaml:"-"`
	Values   []float64 `json:"-" yaml:"-"`
	Offset   float64   `json:"offset" yaml:"offset"`
	PlotPath string    `json:"plot_path" yaml:"plot_path"`
}

// PlotPath derives the plot location from the dataset path: same directory,
// basename without extension plus "_harmonic.pdf"
func PlotPath(inputPath string) string {
	return plotPathWithSuffix(inputPath, DefaultSuffix)
}

func plotPathWithSuffix(inputPath, suffix string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), name+suffix+PlotExtension)
}

// TimeAxis returns n evenly spaced points from 0 to n*dt inclusive
func TimeAxis(n int, dt float64) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, float64(n)*dt)
}

// Reconstruct evaluates offset + sum(a*sin(2*pi*f*t + phase)) over t
func Reconstruct(t []float64, components []spectral.Component, offset float64) []float64 {
	out := make([]float64, len(t))
	for _, c := range components {
		w := 2 * math.Pi * c.Frequency
		for i, ti := range t {
			out[i] += c.Amplitude * math.Sin(w*ti+c.Phase)
		}
	}
	floats.AddConst(offset, out)
	return out
}

// Components zips parallel frequency, amplitude and phase slices
func Components(frequencies, amplitudes, phases []float64) ([]spectral.Component, error) {
	if len(frequencies) != len(amplitudes) || len(frequencies) != len(phases) {
		return nil, common.NewAnalysisError(common.StageVisualize, "", common.ErrCodeInvalidInput,
			fmt.Sprintf("component slices differ in length: %d frequencies, %d amplitudes, %d phases",
				len(frequencies), len(amplitudes), len(phases)), nil)
	}

	components := make([]spectral.Component, len(frequencies))
	for i := range frequencies {
		components[i] = spectral.Component{
			Frequency: frequencies[i],
			Amplitude: amplitudes[i],
			Phase:     phases[i],
		}
	}
	return components, nil
}

// Visualize reloads the dataset at inputPath, reconstructs it from the
// given components and writes the comparison plot next to it
func Visualize(inputPath string, frequencies, amplitudes, phases []float64) error {
	return NewVisualizer().Visualize(inputPath, frequencies, amplitudes, phases)
}

// Visualize reloads the dataset at inputPath, reconstructs it from the
// given components and writes the comparison plot next to it
func (v *Visualizer) Visualize(inputPath string, frequencies, amplitudes, phases []float64) error {
	components, err := Components(frequencies, amplitudes, phases)
	if err != nil {
		return err
	}
	_, err = v.VisualizeFile(inputPath, components)
	return err
}

// VisualizeFile is Visualize for already-paired components. It returns the
// reconstruction so callers can score it.
func (v *Visualizer) VisualizeFile(inputPath string, components []spectral.Component) (*Reconstruction, error) {
	ds, err := dataset.Read(inputPath)
	if err != nil {
		v.logger.Error(err, "Failed to load dataset", logging.Fields{
			"input_path": inputPath,
		})
		return nil, err
	}

	rec := v.Reconstruct(ds, components)
	rec.PlotPath = plotPathWithSuffix(inputPath, v.suffix)

	if err := v.Render(ds, rec); err != nil {
		v.logger.Error(err, "Failed to render plot", logging.Fields{
			"plot_path": rec.PlotPath,
		})
		return nil, err
	}

	v.logger.Info("Harmonic plot written", logging.Fields{
		"plot_path":  rec.PlotPath,
		"components": len(components),
	})
	return rec, nil
}

// Reconstruct builds the harmonic approximation of ds without rendering
func (v *Visualizer) Reconstruct(ds *dataset.Dataset, components []spectral.Component) *Reconstruction {
	t := TimeAxis(ds.Len(), ds.Step())
	offset := stat.Mean(ds.Y, nil)

	v.logger.Debug("Reconstructing harmonic signal", logging.Fields{
		"samples":    len(t),
		"components": len(components),
		"offset":     offset,
	})

	return &Reconstruction{
		Time:   t,
		Values: Reconstruct(t, components, offset),
		Offset: offset,
	}
}
