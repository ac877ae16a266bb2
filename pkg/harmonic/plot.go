package harmonic

import (
	"github.com/RyanBlaney/latency-benchmark-common/logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
	"github.com/RyanBlaney/harmonic-analysis/pkg/dataset"
)

// Legend labels of the two curves
const (
	LabelOriginal = "Original data"
	LabelHarmonic = "Harmonic signals"
)

// Default figure size, matching a 6.4x4.8 inch page
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// Visualizer renders reconstructions as PDF plots
type Visualizer struct {
	suffix string
	width  vg.Length
	height vg.Length
	title  string
	xLabel string
	yLabel string
	logger logging.Logger
}

// Option configures a Visualizer
type Option func(*Visualizer)

// WithSuffix changes the plot filename suffix
func WithSuffix(suffix string) Option {
	return func(v *Visualizer) {
		if suffix != "" {
			v.suffix = suffix
		}
	}
}

// WithSize sets the page size in inches
func WithSize(widthInches, heightInches float64) Option {
	return func(v *Visualizer) {
		if widthInches > 0 && heightInches > 0 {
			v.width = vg.Length(widthInches) * vg.Inch
			v.height = vg.Length(heightInches) * vg.Inch
		}
	}
}

// WithLabels sets the plot title and axis labels
func WithLabels(title, xLabel, yLabel string) Option {
	return func(v *Visualizer) {
		v.title = title
		v.xLabel = xLabel
		v.yLabel = yLabel
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(v *Visualizer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewVisualizer creates a visualizer with the default suffix and page size
func NewVisualizer(opts ...Option) *Visualizer {
	v := &Visualizer{
		suffix: DefaultSuffix,
		width:  DefaultWidth,
		height: DefaultHeight,
		logger: logging.WithFields(logging.Fields{
			"component": "harmonic_visualizer",
		}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Render overlays the original data and the reconstruction, both against
// the dataset's X column, and saves the figure to rec.PlotPath
func (v *Visualizer) Render(ds *dataset.Dataset, rec *Reconstruction) error {
	p := plot.New()
	p.Title.Text = v.title
	p.X.Label.Text = v.xLabel
	p.Y.Label.Text = v.yLabel
	p.Legend.Top = true

	err := plotutil.AddLines(p,
		LabelOriginal, makeXYs(ds.X, ds.Y),
		LabelHarmonic, makeXYs(ds.X, rec.Values),
	)
	if err != nil {
		return common.NewAnalysisError(common.StageVisualize, rec.PlotPath,
			common.ErrCodeRender, "failed to build plot", err)
	}

	if err := p.Save(v.width, v.height, rec.PlotPath); err != nil {
		return common.NewAnalysisError(common.StageVisualize, rec.PlotPath,
			common.ErrCodeRender, "failed to save plot", err)
	}
	return nil
}

func makeXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, min(len(x), len(y)))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
