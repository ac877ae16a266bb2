package pipeline

import (
	"strconv"
	"time"

	"github.com/RyanBlaney/harmonic-analysis/internal/fit"
	"github.com/RyanBlaney/harmonic-analysis/pkg/spectral"
)

// Stage names recorded in timings
const (
	StageSynthesize = "synthesize"
	StageAnalyze    = "analyze"
	StageVisualize  = "visualize"
	StageScore      = "score"
	StageUtility    = "area_circ"
)

// StageTiming records how long one stage took
type StageTiming struct {
	Stage    string        `json:"stage" yaml:"stage"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}

// Summary is the outcome of one complete pipeline run
type Summary struct {
	InputFrequencies []float64            `json:"input_frequencies" yaml:"input_frequencies"`
	DatasetPath      string               `json:"dataset_path" yaml:"dataset_path"`
	PlotPath         string               `json:"plot_path" yaml:"plot_path"`
	SampleCount      int                  `json:"sample_count" yaml:"sample_count"`
	SampleStep       float64              `json:"sample_step" yaml:"sample_step"`
	Nyquist          float64              `json:"nyquist" yaml:"nyquist"`
	Components       []spectral.Component `json:"components" yaml:"components"`
	Fit              *fit.Metrics         `json:"fit,omitempty" yaml:"fit,omitempty"`
	CircleArea       float64              `json:"circle_area" yaml:"circle_area"`
	Stages           []StageTiming        `json:"stages" yaml:"stages"`
	StartTime        time.Time            `json:"start_time" yaml:"start_time"`
	EndTime          time.Time            `json:"end_time" yaml:"end_time"`
	TotalDuration    time.Duration        `json:"total_duration_ns" yaml:"total_duration"`

	// Precision controls float formatting in Rows
	Precision int `json:"-" yaml:"-"`
}

// Title implements report.Tabular
func (s *Summary) Title() string {
	return "harmonic components"
}

// Headers implements report.Tabular
func (s *Summary) Headers() []string {
	return []string{"Rank", "Frequency", "Amplitude", "Phase"}
}

// Rows implements report.Tabular
func (s *Summary) Rows() [][]string {
	rows := make([][]string, len(s.Components))
	for i, c := range s.Components {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			s.formatFloat(c.Frequency),
			s.formatFloat(c.Amplitude),
			s.formatFloat(c.Phase),
		}
	}
	return rows
}

func (s *Summary) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', s.Precision, 64)
}

// ComponentReport is the tabular form of a standalone analysis
type ComponentReport struct {
	DatasetPath string           `json:"dataset_path" yaml:"dataset_path"`
	Result      *spectral.Result `json:"result" yaml:"result"`

	Precision int `json:"-" yaml:"-"`
}

// Title implements report.Tabular
func (r *ComponentReport) Title() string {
	return "spectral components"
}

// Headers implements report.Tabular
func (r *ComponentReport) Headers() []string {
	return []string{"Rank", "Frequency", "Amplitude", "Phase"}
}

// Rows implements report.Tabular
func (r *ComponentReport) Rows() [][]string {
	s := &Summary{Components: r.Result.Components, Precision: r.Precision}
	return s.Rows()
}
