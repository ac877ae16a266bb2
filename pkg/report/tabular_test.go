package report

import (
	"testing"

	"github.com/RyanBlaney/latency-benchmark-common/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReport struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

func (r testReport) Title() string     { return "spectral components" }
func (r testReport) Headers() []string { return []string{"Name", "Value"} }
func (r testReport) Rows() [][]string  { return [][]string{{r.Name, "1.5"}} }

func TestFormatters(t *testing.T) {
	report := testReport{Name: "peak", Value: 1.5}

	tests := []struct {
		name      string
		formatter output.Formatter
		contains  []string
	}{
		{"csv", &CSVFormatter{}, []string{"Name,Value\n", "peak,1.5\n"}},
		{"table", &TableFormatter{}, []string{"Spectral Components", "NAME", "peak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.formatter.Format(report, true)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(out), want)
			}
		})
	}
}

func TestFormattersFlattenOtherData(t *testing.T) {
	data := struct {
		Radius float64
		Area   float64
	}{Radius: 2, Area: 12.566370614359172}

	out, err := (&CSVFormatter{}).Format(data, false)
	require.NoError(t, err)
	assert.Equal(t, "Field,Value\narea,12.566\nradius,2.000\n", string(out))

	out, err = (&TableFormatter{}).Format(map[string]any{"frequency": 3}, false)
	require.NoError(t, err)
	assert.Contains(t, string(out), "FIELD")
	assert.Contains(t, string(out), "frequency")
}
