// Package report lays out analysis reports as csv rows or a text table on
// top of the shared output formatters.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"

	"github.com/RyanBlaney/latency-benchmark-common/output"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Tabular is implemented by reports that can be laid out as rows
type Tabular interface {
	Title() string
	Headers() []string
	Rows() [][]string
}

// CSVFormatter writes Tabular data as comma separated rows. Other data is
// flattened into key,value pairs.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(data any, pretty bool) ([]byte, error) {
	_, headers, rows := layout(data)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV record: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// TableFormatter draws Tabular data as a text table, bordered when pretty
type TableFormatter struct{}

func (f *TableFormatter) Format(data any, pretty bool) ([]byte, error) {
	title, headers, rows := layout(data)

	var buf bytes.Buffer
	if title != "" {
		buf.WriteString(titleCaser.String(title))
		buf.WriteString("\n")
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(headers)
	table.SetBorder(pretty)
	table.AppendBulk(rows)
	table.Render()

	return buf.Bytes(), nil
}

// layout returns the rows of a Tabular report, or the flattened fields of
// anything else sorted by key
func layout(data any) (title string, headers []string, rows [][]string) {
	if tab, ok := data.(Tabular); ok {
		return tab.Title(), tab.Headers(), tab.Rows()
	}

	flat := output.ConvertToStringMap(output.ExtractFlattenedData(data, ""))
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows = make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, flat[k]}
	}
	return "", []string{"Field", "Value"}, rows
}
