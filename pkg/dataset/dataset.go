// Package dataset reads and writes the two-column X,Y table shared by every
// pipeline stage.
//
// X holds time samples and is assumed to be uniformly spaced: only the first
// two values are used to derive the sample step, the remaining spacing is
// never checked.
package dataset

import (
	"fmt"
	"math"
)

// Column names used in the header row
const (
	ColumnX = "X"
	ColumnY = "Y"
)

// MinRows is the smallest table that still defines a sample step
const MinRows = 2

// Dataset holds the time base and the observed amplitude of a signal
type Dataset struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// New builds a dataset from equal-length columns
func New(x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("column length mismatch: X has %d rows, Y has %d", len(x), len(y))
	}
	return &Dataset{X: x, Y: y}, nil
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.X)
}

// Step returns the sample interval X[1]-X[0]
func (d *Dataset) Step() float64 {
	if d.Len() < MinRows {
		return math.NaN()
	}
	return d.X[1] - d.X[0]
}

// Validate checks the structural invariants the analysis stages rely on
func (d *Dataset) Validate() error {
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("column length mismatch: X has %d rows, Y has %d", len(d.X), len(d.Y))
	}
	if d.Len() < MinRows {
		return fmt.Errorf("need at least %d rows, got %d", MinRows, d.Len())
	}
	if step := d.Step(); !(step > 0) || math.IsInf(step, 0) {
		return fmt.Errorf("sample step must be positive and finite, got %v", step)
	}
	return nil
}
