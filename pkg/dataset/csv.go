package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/RyanBlaney/harmonic-analysis/pkg/common"
)

// Read loads the dataset stored at path.
// A missing file yields an ErrCodeNotFound error, anything that cannot be
// parsed into X,Y columns yields ErrCodeMalformed.
func Read(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.NewAnalysisError(common.StageDataset, path,
				common.ErrCodeNotFound, "dataset not found", err)
		}
		return nil, common.NewAnalysisError(common.StageDataset, path,
			common.ErrCodeMalformed, "failed to open dataset", err)
	}
	defer file.Close()

	ds, err := Decode(file)
	if err != nil {
		return nil, common.NewAnalysisError(common.StageDataset, path,
			common.ErrCodeMalformed, "empty or malformed data", err)
	}
	return ds, nil
}

// Decode parses a CSV stream with a header row naming the X and Y columns.
// Columns may appear in any order; extra columns are ignored.
func Decode(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no columns to parse")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	xIdx, yIdx := -1, -1
	for i, name := range header {
		switch name {
		case ColumnX:
			xIdx = i
		case ColumnY:
			yIdx = i
		}
	}
	if xIdx < 0 || yIdx < 0 {
		return nil, fmt.Errorf("header %v must contain columns %q and %q", header, ColumnX, ColumnY)
	}

	ds := &Dataset{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		x, err := strconv.ParseFloat(record[xIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s value: %w", line, ColumnX, err)
		}
		y, err := strconv.ParseFloat(record[yIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s value: %w", line, ColumnY, err)
		}

		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, y)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Write stores the dataset at path, replacing any existing file.
// The parent directory must already exist.
func Write(path string, ds *Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return common.NewAnalysisError(common.StageDataset, path,
			common.ErrCodeWrite, "failed to create dataset file", err)
	}

	if err := Encode(file, ds); err != nil {
		file.Close()
		return common.NewAnalysisError(common.StageDataset, path,
			common.ErrCodeWrite, "failed to write dataset", err)
	}

	if err := file.Close(); err != nil {
		return common.NewAnalysisError(common.StageDataset, path,
			common.ErrCodeWrite, "failed to close dataset file", err)
	}
	return nil
}

// Encode writes the header row followed by one X,Y row per sample
func Encode(w io.Writer, ds *Dataset) error {
	if len(ds.X) != len(ds.Y) {
		return fmt.Errorf("column length mismatch: X has %d rows, Y has %d", len(ds.X), len(ds.Y))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{ColumnX, ColumnY}); err != nil {
		return err
	}

	record := make([]string, 2)
	for i := range ds.X {
		record[0] = formatFloat(ds.X[i])
		record[1] = formatFloat(ds.Y[i])
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatFloat keeps a decimal point on integral values so the column always
// reads back as a real number
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
