package common

import "errors"

// Stage identifies the pipeline component that produced an error
type Stage string

const (
	StageDataset    Stage = "dataset"
	StageSynthesize Stage = "synthesize"
	StageAnalyze    Stage = "analyze"
	StageVisualize  Stage = "visualize"
	StageGeometry   Stage = "geometry"
)

// Common error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeMalformed    = "MALFORMED_DATA"
	ErrCodeWrite        = "WRITE_FAILED"
	ErrCodeRender       = "RENDER_FAILED"
	ErrCodeDomain       = "DOMAIN_ERROR"
)

// AnalysisError represents a failure in one of the pipeline stages
type AnalysisError struct {
	Stage   Stage  `json:"stage"`
	Path    string `json:"path,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AnalysisError) Error() string {
	msg := string(e.Stage) + ": " + e.Message
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// NewAnalysisError creates a new analysis error
func NewAnalysisError(stage Stage, path, code, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Stage:   stage,
		Path:    path,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether any AnalysisError in err's chain carries code,
// including errors wrapped as the Cause of another AnalysisError
func HasCode(err error, code string) bool {
	for err != nil {
		var ae *AnalysisError
		if !errors.As(err, &ae) {
			return false
		}
		if ae.Code == code {
			return true
		}
		err = ae.Cause
	}
	return false
}

// IsNotFound reports whether err was caused by a missing dataset file
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeNotFound)
}

// IsMalformed reports whether err was caused by an unparsable dataset
func IsMalformed(err error) bool {
	return HasCode(err, ErrCodeMalformed)
}
