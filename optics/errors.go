package optics

import "fmt"

// Error codes form a closed set: parameter validation failures, the
// recoverable length-mismatch condition, and fatal computation failures.
const (
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeLengthMismatch   = "LENGTH_MISMATCH"
	ErrCodeComputation      = "COMPUTATION_FAILED"
)

// AnalysisError represents a failure of the extraction pipeline
type AnalysisError struct {
	Code    string `json:"code"`
	Stage   string `json:"stage,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AnalysisError) Error() string {
	msg := e.Message
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
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
func NewAnalysisError(code, stage, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

func newParameterError(param, message string) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeInvalidParameter,
		Message: fmt.Sprintf("parameter %q: %s", param, message),
	}
}

func newComputationError(stage string, cause error) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeComputation,
		Stage:   stage,
		Message: "calculation failed",
		Cause:   cause,
	}
}

// LengthMismatch describes the recoverable condition of a sample whose
// point count differs from the reference. It is reported as a warning, not
// an error: the computation truncates and continues.
type LengthMismatch struct {
	SampleName      string `json:"sample_name"`
	SampleLength    int    `json:"sample_length"`
	ReferenceLength int    `json:"reference_length"`
	TruncatedLength int    `json:"truncated_length"`
}

func (m LengthMismatch) String() string {
	return fmt.Sprintf("sample %q has %d points but the reference has %d; both truncated to %d points",
		m.SampleName, m.SampleLength, m.ReferenceLength, m.TruncatedLength)
}
