// Package error defines domain-specific errors for the condominium backend.
package error

import "errors"

// Delinquency domain errors.
var (
	// ErrDelinquencyNotFound is returned when a delinquency record does not exist.
	ErrDelinquencyNotFound = errors.New("delinquency record not found")

	// ErrDelinquencyMissingDueDate is returned when the due date is absent.
	ErrDelinquencyMissingDueDate = errors.New("due date is required")

	// ErrDelinquencyMissingUnit is returned when the unit reference is absent.
	ErrDelinquencyMissingUnit = errors.New("unit is required")
)

// DelinquencyErrorCode defines error codes for delinquency errors.
// Format: DLQ-XXYYYY where XX is category and YYYY is specific error.
type DelinquencyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDelinquencyMissingDueDate DelinquencyErrorCode = "DLQ-010001"
	ErrCodeDelinquencyMissingUnit    DelinquencyErrorCode = "DLQ-010002"

	// Not-found errors (02XXXX)
	ErrCodeDelinquencyNotFound DelinquencyErrorCode = "DLQ-020001"

	// Internal errors (99XXXX)
	ErrCodeDelinquencyInternalError DelinquencyErrorCode = "DLQ-990001"
)

// DelinquencyError represents a delinquency error with code and message.
type DelinquencyError struct {
	Code    DelinquencyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DelinquencyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DelinquencyError) Unwrap() error {
	return e.Err
}

// NewDelinquencyError creates a new DelinquencyError with the given code and message.
func NewDelinquencyError(code DelinquencyErrorCode, message string, err error) *DelinquencyError {
	return &DelinquencyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
