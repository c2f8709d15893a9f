// Package error defines domain-specific errors for the condominium backend.
package error

import "errors"

// Finance domain errors.
var (
	// ErrInvalidPeriod is returned when a date or period string is malformed.
	ErrInvalidPeriod = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when end date is before start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrMissingAmount is returned when a required monetary field is absent.
	ErrMissingAmount = errors.New("amount is required")

	// ErrInvalidAmount is returned when a monetary value cannot be parsed.
	ErrInvalidAmount = errors.New("invalid monetary value")

	// ErrFinancialRecordNotFound is returned when a financial record does not exist.
	ErrFinancialRecordNotFound = errors.New("financial record not found")

	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrOverrideNotFound is returned when no override row exists for a month.
	ErrOverrideNotFound = errors.New("monthly finance override not found")

	// ErrInvalidOverrideField is returned when the override field name is unknown.
	ErrInvalidOverrideField = errors.New("override field must be income or expenses")
)

// FinanceErrorCode defines error codes for finance errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod        FinanceErrorCode = "FIN-010001"
	ErrCodeInvalidDateRange     FinanceErrorCode = "FIN-010002"
	ErrCodeMissingAmount        FinanceErrorCode = "FIN-010003"
	ErrCodeInvalidAmount        FinanceErrorCode = "FIN-010004"
	ErrCodeInvalidOverrideField FinanceErrorCode = "FIN-010005"

	// Not-found errors (02XXXX)
	ErrCodeFinancialRecordNotFound FinanceErrorCode = "FIN-020001"
	ErrCodeCategoryNotFound        FinanceErrorCode = "FIN-020002"
	ErrCodeOverrideNotFound        FinanceErrorCode = "FIN-020003"

	// Internal errors (99XXXX)
	ErrCodeFinanceInternalError FinanceErrorCode = "FIN-990001"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
