// Package error defines domain-specific errors for the condominium backend.
package error

import "errors"

// Maintenance domain errors.
var (
	// ErrMaintenanceNotFound is returned when a maintenance row does not exist.
	ErrMaintenanceNotFound = errors.New("maintenance not found")

	// ErrMaintenanceMissingAmount is returned when the amount is absent.
	ErrMaintenanceMissingAmount = errors.New("maintenance amount is required")

	// ErrInvalidInstallmentCount is returned when the installment count is not positive.
	ErrInvalidInstallmentCount = errors.New("number of installments must be greater than zero")

	// ErrInstallmentCountWithoutFlag is returned when a non-installment
	// maintenance carries an installment count.
	ErrInstallmentCountWithoutFlag = errors.New("number of installments requires the installment flag")

	// ErrSuccessorAlreadyLinked is returned when a maintenance already spawned
	// its next occurrence.
	ErrSuccessorAlreadyLinked = errors.New("maintenance already has a successor occurrence")

	// ErrSuccessorNotLater is returned when the successor's planned start is
	// not strictly after the current occurrence.
	ErrSuccessorNotLater = errors.New("successor planned start must be after the current occurrence")
)

// MaintenanceErrorCode defines error codes for maintenance errors.
// Format: MNT-XXYYYY where XX is category and YYYY is specific error.
type MaintenanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMaintenanceMissingAmount     MaintenanceErrorCode = "MNT-010001"
	ErrCodeInvalidInstallmentCount      MaintenanceErrorCode = "MNT-010002"
	ErrCodeInstallmentCountWithoutFlag  MaintenanceErrorCode = "MNT-010003"
	ErrCodeSuccessorAlreadyLinked       MaintenanceErrorCode = "MNT-010004"
	ErrCodeSuccessorNotLater            MaintenanceErrorCode = "MNT-010005"

	// Not-found errors (02XXXX)
	ErrCodeMaintenanceNotFound MaintenanceErrorCode = "MNT-020001"

	// Internal errors (99XXXX)
	ErrCodeMaintenanceInternalError MaintenanceErrorCode = "MNT-990001"
)

// MaintenanceError represents a maintenance error with code and message.
type MaintenanceError struct {
	Code    MaintenanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MaintenanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MaintenanceError) Unwrap() error {
	return e.Err
}

// NewMaintenanceError creates a new MaintenanceError with the given code and message.
func NewMaintenanceError(code MaintenanceErrorCode, message string, err error) *MaintenanceError {
	return &MaintenanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
