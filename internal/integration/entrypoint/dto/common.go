// Package dto defines request and response shapes for the API endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/condo-control/backend/internal/domain/error"
)

const dateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ParseDate parses a YYYY-MM-DD path or query parameter.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidPeriod,
		)
	}
	return date.UTC(), nil
}

// ParseOptionalDate parses a nullable YYYY-MM-DD field.
func ParseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(dateLayout)
}

// FormatOptionalDate renders a nullable date as YYYY-MM-DD.
func FormatOptionalDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(dateLayout)
	return &formatted
}

// ParseAmount parses a decimal-string monetary value.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidAmount,
			"invalid monetary value",
			domainerror.ErrInvalidAmount,
		)
	}
	return amount, nil
}

// ParseOptionalAmount parses a nullable decimal-string monetary value.
func ParseOptionalAmount(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	amount, err := ParseAmount(*value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// FormatOptionalAmount renders a nullable decimal as a string.
func FormatOptionalAmount(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	formatted := amount.String()
	return &formatted
}
