// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyFinanceOverride holds manually entered income/expense snapshots for a
// single month of a condominium. A non-nil Income or Expenses value takes
// precedence over summing itemized records; nil means "defer to computed".
// At most one row exists per (condominium, reference month).
type MonthlyFinanceOverride struct {
	ID             uuid.UUID
	CondominiumID  uuid.UUID
	ReferenceMonth time.Time // first day of the month
	Income         *decimal.Decimal
	IncomeTarget   *decimal.Decimal
	Expenses       *decimal.Decimal
	ExpensesTarget *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewMonthlyFinanceOverride creates a new override row for the given month.
func NewMonthlyFinanceOverride(condominiumID uuid.UUID, referenceMonth time.Time) *MonthlyFinanceOverride {
	now := time.Now().UTC()

	return &MonthlyFinanceOverride{
		ID:             uuid.New(),
		CondominiumID:  condominiumID,
		ReferenceMonth: referenceMonth,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
