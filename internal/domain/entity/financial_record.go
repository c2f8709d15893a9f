// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment status identifiers used across financial and delinquency records.
const (
	PaymentStatusPending = 1
	PaymentStatusPaid    = 2
)

// FinancialRecord represents a single ledger line of a condominium.
// Amount is the expected/due value, AmountPaid what was actually collected.
type FinancialRecord struct {
	ID                  uuid.UUID
	CondominiumID       uuid.UUID
	CategoryID          uuid.UUID
	UnitID              *uuid.UUID // nil means building-wide
	Amount              decimal.Decimal
	AmountPaid          decimal.Decimal
	DueDate             time.Time
	PaymentDate         *time.Time // nil means unpaid
	PaymentStatusID     int
	PaymentMethodID     int
	Notes               string
	IsRecurring         bool
	IsDeleted           bool // soft delete
	DelinquencyRecordID *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewFinancialRecord creates a new FinancialRecord entity.
func NewFinancialRecord(
	condominiumID uuid.UUID,
	categoryID uuid.UUID,
	unitID *uuid.UUID,
	amount decimal.Decimal,
	amountPaid decimal.Decimal,
	dueDate time.Time,
	paymentDate *time.Time,
	paymentStatusID int,
	paymentMethodID int,
	notes string,
	isRecurring bool,
) *FinancialRecord {
	now := time.Now().UTC()

	return &FinancialRecord{
		ID:              uuid.New(),
		CondominiumID:   condominiumID,
		CategoryID:      categoryID,
		UnitID:          unitID,
		Amount:          amount,
		AmountPaid:      amountPaid,
		DueDate:         dueDate,
		PaymentDate:     paymentDate,
		PaymentStatusID: paymentStatusID,
		PaymentMethodID: paymentMethodID,
		Notes:           notes,
		IsRecurring:     isRecurring,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// FinancialRecordWithCategory represents a record with its resolved category.
type FinancialRecordWithCategory struct {
	Record   *FinancialRecord
	Category *Category
}

// IsIncome reports whether the record's category classifies it as income.
func (r *FinancialRecordWithCategory) IsIncome() bool {
	return r.Category != nil && r.Category.IsIncome()
}

// IsExpense reports whether the record's category classifies it as expense.
func (r *FinancialRecordWithCategory) IsExpense() bool {
	return r.Category != nil && r.Category.IsExpense()
}
