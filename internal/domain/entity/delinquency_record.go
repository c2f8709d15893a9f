// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DelinquencyRecord tracks an obligation of a unit for aging purposes.
// A nil PaymentDate means the amount is still owed. Once a payment date is
// registered the record owns at most one paired FinancialRecord representing
// the same obligation in the ledger.
type DelinquencyRecord struct {
	ID            uuid.UUID
	CondominiumID uuid.UUID
	UnitID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	AmountPaid    decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDelinquencyRecord creates a new DelinquencyRecord entity.
func NewDelinquencyRecord(
	condominiumID uuid.UUID,
	unitID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	amountPaid decimal.Decimal,
	dueDate time.Time,
	paymentDate *time.Time,
) *DelinquencyRecord {
	now := time.Now().UTC()

	return &DelinquencyRecord{
		ID:            uuid.New(),
		CondominiumID: condominiumID,
		UnitID:        unitID,
		CategoryID:    categoryID,
		Amount:        amount,
		AmountPaid:    amountPaid,
		DueDate:       dueDate,
		PaymentDate:   paymentDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsPaid reports whether the obligation has a registered payment date.
func (d *DelinquencyRecord) IsPaid() bool {
	return d.PaymentDate != nil
}

// DaysLate returns the number of days between the due date and the payment
// date, or between the due date and now when still unpaid. Negative values
// mean the obligation was settled before it was due and are kept as-is.
func (d *DelinquencyRecord) DaysLate(now time.Time) int {
	end := now
	if d.PaymentDate != nil {
		end = *d.PaymentDate
	}
	return int(end.Sub(d.DueDate).Hours() / 24)
}

// DelinquencyRecordWithCategory pairs a delinquency record with its category.
type DelinquencyRecordWithCategory struct {
	Record   *DelinquencyRecord
	Category *Category
}
