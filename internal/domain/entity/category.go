// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
)

// Income/expense type identifiers carried by the category taxonomy.
// The numeric values follow the reference-data convention of the store.
const (
	IncomeExpenseTypeIncome  = 4
	IncomeExpenseTypeExpense = 6
)

// Record type identifiers distinguishing fixed from variable entries.
const (
	RecordTypeFixed    = 1
	RecordTypeVariable = 2
)

// Category classifies a financial record into an income/expense type and a
// fixed/variable record type. Read-only reference data.
type Category struct {
	ID                  uuid.UUID
	Name                string
	IncomeExpenseTypeID int
	RecordTypeID        int
}

// IsIncome reports whether the category represents income.
func (c *Category) IsIncome() bool {
	return c.IncomeExpenseTypeID == IncomeExpenseTypeIncome
}

// IsExpense reports whether the category represents expense.
func (c *Category) IsExpense() bool {
	return c.IncomeExpenseTypeID == IncomeExpenseTypeExpense
}

// IsFixed reports whether the category represents a fixed record type.
func (c *Category) IsFixed() bool {
	return c.RecordTypeID == RecordTypeFixed
}
