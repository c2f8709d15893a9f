// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// FinancialRecordFilter defines filter options for period queries over the
// ledger. Period attribution always uses the record due date; see DESIGN.md.
type FinancialRecordFilter struct {
	CondominiumID       uuid.UUID
	StartDate           time.Time
	EndDate             time.Time
	IncomeExpenseTypeID *int  // nil means both types
	OnlyRecurring       bool
}

// FinancialRecordRepository defines the interface for ledger persistence.
type FinancialRecordRepository interface {
	// Create inserts a new financial record.
	Create(ctx context.Context, record *entity.FinancialRecord) error

	// FindByID retrieves a record by its ID, soft-deleted rows excluded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialRecord, error)

	// FindByFilter retrieves non-deleted records whose due date falls inside
	// the filter period, joined with their categories, ordered by amount
	// descending.
	FindByFilter(ctx context.Context, filter FinancialRecordFilter) ([]*entity.FinancialRecordWithCategory, error)

	// FindByDelinquencyID retrieves the non-deleted record paired with a
	// delinquency record, or nil when no pairing exists.
	FindByDelinquencyID(ctx context.Context, delinquencyID uuid.UUID) (*entity.FinancialRecord, error)

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *entity.FinancialRecord) error

	// SoftDelete flags a record as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// HardDelete removes a record row entirely. Only used when the owning
	// delinquency record clears its payment or is itself deleted.
	HardDelete(ctx context.Context, id uuid.UUID) error
}
