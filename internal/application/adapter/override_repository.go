// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// MonthlyFinanceOverrideRepository defines the interface for the monthly
// override snapshots. At most one row exists per (condominium, month).
type MonthlyFinanceOverrideRepository interface {
	// FindByMonth retrieves the override row whose reference month equals the
	// given first-of-month date, or nil when none exists.
	FindByMonth(ctx context.Context, condominiumID uuid.UUID, month time.Time) (*entity.MonthlyFinanceOverride, error)

	// FindFirstInRange retrieves the earliest override row whose reference
	// month falls inside [start, end], or nil when none exists.
	FindFirstInRange(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) (*entity.MonthlyFinanceOverride, error)

	// Create inserts a new override row.
	Create(ctx context.Context, override *entity.MonthlyFinanceOverride) error

	// Update persists changes to an existing override row. Nil values are
	// written as NULL, so "redefine to calculated" is an update with a nil
	// field, not a delete.
	Update(ctx context.Context, override *entity.MonthlyFinanceOverride) error
}
