// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// DelinquencyRepository defines the interface for delinquency persistence.
type DelinquencyRepository interface {
	// Create inserts a new delinquency record.
	Create(ctx context.Context, record *entity.DelinquencyRecord) error

	// FindByID retrieves a delinquency record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DelinquencyRecord, error)

	// FindByPeriod retrieves records whose due date falls inside [start, end],
	// joined with their categories, ordered by due date descending.
	FindByPeriod(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*entity.DelinquencyRecordWithCategory, error)

	// Update persists changes to an existing delinquency record.
	Update(ctx context.Context, record *entity.DelinquencyRecord) error

	// Delete removes a delinquency record. The paired financial record must
	// already be gone; callers own that ordering.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the interface for unit reference data.
type UnitRepository interface {
	// FindByCondominium retrieves every unit of a condominium.
	FindByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*entity.Unit, error)

	// CountByCondominium counts the units of a condominium.
	CountByCondominium(ctx context.Context, condominiumID uuid.UUID) (int64, error)
}
