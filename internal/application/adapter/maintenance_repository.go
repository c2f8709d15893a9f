// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

// MaintenanceRepository defines the interface for maintenance persistence.
type MaintenanceRepository interface {
	// Create inserts a new maintenance row.
	Create(ctx context.Context, maintenance *entity.Maintenance) error

	// FindByID retrieves a maintenance row by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Maintenance, error)

	// FindByCondominium retrieves every maintenance of a condominium with its
	// payment schedule preloaded.
	FindByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*entity.MaintenanceWithPayments, error)

	// FindByPlannedStartRange retrieves maintenances whose planned start falls
	// inside [start, end].
	FindByPlannedStartRange(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*entity.Maintenance, error)

	// Update persists changes to an existing maintenance row.
	Update(ctx context.Context, maintenance *entity.Maintenance) error

	// ClearSuccessorReferences nulls the NextMaintenanceID of every row that
	// points at the given maintenance, so deleting it leaves no dangling
	// forward pointer.
	ClearSuccessorReferences(ctx context.Context, id uuid.UUID) error

	// Delete removes a maintenance row and its payment schedule.
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenancePaymentRepository defines the interface for payment schedules.
type MaintenancePaymentRepository interface {
	// CreateBatch inserts a full payment schedule in one call.
	CreateBatch(ctx context.Context, payments []*entity.MaintenancePayment) error

	// FindByMaintenance retrieves the payment schedule of a maintenance,
	// ordered by payment date ascending.
	FindByMaintenance(ctx context.Context, maintenanceID uuid.UUID) ([]*entity.MaintenancePayment, error)

	// FindByPeriod retrieves payments of a condominium dated inside
	// [start, end], each with its owning maintenance.
	FindByPeriod(ctx context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*MaintenancePaymentWithParent, error)

	// DeleteByMaintenance removes the full payment schedule of a maintenance.
	DeleteByMaintenance(ctx context.Context, maintenanceID uuid.UUID) error
}

// MaintenancePaymentWithParent pairs a payment row with its owning maintenance.
type MaintenancePaymentWithParent struct {
	Payment     *entity.MaintenancePayment
	Maintenance *entity.Maintenance
}
