package maintenance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/adapter"
)

// DeleteMaintenanceUseCase removes a maintenance, its payment schedule and
// any inbound successor reference.
type DeleteMaintenanceUseCase struct {
	maintenanceRepo adapter.MaintenanceRepository
	paymentRepo     adapter.MaintenancePaymentRepository
}

// NewDeleteMaintenanceUseCase creates a new DeleteMaintenanceUseCase instance.
func NewDeleteMaintenanceUseCase(
	maintenanceRepo adapter.MaintenanceRepository,
	paymentRepo adapter.MaintenancePaymentRepository,
) *DeleteMaintenanceUseCase {
	return &DeleteMaintenanceUseCase{
		maintenanceRepo: maintenanceRepo,
		paymentRepo:     paymentRepo,
	}
}

// Execute deletes the maintenance. Rows pointing at the target through
// NextMaintenanceID are unlinked first so no forward pointer dangles after
// the delete.
func (uc *DeleteMaintenanceUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.maintenanceRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.maintenanceRepo.ClearSuccessorReferences(ctx, id); err != nil {
		return fmt.Errorf("failed to clear successor references: %w", err)
	}

	if err := uc.paymentRepo.DeleteByMaintenance(ctx, id); err != nil {
		return fmt.Errorf("failed to delete maintenance payments: %w", err)
	}

	if err := uc.maintenanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete maintenance: %w", err)
	}
	return nil
}
