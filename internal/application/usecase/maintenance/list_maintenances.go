package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
)

// ListMaintenancesUseCase lists the maintenances of a condominium that have
// at least one payment dated inside the year of a reference date.
type ListMaintenancesUseCase struct {
	maintenanceRepo adapter.MaintenanceRepository
}

// NewListMaintenancesUseCase creates a new ListMaintenancesUseCase instance.
func NewListMaintenancesUseCase(maintenanceRepo adapter.MaintenanceRepository) *ListMaintenancesUseCase {
	return &ListMaintenancesUseCase{maintenanceRepo: maintenanceRepo}
}

// Execute returns the maintenances with their schedules. A maintenance with
// no payment rows, or whose payments all fall outside the year of date, is
// filtered out.
func (uc *ListMaintenancesUseCase) Execute(ctx context.Context, condominiumID uuid.UUID, date time.Time) ([]*entity.MaintenanceWithPayments, error) {
	rows, err := uc.maintenanceRepo.FindByCondominium(ctx, condominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenances: %w", err)
	}

	yearStart, yearEnd := finance.YearBounds(date.Year())

	result := make([]*entity.MaintenanceWithPayments, 0, len(rows))
	for _, row := range rows {
		if hasPaymentInRange(row.Payments, yearStart, yearEnd) {
			result = append(result, row)
		}
	}
	return result, nil
}

func hasPaymentInRange(payments []*entity.MaintenancePayment, start, end time.Time) bool {
	for _, p := range payments {
		if !p.PaymentDate.Before(start) && !p.PaymentDate.After(end) {
			return true
		}
	}
	return false
}

// GetMaintenanceUseCase retrieves a single maintenance with its schedule.
type GetMaintenanceUseCase struct {
	maintenanceRepo adapter.MaintenanceRepository
	paymentRepo     adapter.MaintenancePaymentRepository
}

// NewGetMaintenanceUseCase creates a new GetMaintenanceUseCase instance.
func NewGetMaintenanceUseCase(
	maintenanceRepo adapter.MaintenanceRepository,
	paymentRepo adapter.MaintenancePaymentRepository,
) *GetMaintenanceUseCase {
	return &GetMaintenanceUseCase{
		maintenanceRepo: maintenanceRepo,
		paymentRepo:     paymentRepo,
	}
}

// Execute loads the maintenance and its payment schedule.
func (uc *GetMaintenanceUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.MaintenanceWithPayments, error) {
	row, err := uc.maintenanceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.FindByMaintenance(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance payments: %w", err)
	}

	return &entity.MaintenanceWithPayments{Maintenance: row, Payments: payments}, nil
}
