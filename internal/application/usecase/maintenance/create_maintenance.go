// Package maintenance contains the maintenance and installment scheduling use cases.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// CreateMaintenanceInput represents the input for maintenance creation.
type CreateMaintenanceInput struct {
	CondominiumID        uuid.UUID
	CreatedByID          uuid.UUID
	TypeID               int
	MaintenanceTypeID    int
	Description          string
	Supplier             string
	Amount               decimal.Decimal
	PaymentMethodID      int
	PriorityID           int
	StatusID             int
	PaymentDate          *time.Time
	PlannedStart         *time.Time
	PlannedEnd           *time.Time
	ActualStart          *time.Time
	ActualEnd            *time.Time
	IsInstallment        bool
	NumberOfInstallments *int
}

// CreateMaintenanceOutput represents the output of maintenance creation.
type CreateMaintenanceOutput struct {
	MaintenanceID uuid.UUID
}

// CreateMaintenanceUseCase inserts a maintenance and, when a payment date is
// present, expands its payment schedule. Without a payment date the expense
// stays planned and no payment rows exist.
type CreateMaintenanceUseCase struct {
	maintenanceRepo adapter.MaintenanceRepository
	paymentRepo     adapter.MaintenancePaymentRepository
}

// NewCreateMaintenanceUseCase creates a new CreateMaintenanceUseCase instance.
func NewCreateMaintenanceUseCase(
	maintenanceRepo adapter.MaintenanceRepository,
	paymentRepo adapter.MaintenancePaymentRepository,
) *CreateMaintenanceUseCase {
	return &CreateMaintenanceUseCase{
		maintenanceRepo: maintenanceRepo,
		paymentRepo:     paymentRepo,
	}
}

// Execute creates the maintenance and its schedule.
func (uc *CreateMaintenanceUseCase) Execute(ctx context.Context, input CreateMaintenanceInput) (*CreateMaintenanceOutput, error) {
	if err := validateInstallmentFields(input.IsInstallment, input.NumberOfInstallments); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	row := &entity.Maintenance{
		ID:                   uuid.New(),
		CondominiumID:        input.CondominiumID,
		TypeID:               input.TypeID,
		MaintenanceTypeID:    input.MaintenanceTypeID,
		Description:          input.Description,
		Supplier:             input.Supplier,
		Amount:               input.Amount,
		PaymentMethodID:      input.PaymentMethodID,
		PriorityID:           input.PriorityID,
		StatusID:             input.StatusID,
		PaymentDate:          input.PaymentDate,
		PlannedStart:         input.PlannedStart,
		PlannedEnd:           input.PlannedEnd,
		ActualStart:          input.ActualStart,
		ActualEnd:            input.ActualEnd,
		IsInstallment:        input.IsInstallment,
		NumberOfInstallments: input.NumberOfInstallments,
		CreatedByID:          input.CreatedByID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.maintenanceRepo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create maintenance: %w", err)
	}

	if input.PaymentDate != nil {
		installments := 1
		if input.NumberOfInstallments != nil {
			installments = *input.NumberOfInstallments
		}

		payments := buildSchedule(row.ID, input.Amount, *input.PaymentDate, installments, input.IsInstallment)
		if err := uc.paymentRepo.CreateBatch(ctx, payments); err != nil {
			// The parent row persists even when its schedule fails; there is
			// no cross-table transaction here (see DESIGN.md).
			return nil, fmt.Errorf("failed to create maintenance payments: %w", err)
		}
	}

	return &CreateMaintenanceOutput{MaintenanceID: row.ID}, nil
}

// validateInstallmentFields enforces that the installment count only travels
// with the installment flag and is positive.
func validateInstallmentFields(isInstallment bool, numberOfInstallments *int) error {
	if numberOfInstallments != nil && *numberOfInstallments <= 0 {
		return domainerror.NewMaintenanceError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"number of installments must be greater than zero",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if !isInstallment && numberOfInstallments != nil && *numberOfInstallments > 1 {
		return domainerror.NewMaintenanceError(
			domainerror.ErrCodeInstallmentCountWithoutFlag,
			"number of installments requires the installment flag",
			domainerror.ErrInstallmentCountWithoutFlag,
		)
	}
	return nil
}
