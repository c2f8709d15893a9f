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

// UpdateMaintenanceInput represents the input for a maintenance update.
// NextMaintenanceDate carries the planned start of the next occurrence when a
// preventive maintenance is being completed.
type UpdateMaintenanceInput struct {
	MaintenanceID        uuid.UUID
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
	NextMaintenanceDate  *time.Time
}

// UpdateMaintenanceOutput reports the updated row and, when the completion of
// a preventive maintenance spawned its next occurrence, the successor's ID.
type UpdateMaintenanceOutput struct {
	MaintenanceID uuid.UUID
	SuccessorID   *uuid.UUID
}

// UpdateMaintenanceUseCase updates a maintenance, replaces its payment
// schedule and applies the recurring-successor rule.
type UpdateMaintenanceUseCase struct {
	maintenanceRepo adapter.MaintenanceRepository
	paymentRepo     adapter.MaintenancePaymentRepository
}

// NewUpdateMaintenanceUseCase creates a new UpdateMaintenanceUseCase instance.
func NewUpdateMaintenanceUseCase(
	maintenanceRepo adapter.MaintenanceRepository,
	paymentRepo adapter.MaintenancePaymentRepository,
) *UpdateMaintenanceUseCase {
	return &UpdateMaintenanceUseCase{
		maintenanceRepo: maintenanceRepo,
		paymentRepo:     paymentRepo,
	}
}

// Execute applies the update. The schedule is replaced wholesale, never
// diffed: existing payment rows are dropped and regenerated from the updated
// amount, date and installment count.
func (uc *UpdateMaintenanceUseCase) Execute(ctx context.Context, input UpdateMaintenanceInput) (*UpdateMaintenanceOutput, error) {
	if err := validateInstallmentFields(input.IsInstallment, input.NumberOfInstallments); err != nil {
		return nil, err
	}

	current, err := uc.maintenanceRepo.FindByID(ctx, input.MaintenanceID)
	if err != nil {
		return nil, err
	}

	current.TypeID = input.TypeID
	current.MaintenanceTypeID = input.MaintenanceTypeID
	current.Description = input.Description
	current.Supplier = input.Supplier
	current.Amount = input.Amount
	current.PaymentMethodID = input.PaymentMethodID
	current.PriorityID = input.PriorityID
	current.StatusID = input.StatusID
	current.PaymentDate = input.PaymentDate
	current.PlannedStart = input.PlannedStart
	current.PlannedEnd = input.PlannedEnd
	current.ActualStart = input.ActualStart
	current.ActualEnd = input.ActualEnd
	current.IsInstallment = input.IsInstallment
	current.NumberOfInstallments = input.NumberOfInstallments
	current.UpdatedAt = time.Now().UTC()

	if err := uc.maintenanceRepo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to update maintenance: %w", err)
	}

	if err := uc.regenerateSchedule(ctx, current); err != nil {
		return nil, err
	}

	successorID, err := uc.spawnSuccessor(ctx, current, input.NextMaintenanceDate)
	if err != nil {
		return nil, err
	}

	return &UpdateMaintenanceOutput{
		MaintenanceID: current.ID,
		SuccessorID:   successorID,
	}, nil
}

// regenerateSchedule drops every payment row of the maintenance and rebuilds
// the schedule from its current fields. No rows are written when the
// maintenance has no payment date.
func (uc *UpdateMaintenanceUseCase) regenerateSchedule(ctx context.Context, row *entity.Maintenance) error {
	if err := uc.paymentRepo.DeleteByMaintenance(ctx, row.ID); err != nil {
		return fmt.Errorf("failed to delete maintenance payments: %w", err)
	}

	if row.PaymentDate == nil {
		return nil
	}

	installments := 1
	if row.NumberOfInstallments != nil {
		installments = *row.NumberOfInstallments
	}

	payments := buildSchedule(row.ID, row.Amount, *row.PaymentDate, installments, row.IsInstallment)
	if err := uc.paymentRepo.CreateBatch(ctx, payments); err != nil {
		return fmt.Errorf("failed to create maintenance payments: %w", err)
	}
	return nil
}

// spawnSuccessor applies the recurring-occurrence rule: a preventive
// maintenance reaching the completed status with no successor yet clones
// itself into a planned occurrence starting at nextDate and links it. Once
// NextMaintenanceID is set the rule never fires again, so retrying a
// completion cannot fan out into multiple successors.
func (uc *UpdateMaintenanceUseCase) spawnSuccessor(ctx context.Context, row *entity.Maintenance, nextDate *time.Time) (*uuid.UUID, error) {
	if nextDate == nil || !row.IsCompleted() || !row.IsPreventiveMaintenance() {
		return nil, nil
	}
	if row.HasSuccessor() {
		return nil, nil
	}
	if row.PlannedStart != nil && !nextDate.After(*row.PlannedStart) {
		return nil, domainerror.NewMaintenanceError(
			domainerror.ErrCodeSuccessorNotLater,
			"successor planned start must be after the current occurrence",
			domainerror.ErrSuccessorNotLater,
		)
	}

	now := time.Now().UTC()
	successor := &entity.Maintenance{
		ID:                   uuid.New(),
		CondominiumID:        row.CondominiumID,
		TypeID:               row.TypeID,
		MaintenanceTypeID:    row.MaintenanceTypeID,
		Description:          row.Description,
		Supplier:             row.Supplier,
		Amount:               row.Amount,
		PaymentMethodID:      row.PaymentMethodID,
		PriorityID:           row.PriorityID,
		StatusID:             entity.MaintenanceStatusPlanned,
		PlannedStart:         nextDate,
		IsInstallment:        row.IsInstallment,
		NumberOfInstallments: row.NumberOfInstallments,
		CreatedByID:          row.CreatedByID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.maintenanceRepo.Create(ctx, successor); err != nil {
		return nil, fmt.Errorf("failed to create successor maintenance: %w", err)
	}

	row.NextMaintenanceID = &successor.ID
	row.UpdatedAt = now
	if err := uc.maintenanceRepo.Update(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to link successor maintenance: %w", err)
	}

	return &successor.ID, nil
}
