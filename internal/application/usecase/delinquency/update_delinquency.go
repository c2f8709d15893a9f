// Package delinquency contains the delinquency tracking use cases.
package delinquency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// UpdateDelinquencyInput represents the input for delinquency updates.
type UpdateDelinquencyInput struct {
	DelinquencyID uuid.UUID
	UnitID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	AmountPaid    decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time
}

// UpdateDelinquencyUseCase mutates a delinquency record and keeps its paired
// financial record in sync:
//
//	no pair  + payment set     -> insert paired record (paid) and link it
//	pair     + payment cleared -> delete the paired record
//	pair     + payment set     -> update the paired record in place
//	no pair  + no payment      -> ledger untouched
type UpdateDelinquencyUseCase struct {
	delinquencyRepo adapter.DelinquencyRepository
	recordRepo      adapter.FinancialRecordRepository
	aggregator      *finance.Aggregator
}

// NewUpdateDelinquencyUseCase creates a new UpdateDelinquencyUseCase instance.
func NewUpdateDelinquencyUseCase(
	delinquencyRepo adapter.DelinquencyRepository,
	recordRepo adapter.FinancialRecordRepository,
	aggregator *finance.Aggregator,
) *UpdateDelinquencyUseCase {
	return &UpdateDelinquencyUseCase{
		delinquencyRepo: delinquencyRepo,
		recordRepo:      recordRepo,
		aggregator:      aggregator,
	}
}

// Execute applies the patch and runs the pairing state machine.
func (uc *UpdateDelinquencyUseCase) Execute(ctx context.Context, input UpdateDelinquencyInput) error {
	record, err := uc.delinquencyRepo.FindByID(ctx, input.DelinquencyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDelinquencyNotFound) {
			return domainerror.NewDelinquencyError(
				domainerror.ErrCodeDelinquencyNotFound,
				"delinquency record not found",
				domainerror.ErrDelinquencyNotFound,
			)
		}
		return fmt.Errorf("failed to load delinquency record: %w", err)
	}

	paired, err := uc.recordRepo.FindByDelinquencyID(ctx, input.DelinquencyID)
	if err != nil {
		return fmt.Errorf("failed to look up paired financial record: %w", err)
	}

	switch {
	case paired == nil && input.PaymentDate != nil:
		if err := uc.insertPaired(ctx, record, input); err != nil {
			return err
		}

	case paired != nil && input.PaymentDate == nil:
		if err := uc.recordRepo.HardDelete(ctx, paired.ID); err != nil {
			return fmt.Errorf("failed to delete paired financial record: %w", err)
		}
		uc.aggregator.InvalidateMonth(ctx, record.CondominiumID, paired.DueDate)

	case paired != nil && input.PaymentDate != nil:
		previousDueDate := paired.DueDate
		paired.Amount = input.Amount
		paired.AmountPaid = input.AmountPaid
		paired.CategoryID = input.CategoryID
		paired.DueDate = input.DueDate
		paired.PaymentDate = input.PaymentDate
		paired.UpdatedAt = time.Now().UTC()
		if err := uc.recordRepo.Update(ctx, paired); err != nil {
			return fmt.Errorf("failed to update paired financial record: %w", err)
		}
		uc.aggregator.InvalidateMonth(ctx, record.CondominiumID, previousDueDate, paired.DueDate)
	}

	record.UnitID = input.UnitID
	record.CategoryID = input.CategoryID
	record.Amount = input.Amount
	record.AmountPaid = input.AmountPaid
	record.DueDate = input.DueDate
	record.PaymentDate = input.PaymentDate
	record.UpdatedAt = time.Now().UTC()

	if err := uc.delinquencyRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update delinquency record: %w", err)
	}

	return nil
}

func (uc *UpdateDelinquencyUseCase) insertPaired(ctx context.Context, record *entity.DelinquencyRecord, input UpdateDelinquencyInput) error {
	unitID := input.UnitID
	paired := entity.NewFinancialRecord(
		record.CondominiumID,
		input.CategoryID,
		&unitID,
		input.Amount,
		input.AmountPaid,
		input.DueDate,
		input.PaymentDate,
		entity.PaymentStatusPaid,
		2, // payment method convention for settled delinquencies
		"",
		false,
	)
	paired.DelinquencyRecordID = &record.ID

	if err := uc.recordRepo.Create(ctx, paired); err != nil {
		return fmt.Errorf("failed to create paired financial record: %w", err)
	}

	uc.aggregator.InvalidateMonth(ctx, record.CondominiumID, paired.DueDate)
	return nil
}
