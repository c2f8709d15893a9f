// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for ledger entry updates.
type UpdateRecordInput struct {
	RecordID        uuid.UUID
	CategoryID      uuid.UUID
	UnitID          *uuid.UUID
	Amount          decimal.Decimal
	AmountPaid      decimal.Decimal
	DueDate         time.Time
	PaymentDate     *time.Time
	PaymentStatusID int
	PaymentMethodID int
	Notes           string
	IsRecurring     bool
}

// UpdateRecordOutput represents the output of ledger entry updates.
type UpdateRecordOutput struct {
	Record *entity.FinancialRecord
}

// UpdateRecordUseCase handles ledger entry updates.
type UpdateRecordUseCase struct {
	recordRepo   adapter.FinancialRecordRepository
	categoryRepo adapter.CategoryRepository
	aggregator   *Aggregator
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(
	recordRepo adapter.FinancialRecordRepository,
	categoryRepo adapter.CategoryRepository,
	aggregator *Aggregator,
) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
		aggregator:   aggregator,
	}
}

// Execute updates the ledger entry. Both the previous and the new due-date
// months lose their cached balance, since the record may have moved.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFinancialRecordNotFound) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeFinancialRecordNotFound,
				"financial record not found",
				domainerror.ErrFinancialRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load financial record: %w", err)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	previousDueDate := record.DueDate

	record.CategoryID = input.CategoryID
	record.UnitID = input.UnitID
	record.Amount = input.Amount
	record.AmountPaid = input.AmountPaid
	record.DueDate = input.DueDate
	record.PaymentDate = input.PaymentDate
	record.PaymentStatusID = input.PaymentStatusID
	record.PaymentMethodID = input.PaymentMethodID
	record.Notes = input.Notes
	record.IsRecurring = input.IsRecurring
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update financial record: %w", err)
	}

	uc.aggregator.InvalidateMonth(ctx, record.CondominiumID, previousDueDate, record.DueDate)

	return &UpdateRecordOutput{Record: record}, nil
}

// DeleteRecordUseCase soft-deletes a ledger entry.
type DeleteRecordUseCase struct {
	recordRepo adapter.FinancialRecordRepository
	aggregator *Aggregator
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(
	recordRepo adapter.FinancialRecordRepository,
	aggregator *Aggregator,
) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
		aggregator: aggregator,
	}
}

// Execute soft-deletes the record and invalidates its month.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, recordID uuid.UUID) error {
	record, err := uc.recordRepo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFinancialRecordNotFound) {
			return domainerror.NewFinanceError(
				domainerror.ErrCodeFinancialRecordNotFound,
				"financial record not found",
				domainerror.ErrFinancialRecordNotFound,
			)
		}
		return fmt.Errorf("failed to load financial record: %w", err)
	}

	if err := uc.recordRepo.SoftDelete(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete financial record: %w", err)
	}

	uc.aggregator.InvalidateMonth(ctx, record.CondominiumID, record.DueDate)
	return nil
}
