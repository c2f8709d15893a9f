// Package finance contains the revenue/expense aggregation use cases.
package finance

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

// CreateRecordInput represents the input for ledger entry creation.
type CreateRecordInput struct {
	CondominiumID   uuid.UUID
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

// CreateRecordOutput represents the output of ledger entry creation.
type CreateRecordOutput struct {
	Record *entity.FinancialRecord
}

// CreateRecordUseCase handles ledger entry creation.
type CreateRecordUseCase struct {
	recordRepo   adapter.FinancialRecordRepository
	categoryRepo adapter.CategoryRepository
	aggregator   *Aggregator
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	recordRepo adapter.FinancialRecordRepository,
	categoryRepo adapter.CategoryRepository,
	aggregator *Aggregator,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
		aggregator:   aggregator,
	}
}

// Execute creates the ledger entry and invalidates the affected month.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if input.DueDate.IsZero() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"due date is required",
			domainerror.ErrInvalidPeriod,
		)
	}

	// Every non-deleted record must resolve to exactly one income/expense type.
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	record := entity.NewFinancialRecord(
		input.CondominiumID,
		input.CategoryID,
		input.UnitID,
		input.Amount,
		input.AmountPaid,
		input.DueDate,
		input.PaymentDate,
		input.PaymentStatusID,
		input.PaymentMethodID,
		input.Notes,
		input.IsRecurring,
	)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create financial record: %w", err)
	}

	uc.aggregator.InvalidateMonth(ctx, input.CondominiumID, record.DueDate)

	return &CreateRecordOutput{Record: record}, nil
}
