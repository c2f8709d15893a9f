// Package delinquency contains the delinquency tracking use cases.
package delinquency

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

// CreateDelinquencyInput represents the input for delinquency creation.
type CreateDelinquencyInput struct {
	CondominiumID uuid.UUID
	UnitID        uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	AmountPaid    decimal.Decimal
	DueDate       time.Time
	PaymentDate   *time.Time
}

// CreateDelinquencyOutput represents the output of delinquency creation.
type CreateDelinquencyOutput struct {
	Record *entity.DelinquencyRecord
}

// CreateDelinquencyUseCase handles delinquency record creation.
type CreateDelinquencyUseCase struct {
	delinquencyRepo adapter.DelinquencyRepository
}

// NewCreateDelinquencyUseCase creates a new CreateDelinquencyUseCase instance.
func NewCreateDelinquencyUseCase(delinquencyRepo adapter.DelinquencyRepository) *CreateDelinquencyUseCase {
	return &CreateDelinquencyUseCase{
		delinquencyRepo: delinquencyRepo,
	}
}

// Execute creates the delinquency record.
func (uc *CreateDelinquencyUseCase) Execute(ctx context.Context, input CreateDelinquencyInput) (*CreateDelinquencyOutput, error) {
	if input.DueDate.IsZero() {
		return nil, domainerror.NewDelinquencyError(
			domainerror.ErrCodeDelinquencyMissingDueDate,
			"due date is required",
			domainerror.ErrDelinquencyMissingDueDate,
		)
	}
	if input.UnitID == uuid.Nil {
		return nil, domainerror.NewDelinquencyError(
			domainerror.ErrCodeDelinquencyMissingUnit,
			"unit is required",
			domainerror.ErrDelinquencyMissingUnit,
		)
	}

	record := entity.NewDelinquencyRecord(
		input.CondominiumID,
		input.UnitID,
		input.CategoryID,
		input.Amount,
		input.AmountPaid,
		input.DueDate,
		input.PaymentDate,
	)

	if err := uc.delinquencyRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create delinquency record: %w", err)
	}

	return &CreateDelinquencyOutput{Record: record}, nil
}
