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

// OverrideField names the monthly metric being overridden.
type OverrideField string

const (
	OverrideFieldIncome   OverrideField = "income"
	OverrideFieldExpenses OverrideField = "expenses"
)

// OverrideMonthInput represents the input for the override operation. A nil
// Value means "redefine to calculated": the field is written back to NULL so
// totals fall back to summing itemized records. Target is only applied when a
// Value is present.
type OverrideMonthInput struct {
	CondominiumID uuid.UUID
	Month         time.Time
	Field         OverrideField
	Value         *decimal.Decimal
	Target        *decimal.Decimal
}

// OverrideMonthUseCase upserts the monthly override snapshot for one metric.
type OverrideMonthUseCase struct {
	overrideRepo adapter.MonthlyFinanceOverrideRepository
	aggregator   *Aggregator
}

// NewOverrideMonthUseCase creates a new OverrideMonthUseCase instance.
func NewOverrideMonthUseCase(
	overrideRepo adapter.MonthlyFinanceOverrideRepository,
	aggregator *Aggregator,
) *OverrideMonthUseCase {
	return &OverrideMonthUseCase{
		overrideRepo: overrideRepo,
		aggregator:   aggregator,
	}
}

// Execute applies the override and invalidates the month's cached balance.
func (uc *OverrideMonthUseCase) Execute(ctx context.Context, input OverrideMonthInput) error {
	if input.Field != OverrideFieldIncome && input.Field != OverrideFieldExpenses {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidOverrideField,
			"override field must be income or expenses",
			domainerror.ErrInvalidOverrideField,
		)
	}
	if input.Month.IsZero() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"reference month is required",
			domainerror.ErrInvalidPeriod,
		)
	}

	month := MonthStart(input.Month)

	override, err := uc.overrideRepo.FindByMonth(ctx, input.CondominiumID, month)
	if err != nil {
		return fmt.Errorf("failed to look up finance override: %w", err)
	}

	if override == nil {
		// Redefining a month that has no override row is a no-op: totals
		// already fall back to the computed sum.
		if input.Value == nil {
			return nil
		}
		override = entity.NewMonthlyFinanceOverride(input.CondominiumID, month)
		uc.apply(override, input)
		if err := uc.overrideRepo.Create(ctx, override); err != nil {
			return fmt.Errorf("failed to create finance override: %w", err)
		}
		uc.aggregator.InvalidateMonth(ctx, input.CondominiumID, month)
		return nil
	}

	uc.apply(override, input)
	override.UpdatedAt = time.Now().UTC()
	if err := uc.overrideRepo.Update(ctx, override); err != nil {
		return fmt.Errorf("failed to update finance override: %w", err)
	}

	uc.aggregator.InvalidateMonth(ctx, input.CondominiumID, month)
	return nil
}

func (uc *OverrideMonthUseCase) apply(override *entity.MonthlyFinanceOverride, input OverrideMonthInput) {
	switch input.Field {
	case OverrideFieldIncome:
		override.Income = input.Value
		if input.Value != nil {
			override.IncomeTarget = input.Target
		}
	case OverrideFieldExpenses:
		override.Expenses = input.Value
		if input.Value != nil {
			override.ExpensesTarget = input.Target
		}
	}
}
