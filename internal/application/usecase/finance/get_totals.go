// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// GetTotalsInput represents the input for the totals query.
type GetTotalsInput struct {
	CondominiumID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
}

// GetTotalsOutput represents the resolved totals for a period. Targets are
// nil on multi-month queries. AccumulatedBalance covers every month from
// January 1 of the start year through December 31 of the end year.
type GetTotalsOutput struct {
	TotalIncome        decimal.Decimal
	IncomeTarget       *decimal.Decimal
	TotalExpenses      decimal.Decimal
	ExpensesTarget     *decimal.Decimal
	Balance            decimal.Decimal
	AccumulatedBalance decimal.Decimal
	IsSameMonth        bool
}

// GetTotalsUseCase resolves a condominium's income/expense totals for a
// closed date range, override-first with computed fallback.
type GetTotalsUseCase struct {
	aggregator *Aggregator
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(aggregator *Aggregator) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		aggregator: aggregator,
	}
}

// Execute computes the totals for the given period.
func (uc *GetTotalsUseCase) Execute(ctx context.Context, input GetTotalsInput) (*GetTotalsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	income, err := uc.aggregator.RevenueTotal(ctx, input.CondominiumID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revenue total: %w", err)
	}

	expenses, err := uc.aggregator.ExpensesTotal(ctx, input.CondominiumID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve expenses total: %w", err)
	}

	yearStart, _ := YearBounds(input.StartDate.Year())
	_, yearEnd := YearBounds(input.EndDate.Year())
	accumulated, err := uc.aggregator.AccumulatedBalance(ctx, input.CondominiumID, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute accumulated balance: %w", err)
	}

	return &GetTotalsOutput{
		TotalIncome:        income.Total,
		IncomeTarget:       income.Target,
		TotalExpenses:      expenses.Total,
		ExpensesTarget:     expenses.Target,
		Balance:            income.Total.Sub(expenses.Total),
		AccumulatedBalance: accumulated,
		IsSameMonth:        SameMonth(input.StartDate, input.EndDate),
	}, nil
}

// validateInput validates the input parameters.
func (uc *GetTotalsUseCase) validateInput(input GetTotalsInput) error {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"start date and end date are required",
			domainerror.ErrInvalidPeriod,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}
