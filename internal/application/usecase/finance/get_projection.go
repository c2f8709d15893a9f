// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
)

// GetProjectionInput represents the input for the projection query.
type GetProjectionInput struct {
	CondominiumID uuid.UUID
	TargetDate    time.Time
}

// GetProjectionOutput represents the forward-looking balance built from the
// recurring monthly pattern plus the accumulated balance through now.
type GetProjectionOutput struct {
	IncomesTotal       decimal.Decimal
	ExpensesTotal      decimal.Decimal
	Balance            decimal.Decimal
	BalanceAccumulated decimal.Decimal
}

// GetProjectionUseCase forecasts the next-period balance from recurring
// records. Recurring records represent a steady-state monthly pattern, so the
// query always reads the current calendar month, not the target month.
type GetProjectionUseCase struct {
	recordRepo adapter.FinancialRecordRepository
	aggregator *Aggregator
	clock      adapter.Clock
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
func NewGetProjectionUseCase(
	recordRepo adapter.FinancialRecordRepository,
	aggregator *Aggregator,
	clock adapter.Clock,
) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		recordRepo: recordRepo,
		aggregator: aggregator,
		clock:      clock,
	}
}

// Execute computes the projection for the given condominium.
func (uc *GetProjectionUseCase) Execute(ctx context.Context, input GetProjectionInput) (*GetProjectionOutput, error) {
	now := uc.clock.Now()
	monthStart, monthEnd := MonthBounds(now)

	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID: input.CondominiumID,
		StartDate:     monthStart,
		EndDate:       monthEnd,
		OnlyRecurring: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring records: %w", err)
	}

	incomesTotal := decimal.Zero
	expensesTotal := decimal.Zero
	for _, record := range records {
		switch {
		case record.IsIncome():
			incomesTotal = incomesTotal.Add(record.Record.Amount)
		case record.IsExpense():
			expensesTotal = expensesTotal.Add(record.Record.Amount)
		}
	}
	balance := incomesTotal.Sub(expensesTotal)

	yearStart, _ := YearBounds(now.Year())
	accumulated, err := uc.aggregator.AccumulatedBalance(ctx, input.CondominiumID, yearStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute accumulated balance: %w", err)
	}

	return &GetProjectionOutput{
		IncomesTotal:       incomesTotal,
		ExpensesTotal:      expensesTotal,
		Balance:            balance,
		BalanceAccumulated: balance.Add(accumulated),
	}, nil
}
