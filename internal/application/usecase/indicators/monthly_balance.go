package indicators

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
)

var shortMonths = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthBalancePoint is one month of the yearly balance series. Total carries
// the balance accumulated since January, not the month's own balance.
type MonthBalancePoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Total   decimal.Decimal
}

// MonthlyBalanceUseCase builds the twelve-point income/expense series of a
// year with a running accumulated total.
type MonthlyBalanceUseCase struct {
	recordRepo   adapter.FinancialRecordRepository
	overrideRepo adapter.MonthlyFinanceOverrideRepository
}

// NewMonthlyBalanceUseCase creates a new MonthlyBalanceUseCase instance.
func NewMonthlyBalanceUseCase(
	recordRepo adapter.FinancialRecordRepository,
	overrideRepo adapter.MonthlyFinanceOverrideRepository,
) *MonthlyBalanceUseCase {
	return &MonthlyBalanceUseCase{
		recordRepo:   recordRepo,
		overrideRepo: overrideRepo,
	}
}

// Execute returns exactly twelve points, one per month of the year, months
// without records included as zeros. A manual expenses override replaces the
// month's computed expense total.
func (uc *MonthlyBalanceUseCase) Execute(ctx context.Context, condominiumID uuid.UUID, year int) ([]MonthBalancePoint, error) {
	yearStart, yearEnd := finance.YearBounds(year)

	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID: condominiumID,
		StartDate:     yearStart,
		EndDate:       yearEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load financial records: %w", err)
	}

	incomeByMonth := make([]decimal.Decimal, 12)
	expenseByMonth := make([]decimal.Decimal, 12)
	for _, r := range records {
		idx := int(r.Record.DueDate.Month()) - 1
		switch {
		case r.IsIncome():
			incomeByMonth[idx] = incomeByMonth[idx].Add(r.Record.Amount)
		case r.IsExpense():
			expenseByMonth[idx] = expenseByMonth[idx].Add(r.Record.Amount)
		}
	}

	points := make([]MonthBalancePoint, 12)
	accumulated := decimal.Zero
	for i := 0; i < 12; i++ {
		month := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)

		expense := expenseByMonth[i]
		override, err := uc.overrideRepo.FindByMonth(ctx, condominiumID, month)
		if err != nil {
			return nil, fmt.Errorf("failed to load month override: %w", err)
		}
		if override != nil && override.Expenses != nil {
			expense = *override.Expenses
		}

		accumulated = accumulated.Add(incomeByMonth[i].Sub(expense))
		points[i] = MonthBalancePoint{
			Month:   fmt.Sprintf("%s/%02d", shortMonths[i], year%100),
			Income:  incomeByMonth[i],
			Expense: expense,
			Total:   accumulated,
		}
	}
	return points, nil
}
