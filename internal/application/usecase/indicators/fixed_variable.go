package indicators

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
)

// Fixed/variable chart labels.
const (
	SplitLabelFixed    = "Fixo"
	SplitLabelVariable = "Variavel"
)

// SplitSlice is one half of the fixed versus variable chart, its value a
// percentage with two decimal places.
type SplitSlice struct {
	Name  string
	Value string
}

// FixedVariableUseCase computes what share of a period's records comes from
// fixed categories and what share from variable ones.
type FixedVariableUseCase struct {
	recordRepo adapter.FinancialRecordRepository
}

// NewFixedVariableUseCase creates a new FixedVariableUseCase instance.
func NewFixedVariableUseCase(recordRepo adapter.FinancialRecordRepository) *FixedVariableUseCase {
	return &FixedVariableUseCase{recordRepo: recordRepo}
}

// RevenueSplit returns the fixed/variable percentage split of the period's
// income records.
func (uc *FixedVariableUseCase) RevenueSplit(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time) ([]SplitSlice, error) {
	return uc.split(ctx, condominiumID, startDate, endDate, entity.IncomeExpenseTypeIncome)
}

// ExpenseSplit returns the fixed/variable percentage split of the period's
// expense records.
func (uc *FixedVariableUseCase) ExpenseSplit(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time) ([]SplitSlice, error) {
	return uc.split(ctx, condominiumID, startDate, endDate, entity.IncomeExpenseTypeExpense)
}

func (uc *FixedVariableUseCase) split(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time, incomeExpenseTypeID int) ([]SplitSlice, error) {
	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID:       condominiumID,
		StartDate:           startDate,
		EndDate:             endDate,
		IncomeExpenseTypeID: &incomeExpenseTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load financial records: %w", err)
	}

	total := decimal.Zero
	fixed := decimal.Zero
	variable := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Record.Amount)
		if r.Category == nil {
			continue
		}
		if r.Category.IsFixed() {
			fixed = fixed.Add(r.Record.Amount)
		} else {
			variable = variable.Add(r.Record.Amount)
		}
	}

	return []SplitSlice{
		{Name: SplitLabelFixed, Value: percentageOf(fixed, total)},
		{Name: SplitLabelVariable, Value: percentageOf(variable, total)},
	}, nil
}

// percentageOf renders part/total as a two-decimal percentage string. A zero
// total yields "0.00" rather than a division error.
func percentageOf(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.00"
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(2)
}
