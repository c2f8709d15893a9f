// Package indicators contains the chart and resume use cases backing the
// dashboard endpoints.
package indicators

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
)

// CategorySlice is one slice of a by-category chart.
type CategorySlice struct {
	CategoryID uuid.UUID
	Name       string
	Value      decimal.Decimal
}

// ChartsByCategoryUseCase aggregates paid amounts per category for the
// revenue and expense pie charts.
type ChartsByCategoryUseCase struct {
	recordRepo adapter.FinancialRecordRepository
}

// NewChartsByCategoryUseCase creates a new ChartsByCategoryUseCase instance.
func NewChartsByCategoryUseCase(recordRepo adapter.FinancialRecordRepository) *ChartsByCategoryUseCase {
	return &ChartsByCategoryUseCase{recordRepo: recordRepo}
}

// RevenueByCategory sums paid amounts per income category inside the period,
// largest slice first.
func (uc *ChartsByCategoryUseCase) RevenueByCategory(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time) ([]CategorySlice, error) {
	return uc.byCategory(ctx, condominiumID, startDate, endDate, entity.IncomeExpenseTypeIncome)
}

// ExpenseByCategory sums paid amounts per expense category inside the period,
// largest slice first.
func (uc *ChartsByCategoryUseCase) ExpenseByCategory(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time) ([]CategorySlice, error) {
	return uc.byCategory(ctx, condominiumID, startDate, endDate, entity.IncomeExpenseTypeExpense)
}

func (uc *ChartsByCategoryUseCase) byCategory(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time, incomeExpenseTypeID int) ([]CategorySlice, error) {
	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID:       condominiumID,
		StartDate:           startDate,
		EndDate:             endDate,
		IncomeExpenseTypeID: &incomeExpenseTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load financial records: %w", err)
	}

	totals := make(map[uuid.UUID]*CategorySlice)
	order := make([]uuid.UUID, 0)
	for _, r := range records {
		if r.Category == nil {
			continue
		}
		slice, ok := totals[r.Category.ID]
		if !ok {
			slice = &CategorySlice{CategoryID: r.Category.ID, Name: r.Category.Name}
			totals[r.Category.ID] = slice
			order = append(order, r.Category.ID)
		}
		slice.Value = slice.Value.Add(r.Record.AmountPaid)
	}

	result := make([]CategorySlice, 0, len(order))
	for _, id := range order {
		result = append(result, *totals[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Value.GreaterThan(result[j].Value)
	})
	return result, nil
}
