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

// Category type labels used by the projection breakdown view.
const (
	CategoryTypeLabelIncome  = "Receita"
	CategoryTypeLabelExpense = "Despesa"
)

// GetProjectionRegistersInput represents the input for the breakdown query.
type GetProjectionRegistersInput struct {
	CondominiumID uuid.UUID
	TargetDate    time.Time
}

// CategoryTotal is one per-category line of the projection breakdown.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	Type         string
}

// GetProjectionRegistersUseCase groups the current month's recurring records
// by category for the projection breakdown view.
type GetProjectionRegistersUseCase struct {
	recordRepo adapter.FinancialRecordRepository
	clock      adapter.Clock
}

// NewGetProjectionRegistersUseCase creates a new GetProjectionRegistersUseCase instance.
func NewGetProjectionRegistersUseCase(
	recordRepo adapter.FinancialRecordRepository,
	clock adapter.Clock,
) *GetProjectionRegistersUseCase {
	return &GetProjectionRegistersUseCase{
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Execute computes the per-category recurring totals.
func (uc *GetProjectionRegistersUseCase) Execute(ctx context.Context, input GetProjectionRegistersInput) ([]CategoryTotal, error) {
	monthStart, monthEnd := MonthBounds(uc.clock.Now())

	records, err := uc.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID: input.CondominiumID,
		StartDate:     monthStart,
		EndDate:       monthEnd,
		OnlyRecurring: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring records: %w", err)
	}

	totals := make([]CategoryTotal, 0)
	index := make(map[uuid.UUID]int)

	for _, record := range records {
		if record.Category == nil {
			continue
		}

		if i, ok := index[record.Category.ID]; ok {
			totals[i].Total = totals[i].Total.Add(record.Record.Amount)
			continue
		}

		label := CategoryTypeLabelExpense
		if record.IsIncome() {
			label = CategoryTypeLabelIncome
		}
		index[record.Category.ID] = len(totals)
		totals = append(totals, CategoryTotal{
			CategoryID:   record.Category.ID,
			CategoryName: record.Category.Name,
			Total:        record.Record.Amount,
			Type:         label,
		})
	}

	return totals, nil
}
