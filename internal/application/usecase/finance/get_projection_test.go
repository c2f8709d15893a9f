// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

func recurringRecord(condominiumID uuid.UUID, category *entity.Category, amount string, dueDate time.Time) *entity.FinancialRecordWithCategory {
	row := paidRecord(condominiumID, category, amount, dueDate)
	row.Record.IsRecurring = true
	return row
}

func TestGetProjectionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()
	fees := incomeCategory("Condominium fee")
	cleaning := expenseCategory("Cleaning")
	clock := fixedClock{now: date(2026, time.June, 15)}

	t.Run("projects from the current month's recurring pattern", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			recurringRecord(condominiumID, fees, "800.00", date(2026, time.June, 5)),
			recurringRecord(condominiumID, cleaning, "300.00", date(2026, time.June, 10)),
			// Non-recurring records never enter the projection.
			paidRecord(condominiumID, fees, "5000.00", date(2026, time.June, 20)),
			// Recurring but outside the current month.
			recurringRecord(condominiumID, fees, "999.00", date(2026, time.May, 5)),
		}}
		aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)
		useCase := NewGetProjectionUseCase(recordRepo, aggregator, clock)

		out, err := useCase.Execute(ctx, GetProjectionInput{
			CondominiumID: condominiumID,
			TargetDate:    date(2026, time.July, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.IncomesTotal.Equal(dec("800.00")) {
			t.Errorf("expected incomes 800.00, got %s", out.IncomesTotal)
		}
		if !out.ExpensesTotal.Equal(dec("300.00")) {
			t.Errorf("expected expenses 300.00, got %s", out.ExpensesTotal)
		}
		if !out.Balance.Equal(dec("500.00")) {
			t.Errorf("expected balance 500.00, got %s", out.Balance)
		}
	})

	t.Run("accumulated balance is added to the projection", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			recurringRecord(condominiumID, fees, "100.00", date(2026, time.June, 5)),
			paidRecord(condominiumID, fees, "50.00", date(2026, time.January, 5)),
		}}
		aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)
		useCase := NewGetProjectionUseCase(recordRepo, aggregator, clock)

		out, err := useCase.Execute(ctx, GetProjectionInput{
			CondominiumID: condominiumID,
			TargetDate:    date(2026, time.July, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Accumulated Jan..Jun: 50 (Jan) + 100 (the June row is also a paid
		// record) = 150; the projection adds its own 100 balance on top.
		if !out.BalanceAccumulated.Equal(dec("250.00")) {
			t.Errorf("expected accumulated projection 250.00, got %s", out.BalanceAccumulated)
		}
	})
}
