// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/domain/entity"
)

func TestAggregator_RevenueTotal(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()
	fees := incomeCategory("Condominium fee")

	t.Run("computed fallback sums paid amounts", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			paidRecord(condominiumID, fees, "150.00", date(2026, time.March, 5)),
			paidRecord(condominiumID, fees, "250.00", date(2026, time.March, 10)),
		}}
		aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)

		total, err := aggregator.RevenueTotal(ctx, condominiumID, date(2026, time.March, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Total.Equal(dec("400.00")) {
			t.Errorf("expected total 400.00, got %s", total.Total)
		}
		if total.Target != nil {
			t.Errorf("expected nil target, got %s", total.Target)
		}
	})

	t.Run("zero records sum to zero", func(t *testing.T) {
		aggregator := NewAggregator(&fakeRecordRepo{}, &fakeOverrideRepo{}, nil)

		total, err := aggregator.RevenueTotal(ctx, condominiumID, date(2026, time.March, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Total.IsZero() {
			t.Errorf("expected zero total, got %s", total.Total)
		}
	})

	t.Run("override wins over computed sum", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			paidRecord(condominiumID, fees, "150.00", date(2026, time.March, 5)),
		}}
		overrideRepo := &fakeOverrideRepo{overrides: []*entity.MonthlyFinanceOverride{{
			ID:             uuid.New(),
			CondominiumID:  condominiumID,
			ReferenceMonth: date(2026, time.March, 1),
			Income:         decPtr("999.99"),
			IncomeTarget:   decPtr("1200.00"),
		}}}
		aggregator := NewAggregator(recordRepo, overrideRepo, nil)

		total, err := aggregator.RevenueTotal(ctx, condominiumID, date(2026, time.March, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Total.Equal(dec("999.99")) {
			t.Errorf("expected overridden total 999.99, got %s", total.Total)
		}
		if total.Target == nil || !total.Target.Equal(dec("1200.00")) {
			t.Errorf("expected target 1200.00, got %v", total.Target)
		}
	})

	t.Run("override row with nil income defers to computed", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			paidRecord(condominiumID, fees, "150.00", date(2026, time.March, 5)),
		}}
		overrideRepo := &fakeOverrideRepo{overrides: []*entity.MonthlyFinanceOverride{{
			ID:             uuid.New(),
			CondominiumID:  condominiumID,
			ReferenceMonth: date(2026, time.March, 1),
			Expenses:       decPtr("50.00"),
		}}}
		aggregator := NewAggregator(recordRepo, overrideRepo, nil)

		total, err := aggregator.RevenueTotal(ctx, condominiumID, date(2026, time.March, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Total.Equal(dec("150.00")) {
			t.Errorf("expected computed total 150.00, got %s", total.Total)
		}
	})

	t.Run("target is dropped on multi-month queries", func(t *testing.T) {
		overrideRepo := &fakeOverrideRepo{overrides: []*entity.MonthlyFinanceOverride{{
			ID:             uuid.New(),
			CondominiumID:  condominiumID,
			ReferenceMonth: date(2026, time.March, 1),
			Income:         decPtr("999.99"),
			IncomeTarget:   decPtr("1200.00"),
		}}}
		aggregator := NewAggregator(&fakeRecordRepo{}, overrideRepo, nil)

		total, err := aggregator.RevenueTotal(ctx, condominiumID, date(2026, time.March, 1), date(2026, time.April, 30))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.Target != nil {
			t.Errorf("expected nil target on multi-month query, got %s", total.Target)
		}
	})
}

func TestAggregator_ExpensesTotal(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()
	cleaning := expenseCategory("Cleaning")

	recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
		paidRecord(condominiumID, cleaning, "80.00", date(2026, time.March, 3)),
		paidRecord(condominiumID, cleaning, "20.00", date(2026, time.March, 17)),
	}}
	aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)

	total, err := aggregator.ExpensesTotal(ctx, condominiumID, date(2026, time.March, 1), date(2026, time.March, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Total.Equal(dec("100.00")) {
		t.Errorf("expected total 100.00, got %s", total.Total)
	}
}

func TestAggregator_AccumulatedBalance(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()
	fees := incomeCategory("Condominium fee")
	cleaning := expenseCategory("Cleaning")

	t.Run("sums every month in the window", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			paidRecord(condominiumID, fees, "100.00", date(2026, time.January, 10)),
			paidRecord(condominiumID, cleaning, "40.00", date(2026, time.January, 15)),
			paidRecord(condominiumID, fees, "100.00", date(2026, time.February, 10)),
			paidRecord(condominiumID, cleaning, "60.00", date(2026, time.March, 15)),
		}}
		aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)

		// Jan: +60, Feb: +100, Mar: -60
		accumulated, err := aggregator.AccumulatedBalance(ctx, condominiumID, date(2026, time.January, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !accumulated.Equal(dec("100.00")) {
			t.Errorf("expected accumulated 100.00, got %s", accumulated)
		}
	})

	t.Run("equals the sum of the per-month balances", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			paidRecord(condominiumID, fees, "123.45", date(2026, time.January, 10)),
			paidRecord(condominiumID, cleaning, "67.89", date(2026, time.February, 15)),
			paidRecord(condominiumID, fees, "10.00", date(2026, time.March, 1)),
		}}
		aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, nil)

		sum := dec("0")
		for _, month := range MonthsBetween(date(2026, time.January, 1), date(2026, time.March, 31)) {
			balance, err := aggregator.MonthBalance(ctx, condominiumID, month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sum = sum.Add(balance)
		}

		accumulated, err := aggregator.AccumulatedBalance(ctx, condominiumID, date(2026, time.January, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !accumulated.Equal(sum) {
			t.Errorf("expected accumulated %s to equal month sum %s", accumulated, sum)
		}
	})

	t.Run("serves cached months and writes back misses", func(t *testing.T) {
		recordRepo := &fakeRecordRepo{records: []*entity.FinancialRecordWithCategory{
			paidRecord(condominiumID, fees, "100.00", date(2026, time.January, 10)),
		}}
		cache := newFakeBalanceCache()
		aggregator := NewAggregator(recordRepo, &fakeOverrideRepo{}, cache)

		first, err := aggregator.AccumulatedBalance(ctx, condominiumID, date(2026, time.January, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 3 {
			t.Errorf("expected 3 cache writes, got %d", cache.sets)
		}

		second, err := aggregator.AccumulatedBalance(ctx, condominiumID, date(2026, time.January, 1), date(2026, time.March, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.hits != 3 {
			t.Errorf("expected 3 cache hits on second walk, got %d", cache.hits)
		}
		if !first.Equal(second) {
			t.Errorf("cached walk changed the result: %s vs %s", first, second)
		}
	})

	t.Run("empty window when through precedes from", func(t *testing.T) {
		aggregator := NewAggregator(&fakeRecordRepo{}, &fakeOverrideRepo{}, nil)

		accumulated, err := aggregator.AccumulatedBalance(ctx, condominiumID, date(2026, time.June, 1), date(2026, time.January, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !accumulated.IsZero() {
			t.Errorf("expected zero over empty window, got %s", accumulated)
		}
	})
}

func TestAggregator_InvalidateMonth(t *testing.T) {
	ctx := context.Background()
	condominiumID := uuid.New()
	cache := newFakeBalanceCache()
	aggregator := NewAggregator(&fakeRecordRepo{}, &fakeOverrideRepo{}, cache)

	_ = cache.Set(ctx, condominiumID, date(2026, time.March, 1), dec("10"))
	aggregator.InvalidateMonth(ctx, condominiumID, date(2026, time.March, 15))

	if _, ok, _ := cache.Get(ctx, condominiumID, date(2026, time.March, 1)); ok {
		t.Error("expected March entry to be invalidated")
	}
}
