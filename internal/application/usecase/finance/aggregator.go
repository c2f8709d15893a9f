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
	"github.com/condo-control/backend/internal/domain/valueobject"
)

// Aggregator reconciles the three sources of a condominium's monthly truth:
// manual override snapshots, computed sums over itemized records, and the
// month-by-month walk producing the accumulated balance. It is shared by the
// totals, projection and maintenance-cards use cases.
type Aggregator struct {
	recordRepo   adapter.FinancialRecordRepository
	overrideRepo adapter.MonthlyFinanceOverrideRepository
	cache        adapter.MonthBalanceCache
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(
	recordRepo adapter.FinancialRecordRepository,
	overrideRepo adapter.MonthlyFinanceOverrideRepository,
	cache adapter.MonthBalanceCache,
) *Aggregator {
	return &Aggregator{
		recordRepo:   recordRepo,
		overrideRepo: overrideRepo,
		cache:        cache,
	}
}

// MetricTotal is the resolved total of one metric over a period, with the
// month's target when the query covers a single month.
type MetricTotal struct {
	Total  decimal.Decimal
	Target *decimal.Decimal
}

// RevenueTotal resolves the income total for [startDate, endDate].
// An override's income wins over the computed sum; the target is only
// surfaced on single-month queries.
func (a *Aggregator) RevenueTotal(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time) (*MetricTotal, error) {
	amount, target, err := a.overrideAmount(ctx, condominiumID, startDate, endDate, metricIncome)
	if err != nil {
		return nil, err
	}

	if value, ok := amount.Value(); ok {
		return &MetricTotal{Total: value, Target: target}, nil
	}

	computed, err := a.sumPaidByType(ctx, condominiumID, startDate, endDate, entity.IncomeExpenseTypeIncome)
	if err != nil {
		return nil, err
	}
	return &MetricTotal{Total: computed, Target: target}, nil
}

// ExpensesTotal resolves the expense total for [startDate, endDate] with the
// same override-first semantics as RevenueTotal.
func (a *Aggregator) ExpensesTotal(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time) (*MetricTotal, error) {
	amount, target, err := a.overrideAmount(ctx, condominiumID, startDate, endDate, metricExpenses)
	if err != nil {
		return nil, err
	}

	if value, ok := amount.Value(); ok {
		return &MetricTotal{Total: value, Target: target}, nil
	}

	computed, err := a.sumPaidByType(ctx, condominiumID, startDate, endDate, entity.IncomeExpenseTypeExpense)
	if err != nil {
		return nil, err
	}
	return &MetricTotal{Total: computed, Target: target}, nil
}

// MonthBalance resolves a single month's (income - expenses), override-first.
func (a *Aggregator) MonthBalance(ctx context.Context, condominiumID uuid.UUID, month time.Time) (decimal.Decimal, error) {
	start, end := MonthBounds(month)

	income, err := a.RevenueTotal(ctx, condominiumID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	expenses, err := a.ExpensesTotal(ctx, condominiumID, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	return income.Total.Sub(expenses.Total), nil
}

// AccumulatedBalance walks every calendar month from `from` through `through`
// (month granularity, inclusive) and sums each month's balance. Cached
// per-month values are served when present; recomputed months are written
// back. Cache failures degrade to recomputation, never to an error.
func (a *Aggregator) AccumulatedBalance(ctx context.Context, condominiumID uuid.UUID, from, through time.Time) (decimal.Decimal, error) {
	accumulated := decimal.Zero

	for _, month := range MonthsBetween(from, through) {
		if a.cache != nil {
			if cached, ok, err := a.cache.Get(ctx, condominiumID, month); err == nil && ok {
				accumulated = accumulated.Add(cached)
				continue
			}
		}

		balance, err := a.MonthBalance(ctx, condominiumID, month)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to compute balance for %s: %w", month.Format("2006-01"), err)
		}

		if a.cache != nil {
			_ = a.cache.Set(ctx, condominiumID, month, balance)
		}
		accumulated = accumulated.Add(balance)
	}

	return accumulated, nil
}

// InvalidateMonth drops the cached balance of the months containing the given
// dates. Called after every write touching a month's records or override.
func (a *Aggregator) InvalidateMonth(ctx context.Context, condominiumID uuid.UUID, dates ...time.Time) {
	if a.cache == nil || len(dates) == 0 {
		return
	}
	months := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		months = append(months, MonthStart(d))
	}
	_ = a.cache.Invalidate(ctx, condominiumID, months...)
}

type metric int

const (
	metricIncome metric = iota
	metricExpenses
)

// overrideAmount looks up the first override row whose reference month falls
// in [first-of-startDate's-month, endDate] and lifts the requested metric
// into a tagged MonthlyAmount. The target only crosses a single-month query.
func (a *Aggregator) overrideAmount(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time, m metric) (valueobject.MonthlyAmount, *decimal.Decimal, error) {
	override, err := a.overrideRepo.FindFirstInRange(ctx, condominiumID, MonthStart(startDate), endDate)
	if err != nil {
		return valueobject.ComputedAmount(), nil, fmt.Errorf("failed to look up finance override: %w", err)
	}
	if override == nil {
		return valueobject.ComputedAmount(), nil, nil
	}

	var value, target *decimal.Decimal
	switch m {
	case metricIncome:
		value, target = override.Income, override.IncomeTarget
	case metricExpenses:
		value, target = override.Expenses, override.ExpensesTarget
	}

	if !SameMonth(startDate, endDate) {
		target = nil
	}

	if value == nil {
		return valueobject.ComputedAmount(), target, nil
	}
	return valueobject.ManualAmount(*value), target, nil
}

// sumPaidByType sums AmountPaid over non-deleted records of the given
// income/expense type due inside [startDate, endDate]. Zero rows sum to zero.
func (a *Aggregator) sumPaidByType(ctx context.Context, condominiumID uuid.UUID, startDate, endDate time.Time, incomeExpenseTypeID int) (decimal.Decimal, error) {
	records, err := a.recordRepo.FindByFilter(ctx, adapter.FinancialRecordFilter{
		CondominiumID:       condominiumID,
		StartDate:           startDate,
		EndDate:             endDate,
		IncomeExpenseTypeID: &incomeExpenseTypeID,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load financial records: %w", err)
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Record.AmountPaid)
	}
	return total, nil
}
