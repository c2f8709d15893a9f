// Package finance contains the revenue/expense aggregation use cases.
package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// fakeRecordRepo is an in-memory FinancialRecordRepository for tests.
type fakeRecordRepo struct {
	records    []*entity.FinancialRecordWithCategory
	created    []*entity.FinancialRecord
	updated    []*entity.FinancialRecord
	softDeleted []uuid.UUID
	hardDeleted []uuid.UUID
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.FinancialRecord) error {
	f.created = append(f.created, record)
	f.records = append(f.records, &entity.FinancialRecordWithCategory{Record: record})
	return nil
}

func (f *fakeRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialRecord, error) {
	for _, row := range f.records {
		if row.Record.ID == id && !row.Record.IsDeleted {
			return row.Record, nil
		}
	}
	return nil, domainerror.ErrFinancialRecordNotFound
}

func (f *fakeRecordRepo) FindByFilter(_ context.Context, filter adapter.FinancialRecordFilter) ([]*entity.FinancialRecordWithCategory, error) {
	var out []*entity.FinancialRecordWithCategory
	for _, row := range f.records {
		record := row.Record
		if record.IsDeleted || record.CondominiumID != filter.CondominiumID {
			continue
		}
		if record.DueDate.Before(filter.StartDate) || record.DueDate.After(filter.EndDate) {
			continue
		}
		if filter.OnlyRecurring && !record.IsRecurring {
			continue
		}
		if filter.IncomeExpenseTypeID != nil {
			if row.Category == nil || row.Category.IncomeExpenseTypeID != *filter.IncomeExpenseTypeID {
				continue
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeRecordRepo) FindByDelinquencyID(_ context.Context, delinquencyID uuid.UUID) (*entity.FinancialRecord, error) {
	for _, row := range f.records {
		record := row.Record
		if record.IsDeleted || record.DelinquencyRecordID == nil {
			continue
		}
		if *record.DelinquencyRecordID == delinquencyID {
			return record, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record *entity.FinancialRecord) error {
	f.updated = append(f.updated, record)
	for i, row := range f.records {
		if row.Record.ID == record.ID {
			f.records[i].Record = record
			return nil
		}
	}
	return domainerror.ErrFinancialRecordNotFound
}

func (f *fakeRecordRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	f.softDeleted = append(f.softDeleted, id)
	for _, row := range f.records {
		if row.Record.ID == id {
			row.Record.IsDeleted = true
			return nil
		}
	}
	return domainerror.ErrFinancialRecordNotFound
}

func (f *fakeRecordRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	f.hardDeleted = append(f.hardDeleted, id)
	for i, row := range f.records {
		if row.Record.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrFinancialRecordNotFound
}

// fakeOverrideRepo is an in-memory MonthlyFinanceOverrideRepository.
type fakeOverrideRepo struct {
	overrides []*entity.MonthlyFinanceOverride
	created   []*entity.MonthlyFinanceOverride
	updated   []*entity.MonthlyFinanceOverride
}

func (f *fakeOverrideRepo) FindByMonth(_ context.Context, condominiumID uuid.UUID, month time.Time) (*entity.MonthlyFinanceOverride, error) {
	for _, o := range f.overrides {
		if o.CondominiumID == condominiumID && o.ReferenceMonth.Equal(month) {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOverrideRepo) FindFirstInRange(_ context.Context, condominiumID uuid.UUID, start, end time.Time) (*entity.MonthlyFinanceOverride, error) {
	var first *entity.MonthlyFinanceOverride
	for _, o := range f.overrides {
		if o.CondominiumID != condominiumID {
			continue
		}
		if o.ReferenceMonth.Before(start) || o.ReferenceMonth.After(end) {
			continue
		}
		if first == nil || o.ReferenceMonth.Before(first.ReferenceMonth) {
			first = o
		}
	}
	return first, nil
}

func (f *fakeOverrideRepo) Create(_ context.Context, override *entity.MonthlyFinanceOverride) error {
	f.created = append(f.created, override)
	f.overrides = append(f.overrides, override)
	return nil
}

func (f *fakeOverrideRepo) Update(_ context.Context, override *entity.MonthlyFinanceOverride) error {
	f.updated = append(f.updated, override)
	for i, o := range f.overrides {
		if o.ID == override.ID {
			f.overrides[i] = override
			return nil
		}
	}
	return domainerror.ErrOverrideNotFound
}

// fakeBalanceCache is an in-memory MonthBalanceCache that counts operations.
type fakeBalanceCache struct {
	entries      map[string]decimal.Decimal
	gets         int
	hits         int
	sets         int
	invalidated  []time.Time
}

func newFakeBalanceCache() *fakeBalanceCache {
	return &fakeBalanceCache{entries: map[string]decimal.Decimal{}}
}

func cacheKey(condominiumID uuid.UUID, month time.Time) string {
	return condominiumID.String() + ":" + month.Format("2006-01")
}

func (f *fakeBalanceCache) Get(_ context.Context, condominiumID uuid.UUID, month time.Time) (decimal.Decimal, bool, error) {
	f.gets++
	value, ok := f.entries[cacheKey(condominiumID, month)]
	if ok {
		f.hits++
	}
	return value, ok, nil
}

func (f *fakeBalanceCache) Set(_ context.Context, condominiumID uuid.UUID, month time.Time, balance decimal.Decimal) error {
	f.sets++
	f.entries[cacheKey(condominiumID, month)] = balance
	return nil
}

func (f *fakeBalanceCache) Invalidate(_ context.Context, condominiumID uuid.UUID, months ...time.Time) error {
	for _, month := range months {
		f.invalidated = append(f.invalidated, month)
		delete(f.entries, cacheKey(condominiumID, month))
	}
	return nil
}

// fixedClock returns a constant time.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByIncomeExpenseType(_ context.Context, incomeExpenseTypeID int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.IncomeExpenseTypeID == incomeExpenseTypeID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Test data helpers shared by the finance test files.

func incomeCategory(name string) *entity.Category {
	return &entity.Category{
		ID:                  uuid.New(),
		Name:                name,
		IncomeExpenseTypeID: entity.IncomeExpenseTypeIncome,
		RecordTypeID:        entity.RecordTypeFixed,
	}
}

func expenseCategory(name string) *entity.Category {
	return &entity.Category{
		ID:                  uuid.New(),
		Name:                name,
		IncomeExpenseTypeID: entity.IncomeExpenseTypeExpense,
		RecordTypeID:        entity.RecordTypeVariable,
	}
}

func paidRecord(condominiumID uuid.UUID, category *entity.Category, amountPaid string, dueDate time.Time) *entity.FinancialRecordWithCategory {
	amount := decimal.RequireFromString(amountPaid)
	paymentDate := dueDate
	record := entity.NewFinancialRecord(
		condominiumID,
		category.ID,
		nil,
		amount,
		amount,
		dueDate,
		&paymentDate,
		entity.PaymentStatusPaid,
		1,
		"",
		false,
	)
	return &entity.FinancialRecordWithCategory{Record: record, Category: category}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
