// Package indicators contains the chart and resume use cases backing the
// dashboard endpoints.
package indicators

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
	records []*entity.FinancialRecordWithCategory
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.FinancialRecord) error {
	f.records = append(f.records, &entity.FinancialRecordWithCategory{Record: record})
	return nil
}

func (f *fakeRecordRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.FinancialRecord, error) {
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

func (f *fakeRecordRepo) FindByDelinquencyID(_ context.Context, _ uuid.UUID) (*entity.FinancialRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, _ *entity.FinancialRecord) error { return nil }

func (f *fakeRecordRepo) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeRecordRepo) HardDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeRecordRepo) add(condominiumID uuid.UUID, category *entity.Category, amount decimal.Decimal, dueDate time.Time) {
	f.records = append(f.records, &entity.FinancialRecordWithCategory{
		Record: &entity.FinancialRecord{
			ID:              uuid.New(),
			CondominiumID:   condominiumID,
			CategoryID:      category.ID,
			Amount:          amount,
			AmountPaid:      amount,
			DueDate:         dueDate,
			PaymentStatusID: entity.PaymentStatusPaid,
		},
		Category: category,
	})
}

// fakeOverrideRepo is an in-memory MonthlyFinanceOverrideRepository keyed by
// reference month.
type fakeOverrideRepo struct {
	overrides []*entity.MonthlyFinanceOverride
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
	f.overrides = append(f.overrides, override)
	return nil
}

func (f *fakeOverrideRepo) Update(_ context.Context, _ *entity.MonthlyFinanceOverride) error {
	return nil
}

// fakeMaintenanceRepo only serves FindByPlannedStartRange; the resume never
// touches the rest.
type fakeMaintenanceRepo struct {
	rows []*entity.Maintenance
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, maintenance *entity.Maintenance) error {
	f.rows = append(f.rows, maintenance)
	return nil
}

func (f *fakeMaintenanceRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Maintenance, error) {
	return nil, domainerror.ErrMaintenanceNotFound
}

func (f *fakeMaintenanceRepo) FindByCondominium(_ context.Context, _ uuid.UUID) ([]*entity.MaintenanceWithPayments, error) {
	return nil, nil
}

func (f *fakeMaintenanceRepo) FindByPlannedStartRange(_ context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*entity.Maintenance, error) {
	var out []*entity.Maintenance
	for _, row := range f.rows {
		if row.CondominiumID != condominiumID || row.PlannedStart == nil {
			continue
		}
		if row.PlannedStart.Before(start) || row.PlannedStart.After(end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) Update(_ context.Context, _ *entity.Maintenance) error { return nil }

func (f *fakeMaintenanceRepo) ClearSuccessorReferences(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeMaintenanceRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func incomeCategory(name string, recordTypeID int) *entity.Category {
	return &entity.Category{
		ID:                  uuid.New(),
		Name:                name,
		IncomeExpenseTypeID: entity.IncomeExpenseTypeIncome,
		RecordTypeID:        recordTypeID,
	}
}

func expenseCategory(name string, recordTypeID int) *entity.Category {
	return &entity.Category{
		ID:                  uuid.New(),
		Name:                name,
		IncomeExpenseTypeID: entity.IncomeExpenseTypeExpense,
		RecordTypeID:        recordTypeID,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
