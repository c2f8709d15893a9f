// Package delinquency contains the delinquency tracking use cases.
package delinquency

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// fakeDelinquencyRepo is an in-memory DelinquencyRepository for tests.
type fakeDelinquencyRepo struct {
	records    map[uuid.UUID]*entity.DelinquencyRecordWithCategory
	deletedIDs []uuid.UUID
}

func newFakeDelinquencyRepo() *fakeDelinquencyRepo {
	return &fakeDelinquencyRepo{records: map[uuid.UUID]*entity.DelinquencyRecordWithCategory{}}
}

func (f *fakeDelinquencyRepo) add(record *entity.DelinquencyRecord, category *entity.Category) {
	f.records[record.ID] = &entity.DelinquencyRecordWithCategory{Record: record, Category: category}
}

func (f *fakeDelinquencyRepo) Create(_ context.Context, record *entity.DelinquencyRecord) error {
	f.records[record.ID] = &entity.DelinquencyRecordWithCategory{Record: record}
	return nil
}

func (f *fakeDelinquencyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DelinquencyRecord, error) {
	if row, ok := f.records[id]; ok {
		return row.Record, nil
	}
	return nil, domainerror.ErrDelinquencyNotFound
}

func (f *fakeDelinquencyRepo) FindByPeriod(_ context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*entity.DelinquencyRecordWithCategory, error) {
	var out []*entity.DelinquencyRecordWithCategory
	for _, row := range f.records {
		record := row.Record
		if record.CondominiumID != condominiumID {
			continue
		}
		if record.DueDate.Before(start) || record.DueDate.After(end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeDelinquencyRepo) Update(_ context.Context, record *entity.DelinquencyRecord) error {
	if _, ok := f.records[record.ID]; !ok {
		return domainerror.ErrDelinquencyNotFound
	}
	f.records[record.ID].Record = record
	return nil
}

func (f *fakeDelinquencyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return domainerror.ErrDelinquencyNotFound
	}
	delete(f.records, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeRecordRepo implements the parts of FinancialRecordRepository the
// pairing state machine exercises.
type fakeRecordRepo struct {
	records     map[uuid.UUID]*entity.FinancialRecord
	created     []*entity.FinancialRecord
	updated     []*entity.FinancialRecord
	hardDeleted []uuid.UUID
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[uuid.UUID]*entity.FinancialRecord{}}
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.FinancialRecord) error {
	f.records[record.ID] = record
	f.created = append(f.created, record)
	return nil
}

func (f *fakeRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialRecord, error) {
	if record, ok := f.records[id]; ok && !record.IsDeleted {
		return record, nil
	}
	return nil, domainerror.ErrFinancialRecordNotFound
}

func (f *fakeRecordRepo) FindByFilter(_ context.Context, _ adapter.FinancialRecordFilter) ([]*entity.FinancialRecordWithCategory, error) {
	return nil, nil
}

func (f *fakeRecordRepo) FindByDelinquencyID(_ context.Context, delinquencyID uuid.UUID) (*entity.FinancialRecord, error) {
	for _, record := range f.records {
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
	if _, ok := f.records[record.ID]; !ok {
		return domainerror.ErrFinancialRecordNotFound
	}
	f.records[record.ID] = record
	f.updated = append(f.updated, record)
	return nil
}

func (f *fakeRecordRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if record, ok := f.records[id]; ok {
		record.IsDeleted = true
		return nil
	}
	return domainerror.ErrFinancialRecordNotFound
}

func (f *fakeRecordRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.records[id]; !ok {
		return domainerror.ErrFinancialRecordNotFound
	}
	delete(f.records, id)
	f.hardDeleted = append(f.hardDeleted, id)
	return nil
}

// fakeOverrideRepo returns no overrides; the aggregator only needs it wired.
type fakeOverrideRepo struct{}

func (f *fakeOverrideRepo) FindByMonth(_ context.Context, _ uuid.UUID, _ time.Time) (*entity.MonthlyFinanceOverride, error) {
	return nil, nil
}

func (f *fakeOverrideRepo) FindFirstInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) (*entity.MonthlyFinanceOverride, error) {
	return nil, nil
}

func (f *fakeOverrideRepo) Create(_ context.Context, _ *entity.MonthlyFinanceOverride) error {
	return nil
}

func (f *fakeOverrideRepo) Update(_ context.Context, _ *entity.MonthlyFinanceOverride) error {
	return nil
}

// fakeUnitRepo is an in-memory UnitRepository.
type fakeUnitRepo struct {
	units []*entity.Unit
}

func (f *fakeUnitRepo) FindByCondominium(_ context.Context, condominiumID uuid.UUID) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, unit := range f.units {
		if unit.CondominiumID == condominiumID {
			out = append(out, unit)
		}
	}
	return out, nil
}

func (f *fakeUnitRepo) CountByCondominium(_ context.Context, condominiumID uuid.UUID) (int64, error) {
	var count int64
	for _, unit := range f.units {
		if unit.CondominiumID == condominiumID {
			count++
		}
	}
	return count, nil
}

// fixedClock returns a constant time.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
