// Package maintenance contains the maintenance and installment scheduling use cases.
package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/domain/entity"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// fakeMaintenanceRepo is an in-memory MaintenanceRepository for tests. It
// shares a fakePaymentRepo so FindByCondominium can preload schedules.
type fakeMaintenanceRepo struct {
	rows       map[uuid.UUID]*entity.Maintenance
	created    []*entity.Maintenance
	deletedIDs []uuid.UUID
	payments   *fakePaymentRepo
}

func newFakeMaintenanceRepo(payments *fakePaymentRepo) *fakeMaintenanceRepo {
	f := &fakeMaintenanceRepo{rows: map[uuid.UUID]*entity.Maintenance{}, payments: payments}
	if payments != nil {
		payments.owner = f
	}
	return f
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, maintenance *entity.Maintenance) error {
	f.rows[maintenance.ID] = maintenance
	f.created = append(f.created, maintenance)
	return nil
}

func (f *fakeMaintenanceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Maintenance, error) {
	if row, ok := f.rows[id]; ok {
		return row, nil
	}
	return nil, domainerror.NewMaintenanceError(
		domainerror.ErrCodeMaintenanceNotFound,
		"maintenance not found",
		domainerror.ErrMaintenanceNotFound,
	)
}

func (f *fakeMaintenanceRepo) FindByCondominium(_ context.Context, condominiumID uuid.UUID) ([]*entity.MaintenanceWithPayments, error) {
	var out []*entity.MaintenanceWithPayments
	for _, row := range f.rows {
		if row.CondominiumID != condominiumID {
			continue
		}
		var schedule []*entity.MaintenancePayment
		if f.payments != nil {
			schedule = f.payments.payments[row.ID]
		}
		out = append(out, &entity.MaintenanceWithPayments{Maintenance: row, Payments: schedule})
	}
	return out, nil
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

func (f *fakeMaintenanceRepo) Update(_ context.Context, maintenance *entity.Maintenance) error {
	if _, ok := f.rows[maintenance.ID]; !ok {
		return domainerror.ErrMaintenanceNotFound
	}
	f.rows[maintenance.ID] = maintenance
	return nil
}

func (f *fakeMaintenanceRepo) ClearSuccessorReferences(_ context.Context, id uuid.UUID) error {
	for _, row := range f.rows {
		if row.NextMaintenanceID != nil && *row.NextMaintenanceID == id {
			row.NextMaintenanceID = nil
		}
	}
	return nil
}

func (f *fakeMaintenanceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return domainerror.ErrMaintenanceNotFound
	}
	delete(f.rows, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakePaymentRepo is an in-memory MaintenancePaymentRepository. The owner
// back-reference lets FindByPeriod join payments with their maintenance.
type fakePaymentRepo struct {
	payments map[uuid.UUID][]*entity.MaintenancePayment
	deletes  []uuid.UUID
	owner    *fakeMaintenanceRepo
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID][]*entity.MaintenancePayment{}}
}

func (f *fakePaymentRepo) CreateBatch(_ context.Context, payments []*entity.MaintenancePayment) error {
	for _, payment := range payments {
		f.payments[payment.MaintenanceID] = append(f.payments[payment.MaintenanceID], payment)
	}
	return nil
}

func (f *fakePaymentRepo) FindByMaintenance(_ context.Context, maintenanceID uuid.UUID) ([]*entity.MaintenancePayment, error) {
	return f.payments[maintenanceID], nil
}

func (f *fakePaymentRepo) FindByPeriod(_ context.Context, condominiumID uuid.UUID, start, end time.Time) ([]*adapter.MaintenancePaymentWithParent, error) {
	var out []*adapter.MaintenancePaymentWithParent
	for maintenanceID, rows := range f.payments {
		var parent *entity.Maintenance
		if f.owner != nil {
			parent = f.owner.rows[maintenanceID]
		}
		if parent == nil || parent.CondominiumID != condominiumID {
			continue
		}
		for _, payment := range rows {
			if payment.PaymentDate.Before(start) || payment.PaymentDate.After(end) {
				continue
			}
			out = append(out, &adapter.MaintenancePaymentWithParent{Payment: payment, Maintenance: parent})
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) DeleteByMaintenance(_ context.Context, maintenanceID uuid.UUID) error {
	f.deletes = append(f.deletes, maintenanceID)
	delete(f.payments, maintenanceID)
	return nil
}

// fixedClock pins Now for deterministic card computations.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeLedger implements just enough of FinancialRecordRepository for the
// aggregator's computed sums.
type fakeLedger struct {
	records []*entity.FinancialRecordWithCategory
}

func (f *fakeLedger) Create(_ context.Context, _ *entity.FinancialRecord) error { return nil }

func (f *fakeLedger) FindByID(_ context.Context, _ uuid.UUID) (*entity.FinancialRecord, error) {
	return nil, domainerror.ErrFinancialRecordNotFound
}

func (f *fakeLedger) FindByFilter(_ context.Context, filter adapter.FinancialRecordFilter) ([]*entity.FinancialRecordWithCategory, error) {
	var out []*entity.FinancialRecordWithCategory
	for _, row := range f.records {
		record := row.Record
		if record.IsDeleted || record.CondominiumID != filter.CondominiumID {
			continue
		}
		if record.DueDate.Before(filter.StartDate) || record.DueDate.After(filter.EndDate) {
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

func (f *fakeLedger) FindByDelinquencyID(_ context.Context, _ uuid.UUID) (*entity.FinancialRecord, error) {
	return nil, nil
}

func (f *fakeLedger) Update(_ context.Context, _ *entity.FinancialRecord) error { return nil }

func (f *fakeLedger) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeLedger) HardDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeLedger) addPaid(condominiumID uuid.UUID, incomeExpenseTypeID int, amountPaid decimal.Decimal, dueDate time.Time) {
	f.records = append(f.records, &entity.FinancialRecordWithCategory{
		Record: &entity.FinancialRecord{
			ID:              uuid.New(),
			CondominiumID:   condominiumID,
			CategoryID:      uuid.New(),
			AmountPaid:      amountPaid,
			Amount:          amountPaid,
			DueDate:         dueDate,
			PaymentStatusID: entity.PaymentStatusPaid,
		},
		Category: &entity.Category{
			ID:                  uuid.New(),
			IncomeExpenseTypeID: incomeExpenseTypeID,
		},
	})
}

// noopOverrideRepo is an empty MonthlyFinanceOverrideRepository.
type noopOverrideRepo struct{}

func (noopOverrideRepo) FindByMonth(_ context.Context, _ uuid.UUID, _ time.Time) (*entity.MonthlyFinanceOverride, error) {
	return nil, nil
}

func (noopOverrideRepo) FindFirstInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) (*entity.MonthlyFinanceOverride, error) {
	return nil, nil
}

func (noopOverrideRepo) Create(_ context.Context, _ *entity.MonthlyFinanceOverride) error {
	return nil
}

func (noopOverrideRepo) Update(_ context.Context, _ *entity.MonthlyFinanceOverride) error {
	return nil
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

func intPtr(n int) *int {
	return &n
}
