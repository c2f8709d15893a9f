// Package delinquency contains the delinquency tracking use cases.
package delinquency

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	domainerror "github.com/condo-control/backend/internal/domain/error"
)

// GetResumeInput represents the input for the delinquency summary query.
type GetResumeInput struct {
	CondominiumID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
}

// GetResumeOutput summarizes the delinquency position of a condominium.
// DelinquencyPercentage is a two-decimal string; a condominium with zero
// units yields "0.00", never a division error.
type GetResumeOutput struct {
	TotalInstallments     int
	UnpaidCount           int
	TotalAmountToReceive  decimal.Decimal
	AverageDaysOverdue    int
	DelinquentUnits       int
	TotalUnits            int64
	DelinquencyPercentage string
}

// GetResumeUseCase computes aging and exposure statistics over a period.
type GetResumeUseCase struct {
	delinquencyRepo adapter.DelinquencyRepository
	unitRepo        adapter.UnitRepository
	clock           adapter.Clock
}

// NewGetResumeUseCase creates a new GetResumeUseCase instance.
func NewGetResumeUseCase(
	delinquencyRepo adapter.DelinquencyRepository,
	unitRepo adapter.UnitRepository,
	clock adapter.Clock,
) *GetResumeUseCase {
	return &GetResumeUseCase{
		delinquencyRepo: delinquencyRepo,
		unitRepo:        unitRepo,
		clock:           clock,
	}
}

// Execute computes the summary for the given period.
func (uc *GetResumeUseCase) Execute(ctx context.Context, input GetResumeInput) (*GetResumeOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	records, err := uc.delinquencyRepo.FindByPeriod(ctx, input.CondominiumID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load delinquency records: %w", err)
	}

	now := uc.clock.Now()

	totalDaysOverdue := 0
	unpaidCount := 0
	totalToReceive := decimal.Zero
	touchedUnits := make(map[uuid.UUID]struct{})

	for _, row := range records {
		record := row.Record
		totalDaysOverdue += record.DaysLate(now)
		touchedUnits[record.UnitID] = struct{}{}

		if !record.IsPaid() {
			unpaidCount++
			totalToReceive = totalToReceive.Add(record.Amount)
		}
	}

	averageDays := 0
	if len(records) > 0 {
		averageDays = floorDiv(totalDaysOverdue, len(records))
	}

	totalUnits, err := uc.unitRepo.CountByCondominium(ctx, input.CondominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to count condominium units: %w", err)
	}

	percentage := "0.00"
	if totalUnits > 0 {
		percentage = decimal.NewFromInt(int64(len(touchedUnits))).
			Div(decimal.NewFromInt(totalUnits)).
			Mul(decimal.NewFromInt(100)).
			StringFixed(2)
	}

	return &GetResumeOutput{
		TotalInstallments:     len(records),
		UnpaidCount:           unpaidCount,
		TotalAmountToReceive:  totalToReceive,
		AverageDaysOverdue:    averageDays,
		DelinquentUnits:       len(touchedUnits),
		TotalUnits:            totalUnits,
		DelinquencyPercentage: percentage,
	}, nil
}

// floorDiv divides rounding toward negative infinity. The average stays a
// true floor even when early payments push the day total negative.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
