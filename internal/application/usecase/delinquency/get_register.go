// Package delinquency contains the delinquency tracking use cases.
package delinquency

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
)

// GetRegisterInput represents the input for the delinquency register query.
type GetRegisterInput struct {
	CondominiumID uuid.UUID
	Date          time.Time
}

// RegisterRow is one delinquency record with its computed aging. DaysLate is
// negative when the obligation was settled before its due date; early
// payments are meaningful and never clamped.
type RegisterRow struct {
	Record       *entity.DelinquencyRecord
	CategoryName string
	DaysLate     int
}

// GetRegisterUseCase lists the delinquency records of the month containing
// the given date, each with its days-late aging.
type GetRegisterUseCase struct {
	delinquencyRepo adapter.DelinquencyRepository
	clock           adapter.Clock
}

// NewGetRegisterUseCase creates a new GetRegisterUseCase instance.
func NewGetRegisterUseCase(
	delinquencyRepo adapter.DelinquencyRepository,
	clock adapter.Clock,
) *GetRegisterUseCase {
	return &GetRegisterUseCase{
		delinquencyRepo: delinquencyRepo,
		clock:           clock,
	}
}

// Execute lists the register rows for the month of the given date.
func (uc *GetRegisterUseCase) Execute(ctx context.Context, input GetRegisterInput) ([]RegisterRow, error) {
	start, end := finance.MonthBounds(input.Date)

	records, err := uc.delinquencyRepo.FindByPeriod(ctx, input.CondominiumID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load delinquency records: %w", err)
	}

	now := uc.clock.Now()
	rows := make([]RegisterRow, 0, len(records))
	for _, record := range records {
		var categoryName string
		if record.Category != nil {
			categoryName = record.Category.Name
		}
		rows = append(rows, RegisterRow{
			Record:       record.Record,
			CategoryName: categoryName,
			DaysLate:     record.Record.DaysLate(now),
		})
	}

	return rows, nil
}
