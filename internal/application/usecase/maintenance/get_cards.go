package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
	"github.com/condo-control/backend/internal/application/usecase/finance"
	"github.com/condo-control/backend/internal/domain/entity"
)

// MaintenanceCards is the funds-available summary shown above the
// maintenance backlog.
type MaintenanceCards struct {
	NewMonthlyFixedCosts     decimal.Decimal
	ApprovedImprovementsCost decimal.Decimal
	Balance                  decimal.Decimal
}

// GetCardsUseCase computes the maintenance summary cards from the year's
// payment schedule and the accumulated finance balance.
type GetCardsUseCase struct {
	paymentRepo adapter.MaintenancePaymentRepository
	aggregator  *finance.Aggregator
	clock       adapter.Clock
}

// NewGetCardsUseCase creates a new GetCardsUseCase instance.
func NewGetCardsUseCase(
	paymentRepo adapter.MaintenancePaymentRepository,
	aggregator *finance.Aggregator,
	clock adapter.Clock,
) *GetCardsUseCase {
	return &GetCardsUseCase{
		paymentRepo: paymentRepo,
		aggregator:  aggregator,
		clock:       clock,
	}
}

// Execute builds the cards. The payment window is the year of date; the
// fixed-costs card and the balance card always use the clock's current month,
// regardless of the requested year.
func (uc *GetCardsUseCase) Execute(ctx context.Context, condominiumID uuid.UUID, date time.Time) (*MaintenanceCards, error) {
	yearStart, yearEnd := finance.YearBounds(date.Year())

	payments, err := uc.paymentRepo.FindByPeriod(ctx, condominiumID, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance payments: %w", err)
	}

	now := uc.clock.Now()

	balance, err := uc.aggregator.AccumulatedBalance(ctx, condominiumID, time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), now)
	if err != nil {
		return nil, err
	}

	return &MaintenanceCards{
		NewMonthlyFixedCosts:     monthlyFixedCosts(payments, now),
		ApprovedImprovementsCost: distinctParentTotals(payments),
		Balance:                  balance,
	}, nil
}

// monthlyFixedCosts sums the current month's payments. Installments of an
// already completed intervention are no longer a new fixed cost and are left
// out.
func monthlyFixedCosts(payments []*adapter.MaintenancePaymentWithParent, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if !finance.SameMonth(p.Payment.PaymentDate, now) {
			continue
		}
		if p.Payment.IsInstallment && p.Maintenance.StatusID == entity.MaintenanceStatusCompleted {
			continue
		}
		total = total.Add(p.Payment.Amount)
	}
	return total
}

// distinctParentTotals sums each owning maintenance's full amount exactly
// once, however many of its payment rows fall inside the window.
func distinctParentTotals(payments []*adapter.MaintenancePaymentWithParent) decimal.Decimal {
	seen := make(map[uuid.UUID]struct{}, len(payments))
	total := decimal.Zero
	for _, p := range payments {
		if _, ok := seen[p.Maintenance.ID]; ok {
			continue
		}
		seen[p.Maintenance.ID] = struct{}{}
		total = total.Add(p.Maintenance.Amount)
	}
	return total
}
