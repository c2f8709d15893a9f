// Package maintenance contains the maintenance and installment scheduling use cases.
package maintenance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/domain/entity"
)

// SplitInstallments divides a total into n cent-rounded shares. Every share
// but the last is total/n rounded to two places; the last absorbs the
// rounding remainder so the shares always sum exactly to the total.
func SplitInstallments(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	shares := make([]decimal.Decimal, n)
	per := total.Div(decimal.NewFromInt(int64(n))).Round(2)

	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = per
		running = running.Add(per)
	}
	shares[n-1] = total.Sub(running)
	return shares
}

// buildSchedule expands an amount, a first payment date and an installment
// count into the dated payment rows of a maintenance. Each row lands one
// calendar month after the previous, starting at the original date.
func buildSchedule(maintenanceID uuid.UUID, amount decimal.Decimal, firstPayment time.Time, installments int, isInstallment bool) []*entity.MaintenancePayment {
	shares := SplitInstallments(amount, installments)
	now := time.Now().UTC()

	payments := make([]*entity.MaintenancePayment, len(shares))
	for i, share := range shares {
		payments[i] = &entity.MaintenancePayment{
			ID:            uuid.New(),
			MaintenanceID: maintenanceID,
			PaymentDate:   firstPayment.AddDate(0, i, 0),
			Amount:        share,
			IsInstallment: isInstallment,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}
	return payments
}
