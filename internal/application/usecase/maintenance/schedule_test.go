// Package maintenance contains the maintenance and installment scheduling use cases.
package maintenance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSplitInstallments(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		shares := SplitInstallments(dec("300.00"), 3)
		if len(shares) != 3 {
			t.Fatalf("expected 3 shares, got %d", len(shares))
		}
		for i, share := range shares {
			if !share.Equal(dec("100.00")) {
				t.Errorf("share %d: expected 100.00, got %s", i, share)
			}
		}
	})

	t.Run("last share absorbs the rounding remainder", func(t *testing.T) {
		shares := SplitInstallments(dec("100.00"), 3)
		if !shares[0].Equal(dec("33.33")) || !shares[1].Equal(dec("33.33")) {
			t.Errorf("expected leading shares 33.33, got %s and %s", shares[0], shares[1])
		}
		if !shares[2].Equal(dec("33.34")) {
			t.Errorf("expected last share 33.34, got %s", shares[2])
		}
	})

	t.Run("shares always sum exactly to the total", func(t *testing.T) {
		totals := []string{"100.00", "0.01", "999.99", "1234.56", "7.77"}
		for _, total := range totals {
			for n := 1; n <= 12; n++ {
				shares := SplitInstallments(dec(total), n)
				sum := decimal.Zero
				for _, share := range shares {
					sum = sum.Add(share)
				}
				if !sum.Equal(dec(total)) {
					t.Errorf("total %s over %d shares: sum %s", total, n, sum)
				}
			}
		}
	})

	t.Run("single installment is the whole amount", func(t *testing.T) {
		shares := SplitInstallments(dec("250.50"), 1)
		if len(shares) != 1 || !shares[0].Equal(dec("250.50")) {
			t.Errorf("expected one share of 250.50, got %v", shares)
		}
	})

	t.Run("non-positive count yields nil", func(t *testing.T) {
		if SplitInstallments(dec("100.00"), 0) != nil {
			t.Error("expected nil for zero count")
		}
		if SplitInstallments(dec("100.00"), -1) != nil {
			t.Error("expected nil for negative count")
		}
	})
}

func TestBuildSchedule(t *testing.T) {
	maintenanceID := uuid.New()

	t.Run("monthly dates starting at the payment date", func(t *testing.T) {
		payments := buildSchedule(maintenanceID, dec("300.00"), date(2026, time.January, 15), 3, true)
		if len(payments) != 3 {
			t.Fatalf("expected 3 payments, got %d", len(payments))
		}

		expected := []time.Time{
			date(2026, time.January, 15),
			date(2026, time.February, 15),
			date(2026, time.March, 15),
		}
		for i, payment := range payments {
			if !payment.PaymentDate.Equal(expected[i]) {
				t.Errorf("payment %d: expected %s, got %s", i, expected[i], payment.PaymentDate)
			}
			if payment.MaintenanceID != maintenanceID {
				t.Errorf("payment %d: wrong maintenance ID", i)
			}
			if !payment.IsInstallment {
				t.Errorf("payment %d: expected installment flag", i)
			}
		}
	})

	t.Run("single payment keeps the full amount", func(t *testing.T) {
		payments := buildSchedule(maintenanceID, dec("500.00"), date(2026, time.June, 1), 1, false)
		if len(payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(payments))
		}
		if !payments[0].Amount.Equal(dec("500.00")) {
			t.Errorf("expected 500.00, got %s", payments[0].Amount)
		}
		if payments[0].IsInstallment {
			t.Error("expected no installment flag")
		}
	})
}
