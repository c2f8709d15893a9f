// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// MonthlyAmount is the resolved value of a monthly metric (income or
// expenses). It is either a Manual value taken from the month's override
// snapshot or Computed, meaning the caller must fall back to summing the
// itemized records. Representing this as a tagged value keeps the
// override-wins-over-computed branch explicit instead of an implicit
// nil check.
type MonthlyAmount struct {
	manual bool
	value  decimal.Decimal
}

// ManualAmount returns a MonthlyAmount carrying an override value.
func ManualAmount(value decimal.Decimal) MonthlyAmount {
	return MonthlyAmount{manual: true, value: value}
}

// ComputedAmount returns a MonthlyAmount that defers to the computed sum.
func ComputedAmount() MonthlyAmount {
	return MonthlyAmount{}
}

// IsManual reports whether the amount was manually overridden.
func (a MonthlyAmount) IsManual() bool {
	return a.manual
}

// Value returns the override value and whether one is present.
func (a MonthlyAmount) Value() (decimal.Decimal, bool) {
	if !a.manual {
		return decimal.Zero, false
	}
	return a.value, true
}

// Resolve returns the override value when present, otherwise the provided
// computed fallback.
func (a MonthlyAmount) Resolve(computed decimal.Decimal) decimal.Decimal {
	if a.manual {
		return a.value
	}
	return computed
}
