// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthBalanceCache memoizes the per-month (income - expenses) balance used
// by the accumulated-balance walk, keyed by condominium and month. Every
// write touching a month's records or its override must invalidate that
// month's entry, otherwise reads would serve stale balances.
type MonthBalanceCache interface {
	// Get returns the cached balance for the month and whether one was found.
	Get(ctx context.Context, condominiumID uuid.UUID, month time.Time) (decimal.Decimal, bool, error)

	// Set stores the balance for the month.
	Set(ctx context.Context, condominiumID uuid.UUID, month time.Time, balance decimal.Decimal) error

	// Invalidate drops the cached balance for the given months.
	Invalidate(ctx context.Context, condominiumID uuid.UUID, months ...time.Time) error
}

// Clock supplies the current time. Aging and projection calculations take it
// as a dependency so tests control "now" instead of the wall clock.
type Clock interface {
	Now() time.Time
}
