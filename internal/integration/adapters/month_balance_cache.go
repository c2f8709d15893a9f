// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/condo-control/backend/internal/application/adapter"
)

const monthBalanceTTL = 24 * time.Hour

// redisMonthBalanceCache implements adapter.MonthBalanceCache on Redis.
type redisMonthBalanceCache struct {
	client *redis.Client
}

// NewMonthBalanceCache creates a new Redis-backed month balance cache.
func NewMonthBalanceCache(client *redis.Client) adapter.MonthBalanceCache {
	return &redisMonthBalanceCache{
		client: client,
	}
}

// Get returns the cached balance for the month and whether one was found.
func (c *redisMonthBalanceCache) Get(ctx context.Context, condominiumID uuid.UUID, month time.Time) (decimal.Decimal, bool, error) {
	value, err := c.client.Get(ctx, monthBalanceKey(condominiumID, month)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	balance, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt cached balance: %w", err)
	}
	return balance, true, nil
}

// Set stores the balance for the month.
func (c *redisMonthBalanceCache) Set(ctx context.Context, condominiumID uuid.UUID, month time.Time, balance decimal.Decimal) error {
	return c.client.Set(ctx, monthBalanceKey(condominiumID, month), balance.String(), monthBalanceTTL).Err()
}

// Invalidate drops the cached balance for the given months.
func (c *redisMonthBalanceCache) Invalidate(ctx context.Context, condominiumID uuid.UUID, months ...time.Time) error {
	if len(months) == 0 {
		return nil
	}

	keys := make([]string, len(months))
	for i, month := range months {
		keys[i] = monthBalanceKey(condominiumID, month)
	}
	return c.client.Del(ctx, keys...).Err()
}

func monthBalanceKey(condominiumID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("month-balance:%s:%s", condominiumID, month.UTC().Format("2006-01"))
}
