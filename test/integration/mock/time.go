package mock

import (
	"sync"
	"time"
)

// Clock implements adapter.Clock with a pinned instant, so projections,
// delinquency ages and maintenance cards are deterministic across runs.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock pinned to the given instant.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Set repins the clock.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
