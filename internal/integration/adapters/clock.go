// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/condo-control/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock on the wall clock.
type systemClock struct{}

// NewSystemClock creates a Clock backed by time.Now in UTC.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
