// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/condo-control/backend/internal/domain/error"
	"github.com/condo-control/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 1 * time.Minute
)

// windowState is the per-key counter of a fixed rate limit window.
type windowState struct {
	count   int
	expires time.Time
}

// RateLimiter throttles requests per client IP over a fixed window.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*windowState
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter with the default limit and window.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with an explicit limit and
// window.
func NewRateLimiterWithConfig(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*windowState),
		limit:   limit,
		window:  window,
	}
}

// Middleware returns the Gin handler enforcing the limit. Test environments
// bypass it so suites can fire requests freely.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// allow counts one request against the key's current window and reports
// whether it fits. An expired window starts over.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	state, ok := rl.entries[key]
	if !ok || now.After(state.expires) {
		rl.entries[key] = &windowState{count: 1, expires: now.Add(rl.window)}
		return true
	}

	if state.count >= rl.limit {
		return false
	}
	state.count++
	return true
}

// Reset drops all tracked windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*windowState)
}

// Cleanup evicts expired windows so long-lived processes do not accumulate
// one entry per client forever.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, state := range rl.entries {
		if now.After(state.expires) {
			delete(rl.entries, key)
		}
	}
}
