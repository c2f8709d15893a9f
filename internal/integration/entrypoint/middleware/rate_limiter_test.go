package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit then blocks", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("request %d blocked, want allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("request over the limit allowed, want blocked")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first key blocked")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("second key blocked by first key's attempts")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first request blocked")
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("second request in window allowed")
		}

		time.Sleep(20 * time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Error("request after window expiry blocked")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		rl.allow("10.0.0.1")
		rl.Reset()

		if !rl.allow("10.0.0.1") {
			t.Error("request after Reset blocked")
		}
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")

	time.Sleep(20 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()

	if remaining != 0 {
		t.Errorf("entries after Cleanup = %d, want 0", remaining)
	}
}
