package memory

import (
	"context"
	"sync"
	"time"

	"traveling-message/internal/core/ports"
)

// AttemptCounter implements ports.AttemptCounter with an in-process
// sliding window. Suitable for single-instance deployments; use the
// Redis backend when running more than one replica.
type AttemptCounter struct {
	mu        sync.Mutex
	attempts  map[string][]time.Time
	lastSweep time.Time
	now       func() time.Time
}

// NewAttemptCounter creates an in-memory attempt counter.
func NewAttemptCounter() *AttemptCounter {
	return &AttemptCounter{
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records an attempt for key and reports whether it fits the limit.
func (c *AttemptCounter) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	cutoff := now.Add(-window)

	// Origins that never come back would otherwise pin their slices for
	// the process lifetime. At most one full sweep per window.
	if now.Sub(c.lastSweep) >= window {
		c.sweep(cutoff)
		c.lastSweep = now
	}

	kept := c.attempts[key][:0]
	for _, t := range c.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	c.attempts[key] = kept

	count := int64(len(kept))
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(window).Unix(),
	}, nil
}

// sweep drops every origin whose attempts all predate cutoff.
func (c *AttemptCounter) sweep(cutoff time.Time) {
	for key, times := range c.attempts {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(c.attempts, key)
		}
	}
}
