package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptCounter_AllowsWithinLimit(t *testing.T) {
	counter := NewAttemptCounter()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		res, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d should be allowed", i+1)
	}
}

func TestAttemptCounter_DeniesOverLimit(t *testing.T) {
	counter := NewAttemptCounter()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
		require.NoError(t, err)
	}

	res, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
}

func TestAttemptCounter_SlidingWindow(t *testing.T) {
	counter := NewAttemptCounter()
	ctx := context.Background()

	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	current := base
	counter.now = func() time.Time { return current }

	for i := 0; i < 12; i++ {
		res, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
		require.NoError(t, err)
		require.True(t, res.Allowed)
		current = current.Add(time.Second)
	}

	// Still inside the window of the earliest attempt.
	res, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	// Slide past the earliest attempts; capacity frees up gradually.
	current = base.Add(time.Minute + 5*time.Second)
	res, err = counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestAttemptCounter_SweepsStaleOrigins(t *testing.T) {
	counter := NewAttemptCounter()
	ctx := context.Background()

	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	current := base
	counter.now = func() time.Time { return current }

	_, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
	require.NoError(t, err)
	_, err = counter.Allow(ctx, "5.6.7.8", 12, time.Minute)
	require.NoError(t, err)

	// A single active origin past the window is enough to trigger the
	// sweep; the one-shot origin's state must be gone afterwards.
	current = base.Add(2 * time.Minute)
	_, err = counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
	require.NoError(t, err)

	counter.mu.Lock()
	defer counter.mu.Unlock()
	assert.Contains(t, counter.attempts, "1.2.3.4")
	assert.NotContains(t, counter.attempts, "5.6.7.8")
	assert.Len(t, counter.attempts, 1)
}

func TestAttemptCounter_KeysAreIndependent(t *testing.T) {
	counter := NewAttemptCounter()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := counter.Allow(ctx, "1.2.3.4", 12, time.Minute)
		require.NoError(t, err)
	}

	res, err := counter.Allow(ctx, "5.6.7.8", 12, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(11), res.Remaining)
}
