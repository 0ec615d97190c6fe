package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"traveling-message/internal/core/ports"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// AttemptCounter implements ports.AttemptCounter with a sliding window
// backed by a Redis sorted set. Each attempt is a member scored by its
// timestamp; attempts older than the window are pruned before counting.
type AttemptCounter struct {
	client *redis.Client
}

// NewAttemptCounter creates a Redis-backed attempt counter.
func NewAttemptCounter(client *redis.Client) *AttemptCounter {
	return &AttemptCounter{client: client}
}

// Allow records an attempt for key and reports whether it fits the limit.
func (c *AttemptCounter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	now := time.Now()
	redisKey := keyPrefix + key
	windowStart := now.Add(-window).UnixNano()

	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window+time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit pipeline: %w", err)
	}

	count := countCmd.Val()
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
