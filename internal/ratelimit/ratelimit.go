// internal/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per fixed window in Redis.
type RateLimiter struct {
	redis *redis.Client
	now   func() time.Time
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{
		redis: client,
		now:   time.Now,
	}
}

// Result describes one Allow decision.
type Result struct {
	Allowed   bool
	Count     int
	Remaining int
	ResetAt   time.Time
}

func (rl *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	seconds := int64(window.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	now := rl.now().Unix()
	index := now / seconds
	windowKey := fmt.Sprintf("%s:%d", key, index)

	pipe := rl.redis.Pipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	count := int(incr.Val())
	return Result{
		Allowed:   count <= limit,
		Count:     count,
		Remaining: max(limit-count, 0),
		ResetAt:   time.Unix((index+1)*seconds, 0),
	}, nil
}
