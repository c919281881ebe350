package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amapara27/Horizon/internal/domain"
)

// RateLimiter implements domain.RateLimiter with a fixed-window counter per
// upstream key. It bounds how many outbound calls Horizon makes to a given
// provider per window across all requests.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit calls per window for
// each key.
func NewRateLimiter(c *Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{rdb: c.rdb, limit: limit, window: window}
}

func rateLimitKey(key string) string { return "ratelimit:" + key }

// Allow reports whether another call to the keyed upstream may proceed in the
// current window. The INCR+EXPIRE pair runs in a pipeline so the window key
// always carries a TTL.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rateLimitKey(key)

	pipe := rl.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis: rate limit %s: %w", key, err)
	}

	return incr.Val() <= int64(rl.limit), nil
}

// Compile-time interface check.
var _ domain.RateLimiter = (*RateLimiter)(nil)
