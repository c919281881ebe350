package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amapara27/Horizon/internal/domain"
)

const defaultNewsTTL = 10 * time.Minute

// NewsCache implements domain.NewsCache with JSON-serialized results keyed by
// a hash of the search query. Only news retrievals are cached; events are
// always fetched fresh.
//
// Key schema:
//
//	news:{sha256(query)} - string value containing JSON
type NewsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewNewsCache creates a NewsCache backed by the given Client. A zero ttl
// means the 10 minute default.
func NewNewsCache(c *Client, ttl time.Duration) *NewsCache {
	if ttl <= 0 {
		ttl = defaultNewsTTL
	}
	return &NewsCache{rdb: c.rdb, ttl: ttl}
}

func newsKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "news:" + hex.EncodeToString(sum[:])
}

// Get retrieves a cached NewsResult for the query. It returns
// domain.ErrNotFound when the key does not exist.
func (nc *NewsCache) Get(ctx context.Context, query string) (domain.NewsResult, error) {
	data, err := nc.rdb.Get(ctx, newsKey(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewsResult{}, domain.ErrNotFound
		}
		return domain.NewsResult{}, fmt.Errorf("redis: get news %q: %w", query, err)
	}

	var res domain.NewsResult
	if err := json.Unmarshal(data, &res); err != nil {
		return domain.NewsResult{}, fmt.Errorf("redis: unmarshal news %q: %w", query, err)
	}
	return res, nil
}

// Set stores a NewsResult under the query with the configured TTL. Failed
// retrievals are not cached so a flapping provider gets retried.
func (nc *NewsCache) Set(ctx context.Context, query string, res domain.NewsResult) error {
	if res.Failed() {
		return nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("redis: marshal news %q: %w", query, err)
	}
	if err := nc.rdb.Set(ctx, newsKey(query), data, nc.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set news %q: %w", query, err)
	}
	return nil
}

// Compile-time interface check.
var _ domain.NewsCache = (*NewsCache)(nil)
