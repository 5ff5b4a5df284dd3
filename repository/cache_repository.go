package repository

import (
	"context"
	"time"
)

// CacheRepository is the cache port for the product catalog. A zero ttl means
// the entry does not expire.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
