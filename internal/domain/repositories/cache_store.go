package repositories

import (
	"context"
	"time"
)

// CacheStore is the read-model cache invalidated after committed mutations
type CacheStore interface {
	// Get returns found=false on a cache miss
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
