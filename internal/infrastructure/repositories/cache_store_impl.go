package repositories

import (
	"context"
	"time"

	"shop-admin.backend/pkg/redis"
)

// RedisCacheStore implements CacheStore on the shared redis client
type RedisCacheStore struct {
	prefix string
}

// NewRedisCacheStore creates a cache store whose keys are namespaced by prefix
func NewRedisCacheStore(prefix string) *RedisCacheStore {
	return &RedisCacheStore{prefix: prefix}
}

// Get reads a cached value; a missing key is not an error
func (s *RedisCacheStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := redis.Get(ctx, s.prefix+key)
	if redis.IsNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes a value with a ttl
func (s *RedisCacheStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return redis.Set(ctx, s.prefix+key, value, ttl)
}

// Delete removes keys
func (s *RedisCacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, s.prefix+k)
	}
	return redis.Del(ctx, full...)
}
