package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/metrics"
	"shop-admin.backend/pkg/utils"
)

// expirySweep is the audit snapshot of a bulk deactivation by a background job
type expirySweep struct {
	Deactivated int64     `json:"deactivated"`
	Cutoff      time.Time `json:"cutoff"`
}

// actorID returns the acting admin, if the request carried one
func actorID(ctx context.Context) *uuid.UUID {
	if a, ok := entities.ActorFromContext(ctx); ok && a.UserID != uuid.Nil {
		id := a.UserID
		return &id
	}
	return nil
}

// invalidate drops cache keys after a commit. The write already succeeded,
// so a cache failure is logged and not returned.
func invalidate(ctx context.Context, cache repositories.CacheStore, keys ...string) {
	if cache == nil || len(keys) == 0 {
		return
	}
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.Warn(ctx, "Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		return
	}
	for _, k := range keys {
		metrics.CacheInvalidationsTotal.WithLabelValues(metrics.KeyPrefix(k)).Inc()
	}
}

// readCache decodes a cached JSON value into dst. Misses and cache failures both report false.
func readCache(ctx context.Context, cache repositories.CacheStore, key string, dst interface{}) bool {
	if cache == nil {
		return false
	}
	raw, found, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx, "Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found && json.Unmarshal([]byte(raw), dst) == nil
}

func writeCache(ctx context.Context, cache repositories.CacheStore, key string, v interface{}, ttl time.Duration) {
	if cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, string(raw), ttl); err != nil {
		logger.Warn(ctx, "Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerrors.ErrNotFound)
}

// resolveSlug derives a slug from name when none is given and validates it
func resolveSlug(slug, name string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if !utils.IsSlug(slug) {
		return "", domainerrors.BadRequest("slug must contain only lowercase letters, digits and dashes")
	}
	return slug, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func cloneOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
