package repositories

import (
	"context"

	"shop-admin.backend/internal/domain/entities"
)

// SettingRepository stores settings values keyed by (group, key)
type SettingRepository interface {
	ListByGroup(ctx context.Context, group string) ([]*entities.Setting, error)
	Upsert(ctx context.Context, setting *entities.Setting) error
}
