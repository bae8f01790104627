package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
)

// SettingRepository implements settings storage
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new settings repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// ListByGroup returns stored values of a group
func (r *SettingRepository) ListByGroup(ctx context.Context, group string) ([]*entities.Setting, error) {
	var ms []models.Setting
	if err := GetDB(ctx, r.db).Where("group_name = ?", group).Order("key").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Setting, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.Setting{Group: m.Group, Key: m.Key, Value: m.Value, UpdatedAt: m.UpdatedAt})
	}
	return items, nil
}

// Upsert inserts or replaces the value at (group, key)
func (r *SettingRepository) Upsert(ctx context.Context, setting *entities.Setting) error {
	setting.UpdatedAt = time.Now()
	m := &models.Setting{
		Group:     setting.Group,
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_name"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
}
