package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// AuditLogRepository implements audit log storage
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *entities.AuditLog) error {
	entry.ID = ensureID(entry.ID)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m := &models.AuditLog{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Module:      entry.Module,
		Action:      entry.Action,
		SubjectType: entry.SubjectType,
		SubjectID:   entry.SubjectID,
		Before:      entry.Before,
		After:       entry.After,
		IPAddress:   entry.IPAddress,
		UserAgent:   entry.UserAgent,
		CreatedAt:   entry.CreatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByID gets an entry by ID
func (r *AuditLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AuditLog, error) {
	var m models.AuditLog
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return auditLogToEntity(&m), nil
}

// List returns entries newest first
func (r *AuditLogRepository) List(ctx context.Context, filter entities.AuditLogFilter, pagination utils.PaginationParams) ([]*entities.AuditLog, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.AuditLog{})
	if filter.Module != "" {
		query = query.Where("module = ?", filter.Module)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.SubjectType != "" {
		query = query.Where("subject_type = ?", filter.SubjectType)
	}
	if filter.SubjectID != "" {
		query = query.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.AuditLog
	if err := paginate(query.Order("created_at DESC, id DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.AuditLog, 0, len(ms))
	for i := range ms {
		items = append(items, auditLogToEntity(&ms[i]))
	}
	return items, total, nil
}

func auditLogToEntity(m *models.AuditLog) *entities.AuditLog {
	return &entities.AuditLog{
		ID:          m.ID,
		UserID:      m.UserID,
		Module:      m.Module,
		Action:      m.Action,
		SubjectType: m.SubjectType,
		SubjectID:   m.SubjectID,
		Before:      m.Before,
		After:       m.After,
		IPAddress:   m.IPAddress,
		UserAgent:   m.UserAgent,
		CreatedAt:   m.CreatedAt,
	}
}
