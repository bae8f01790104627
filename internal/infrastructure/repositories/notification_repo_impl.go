package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// NotificationTemplateRepository implements template data operations
type NotificationTemplateRepository struct {
	db *gorm.DB
}

// NewNotificationTemplateRepository creates a new template repository
func NewNotificationTemplateRepository(db *gorm.DB) *NotificationTemplateRepository {
	return &NotificationTemplateRepository{db: db}
}

// Create creates a template
func (r *NotificationTemplateRepository) Create(ctx context.Context, t *entities.NotificationTemplate) error {
	now := time.Now()
	t.ID = ensureID(t.ID)
	t.CreatedAt, t.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.NotificationTemplate{
		ID:        t.ID,
		Event:     t.Event,
		Channel:   string(t.Channel),
		Locale:    t.Locale,
		Subject:   t.Subject,
		Body:      t.Body,
		IsActive:  t.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// GetByID gets a template by ID
func (r *NotificationTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.NotificationTemplate, error) {
	var m models.NotificationTemplate
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return templateToEntity(&m), nil
}

// Find gets the template for an event, channel and locale
func (r *NotificationTemplateRepository) Find(ctx context.Context, event string, channel entities.NotificationChannel, locale string) (*entities.NotificationTemplate, error) {
	var m models.NotificationTemplate
	err := GetDB(ctx, r.db).
		Where("event = ? AND channel = ? AND locale = ?", event, string(channel), locale).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return templateToEntity(&m), nil
}

// Update updates a template
func (r *NotificationTemplateRepository) Update(ctx context.Context, t *entities.NotificationTemplate) error {
	t.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.NotificationTemplate{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"event":      t.Event,
		"channel":    string(t.Channel),
		"locale":     t.Locale,
		"subject":    t.Subject,
		"body":       t.Body,
		"is_active":  t.IsActive,
		"updated_at": t.UpdatedAt,
	}))
}

// Delete deletes a template
func (r *NotificationTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.NotificationTemplate{}, "id = ?", id))
}

// List lists templates, optionally for one event
func (r *NotificationTemplateRepository) List(ctx context.Context, event string, pagination utils.PaginationParams) ([]*entities.NotificationTemplate, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.NotificationTemplate{})
	if event != "" {
		query = query.Where("event = ?", event)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.NotificationTemplate
	if err := paginate(query.Order("event, channel, locale"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.NotificationTemplate, 0, len(ms))
	for i := range ms {
		items = append(items, templateToEntity(&ms[i]))
	}
	return items, total, nil
}

func templateToEntity(m *models.NotificationTemplate) *entities.NotificationTemplate {
	return &entities.NotificationTemplate{
		ID:        m.ID,
		Event:     m.Event,
		Channel:   entities.NotificationChannel(m.Channel),
		Locale:    m.Locale,
		Subject:   m.Subject,
		Body:      m.Body,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NotificationLogRepository implements notification log operations
type NotificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository creates a new notification log repository
func NewNotificationLogRepository(db *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

// Create records a delivery attempt
func (r *NotificationLogRepository) Create(ctx context.Context, l *entities.NotificationLog) error {
	l.ID = ensureID(l.ID)
	if l.SentAt.IsZero() {
		l.SentAt = time.Now()
	}
	return GetDB(ctx, r.db).Create(&models.NotificationLog{
		ID:         l.ID,
		TemplateID: l.TemplateID,
		Channel:    string(l.Channel),
		Recipient:  l.Recipient,
		Subject:    l.Subject,
		Status:     string(l.Status),
		Error:      l.Error,
		SentAt:     l.SentAt,
	}).Error
}

// List lists delivery attempts newest first
func (r *NotificationLogRepository) List(ctx context.Context, filter entities.NotificationLogFilter, pagination utils.PaginationParams) ([]*entities.NotificationLog, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.NotificationLog{})
	if filter.Channel != "" {
		query = query.Where("channel = ?", string(filter.Channel))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.NotificationLog
	if err := paginate(query.Order("sent_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.NotificationLog, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.NotificationLog{
			ID:         m.ID,
			TemplateID: m.TemplateID,
			Channel:    entities.NotificationChannel(m.Channel),
			Recipient:  m.Recipient,
			Subject:    m.Subject,
			Status:     entities.NotificationStatus(m.Status),
			Error:      m.Error,
			SentAt:     m.SentAt,
		})
	}
	return items, total, nil
}

// ProviderRepository implements provider and credential operations
type ProviderRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// Create creates a provider
func (r *ProviderRepository) Create(ctx context.Context, p *entities.Provider) error {
	now := time.Now()
	p.ID = ensureID(p.ID)
	if p.Environment == "" {
		p.Environment = entities.EnvironmentSandbox
	}
	p.CreatedAt, p.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Provider{
		ID:             p.ID,
		Type:           string(p.Type),
		Code:           p.Code,
		Name:           p.Name,
		Environment:    string(p.Environment),
		IsEnabled:      p.IsEnabled,
		Config:         p.Config,
		LastTestedAt:   p.LastTestedAt.Ptr(),
		LastTestStatus: p.LastTestStatus.Ptr(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}).Error
}

// GetByID gets a provider by ID
func (r *ProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Provider, error) {
	var m models.Provider
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return providerToEntity(&m), nil
}

// GetByTypeAndCode gets a provider by its natural key
func (r *ProviderRepository) GetByTypeAndCode(ctx context.Context, providerType entities.ProviderType, code string) (*entities.Provider, error) {
	var m models.Provider
	if err := GetDB(ctx, r.db).Where("type = ? AND code = ?", string(providerType), code).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return providerToEntity(&m), nil
}

// Update updates a provider including its last test outcome
func (r *ProviderRepository) Update(ctx context.Context, p *entities.Provider) error {
	p.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Provider{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"code":             p.Code,
		"name":             p.Name,
		"environment":      string(p.Environment),
		"is_enabled":       p.IsEnabled,
		"config":           p.Config,
		"last_tested_at":   p.LastTestedAt.Ptr(),
		"last_test_status": p.LastTestStatus.Ptr(),
		"updated_at":       p.UpdatedAt,
	}))
}

// Delete removes a provider and its credentials
func (r *ProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("provider_id = ?", id).Delete(&models.ProviderSecret{}).Error; err != nil {
		return err
	}
	return checkAffected(db.Delete(&models.Provider{}, "id = ?", id))
}

// List lists providers, optionally of one type
func (r *ProviderRepository) List(ctx context.Context, providerType entities.ProviderType, pagination utils.PaginationParams) ([]*entities.Provider, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Provider{})
	if providerType != "" {
		query = query.Where("type = ?", string(providerType))
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Provider
	if err := paginate(query.Order("type, name"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Provider, 0, len(ms))
	for i := range ms {
		items = append(items, providerToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListSecrets returns the encrypted credentials of a provider
func (r *ProviderRepository) ListSecrets(ctx context.Context, providerID uuid.UUID) ([]*entities.ProviderSecret, error) {
	var ms []models.ProviderSecret
	if err := GetDB(ctx, r.db).Where("provider_id = ?", providerID).Order("key").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.ProviderSecret, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.ProviderSecret{
			ID:             m.ID,
			ProviderID:     m.ProviderID,
			Key:            m.Key,
			ValueEncrypted: m.ValueEncrypted,
			CreatedAt:      m.CreatedAt,
			UpdatedAt:      m.UpdatedAt,
		})
	}
	return items, nil
}

// UpsertSecret stores a credential, replacing any previous value for the key
func (r *ProviderRepository) UpsertSecret(ctx context.Context, s *entities.ProviderSecret) error {
	now := time.Now()
	s.ID = ensureID(s.ID)
	s.CreatedAt, s.UpdatedAt = now, now
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value_encrypted", "updated_at"}),
	}).Create(&models.ProviderSecret{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		Key:            s.Key,
		ValueEncrypted: s.ValueEncrypted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}).Error
}

// DeleteSecret removes one credential
func (r *ProviderRepository) DeleteSecret(ctx context.Context, providerID uuid.UUID, key string) error {
	return checkAffected(GetDB(ctx, r.db).Where("provider_id = ? AND key = ?", providerID, key).Delete(&models.ProviderSecret{}))
}

func providerToEntity(m *models.Provider) *entities.Provider {
	return &entities.Provider{
		ID:             m.ID,
		Type:           entities.ProviderType(m.Type),
		Code:           m.Code,
		Name:           m.Name,
		Environment:    entities.ProviderEnvironment(m.Environment),
		IsEnabled:      m.IsEnabled,
		Config:         m.Config,
		LastTestedAt:   null.TimeFromPtr(m.LastTestedAt),
		LastTestStatus: null.StringFromPtr(m.LastTestStatus),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
