package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// TaxRateRepository implements tax rate data operations
type TaxRateRepository struct {
	db *gorm.DB
}

// NewTaxRateRepository creates a new tax rate repository
func NewTaxRateRepository(db *gorm.DB) *TaxRateRepository {
	return &TaxRateRepository{db: db}
}

// Create creates a tax rate
func (r *TaxRateRepository) Create(ctx context.Context, t *entities.TaxRate) error {
	now := time.Now()
	t.ID = ensureID(t.ID)
	t.CreatedAt, t.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.TaxRate{
		ID:        t.ID,
		Name:      t.Name,
		Rate:      t.Rate,
		IsActive:  t.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// GetByID gets a tax rate by ID
func (r *TaxRateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TaxRate, error) {
	var m models.TaxRate
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return taxRateToEntity(&m), nil
}

// Update updates a tax rate
func (r *TaxRateRepository) Update(ctx context.Context, t *entities.TaxRate) error {
	t.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.TaxRate{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"name":       t.Name,
		"rate":       t.Rate,
		"is_active":  t.IsActive,
		"updated_at": t.UpdatedAt,
	}))
}

// Delete deletes a tax rate
func (r *TaxRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.TaxRate{}, "id = ?", id))
}

// List lists tax rates by name
func (r *TaxRateRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRate, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.TaxRate{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.TaxRate
	if err := paginate(query.Order("name"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.TaxRate, 0, len(ms))
	for i := range ms {
		items = append(items, taxRateToEntity(&ms[i]))
	}
	return items, total, nil
}

// CountRules counts rules referencing a rate
func (r *TaxRateRepository) CountRules(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.TaxRule{}).Where("tax_rate_id = ?", id).Count(&count).Error
	return count, err
}

func taxRateToEntity(m *models.TaxRate) *entities.TaxRate {
	return &entities.TaxRate{
		ID:        m.ID,
		Name:      m.Name,
		Rate:      m.Rate,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TaxRuleRepository implements tax rule data operations
type TaxRuleRepository struct {
	db *gorm.DB
}

// NewTaxRuleRepository creates a new tax rule repository
func NewTaxRuleRepository(db *gorm.DB) *TaxRuleRepository {
	return &TaxRuleRepository{db: db}
}

// Create creates a tax rule. Country is stored upper case.
func (r *TaxRuleRepository) Create(ctx context.Context, t *entities.TaxRule) error {
	now := time.Now()
	t.ID = ensureID(t.ID)
	t.Country = strings.ToUpper(t.Country)
	t.CreatedAt, t.UpdatedAt = now, now
	return GetDB(ctx, r.db).Omit("TaxRate").Create(&models.TaxRule{
		ID:         t.ID,
		Name:       t.Name,
		TaxRateID:  t.TaxRateID,
		Country:    t.Country,
		State:      t.State,
		Postcode:   t.Postcode,
		CategoryID: t.CategoryID,
		Priority:   t.Priority,
		IsActive:   t.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error
}

// GetByID gets a tax rule with its rate
func (r *TaxRuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TaxRule, error) {
	var m models.TaxRule
	if err := GetDB(ctx, r.db).Preload("TaxRate").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return taxRuleToEntity(&m), nil
}

// Update updates a tax rule
func (r *TaxRuleRepository) Update(ctx context.Context, t *entities.TaxRule) error {
	t.Country = strings.ToUpper(t.Country)
	t.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.TaxRule{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"name":        t.Name,
		"tax_rate_id": t.TaxRateID,
		"country":     t.Country,
		"state":       t.State,
		"postcode":    t.Postcode,
		"category_id": t.CategoryID,
		"priority":    t.Priority,
		"is_active":   t.IsActive,
		"updated_at":  t.UpdatedAt,
	}))
}

// Delete deletes a tax rule
func (r *TaxRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.TaxRule{}, "id = ?", id))
}

// List lists tax rules, highest priority first
func (r *TaxRuleRepository) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRule, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.TaxRule{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.TaxRule
	if err := paginate(query.Preload("TaxRate").Order("priority DESC, name"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.TaxRule, 0, len(ms))
	for i := range ms {
		items = append(items, taxRuleToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListActive returns all active rules
func (r *TaxRuleRepository) ListActive(ctx context.Context) ([]*entities.TaxRule, error) {
	var ms []models.TaxRule
	err := GetDB(ctx, r.db).Preload("TaxRate").
		Where("is_active = ?", true).
		Order("priority DESC, created_at").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.TaxRule, 0, len(ms))
	for i := range ms {
		items = append(items, taxRuleToEntity(&ms[i]))
	}
	return items, nil
}

func taxRuleToEntity(m *models.TaxRule) *entities.TaxRule {
	rule := &entities.TaxRule{
		ID:         m.ID,
		Name:       m.Name,
		TaxRateID:  m.TaxRateID,
		Country:    m.Country,
		State:      m.State,
		Postcode:   m.Postcode,
		CategoryID: m.CategoryID,
		Priority:   m.Priority,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.TaxRate.ID != uuid.Nil {
		rule.Rate = taxRateToEntity(&m.TaxRate)
	}
	return rule
}
