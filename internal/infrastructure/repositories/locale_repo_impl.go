package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// CurrencyRepository implements currency data operations
type CurrencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

// Create creates a currency. Codes are stored upper case.
func (r *CurrencyRepository) Create(ctx context.Context, c *entities.Currency) error {
	now := time.Now()
	c.ID = ensureID(c.ID)
	c.Code = strings.ToUpper(c.Code)
	c.CreatedAt, c.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Currency{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		Symbol:        c.Symbol,
		ExchangeRate:  c.ExchangeRate,
		DecimalPlaces: c.DecimalPlaces,
		IsDefault:     c.IsDefault,
		IsActive:      c.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

// GetByID gets a currency by ID
func (r *CurrencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Currency, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByCode gets a currency by ISO code
func (r *CurrencyRepository) GetByCode(ctx context.Context, code string) (*entities.Currency, error) {
	return r.first(ctx, "code = ?", strings.ToUpper(code))
}

// GetDefault gets the default currency
func (r *CurrencyRepository) GetDefault(ctx context.Context) (*entities.Currency, error) {
	return r.first(ctx, "is_default = ?", true)
}

func (r *CurrencyRepository) first(ctx context.Context, cond string, arg interface{}) (*entities.Currency, error) {
	var m models.Currency
	if err := GetDB(ctx, r.db).Where(cond, arg).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return currencyToEntity(&m), nil
}

// Update updates a currency
func (r *CurrencyRepository) Update(ctx context.Context, c *entities.Currency) error {
	c.Code = strings.ToUpper(c.Code)
	c.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Currency{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"code":           c.Code,
		"name":           c.Name,
		"symbol":         c.Symbol,
		"exchange_rate":  c.ExchangeRate,
		"decimal_places": c.DecimalPlaces,
		"is_default":     c.IsDefault,
		"is_active":      c.IsActive,
		"updated_at":     c.UpdatedAt,
	}))
}

// Delete deletes a currency
func (r *CurrencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Currency{}, "id = ?", id))
}

// List lists currencies, default first
func (r *CurrencyRepository) List(ctx context.Context) ([]*entities.Currency, error) {
	var ms []models.Currency
	if err := GetDB(ctx, r.db).Order("is_default DESC, code").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Currency, 0, len(ms))
	for i := range ms {
		items = append(items, currencyToEntity(&ms[i]))
	}
	return items, nil
}

// Count counts currencies
func (r *CurrencyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Currency{}).Count(&count).Error
	return count, err
}

// ClearDefault unsets the default flag on every currency
func (r *CurrencyRepository) ClearDefault(ctx context.Context) error {
	return GetDB(ctx, r.db).Model(&models.Currency{}).
		Where("is_default = ?", true).
		Updates(map[string]interface{}{"is_default": false, "updated_at": time.Now()}).Error
}

func currencyToEntity(m *models.Currency) *entities.Currency {
	return &entities.Currency{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		Symbol:        m.Symbol,
		ExchangeRate:  m.ExchangeRate,
		DecimalPlaces: m.DecimalPlaces,
		IsDefault:     m.IsDefault,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// LanguageRepository implements language data operations
type LanguageRepository struct {
	db *gorm.DB
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

// Create creates a language
func (r *LanguageRepository) Create(ctx context.Context, l *entities.Language) error {
	now := time.Now()
	l.ID = ensureID(l.ID)
	if l.Direction == "" {
		l.Direction = entities.DirectionLTR
	}
	l.CreatedAt, l.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Language{
		ID:         l.ID,
		Code:       l.Code,
		Name:       l.Name,
		NativeName: l.NativeName,
		Direction:  string(l.Direction),
		IsDefault:  l.IsDefault,
		IsActive:   l.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error
}

// GetByID gets a language by ID
func (r *LanguageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Language, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByCode gets a language by locale code
func (r *LanguageRepository) GetByCode(ctx context.Context, code string) (*entities.Language, error) {
	return r.first(ctx, "code = ?", code)
}

// GetDefault gets the default language
func (r *LanguageRepository) GetDefault(ctx context.Context) (*entities.Language, error) {
	return r.first(ctx, "is_default = ?", true)
}

func (r *LanguageRepository) first(ctx context.Context, cond string, arg interface{}) (*entities.Language, error) {
	var m models.Language
	if err := GetDB(ctx, r.db).Where(cond, arg).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return languageToEntity(&m), nil
}

// Update updates a language
func (r *LanguageRepository) Update(ctx context.Context, l *entities.Language) error {
	l.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Language{}).Where("id = ?", l.ID).Updates(map[string]interface{}{
		"code":        l.Code,
		"name":        l.Name,
		"native_name": l.NativeName,
		"direction":   string(l.Direction),
		"is_default":  l.IsDefault,
		"is_active":   l.IsActive,
		"updated_at":  l.UpdatedAt,
	}))
}

// Delete deletes a language
func (r *LanguageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Language{}, "id = ?", id))
}

// List lists languages, default first
func (r *LanguageRepository) List(ctx context.Context) ([]*entities.Language, error) {
	var ms []models.Language
	if err := GetDB(ctx, r.db).Order("is_default DESC, code").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Language, 0, len(ms))
	for i := range ms {
		items = append(items, languageToEntity(&ms[i]))
	}
	return items, nil
}

// Count counts languages
func (r *LanguageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Language{}).Count(&count).Error
	return count, err
}

// ClearDefault unsets the default flag on every language
func (r *LanguageRepository) ClearDefault(ctx context.Context) error {
	return GetDB(ctx, r.db).Model(&models.Language{}).
		Where("is_default = ?", true).
		Updates(map[string]interface{}{"is_default": false, "updated_at": time.Now()}).Error
}

func languageToEntity(m *models.Language) *entities.Language {
	return &entities.Language{
		ID:         m.ID,
		Code:       m.Code,
		Name:       m.Name,
		NativeName: m.NativeName,
		Direction:  entities.TextDirection(m.Direction),
		IsDefault:  m.IsDefault,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TranslationRepository implements translation data operations
type TranslationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository creates a new translation repository
func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

// Create creates a translation
func (r *TranslationRepository) Create(ctx context.Context, t *entities.Translation) error {
	now := time.Now()
	t.ID = ensureID(t.ID)
	t.CreatedAt, t.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Translation{
		ID:        t.ID,
		Group:     t.Group,
		Key:       t.Key,
		Locale:    t.Locale,
		Value:     t.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// GetByID gets a translation by ID
func (r *TranslationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Translation, error) {
	var m models.Translation
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return translationToEntity(&m), nil
}

// GetByKey gets the translation of group.key in locale
func (r *TranslationRepository) GetByKey(ctx context.Context, group, key, locale string) (*entities.Translation, error) {
	var m models.Translation
	err := GetDB(ctx, r.db).
		Where("group_name = ? AND key = ? AND locale = ?", group, key, locale).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return translationToEntity(&m), nil
}

// Update updates a translation
func (r *TranslationRepository) Update(ctx context.Context, t *entities.Translation) error {
	t.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Translation{}).Where("id = ?", t.ID).Updates(map[string]interface{}{
		"group_name": t.Group,
		"key":        t.Key,
		"locale":     t.Locale,
		"value":      t.Value,
		"updated_at": t.UpdatedAt,
	}))
}

// Delete deletes a translation
func (r *TranslationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Translation{}, "id = ?", id))
}

// List lists translations by group and key
func (r *TranslationRepository) List(ctx context.Context, filter entities.TranslationFilter, pagination utils.PaginationParams) ([]*entities.Translation, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Translation{})
	if filter.Group != "" {
		query = query.Where("group_name = ?", filter.Group)
	}
	if filter.Locale != "" {
		query = query.Where("locale = ?", filter.Locale)
	}
	if strings.TrimSpace(filter.Search) != "" {
		term := likeTerm(filter.Search)
		query = query.Where("LOWER(key) LIKE ? OR LOWER(value) LIKE ?", term, term)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Translation
	if err := paginate(query.Order("group_name, key, locale"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Translation, 0, len(ms))
	for i := range ms {
		items = append(items, translationToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListByLocale returns every translation of a locale
func (r *TranslationRepository) ListByLocale(ctx context.Context, locale string) ([]*entities.Translation, error) {
	var ms []models.Translation
	if err := GetDB(ctx, r.db).Where("locale = ?", locale).Order("group_name, key").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Translation, 0, len(ms))
	for i := range ms {
		items = append(items, translationToEntity(&ms[i]))
	}
	return items, nil
}

func translationToEntity(m *models.Translation) *entities.Translation {
	return &entities.Translation{
		ID:        m.ID,
		Group:     m.Group,
		Key:       m.Key,
		Locale:    m.Locale,
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CmsPageRepository implements CMS page data operations
type CmsPageRepository struct {
	db *gorm.DB
}

// NewCmsPageRepository creates a new CMS page repository
func NewCmsPageRepository(db *gorm.DB) *CmsPageRepository {
	return &CmsPageRepository{db: db}
}

// Create creates a page
func (r *CmsPageRepository) Create(ctx context.Context, p *entities.CmsPage) error {
	now := time.Now()
	p.ID = ensureID(p.ID)
	if p.Status == "" {
		p.Status = entities.PageStatusDraft
	}
	p.CreatedAt, p.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.CmsPage{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Status:          string(p.Status),
		PublishedAt:     p.PublishedAt.Ptr(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error
}

// GetByID gets a page by ID
func (r *CmsPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CmsPage, error) {
	var m models.CmsPage
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return cmsPageToEntity(&m), nil
}

// Update updates a page, including its publication state
func (r *CmsPageRepository) Update(ctx context.Context, p *entities.CmsPage) error {
	p.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.CmsPage{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":            p.Title,
		"slug":             p.Slug,
		"content":          p.Content,
		"meta_title":       p.MetaTitle,
		"meta_description": p.MetaDescription,
		"status":           string(p.Status),
		"published_at":     p.PublishedAt.Ptr(),
		"updated_at":       p.UpdatedAt,
	}))
}

// Delete soft deletes a page
func (r *CmsPageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.CmsPage{}, "id = ?", id))
}

// List lists pages by most recently updated
func (r *CmsPageRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.CmsPage, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.CmsPage{})
	if strings.TrimSpace(search) != "" {
		term := likeTerm(search)
		query = query.Where("LOWER(title) LIKE ? OR LOWER(slug) LIKE ?", term, term)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.CmsPage
	if err := paginate(query.Order("updated_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.CmsPage, 0, len(ms))
	for i := range ms {
		items = append(items, cmsPageToEntity(&ms[i]))
	}
	return items, total, nil
}

// SlugExists reports whether another live page uses slug
func (r *CmsPageRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	return columnValueExists(GetDB(ctx, r.db), &models.CmsPage{}, "slug", slug, excludeID)
}

func cmsPageToEntity(m *models.CmsPage) *entities.CmsPage {
	return &entities.CmsPage{
		ID:              m.ID,
		Title:           m.Title,
		Slug:            m.Slug,
		Content:         m.Content,
		MetaTitle:       m.MetaTitle,
		MetaDescription: m.MetaDescription,
		Status:          entities.PageStatus(m.Status),
		PublishedAt:     null.TimeFromPtr(m.PublishedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
