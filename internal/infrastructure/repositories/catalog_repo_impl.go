package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// CategoryRepository implements category data operations
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a category
func (r *CategoryRepository) Create(ctx context.Context, c *entities.Category) error {
	now := time.Now()
	c.ID = ensureID(c.ID)
	c.CreatedAt, c.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(categoryToModel(c)).Error
}

// GetByID gets a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var m models.Category
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return categoryToEntity(&m), nil
}

// Update updates a category
func (r *CategoryRepository) Update(ctx context.Context, c *entities.Category) error {
	c.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Category{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":        c.Name,
		"slug":        c.Slug,
		"parent_id":   c.ParentID,
		"description": c.Description,
		"is_active":   c.IsActive,
		"sort_order":  c.SortOrder,
		"updated_at":  c.UpdatedAt,
	}))
}

// Delete soft deletes a category
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Category{}, "id = ?", id))
}

// List lists categories ordered by sort order then name
func (r *CategoryRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Category, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Category{})
	if strings.TrimSpace(search) != "" {
		term := likeTerm(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", term, term)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Category
	if err := paginate(query.Order("sort_order, name"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Category, 0, len(ms))
	for i := range ms {
		items = append(items, categoryToEntity(&ms[i]))
	}
	return items, total, nil
}

// SlugExists reports whether another live category uses slug
func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	return columnValueExists(GetDB(ctx, r.db), &models.Category{}, "slug", slug, excludeID)
}

// CountChildren counts direct children of a category
func (r *CategoryRepository) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

func categoryToModel(c *entities.Category) *models.Category {
	return &models.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		ParentID:    c.ParentID,
		Description: c.Description,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func categoryToEntity(m *models.Category) *entities.Category {
	return &entities.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		ParentID:    m.ParentID,
		Description: m.Description,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BrandRepository implements brand data operations
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a brand
func (r *BrandRepository) Create(ctx context.Context, b *entities.Brand) error {
	now := time.Now()
	b.ID = ensureID(b.ID)
	b.CreatedAt, b.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Brand{
		ID:        b.ID,
		Name:      b.Name,
		Slug:      b.Slug,
		LogoURL:   b.LogoURL,
		IsActive:  b.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// GetByID gets a brand by ID
func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return brandToEntity(&m), nil
}

// Update updates a brand
func (r *BrandRepository) Update(ctx context.Context, b *entities.Brand) error {
	b.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Brand{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":       b.Name,
		"slug":       b.Slug,
		"logo_url":   b.LogoURL,
		"is_active":  b.IsActive,
		"updated_at": b.UpdatedAt,
	}))
}

// Delete soft deletes a brand
func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Brand{}, "id = ?", id))
}

// List lists brands by name
func (r *BrandRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Brand, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Brand{})
	if strings.TrimSpace(search) != "" {
		query = query.Where("LOWER(name) LIKE ?", likeTerm(search))
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Brand
	if err := paginate(query.Order("name"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Brand, 0, len(ms))
	for i := range ms {
		items = append(items, brandToEntity(&ms[i]))
	}
	return items, total, nil
}

// SlugExists reports whether another live brand uses slug
func (r *BrandRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	return columnValueExists(GetDB(ctx, r.db), &models.Brand{}, "slug", slug, excludeID)
}

func brandToEntity(m *models.Brand) *entities.Brand {
	return &entities.Brand{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		LogoURL:   m.LogoURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a product
func (r *ProductRepository) Create(ctx context.Context, p *entities.Product) error {
	now := time.Now()
	p.ID = ensureID(p.ID)
	p.CreatedAt, p.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(productToModel(p)).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return productToEntity(&m), nil
}

// Update updates every editable product column except stock
func (r *ProductRepository) Update(ctx context.Context, p *entities.Product) error {
	p.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":             p.Name,
		"slug":             p.Slug,
		"sku":              p.SKU,
		"description":      p.Description,
		"price":            p.Price,
		"compare_at_price": p.CompareAtPrice,
		"cost_price":       p.CostPrice,
		"category_id":      p.CategoryID,
		"brand_id":         p.BrandID,
		"tax_rate_id":      p.TaxRateID,
		"is_active":        p.IsActive,
		"updated_at":       p.UpdatedAt,
	}))
}

// Delete soft deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Product{}, "id = ?", id))
}

// List lists products newest first
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Product{})
	if strings.TrimSpace(filter.Search) != "" {
		term := likeTerm(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", term, term)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Product
	if err := paginate(query.Order("created_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		items = append(items, productToEntity(&ms[i]))
	}
	return items, total, nil
}

// SlugExists reports whether another live product uses slug
func (r *ProductRepository) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	return columnValueExists(GetDB(ctx, r.db), &models.Product{}, "slug", slug, excludeID)
}

// SKUExists reports whether another live product uses sku
func (r *ProductRepository) SKUExists(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	return columnValueExists(GetDB(ctx, r.db), &models.Product{}, "sku", sku, excludeID)
}

// CountByCategory counts live products in a category
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// CountByBrand counts live products of a brand
func (r *ProductRepository) CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Product{}).Where("brand_id = ?", brandID).Count(&count).Error
	return count, err
}

// AdjustStock applies delta atomically; the guard keeps stock non-negative
func (r *ProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	db := GetDB(ctx, r.db)
	result := db.Model(&models.Product{}).
		Where("id = ? AND stock_quantity + ? >= 0", id, delta).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", delta),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return 0, err
		}
		return 0, domainerrors.ErrInsufficientStock
	}

	var m models.Product
	if err := db.Select("stock_quantity").Where("id = ?", id).First(&m).Error; err != nil {
		return 0, translateError(err)
	}
	return m.StockQuantity, nil
}

func productToModel(p *entities.Product) *models.Product {
	return &models.Product{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		SKU:            p.SKU,
		Description:    p.Description,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		CostPrice:      p.CostPrice,
		StockQuantity:  p.StockQuantity,
		CategoryID:     p.CategoryID,
		BrandID:        p.BrandID,
		TaxRateID:      p.TaxRateID,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func productToEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:             m.ID,
		Name:           m.Name,
		Slug:           m.Slug,
		SKU:            m.SKU,
		Description:    m.Description,
		Price:          m.Price,
		CompareAtPrice: m.CompareAtPrice,
		CostPrice:      m.CostPrice,
		StockQuantity:  m.StockQuantity,
		CategoryID:     m.CategoryID,
		BrandID:        m.BrandID,
		TaxRateID:      m.TaxRateID,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// StockRepository implements the stock ledger
type StockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// CreateAdjustment records a manual adjustment
func (r *StockRepository) CreateAdjustment(ctx context.Context, a *entities.StockAdjustment) error {
	a.ID = ensureID(a.ID)
	a.CreatedAt = time.Now()
	return GetDB(ctx, r.db).Create(&models.StockAdjustment{
		ID:        a.ID,
		ProductID: a.ProductID,
		Change:    a.Change,
		Reason:    string(a.Reason),
		Note:      a.Note,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
	}).Error
}

// CreateLedger appends a stock movement
func (r *StockRepository) CreateLedger(ctx context.Context, e *entities.StockLedger) error {
	e.ID = ensureID(e.ID)
	e.CreatedAt = time.Now()
	return GetDB(ctx, r.db).Create(&models.StockLedger{
		ID:            e.ID,
		ProductID:     e.ProductID,
		Change:        e.Change,
		BalanceAfter:  e.BalanceAfter,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}).Error
}

// ListLedger lists movements of a product newest first
func (r *StockRepository) ListLedger(ctx context.Context, productID uuid.UUID, pagination utils.PaginationParams) ([]*entities.StockLedger, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.StockLedger{}).Where("product_id = ?", productID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.StockLedger
	if err := paginate(query.Order("created_at DESC, id DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.StockLedger, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.StockLedger{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Change:        m.Change,
			BalanceAfter:  m.BalanceAfter,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items, total, nil
}
