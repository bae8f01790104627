package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// CouponRepository implements coupon data operations
type CouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// Create creates a coupon. Codes are stored upper case.
func (r *CouponRepository) Create(ctx context.Context, c *entities.Coupon) error {
	now := time.Now()
	c.ID = ensureID(c.ID)
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.CreatedAt, c.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(couponToModel(c)).Error
}

// GetByID gets a coupon by ID
func (r *CouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	var m models.Coupon
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return couponToEntity(&m), nil
}

// GetByCode gets a live coupon by code, case-insensitively
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	var m models.Coupon
	if err := GetDB(ctx, r.db).Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return couponToEntity(&m), nil
}

// Update updates a coupon
func (r *CouponRepository) Update(ctx context.Context, c *entities.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Coupon{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"code":                 c.Code,
		"description":          c.Description,
		"type":                 string(c.Type),
		"value":                c.Value,
		"min_order_amount":     c.MinOrderAmount,
		"max_discount_amount":  c.MaxDiscountAmount,
		"usage_limit":          c.UsageLimit.Ptr(),
		"usage_limit_per_user": c.UsageLimitPerUser.Ptr(),
		"starts_at":            c.StartsAt.Ptr(),
		"expires_at":           c.ExpiresAt.Ptr(),
		"is_active":            c.IsActive,
		"category_ids":         uuidsToArray(c.CategoryIDs),
		"product_ids":          uuidsToArray(c.ProductIDs),
		"updated_at":           c.UpdatedAt,
	}))
}

// Delete soft deletes a coupon
func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Coupon{}, "id = ?", id))
}

// List lists coupons newest first
func (r *CouponRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Coupon, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Coupon{})
	if strings.TrimSpace(search) != "" {
		term := likeTerm(search)
		query = query.Where("LOWER(code) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Coupon
	if err := paginate(query.Order("created_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Coupon, 0, len(ms))
	for i := range ms {
		items = append(items, couponToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListUsages lists redemptions of a coupon newest first
func (r *CouponRepository) ListUsages(ctx context.Context, couponID uuid.UUID, pagination utils.PaginationParams) ([]*entities.CouponUsage, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.CouponUsage{}).Where("coupon_id = ?", couponID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.CouponUsage
	if err := paginate(query.Order("created_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.CouponUsage, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.CouponUsage{
			ID:             m.ID,
			CouponID:       m.CouponID,
			UserID:         m.UserID,
			OrderID:        m.OrderID,
			DiscountAmount: m.DiscountAmount,
			CreatedAt:      m.CreatedAt,
		})
	}
	return items, total, nil
}

// CountUsagesByUser counts redemptions of a coupon by one customer
func (r *CouponRepository) CountUsagesByUser(ctx context.Context, couponID, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count, err
}

// DeactivateExpired switches off active coupons whose expiry has passed
func (r *CouponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := GetDB(ctx, r.db).Model(&models.Coupon{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Updates(map[string]interface{}{"is_active": false, "updated_at": now})
	return result.RowsAffected, result.Error
}

func couponToModel(c *entities.Coupon) *models.Coupon {
	return &models.Coupon{
		ID:                c.ID,
		Code:              c.Code,
		Description:       c.Description,
		Type:              string(c.Type),
		Value:             c.Value,
		MinOrderAmount:    c.MinOrderAmount,
		MaxDiscountAmount: c.MaxDiscountAmount,
		UsageLimit:        c.UsageLimit.Ptr(),
		UsageLimitPerUser: c.UsageLimitPerUser.Ptr(),
		UsedCount:         c.UsedCount,
		StartsAt:          c.StartsAt.Ptr(),
		ExpiresAt:         c.ExpiresAt.Ptr(),
		IsActive:          c.IsActive,
		CategoryIDs:       uuidsToArray(c.CategoryIDs),
		ProductIDs:        uuidsToArray(c.ProductIDs),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func couponToEntity(m *models.Coupon) *entities.Coupon {
	return &entities.Coupon{
		ID:                m.ID,
		Code:              m.Code,
		Description:       m.Description,
		Type:              entities.CouponType(m.Type),
		Value:             m.Value,
		MinOrderAmount:    m.MinOrderAmount,
		MaxDiscountAmount: m.MaxDiscountAmount,
		UsageLimit:        null.IntFromPtr(m.UsageLimit),
		UsageLimitPerUser: null.IntFromPtr(m.UsageLimitPerUser),
		UsedCount:         m.UsedCount,
		StartsAt:          null.TimeFromPtr(m.StartsAt),
		ExpiresAt:         null.TimeFromPtr(m.ExpiresAt),
		IsActive:          m.IsActive,
		CategoryIDs:       arrayToUUIDs(m.CategoryIDs),
		ProductIDs:        arrayToUUIDs(m.ProductIDs),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func uuidsToArray(ids []uuid.UUID) pq.StringArray {
	arr := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, id.String())
	}
	return arr
}

// arrayToUUIDs drops entries that do not parse
func arrayToUUIDs(arr pq.StringArray) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(arr))
	for _, s := range arr {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// DealRepository implements deal data operations
type DealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// Create creates a deal
func (r *DealRepository) Create(ctx context.Context, d *entities.Deal) error {
	now := time.Now()
	d.ID = ensureID(d.ID)
	d.CreatedAt, d.UpdatedAt = now, now
	return GetDB(ctx, r.db).Create(&models.Deal{
		ID:            d.ID,
		ProductID:     d.ProductID,
		Title:         d.Title,
		DiscountType:  string(d.DiscountType),
		DiscountValue: d.DiscountValue,
		StartsAt:      d.StartsAt,
		EndsAt:        d.EndsAt,
		IsActive:      d.IsActive,
		Priority:      d.Priority,
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

// GetByID gets a deal by ID
func (r *DealRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Deal, error) {
	var m models.Deal
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return dealToEntity(&m), nil
}

// Update updates a deal
func (r *DealRepository) Update(ctx context.Context, d *entities.Deal) error {
	d.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Deal{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
		"product_id":     d.ProductID,
		"title":          d.Title,
		"discount_type":  string(d.DiscountType),
		"discount_value": d.DiscountValue,
		"starts_at":      d.StartsAt,
		"ends_at":        d.EndsAt,
		"is_active":      d.IsActive,
		"priority":       d.Priority,
		"updated_at":     d.UpdatedAt,
	}))
}

// Delete soft deletes a deal
func (r *DealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Deal{}, "id = ?", id))
}

// List lists deals, soonest ending first
func (r *DealRepository) List(ctx context.Context, filter entities.DealFilter, pagination utils.PaginationParams) ([]*entities.Deal, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.Deal{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.ActiveOnly {
		at := filter.At
		if at.IsZero() {
			at = time.Now()
		}
		query = query.Where("is_active = ? AND starts_at <= ? AND ends_at > ?", true, at, at)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ms []models.Deal
	if err := paginate(query.Order("ends_at, priority DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	items := make([]*entities.Deal, 0, len(ms))
	for i := range ms {
		items = append(items, dealToEntity(&ms[i]))
	}
	return items, total, nil
}

// ListLiveForProduct returns the deals running for a product at now
func (r *DealRepository) ListLiveForProduct(ctx context.Context, productID uuid.UUID, now time.Time) ([]*entities.Deal, error) {
	var ms []models.Deal
	err := GetDB(ctx, r.db).
		Where("product_id = ? AND is_active = ? AND starts_at <= ? AND ends_at > ?", productID, true, now, now).
		Order("priority DESC, created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Deal, 0, len(ms))
	for i := range ms {
		items = append(items, dealToEntity(&ms[i]))
	}
	return items, nil
}

// DeactivateEnded switches off active deals whose window has closed
func (r *DealRepository) DeactivateEnded(ctx context.Context, now time.Time) (int64, error) {
	result := GetDB(ctx, r.db).Model(&models.Deal{}).
		Where("is_active = ? AND ends_at <= ?", true, now).
		Updates(map[string]interface{}{"is_active": false, "updated_at": now})
	return result.RowsAffected, result.Error
}

func dealToEntity(m *models.Deal) *entities.Deal {
	return &entities.Deal{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Title:         m.Title,
		DiscountType:  entities.DealDiscountType(m.DiscountType),
		DiscountValue: m.DiscountValue,
		StartsAt:      m.StartsAt,
		EndsAt:        m.EndsAt,
		IsActive:      m.IsActive,
		Priority:      m.Priority,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
