package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// DecimalSetting reads a decimal setting
type DecimalSetting interface {
	GetDecimal(ctx context.Context, group, key string) (decimal.Decimal, error)
}

// CouponUsecase manages coupons and previews their discounts
type CouponUsecase struct {
	couponRepo repositories.CouponRepository
	uow        repositories.UnitOfWork
	audit      *AuditService
	settings   DecimalSetting
	now        func() time.Time
}

// NewCouponUsecase creates a new coupon usecase. settings may be nil, in which
// case previews use the shipping of the submitted cart as is.
func NewCouponUsecase(couponRepo repositories.CouponRepository, uow repositories.UnitOfWork, audit *AuditService, settings DecimalSetting) *CouponUsecase {
	return &CouponUsecase{couponRepo: couponRepo, uow: uow, audit: audit, settings: settings, now: time.Now}
}

func (u *CouponUsecase) ListCoupons(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Coupon, int64, error) {
	return u.couponRepo.List(ctx, search, pagination)
}

func (u *CouponUsecase) GetCoupon(ctx context.Context, id uuid.UUID) (*entities.Coupon, error) {
	return u.couponRepo.GetByID(ctx, id)
}

// ListUsages lists checkout redemptions of a coupon
func (u *CouponUsecase) ListUsages(ctx context.Context, id uuid.UUID, pagination utils.PaginationParams) ([]*entities.CouponUsage, int64, error) {
	if _, err := u.couponRepo.GetByID(ctx, id); err != nil {
		return nil, 0, err
	}
	return u.couponRepo.ListUsages(ctx, id, pagination)
}

// CreateCoupon creates a coupon; codes are stored upper-cased
func (u *CouponUsecase) CreateCoupon(ctx context.Context, input *entities.CouponInput) (*entities.Coupon, error) {
	coupon := &entities.Coupon{IsActive: boolOr(input.IsActive, true)}
	if err := u.applyInput(ctx, coupon, input, nil); err != nil {
		return nil, err
	}
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.couponRepo.Create(ctx, coupon); err != nil {
			return err
		}
		return u.audit.Record(ctx, "coupons", entities.AuditActionCreated, "coupon", coupon.ID.String(), nil, coupon)
	})
	if err != nil {
		return nil, err
	}
	return coupon, nil
}

func (u *CouponUsecase) UpdateCoupon(ctx context.Context, id uuid.UUID, input *entities.CouponInput) (*entities.Coupon, error) {
	coupon, err := u.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(coupon)
	if err := u.applyInput(ctx, coupon, input, &id); err != nil {
		return nil, err
	}
	coupon.IsActive = boolOr(input.IsActive, coupon.IsActive)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.couponRepo.Update(ctx, coupon); err != nil {
			return err
		}
		return u.audit.Record(ctx, "coupons", entities.AuditActionUpdated, "coupon", id.String(), before, coupon)
	})
	if err != nil {
		return nil, err
	}
	return coupon, nil
}

func (u *CouponUsecase) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	coupon, err := u.couponRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.couponRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "coupons", entities.AuditActionDeleted, "coupon", id.String(), coupon, nil)
	})
}

// Preview evaluates a coupon against a sample cart without redeeming it
func (u *CouponUsecase) Preview(ctx context.Context, id uuid.UUID, cart *entities.Cart) (*entities.DiscountResult, error) {
	coupon, err := u.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var usage int64
	if cart.UserID != nil && coupon.UsageLimitPerUser.Valid {
		if usage, err = u.couponRepo.CountUsagesByUser(ctx, id, *cart.UserID); err != nil {
			return nil, err
		}
	}
	return CalculateDiscount(coupon, u.withStoreShipping(ctx, cart), u.now(), usage)
}

// withStoreShipping charges a cart submitted without shipping the store's
// default fee, unless the cart reaches the free shipping threshold.
func (u *CouponUsecase) withStoreShipping(ctx context.Context, cart *entities.Cart) *entities.Cart {
	if u.settings == nil || !cart.Shipping.IsZero() {
		return cart
	}
	fee, err := u.settings.GetDecimal(ctx, "shipping", "default_fee")
	if err != nil {
		logger.Warn(ctx, "Default shipping fee setting unavailable", zap.Error(err))
		return cart
	}
	threshold, err := u.settings.GetDecimal(ctx, "shipping", "free_shipping_threshold")
	if err != nil {
		logger.Warn(ctx, "Free shipping threshold setting unavailable", zap.Error(err))
		return cart
	}
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if threshold.IsPositive() && subtotal.GreaterThanOrEqual(threshold) {
		return cart
	}
	priced := *cart
	priced.Shipping = fee
	return &priced
}

// DeactivateExpired switches off coupons past their expiry. A sweep that
// changed anything writes one audit entry.
func (u *CouponUsecase) DeactivateExpired(ctx context.Context) (int64, error) {
	now := u.now()
	var n int64
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if n, err = u.couponRepo.DeactivateExpired(ctx, now); err != nil || n == 0 {
			return err
		}
		return u.audit.Record(ctx, "coupons", entities.AuditActionExpired, "coupon", "", nil, expirySweep{Deactivated: n, Cutoff: now})
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (u *CouponUsecase) applyInput(ctx context.Context, c *entities.Coupon, input *entities.CouponInput, excludeID *uuid.UUID) error {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	fields := map[string]string{}
	if code == "" {
		fields["code"] = "is required"
	}
	switch input.Type {
	case entities.CouponTypePercentage:
		if !input.Value.IsPositive() || input.Value.GreaterThan(hundred) {
			fields["value"] = "must be greater than 0 and at most 100"
		}
	case entities.CouponTypeFixed:
		if !input.Value.IsPositive() {
			fields["value"] = "must be greater than 0"
		}
	case entities.CouponTypeFreeShipping:
	default:
		fields["type"] = "must be percentage, fixed or free_shipping"
	}
	if input.MinOrderAmount.IsNegative() {
		fields["minOrderAmount"] = "must not be negative"
	}
	if input.MaxDiscountAmount.Valid && !input.MaxDiscountAmount.Decimal.IsPositive() {
		fields["maxDiscountAmount"] = "must be greater than 0"
	}
	if input.UsageLimit.Valid && input.UsageLimit.Int < 1 {
		fields["usageLimit"] = "must be at least 1"
	}
	if input.UsageLimitPerUser.Valid && input.UsageLimitPerUser.Int < 1 {
		fields["usageLimitPerUser"] = "must be at least 1"
	}
	if input.StartsAt.Valid && input.ExpiresAt.Valid && !input.ExpiresAt.Time.After(input.StartsAt.Time) {
		fields["expiresAt"] = "must be after startsAt"
	}
	if len(fields) > 0 {
		return domainerrors.ValidationFailed(fields)
	}

	existing, err := u.couponRepo.GetByCode(ctx, code)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return domainerrors.Conflict("coupon code already in use")
	}

	c.Code = code
	c.Description = input.Description
	c.Type = input.Type
	c.Value = input.Value
	if input.Type == entities.CouponTypeFreeShipping {
		c.Value = decimal.Zero
	}
	c.MinOrderAmount = input.MinOrderAmount
	c.MaxDiscountAmount = input.MaxDiscountAmount
	c.UsageLimit = input.UsageLimit
	c.UsageLimitPerUser = input.UsageLimitPerUser
	c.StartsAt = input.StartsAt
	c.ExpiresAt = input.ExpiresAt
	c.CategoryIDs = input.CategoryIDs
	c.ProductIDs = input.ProductIDs
	return nil
}

// CalculateDiscount applies a coupon to a cart at now. userUsage is how many
// times the cart's customer has already redeemed the coupon.
func CalculateDiscount(c *entities.Coupon, cart *entities.Cart, now time.Time, userUsage int64) (*entities.DiscountResult, error) {
	switch {
	case !c.IsActive:
		return nil, notApplicable("coupon is inactive")
	case c.StartsAt.Valid && now.Before(c.StartsAt.Time):
		return nil, notApplicable("coupon is not active yet")
	case c.ExpiresAt.Valid && !now.Before(c.ExpiresAt.Time):
		return nil, notApplicable("coupon has expired")
	case c.UsageLimit.Valid && c.UsedCount >= c.UsageLimit.Int:
		return nil, notApplicable("coupon usage limit reached")
	case c.UsageLimitPerUser.Valid && userUsage >= int64(c.UsageLimitPerUser.Int):
		return nil, notApplicable("coupon already used the maximum number of times by this customer")
	}

	eligible := decimal.Zero
	for _, line := range cart.Lines {
		if line.Quantity <= 0 || !inScope(c, line) {
			continue
		}
		eligible = eligible.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if !eligible.IsPositive() {
		return nil, notApplicable("no items in the cart qualify for this coupon")
	}
	if eligible.LessThan(c.MinOrderAmount) {
		return nil, notApplicable("order does not reach the minimum amount of " + c.MinOrderAmount.StringFixed(2))
	}

	result := &entities.DiscountResult{EligibleSubtotal: eligible.Round(2)}
	switch c.Type {
	case entities.CouponTypePercentage:
		discount := eligible.Mul(c.Value).Div(hundred)
		if c.MaxDiscountAmount.Valid && discount.GreaterThan(c.MaxDiscountAmount.Decimal) {
			discount = c.MaxDiscountAmount.Decimal
		}
		result.Discount = discount
	case entities.CouponTypeFixed:
		result.Discount = decimal.Min(c.Value, eligible)
	case entities.CouponTypeFreeShipping:
		result.Discount = cart.Shipping
		result.FreeShipping = true
	default:
		return nil, notApplicable("unknown coupon type")
	}
	// Round is half away from zero, which is half-up for non-negative amounts
	result.Discount = result.Discount.Round(2)
	return result, nil
}

// inScope reports whether a line is covered by the coupon. An unscoped
// coupon covers every line.
func inScope(c *entities.Coupon, line entities.CartLine) bool {
	if len(c.ProductIDs) == 0 && len(c.CategoryIDs) == 0 {
		return true
	}
	for _, id := range c.ProductIDs {
		if id == line.ProductID {
			return true
		}
	}
	if line.CategoryID != nil {
		for _, id := range c.CategoryIDs {
			if id == *line.CategoryID {
				return true
			}
		}
	}
	return false
}

func notApplicable(reason string) error {
	return domainerrors.Unprocessable(reason, domainerrors.ErrCouponNotApplicable)
}
