package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// CouponType decides how the discount is computed
type CouponType string

const (
	CouponTypePercentage   CouponType = "percentage"
	CouponTypeFixed        CouponType = "fixed"
	CouponTypeFreeShipping CouponType = "free_shipping"
)

// Coupon is a redeemable discount code
type Coupon struct {
	ID                uuid.UUID           `json:"id"`
	Code              string              `json:"code"`
	Description       string              `json:"description"`
	Type              CouponType          `json:"type"`
	Value             decimal.Decimal     `json:"value"`
	MinOrderAmount    decimal.Decimal     `json:"minOrderAmount"`
	MaxDiscountAmount decimal.NullDecimal `json:"maxDiscountAmount"`
	UsageLimit        null.Int            `json:"usageLimit"`
	UsageLimitPerUser null.Int            `json:"usageLimitPerUser"`
	UsedCount         int                 `json:"usedCount"`
	StartsAt          null.Time           `json:"startsAt"`
	ExpiresAt         null.Time           `json:"expiresAt"`
	IsActive          bool                `json:"isActive"`
	CategoryIDs       []uuid.UUID         `json:"categoryIds"`
	ProductIDs        []uuid.UUID         `json:"productIds"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// CouponUsage records one redemption at checkout
type CouponUsage struct {
	ID             uuid.UUID       `json:"id"`
	CouponID       uuid.UUID       `json:"couponId"`
	UserID         uuid.UUID       `json:"userId"`
	OrderID        uuid.UUID       `json:"orderId"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// CouponInput represents input for creating or updating a coupon
type CouponInput struct {
	Code              string              `json:"code" binding:"required,max=50"`
	Description       string              `json:"description"`
	Type              CouponType          `json:"type" binding:"required"`
	Value             decimal.Decimal     `json:"value"`
	MinOrderAmount    decimal.Decimal     `json:"minOrderAmount"`
	MaxDiscountAmount decimal.NullDecimal `json:"maxDiscountAmount"`
	UsageLimit        null.Int            `json:"usageLimit"`
	UsageLimitPerUser null.Int            `json:"usageLimitPerUser"`
	StartsAt          null.Time           `json:"startsAt"`
	ExpiresAt         null.Time           `json:"expiresAt"`
	IsActive          *bool               `json:"isActive"`
	CategoryIDs       []uuid.UUID         `json:"categoryIds"`
	ProductIDs        []uuid.UUID         `json:"productIds"`
}

// CartLine is one line of a cart evaluated against a coupon
type CartLine struct {
	ProductID  uuid.UUID       `json:"productId"`
	CategoryID *uuid.UUID      `json:"categoryId"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
}

// Cart is the input of a discount calculation
type Cart struct {
	UserID   *uuid.UUID      `json:"userId"`
	Lines    []CartLine      `json:"lines"`
	Shipping decimal.Decimal `json:"shipping"`
}

// DiscountResult is the outcome of applying a coupon to a cart
type DiscountResult struct {
	EligibleSubtotal decimal.Decimal `json:"eligibleSubtotal"`
	Discount         decimal.Decimal `json:"discount"`
	FreeShipping     bool            `json:"freeShipping"`
}
