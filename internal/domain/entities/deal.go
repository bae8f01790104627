package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealDiscountType decides how the deal price is derived
type DealDiscountType string

const (
	DealDiscountPercentage DealDiscountType = "percentage"
	DealDiscountFixed      DealDiscountType = "fixed"
)

// Deal is a time-boxed price reduction on one product
type Deal struct {
	ID            uuid.UUID        `json:"id"`
	ProductID     uuid.UUID        `json:"productId"`
	Title         string           `json:"title"`
	DiscountType  DealDiscountType `json:"discountType"`
	DiscountValue decimal.Decimal  `json:"discountValue"`
	StartsAt      time.Time        `json:"startsAt"`
	EndsAt        time.Time        `json:"endsAt"`
	IsActive      bool             `json:"isActive"`
	Priority      int              `json:"priority"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// IsLive reports whether the deal applies at now
func (d *Deal) IsLive(now time.Time) bool {
	return d.IsActive && !now.Before(d.StartsAt) && now.Before(d.EndsAt)
}

// DealInput represents input for creating or updating a deal
type DealInput struct {
	ProductID     uuid.UUID        `json:"productId" binding:"required"`
	Title         string           `json:"title" binding:"required,max=150"`
	DiscountType  DealDiscountType `json:"discountType" binding:"required"`
	DiscountValue decimal.Decimal  `json:"discountValue"`
	StartsAt      time.Time        `json:"startsAt" binding:"required"`
	EndsAt        time.Time        `json:"endsAt" binding:"required"`
	IsActive      *bool            `json:"isActive"`
	Priority      int              `json:"priority"`
}

// DealFilter narrows deal listings
type DealFilter struct {
	ProductID  *uuid.UUID
	ActiveOnly bool
	At         time.Time
}
