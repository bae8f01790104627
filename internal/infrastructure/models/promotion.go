package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Coupon struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code              string              `gorm:"type:varchar(50);not null"`
	Description       string              `gorm:"type:varchar(255)"`
	Type              string              `gorm:"type:varchar(20);not null"`
	Value             decimal.Decimal     `gorm:"type:numeric(18,2);not null"`
	MinOrderAmount    decimal.Decimal     `gorm:"type:numeric(18,2);not null"`
	MaxDiscountAmount decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	UsageLimit        *int
	UsageLimitPerUser *int
	UsedCount         int `gorm:"not null"`
	StartsAt          *time.Time
	ExpiresAt         *time.Time     `gorm:"index"`
	IsActive          bool           `gorm:"not null"`
	CategoryIDs       pq.StringArray `gorm:"type:text[]"`
	ProductIDs        pq.StringArray `gorm:"type:text[]"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

type CouponUsage struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CouponID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_coupon_usages_coupon_user"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_coupon_usages_coupon_user"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CreatedAt      time.Time
}

type Deal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(150);not null"`
	DiscountType  string          `gorm:"type:varchar(20);not null"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	StartsAt      time.Time       `gorm:"not null"`
	EndsAt        time.Time       `gorm:"not null;index"`
	IsActive      bool            `gorm:"not null"`
	Priority      int             `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type TaxRate struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Rate      decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	IsActive  bool            `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaxRule struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(100);not null"`
	TaxRateID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Country    string     `gorm:"type:varchar(2);not null;index"`
	State      string     `gorm:"type:varchar(100)"`
	Postcode   string     `gorm:"type:varchar(20)"`
	CategoryID *uuid.UUID `gorm:"type:uuid"`
	Priority   int        `gorm:"not null"`
	IsActive   bool       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	TaxRate TaxRate `gorm:"foreignKey:TaxRateID;references:ID"`
}
