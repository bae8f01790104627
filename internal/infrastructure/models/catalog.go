package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(150);not null"`
	Slug        string     `gorm:"type:varchar(150);not null"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Description string     `gorm:"type:text"`
	IsActive    bool       `gorm:"not null"`
	SortOrder   int        `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Slug      string    `gorm:"type:varchar(150);not null"`
	LogoURL   string    `gorm:"type:varchar(500)"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type Product struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name           string              `gorm:"type:varchar(255);not null"`
	Slug           string              `gorm:"type:varchar(255);not null"`
	SKU            string              `gorm:"column:sku;type:varchar(100);not null"`
	Description    string              `gorm:"type:text"`
	Price          decimal.Decimal     `gorm:"type:numeric(18,2);not null"`
	CompareAtPrice decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	CostPrice      decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	StockQuantity  int                 `gorm:"not null"`
	CategoryID     *uuid.UUID          `gorm:"type:uuid;index"`
	BrandID        *uuid.UUID          `gorm:"type:uuid;index"`
	TaxRateID      *uuid.UUID          `gorm:"type:uuid"`
	IsActive       bool                `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type StockLedger struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Change        int       `gorm:"not null"`
	BalanceAfter  int       `gorm:"not null"`
	ReferenceType string    `gorm:"type:varchar(50);not null"`
	ReferenceID   string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
}

type StockAdjustment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Change    int        `gorm:"not null"`
	Reason    string     `gorm:"type:varchar(30);not null"`
	Note      string     `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}
