package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is a node of the product category tree
type Category struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Brand is a product manufacturer
type Brand struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	LogoURL   string    `json:"logoUrl"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Product is a sellable catalogue item
type Product struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Slug           string              `json:"slug"`
	SKU            string              `json:"sku"`
	Description    string              `json:"description"`
	Price          decimal.Decimal     `json:"price"`
	CompareAtPrice decimal.NullDecimal `json:"compareAtPrice"`
	CostPrice      decimal.NullDecimal `json:"costPrice"`
	StockQuantity  int                 `json:"stockQuantity"`
	CategoryID     *uuid.UUID          `json:"categoryId,omitempty"`
	BrandID        *uuid.UUID          `json:"brandId,omitempty"`
	TaxRateID      *uuid.UUID          `json:"taxRateId,omitempty"`
	IsActive       bool                `json:"isActive"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ProductFilter narrows product listings
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	IsActive   *bool
}

// CategoryInput represents input for creating or updating a category
type CategoryInput struct {
	Name        string     `json:"name" binding:"required,max=150"`
	Slug        string     `json:"slug"`
	ParentID    *uuid.UUID `json:"parentId"`
	Description string     `json:"description"`
	IsActive    *bool      `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
}

// BrandInput represents input for creating or updating a brand
type BrandInput struct {
	Name     string `json:"name" binding:"required,max=150"`
	Slug     string `json:"slug"`
	LogoURL  string `json:"logoUrl"`
	IsActive *bool  `json:"isActive"`
}

// ProductInput represents input for creating or updating a product
type ProductInput struct {
	Name           string              `json:"name" binding:"required,max=255"`
	Slug           string              `json:"slug"`
	SKU            string              `json:"sku" binding:"required,max=100"`
	Description    string              `json:"description"`
	Price          decimal.Decimal     `json:"price"`
	CompareAtPrice decimal.NullDecimal `json:"compareAtPrice"`
	CostPrice      decimal.NullDecimal `json:"costPrice"`
	StockQuantity  int                 `json:"stockQuantity" binding:"min=0"`
	CategoryID     *uuid.UUID          `json:"categoryId"`
	BrandID        *uuid.UUID          `json:"brandId"`
	TaxRateID      *uuid.UUID          `json:"taxRateId"`
	IsActive       *bool               `json:"isActive"`
}

// LowStockItem is a dashboard row for products at or below a threshold
type LowStockItem struct {
	ProductID     uuid.UUID `json:"productId" db:"id"`
	Name          string    `json:"name" db:"name"`
	SKU           string    `json:"sku" db:"sku"`
	StockQuantity int       `json:"stockQuantity" db:"stock_quantity"`
}
