package repositories

import (
	"context"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
	Update(ctx context.Context, category *entities.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Category, int64, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
}

// BrandRepository defines brand data operations
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	Update(ctx context.Context, brand *entities.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Brand, int64, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}

// ProductRepository defines product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.ProductFilter, pagination utils.PaginationParams) ([]*entities.Product, int64, error)
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	SKUExists(ctx context.Context, sku string, excludeID *uuid.UUID) (bool, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error)
	// AdjustStock applies delta and returns the new quantity; ErrInsufficientStock when it would go negative
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

// StockRepository defines stock ledger operations
type StockRepository interface {
	CreateAdjustment(ctx context.Context, adjustment *entities.StockAdjustment) error
	CreateLedger(ctx context.Context, entry *entities.StockLedger) error
	ListLedger(ctx context.Context, productID uuid.UUID, pagination utils.PaginationParams) ([]*entities.StockLedger, int64, error)
}
