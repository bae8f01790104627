package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	parent := &entities.Category{Name: "Apparel", Slug: "apparel", IsActive: true}
	require.NoError(t, repo.Create(ctx, parent))
	child := &entities.Category{Name: "Shirts", Slug: "shirts", ParentID: &parent.ID, SortOrder: 1}
	require.NoError(t, repo.Create(ctx, child))

	children, err := repo.CountChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), children)

	exists, err := repo.SlugExists(ctx, "shirts", nil)
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = repo.SlugExists(ctx, "shirts", &child.ID)
	require.NoError(t, err)
	require.False(t, exists)

	child.Name = "T-Shirts"
	child.ParentID = nil
	require.NoError(t, repo.Update(ctx, child))
	got, err := repo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.Equal(t, "T-Shirts", got.Name)
	require.Nil(t, got.ParentID)
	require.False(t, got.IsActive)

	items, total, err := repo.List(ctx, "SHIRT", utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, child.ID, items[0].ID)

	require.NoError(t, repo.Delete(ctx, child.ID))
	_, err = repo.GetByID(ctx, child.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, child), domainerrors.ErrNotFound)
}

func TestBrandRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	ctx := context.Background()
	repo := NewBrandRepository(db)

	brand := &entities.Brand{Name: "Acme", Slug: "acme", IsActive: true}
	require.NoError(t, repo.Create(ctx, brand))
	brand.LogoURL = "https://cdn.test/acme.png"
	require.NoError(t, repo.Update(ctx, brand))

	got, err := repo.GetByID(ctx, brand.ID)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.test/acme.png", got.LogoURL)

	exists, err := repo.SlugExists(ctx, "acme", nil)
	require.NoError(t, err)
	require.True(t, exists)

	_, total, err := repo.List(ctx, "", utils.PaginationParams{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	require.NoError(t, repo.Delete(ctx, brand.ID))
	require.ErrorIs(t, repo.Delete(ctx, brand.ID), domainerrors.ErrNotFound)
}

func TestProductRepository_CRUDAndFilters(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	ctx := context.Background()
	repo := NewProductRepository(db)
	categoryID := uuid.New()
	brandID := uuid.New()

	p := &entities.Product{
		Name:           "Blue Shirt",
		Slug:           "blue-shirt",
		SKU:            "SH-BLUE",
		Price:          decimal.RequireFromString("19.99"),
		CompareAtPrice: decimal.NewNullDecimal(decimal.RequireFromString("24.99")),
		StockQuantity:  4,
		CategoryID:     &categoryID,
		BrandID:        &brandID,
		IsActive:       true,
	}
	require.NoError(t, repo.Create(ctx, p))
	other := &entities.Product{Name: "Mug", Slug: "mug", SKU: "MUG-1", Price: decimal.NewFromInt(5)}
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.Price.Equal(decimal.RequireFromString("19.99")))
	require.True(t, got.CompareAtPrice.Valid)
	require.False(t, got.CostPrice.Valid)

	active := true
	items, total, err := repo.List(ctx, entities.ProductFilter{IsActive: &active}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, p.ID, items[0].ID)

	_, total, err = repo.List(ctx, entities.ProductFilter{Search: "sh-"}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	_, total, err = repo.List(ctx, entities.ProductFilter{CategoryID: &categoryID, BrandID: &brandID}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	skuTaken, err := repo.SKUExists(ctx, "MUG-1", &p.ID)
	require.NoError(t, err)
	require.True(t, skuTaken)
	slugTaken, err := repo.SlugExists(ctx, "blue-shirt", &p.ID)
	require.NoError(t, err)
	require.False(t, slugTaken)

	inCategory, err := repo.CountByCategory(ctx, categoryID)
	require.NoError(t, err)
	require.Equal(t, int64(1), inCategory)
	ofBrand, err := repo.CountByBrand(ctx, brandID)
	require.NoError(t, err)
	require.Equal(t, int64(1), ofBrand)

	p.Price = decimal.RequireFromString("17.50")
	p.CompareAtPrice = decimal.NullDecimal{}
	require.NoError(t, repo.Update(ctx, p))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.Price.Equal(decimal.RequireFromString("17.5")))
	require.False(t, got.CompareAtPrice.Valid)

	require.NoError(t, repo.Delete(ctx, other.ID))
	_, total, err = repo.List(ctx, entities.ProductFilter{}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func TestProductRepository_AdjustStock(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	ctx := context.Background()
	repo := NewProductRepository(db)

	p := &entities.Product{Name: "Lamp", Slug: "lamp", SKU: "LAMP", Price: decimal.NewFromInt(30), StockQuantity: 3}
	require.NoError(t, repo.Create(ctx, p))

	qty, err := repo.AdjustStock(ctx, p.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 8, qty)

	qty, err = repo.AdjustStock(ctx, p.ID, -8)
	require.NoError(t, err)
	require.Zero(t, qty)

	_, err = repo.AdjustStock(ctx, p.ID, -1)
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	_, err = repo.AdjustStock(ctx, uuid.New(), 1)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestStockRepository_LedgerAndAdjustments(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	ctx := context.Background()
	repo := NewStockRepository(db)
	productID := uuid.New()
	adminID := uuid.New()

	adj := &entities.StockAdjustment{ProductID: productID, Change: 5, Reason: entities.StockReasonRestock, CreatedBy: &adminID}
	require.NoError(t, repo.CreateAdjustment(ctx, adj))
	require.NotEqual(t, uuid.Nil, adj.ID)

	balance := 0
	for _, change := range []int{5, -2} {
		balance += change
		require.NoError(t, repo.CreateLedger(ctx, &entities.StockLedger{
			ProductID:     productID,
			Change:        change,
			BalanceAfter:  balance,
			ReferenceType: entities.StockReferenceAdjustment,
			ReferenceID:   adj.ID.String(),
		}))
	}

	entries, total, err := repo.ListLedger(ctx, productID, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, entries, 2)

	_, total, err = repo.ListLedger(ctx, uuid.New(), utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Zero(t, total)
}
