package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
)

func TestDashboardRepository_Widgets(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	createCatalogTables(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	repo := NewDashboardRepository(sqlx.NewDb(sqlDB, "sqlite3"))
	ctx := context.Background()

	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	returning := uuid.New()
	seedOrder(t, db, "ORD-0", "delivered", decimal.NewFromInt(40), returning, day1.AddDate(0, -1, 0))
	o1 := seedOrder(t, db, "ORD-1", "processing", decimal.NewFromInt(100), returning, day1)
	o2 := seedOrder(t, db, "ORD-2", "pending", decimal.NewFromInt(50), uuid.New(), day2)
	seedOrder(t, db, "ORD-3", "cancelled", decimal.NewFromInt(999), uuid.New(), day2)

	mug := uuid.New()
	lamp := uuid.New()
	for _, item := range []models.OrderItem{
		{ID: uuid.New(), OrderID: o1.ID, ProductID: mug, ProductName: "Mug", UnitPrice: decimal.NewFromInt(10), Quantity: 5, Total: decimal.NewFromInt(50)},
		{ID: uuid.New(), OrderID: o1.ID, ProductID: lamp, ProductName: "Lamp", UnitPrice: decimal.NewFromInt(50), Quantity: 1, Total: decimal.NewFromInt(50)},
		{ID: uuid.New(), OrderID: o2.ID, ProductID: mug, ProductName: "Mug", UnitPrice: decimal.NewFromInt(10), Quantity: 5, Total: decimal.NewFromInt(50)},
	} {
		require.NoError(t, db.Create(&item).Error)
	}
	require.NoError(t, NewRefundRepository(db).Create(ctx, &entities.Refund{
		OrderID: o1.ID, UserID: returning, Amount: decimal.NewFromInt(5), Reason: "scratched",
		Method:  entities.RefundMethodWallet, Status: entities.RefundStatusPending,
	}))

	rng := entities.DateRange{From: day1.Add(-time.Hour), To: day2.Add(24 * time.Hour)}

	summary, err := repo.Summary(ctx, rng)
	require.NoError(t, err)
	require.True(t, summary.Revenue.Equal(decimal.NewFromInt(150)), summary.Revenue.String())
	require.Equal(t, int64(2), summary.OrderCount)
	require.True(t, summary.AverageOrderValue.Equal(decimal.NewFromInt(75)))
	require.Equal(t, int64(1), summary.PendingRefunds)
	require.Equal(t, int64(2), summary.NewCustomers, "the returning customer ordered before the range")

	byStatus, err := repo.OrdersByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, byStatus, 4)

	top, err := repo.TopProducts(ctx, rng, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, mug, top[0].ProductID)
	require.Equal(t, int64(10), top[0].Quantity)
	require.True(t, top[0].Revenue.Equal(decimal.NewFromInt(100)))

	sales, err := repo.SalesByDay(ctx, rng)
	require.NoError(t, err)
	require.Equal(t, []string{"2026-03-01", "2026-03-02"}, []string{sales[0].Day, sales[1].Day})
	require.Equal(t, int64(1), sales[1].Orders)

	products := NewProductRepository(db)
	require.NoError(t, products.Create(ctx, &entities.Product{Name: "Mug", Slug: "mug", SKU: "MUG", Price: decimal.NewFromInt(10), StockQuantity: 2, IsActive: true}))
	require.NoError(t, products.Create(ctx, &entities.Product{Name: "Lamp", Slug: "lamp", SKU: "LAMP", Price: decimal.NewFromInt(50), StockQuantity: 30, IsActive: true}))
	require.NoError(t, products.Create(ctx, &entities.Product{Name: "Hidden", Slug: "hidden", SKU: "HID", Price: decimal.NewFromInt(1), StockQuantity: 0}))

	low, err := repo.LowStock(ctx, 5, 10)
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "MUG", low[0].SKU)
}
