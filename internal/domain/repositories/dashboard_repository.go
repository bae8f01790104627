package repositories

import (
	"context"

	"shop-admin.backend/internal/domain/entities"
)

// DashboardRepository runs the aggregate queries behind dashboard widgets
type DashboardRepository interface {
	Summary(ctx context.Context, r entities.DateRange) (*entities.DashboardSummary, error)
	OrdersByStatus(ctx context.Context) ([]entities.StatusCount, error)
	TopProducts(ctx context.Context, r entities.DateRange, limit int) ([]entities.TopProduct, error)
	LowStock(ctx context.Context, threshold, limit int) ([]entities.LowStockItem, error)
	SalesByDay(ctx context.Context, r entities.DateRange) ([]entities.DailySales, error)
}
