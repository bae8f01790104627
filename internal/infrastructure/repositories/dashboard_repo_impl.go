package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"shop-admin.backend/internal/domain/entities"
)

// DashboardRepository runs widget aggregates as plain SQL through sqlx.
// Queries are written with ? placeholders and rebound per driver.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

const (
	revenueStatusFilter = "status NOT IN ('cancelled')"
)

// Summary computes the headline numbers for orders created inside r
func (r *DashboardRepository) Summary(ctx context.Context, rng entities.DateRange) (*entities.DashboardSummary, error) {
	var summary entities.DashboardSummary

	query := r.db.Rebind(`SELECT COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS order_count
		FROM orders WHERE ` + revenueStatusFilter + ` AND created_at >= ? AND created_at < ?`)
	var totals struct {
		Revenue    decimal.Decimal `db:"revenue"`
		OrderCount int64           `db:"order_count"`
	}
	if err := r.db.GetContext(ctx, &totals, query, rng.From, rng.To); err != nil {
		return nil, fmt.Errorf("dashboard revenue: %w", err)
	}
	summary.Revenue = totals.Revenue
	summary.OrderCount = totals.OrderCount
	if totals.OrderCount > 0 {
		summary.AverageOrderValue = totals.Revenue.Div(decimal.NewFromInt(totals.OrderCount)).Round(2)
	}

	if err := r.db.GetContext(ctx, &summary.PendingRefunds,
		r.db.Rebind(`SELECT COUNT(*) FROM refunds WHERE status = ?`),
		string(entities.RefundStatusPending)); err != nil {
		return nil, fmt.Errorf("dashboard pending refunds: %w", err)
	}

	// a customer is new when their first order falls inside the range
	query = r.db.Rebind(`SELECT COUNT(*) FROM (
		SELECT user_id FROM orders GROUP BY user_id
		HAVING MIN(created_at) >= ? AND MIN(created_at) < ?) first_orders`)
	if err := r.db.GetContext(ctx, &summary.NewCustomers, query, rng.From, rng.To); err != nil {
		return nil, fmt.Errorf("dashboard new customers: %w", err)
	}
	return &summary, nil
}

// OrdersByStatus counts all orders per status
func (r *DashboardRepository) OrdersByStatus(ctx context.Context) ([]entities.StatusCount, error) {
	rows := []entities.StatusCount{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS count FROM orders GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("dashboard orders by status: %w", err)
	}
	return rows, nil
}

// TopProducts ranks products by units sold in non-cancelled orders
func (r *DashboardRepository) TopProducts(ctx context.Context, rng entities.DateRange, limit int) ([]entities.TopProduct, error) {
	rows := []entities.TopProduct{}
	query := r.db.Rebind(`SELECT oi.product_id, MAX(oi.product_name) AS product_name,
			SUM(oi.quantity) AS quantity, COALESCE(SUM(oi.total), 0) AS revenue
		FROM order_items oi JOIN orders o ON o.id = oi.order_id
		WHERE o.status NOT IN ('cancelled') AND o.created_at >= ? AND o.created_at < ?
		GROUP BY oi.product_id
		ORDER BY quantity DESC, revenue DESC
		LIMIT ?`)
	if err := r.db.SelectContext(ctx, &rows, query, rng.From, rng.To, limit); err != nil {
		return nil, fmt.Errorf("dashboard top products: %w", err)
	}
	return rows, nil
}

// LowStock lists active products at or below threshold, emptiest first
func (r *DashboardRepository) LowStock(ctx context.Context, threshold, limit int) ([]entities.LowStockItem, error) {
	rows := []entities.LowStockItem{}
	query := r.db.Rebind(`SELECT id, name, sku, stock_quantity FROM products
		WHERE deleted_at IS NULL AND is_active = ? AND stock_quantity <= ?
		ORDER BY stock_quantity, name
		LIMIT ?`)
	if err := r.db.SelectContext(ctx, &rows, query, true, threshold, limit); err != nil {
		return nil, fmt.Errorf("dashboard low stock: %w", err)
	}
	return rows, nil
}

// SalesByDay buckets non-cancelled orders by UTC calendar day
func (r *DashboardRepository) SalesByDay(ctx context.Context, rng entities.DateRange) ([]entities.DailySales, error) {
	rows := []entities.DailySales{}
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s AS day, COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue
		FROM orders WHERE `+revenueStatusFilter+` AND created_at >= ? AND created_at < ?
		GROUP BY day ORDER BY day`, r.dayExpr()))
	if err := r.db.SelectContext(ctx, &rows, query, rng.From, rng.To); err != nil {
		return nil, fmt.Errorf("dashboard sales by day: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) dayExpr() string {
	if r.db.DriverName() == "postgres" {
		return "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', created_at)"
}
