package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRange bounds dashboard queries; To is exclusive
type DateRange struct {
	From time.Time
	To   time.Time
}

// DashboardSummary is the headline widget
type DashboardSummary struct {
	Revenue           decimal.Decimal `json:"revenue" db:"revenue"`
	OrderCount        int64           `json:"orderCount" db:"order_count"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue" db:"-"`
	PendingRefunds    int64           `json:"pendingRefunds" db:"pending_refunds"`
	NewCustomers      int64           `json:"newCustomers" db:"new_customers"`
}

// StatusCount is a row of the orders-by-status widget
type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int64  `json:"count" db:"count"`
}

// TopProduct is a row of the best sellers widget
type TopProduct struct {
	ProductID   uuid.UUID       `json:"productId" db:"product_id"`
	ProductName string          `json:"productName" db:"product_name"`
	Quantity    int64           `json:"quantity" db:"quantity"`
	Revenue     decimal.Decimal `json:"revenue" db:"revenue"`
}

// DailySales is a point of the sales chart
type DailySales struct {
	Day     string          `json:"day" db:"day"`
	Orders  int64           `json:"orders" db:"orders"`
	Revenue decimal.Decimal `json:"revenue" db:"revenue"`
}
