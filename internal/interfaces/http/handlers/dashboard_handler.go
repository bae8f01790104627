package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
)

type dashboardService interface {
	ResolveRange(from, to *time.Time) (entities.DateRange, error)
	Summary(ctx context.Context, r entities.DateRange) (*entities.DashboardSummary, error)
	OrdersByStatus(ctx context.Context) ([]entities.StatusCount, error)
	TopProducts(ctx context.Context, r entities.DateRange, limit int) ([]entities.TopProduct, error)
	SalesByDay(ctx context.Context, r entities.DateRange) ([]entities.DailySales, error)
	LowStock(ctx context.Context, threshold *int, limit int) ([]entities.LowStockItem, error)
}

// DashboardHandler serves the read-only dashboard widgets
type DashboardHandler struct {
	dashboard dashboardService
}

func NewDashboardHandler(dashboard dashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) dateRange(c *gin.Context) (entities.DateRange, bool) {
	from, ok := queryTime(c, "from")
	if !ok {
		return entities.DateRange{}, false
	}
	to, ok := queryTime(c, "to")
	if !ok {
		return entities.DateRange{}, false
	}
	r, err := h.dashboard.ResolveRange(from, to)
	if err != nil {
		response.Error(c, err)
		return entities.DateRange{}, false
	}
	return r, true
}

// GET /api/v1/admin/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	r, ok := h.dateRange(c)
	if !ok {
		return
	}
	summary, err := h.dashboard.Summary(c.Request.Context(), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// GET /api/v1/admin/dashboard/orders-by-status
func (h *DashboardHandler) OrdersByStatus(c *gin.Context) {
	counts, err := h.dashboard.OrdersByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": counts})
}

// GET /api/v1/admin/dashboard/top-products
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	r, ok := h.dateRange(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	items, err := h.dashboard.TopProducts(c.Request.Context(), r, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/admin/dashboard/sales-by-day
func (h *DashboardHandler) SalesByDay(c *gin.Context) {
	r, ok := h.dateRange(c)
	if !ok {
		return
	}
	days, err := h.dashboard.SalesByDay(c.Request.Context(), r)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": days})
}

// LowStock uses ?threshold when given, otherwise the configured default
// GET /api/v1/admin/dashboard/low-stock
func (h *DashboardHandler) LowStock(c *gin.Context) {
	var threshold *int
	if c.Query("threshold") != "" {
		v, ok := queryInt(c, "threshold", 0)
		if !ok {
			return
		}
		threshold = &v
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	items, err := h.dashboard.LowStock(c.Request.Context(), threshold, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}
