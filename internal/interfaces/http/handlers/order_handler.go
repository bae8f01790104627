package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/utils"
)

type orderService interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter, pagination utils.PaginationParams) ([]*entities.Order, int64, error)
	GetOrderDetail(ctx context.Context, id uuid.UUID) (*entities.OrderDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error)
}

// OrderHandler handles order endpoints
type OrderHandler struct {
	orders orderService
}

func NewOrderHandler(orders orderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders filters by status, paymentStatus, userId, search and a from/to window
// GET /api/v1/admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := entities.OrderFilter{
		Status:        entities.OrderStatus(c.Query("status")),
		PaymentStatus: entities.PaymentStatus(c.Query("paymentStatus")),
		Search:        c.Query("search"),
	}
	var ok bool
	if filter.UserID, ok = queryUUID(c, "userId"); !ok {
		return
	}
	if filter.From, ok = queryTime(c, "from"); !ok {
		return
	}
	if filter.To, ok = queryTime(c, "to"); !ok {
		return
	}

	p := paginationFrom(c)
	orders, total, err := h.orders.ListOrders(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, orders, total, p)
}

// GetOrder returns the order with items, payments, history and refunds
// GET /api/v1/admin/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.orders.GetOrderDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// UpdateStatus moves an order along its lifecycle
// POST /api/v1/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateOrderStatusInput
	if !bindJSON(c, &input) {
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}
