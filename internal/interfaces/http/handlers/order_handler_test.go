package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

type orderServiceStub struct {
	listFn   func(filter entities.OrderFilter, p utils.PaginationParams) ([]*entities.Order, int64, error)
	detailFn func(id uuid.UUID) (*entities.OrderDetail, error)
	statusFn func(id uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error)
}

func (s *orderServiceStub) ListOrders(_ context.Context, filter entities.OrderFilter, p utils.PaginationParams) ([]*entities.Order, int64, error) {
	return s.listFn(filter, p)
}
func (s *orderServiceStub) GetOrderDetail(_ context.Context, id uuid.UUID) (*entities.OrderDetail, error) {
	return s.detailFn(id)
}
func (s *orderServiceStub) UpdateStatus(_ context.Context, id uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error) {
	return s.statusFn(id, input)
}

func newOrderRouter(svc orderService) *gin.Engine {
	h := NewOrderHandler(svc)
	r := gin.New()
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.POST("/orders/:id/status", h.UpdateStatus)
	return r
}

func TestOrderHandler_ListParsesFilters(t *testing.T) {
	userID := uuid.New()
	var got entities.OrderFilter
	var gotPage utils.PaginationParams
	r := newOrderRouter(&orderServiceStub{
		listFn: func(filter entities.OrderFilter, p utils.PaginationParams) ([]*entities.Order, int64, error) {
			got, gotPage = filter, p
			return []*entities.Order{{ID: uuid.New(), Status: entities.OrderStatusShipped}}, 1, nil
		},
	})

	path := fmt.Sprintf("/orders?status=shipped&paymentStatus=paid&search=ORD-1&userId=%s&from=2024-01-01&to=2024-01-31&page=2&limit=5", userID)
	w := performRequest(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, entities.OrderStatusShipped, got.Status)
	assert.Equal(t, entities.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, "ORD-1", got.Search)
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)
	require.NotNil(t, got.From)
	require.NotNil(t, got.To)
	assert.Equal(t, 31, got.To.Day())
	assert.Equal(t, utils.PaginationParams{Page: 2, Limit: 5}, gotPage)
	assert.Len(t, decodeBody(t, w)["items"], 1)
}

func TestOrderHandler_ListRejectsBadFilter(t *testing.T) {
	called := false
	r := newOrderRouter(&orderServiceStub{
		listFn: func(entities.OrderFilter, utils.PaginationParams) ([]*entities.Order, int64, error) {
			called = true
			return nil, 0, nil
		},
	})

	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/orders?userId=nope", nil).Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/orders?from=01/02/2024", nil).Code)
	assert.False(t, called)
}

func TestOrderHandler_GetNotFound(t *testing.T) {
	r := newOrderRouter(&orderServiceStub{
		detailFn: func(uuid.UUID) (*entities.OrderDetail, error) {
			return nil, domainerrors.ErrNotFound
		},
	})
	w := performRequest(r, http.MethodGet, "/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()
	r := newOrderRouter(&orderServiceStub{
		statusFn: func(gotID uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error) {
			assert.Equal(t, id, gotID)
			if input.Status == entities.OrderStatusPending {
				return nil, fmt.Errorf("shipped -> pending: %w", domainerrors.ErrInvalidTransition)
			}
			assert.Equal(t, "TRK-9", input.TrackingNumber)
			return &entities.Order{ID: id, Status: input.Status}, nil
		},
	})

	w := performRequest(r, http.MethodPost, "/orders/"+id.String()+"/status", gin.H{"status": "delivered", "trackingNumber": "TRK-9"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "delivered", decodeBody(t, w)["status"])

	w = performRequest(r, http.MethodPost, "/orders/"+id.String()+"/status", gin.H{"status": "pending"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = performRequest(r, http.MethodPost, "/orders/"+id.String()+"/status", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
