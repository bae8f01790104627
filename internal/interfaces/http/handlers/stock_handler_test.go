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

type stockServiceStub struct {
	onHand int
}

func (s *stockServiceStub) Adjust(_ context.Context, productID uuid.UUID, input *entities.StockAdjustmentInput) (*entities.StockLedger, error) {
	if s.onHand+input.Change < 0 {
		return nil, fmt.Errorf("on hand %d: %w", s.onHand, domainerrors.ErrInsufficientStock)
	}
	s.onHand += input.Change
	return &entities.StockLedger{ID: uuid.New(), ProductID: productID, Change: input.Change}, nil
}

func (s *stockServiceStub) ListLedger(context.Context, uuid.UUID, utils.PaginationParams) ([]*entities.StockLedger, int64, error) {
	return []*entities.StockLedger{}, 0, nil
}

func TestStockHandler_Adjust(t *testing.T) {
	svc := &stockServiceStub{onHand: 2}
	h := NewStockHandler(svc)
	r := gin.New()
	r.POST("/products/:id/stock-adjustments", h.AdjustStock)
	r.GET("/products/:id/stock-ledger", h.ListLedger)
	path := "/products/" + uuid.NewString()

	w := performRequest(r, http.MethodPost, path+"/stock-adjustments", gin.H{"change": 5, "reason": "restock"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(5), decodeBody(t, w)["change"])
	assert.Equal(t, 7, svc.onHand)

	w = performRequest(r, http.MethodPost, path+"/stock-adjustments", gin.H{"change": -10, "reason": "damage"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 7, svc.onHand)

	w = performRequest(r, http.MethodPost, path+"/stock-adjustments", gin.H{"change": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, path+"/stock-ledger", nil).Code)
}
