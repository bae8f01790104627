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

type stockService interface {
	Adjust(ctx context.Context, productID uuid.UUID, input *entities.StockAdjustmentInput) (*entities.StockLedger, error)
	ListLedger(ctx context.Context, productID uuid.UUID, pagination utils.PaginationParams) ([]*entities.StockLedger, int64, error)
}

// StockHandler exposes manual adjustments and the per-product ledger
type StockHandler struct {
	stock stockService
}

func NewStockHandler(stock stockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// AdjustStock applies a signed quantity change
// POST /api/v1/admin/products/:id/stock-adjustments
func (h *StockHandler) AdjustStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.StockAdjustmentInput
	if !bindJSON(c, &input) {
		return
	}
	entry, err := h.stock.Adjust(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

// GET /api/v1/admin/products/:id/stock-ledger
func (h *StockHandler) ListLedger(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p := paginationFrom(c)
	items, total, err := h.stock.ListLedger(c.Request.Context(), id, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}
