package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/interfaces/http/response"
	"shop-admin.backend/pkg/utils"
)

type dealService interface {
	ListDeals(ctx context.Context, filter entities.DealFilter, pagination utils.PaginationParams) ([]*entities.Deal, int64, error)
	GetDeal(ctx context.Context, id uuid.UUID) (*entities.Deal, error)
	CreateDeal(ctx context.Context, input *entities.DealInput) (*entities.Deal, error)
	UpdateDeal(ctx context.Context, id uuid.UUID, input *entities.DealInput) (*entities.Deal, error)
	DeleteDeal(ctx context.Context, id uuid.UUID) error
}

// DealHandler handles deal endpoints
type DealHandler struct {
	deals dealService
	now   func() time.Time
}

func NewDealHandler(deals dealService) *DealHandler {
	return &DealHandler{deals: deals, now: time.Now}
}

// ListDeals supports ?productId and ?active=true (running right now)
// GET /api/v1/admin/deals
func (h *DealHandler) ListDeals(c *gin.Context) {
	productID, ok := queryUUID(c, "productId")
	if !ok {
		return
	}
	active, ok := queryBool(c, "active")
	if !ok {
		return
	}
	filter := entities.DealFilter{
		ProductID:  productID,
		ActiveOnly: active != nil && *active,
		At:         h.now().UTC(),
	}

	p := paginationFrom(c)
	items, total, err := h.deals.ListDeals(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/deals/:id
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deal, err := h.deals.GetDeal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, deal)
}

// POST /api/v1/admin/deals
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var input entities.DealInput
	if !bindJSON(c, &input) {
		return
	}
	deal, err := h.deals.CreateDeal(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, deal)
}

// PUT /api/v1/admin/deals/:id
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.DealInput
	if !bindJSON(c, &input) {
		return
	}
	deal, err := h.deals.UpdateDeal(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, deal)
}

// DELETE /api/v1/admin/deals/:id
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.deals.DeleteDeal(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
