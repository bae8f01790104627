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

type taxService interface {
	ListRates(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRate, int64, error)
	GetRate(ctx context.Context, id uuid.UUID) (*entities.TaxRate, error)
	CreateRate(ctx context.Context, input *entities.TaxRateInput) (*entities.TaxRate, error)
	UpdateRate(ctx context.Context, id uuid.UUID, input *entities.TaxRateInput) (*entities.TaxRate, error)
	DeleteRate(ctx context.Context, id uuid.UUID) error

	ListRules(ctx context.Context, pagination utils.PaginationParams) ([]*entities.TaxRule, int64, error)
	GetRule(ctx context.Context, id uuid.UUID) (*entities.TaxRule, error)
	CreateRule(ctx context.Context, input *entities.TaxRuleInput) (*entities.TaxRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, input *entities.TaxRuleInput) (*entities.TaxRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error

	Resolve(ctx context.Context, input *entities.TaxResolveInput) (*entities.TaxResolution, error)
}

// TaxHandler handles tax rates, geographic rules and resolution
type TaxHandler struct {
	tax taxService
}

func NewTaxHandler(tax taxService) *TaxHandler {
	return &TaxHandler{tax: tax}
}

// GET /api/v1/admin/tax-rates
func (h *TaxHandler) ListRates(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.tax.ListRates(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/tax-rates/:id
func (h *TaxHandler) GetRate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rate, err := h.tax.GetRate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rate)
}

// POST /api/v1/admin/tax-rates
func (h *TaxHandler) CreateRate(c *gin.Context) {
	var input entities.TaxRateInput
	if !bindJSON(c, &input) {
		return
	}
	rate, err := h.tax.CreateRate(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rate)
}

// PUT /api/v1/admin/tax-rates/:id
func (h *TaxHandler) UpdateRate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.TaxRateInput
	if !bindJSON(c, &input) {
		return
	}
	rate, err := h.tax.UpdateRate(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rate)
}

// DeleteRate refuses while rules still point at the rate
// DELETE /api/v1/admin/tax-rates/:id
func (h *TaxHandler) DeleteRate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.tax.DeleteRate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/admin/tax-rules
func (h *TaxHandler) ListRules(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.tax.ListRules(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/tax-rules/:id
func (h *TaxHandler) GetRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rule, err := h.tax.GetRule(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rule)
}

// POST /api/v1/admin/tax-rules
func (h *TaxHandler) CreateRule(c *gin.Context) {
	var input entities.TaxRuleInput
	if !bindJSON(c, &input) {
		return
	}
	rule, err := h.tax.CreateRule(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rule)
}

// PUT /api/v1/admin/tax-rules/:id
func (h *TaxHandler) UpdateRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.TaxRuleInput
	if !bindJSON(c, &input) {
		return
	}
	rule, err := h.tax.UpdateRule(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rule)
}

// DELETE /api/v1/admin/tax-rules/:id
func (h *TaxHandler) DeleteRule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.tax.DeleteRule(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Resolve picks the most specific matching rule for an address
// POST /api/v1/admin/tax-rules/resolve
func (h *TaxHandler) Resolve(c *gin.Context) {
	var input entities.TaxResolveInput
	if !bindJSON(c, &input) {
		return
	}
	res, err := h.tax.Resolve(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
