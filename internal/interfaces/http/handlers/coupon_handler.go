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

type couponService interface {
	ListCoupons(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.Coupon, int64, error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*entities.Coupon, error)
	ListUsages(ctx context.Context, id uuid.UUID, pagination utils.PaginationParams) ([]*entities.CouponUsage, int64, error)
	CreateCoupon(ctx context.Context, input *entities.CouponInput) (*entities.Coupon, error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, input *entities.CouponInput) (*entities.Coupon, error)
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
	Preview(ctx context.Context, id uuid.UUID, cart *entities.Cart) (*entities.DiscountResult, error)
}

// CouponHandler handles coupon endpoints
type CouponHandler struct {
	coupons couponService
}

func NewCouponHandler(coupons couponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// GET /api/v1/admin/coupons
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	p := paginationFrom(c)
	items, total, err := h.coupons.ListCoupons(c.Request.Context(), c.Query("search"), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/coupons/:id
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	coupon, err := h.coupons.GetCoupon(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, coupon)
}

// GET /api/v1/admin/coupons/:id/usages
func (h *CouponHandler) ListUsages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p := paginationFrom(c)
	items, total, err := h.coupons.ListUsages(c.Request.Context(), id, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// POST /api/v1/admin/coupons
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var input entities.CouponInput
	if !bindJSON(c, &input) {
		return
	}
	coupon, err := h.coupons.CreateCoupon(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, coupon)
}

// PUT /api/v1/admin/coupons/:id
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.CouponInput
	if !bindJSON(c, &input) {
		return
	}
	coupon, err := h.coupons.UpdateCoupon(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, coupon)
}

// DELETE /api/v1/admin/coupons/:id
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.coupons.DeleteCoupon(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewCoupon computes the discount a cart would get, without redeeming
// POST /api/v1/admin/coupons/:id/preview
func (h *CouponHandler) PreviewCoupon(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cart entities.Cart
	if !bindJSON(c, &cart) {
		return
	}
	result, err := h.coupons.Preview(c.Request.Context(), id, &cart)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
