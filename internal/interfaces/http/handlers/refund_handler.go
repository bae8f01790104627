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

type refundService interface {
	ListRefunds(ctx context.Context, filter entities.RefundFilter, pagination utils.PaginationParams) ([]*entities.Refund, int64, error)
	GetRefund(ctx context.Context, id uuid.UUID) (*entities.Refund, error)
	CreateRefund(ctx context.Context, input *entities.CreateRefundInput) (*entities.Refund, error)
	ApproveRefund(ctx context.Context, id uuid.UUID, note string) (*entities.Refund, error)
	RejectRefund(ctx context.Context, id uuid.UUID, note string) (*entities.Refund, error)
}

// RefundHandler handles refund requests and their review
type RefundHandler struct {
	refunds refundService
}

func NewRefundHandler(refunds refundService) *RefundHandler {
	return &RefundHandler{refunds: refunds}
}

// GET /api/v1/admin/refunds
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	filter := entities.RefundFilter{Status: entities.RefundStatus(c.Query("status"))}
	var ok bool
	if filter.OrderID, ok = queryUUID(c, "orderId"); !ok {
		return
	}
	if filter.UserID, ok = queryUUID(c, "userId"); !ok {
		return
	}

	p := paginationFrom(c)
	items, total, err := h.refunds.ListRefunds(c.Request.Context(), filter, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/refunds/:id
func (h *RefundHandler) GetRefund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	refund, err := h.refunds.GetRefund(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, refund)
}

// POST /api/v1/admin/refunds
func (h *RefundHandler) CreateRefund(c *gin.Context) {
	var input entities.CreateRefundInput
	if !bindJSON(c, &input) {
		return
	}
	refund, err := h.refunds.CreateRefund(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, refund)
}

// ApproveRefund credits the customer and settles the order payment status
// POST /api/v1/admin/refunds/:id/approve
func (h *RefundHandler) ApproveRefund(c *gin.Context) {
	h.review(c, h.refunds.ApproveRefund)
}

// POST /api/v1/admin/refunds/:id/reject
func (h *RefundHandler) RejectRefund(c *gin.Context) {
	h.review(c, h.refunds.RejectRefund)
}

func (h *RefundHandler) review(c *gin.Context, decide func(context.Context, uuid.UUID, string) (*entities.Refund, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.ReviewRefundInput
	// the note is optional, so an empty body is fine
	if c.Request.ContentLength != 0 && !bindJSON(c, &input) {
		return
	}
	refund, err := decide(c.Request.Context(), id, input.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, refund)
}
