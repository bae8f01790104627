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

type invoiceService interface {
	ListInvoices(ctx context.Context, orderID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Invoice, int64, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	Generate(ctx context.Context, orderID uuid.UUID) (*entities.Invoice, error)
	Void(ctx context.Context, id uuid.UUID, reason string) (*entities.Invoice, error)
}

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	invoices invoiceService
}

func NewInvoiceHandler(invoices invoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// GET /api/v1/admin/invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	orderID, ok := queryUUID(c, "orderId")
	if !ok {
		return
	}
	p := paginationFrom(c)
	items, total, err := h.invoices.ListInvoices(c.Request.Context(), orderID, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GET /api/v1/admin/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoice)
}

// GenerateInvoice issues the invoice of an order
// POST /api/v1/admin/orders/:id/invoice
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.invoices.Generate(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, invoice)
}

// POST /api/v1/admin/invoices/:id/void
func (h *InvoiceHandler) VoidInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Reason string `json:"reason" binding:"required,max=500"`
	}
	if !bindJSON(c, &input) {
		return
	}
	invoice, err := h.invoices.Void(c.Request.Context(), id, input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoice)
}
