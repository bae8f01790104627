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

type walletService interface {
	ListWallets(ctx context.Context, userID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Wallet, int64, error)
	GetWalletDetail(ctx context.Context, id uuid.UUID) (*entities.WalletDetail, error)
	Adjust(ctx context.Context, walletID uuid.UUID, input *entities.WalletAdjustmentInput) (*entities.WalletTransaction, error)
}

// WalletHandler handles customer wallet endpoints
type WalletHandler struct {
	wallets walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(wallets walletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// ListWallets lists wallets, optionally for one customer
// GET /api/v1/admin/wallets
func (h *WalletHandler) ListWallets(c *gin.Context) {
	userID, ok := queryUUID(c, "userId")
	if !ok {
		return
	}
	p := paginationFrom(c)
	items, total, err := h.wallets.ListWallets(c.Request.Context(), userID, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	listed(c, items, total, p)
}

// GetWallet returns a wallet with its latest transactions
// GET /api/v1/admin/wallets/:id
func (h *WalletHandler) GetWallet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.wallets.GetWalletDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// AdjustWallet applies a manual credit or debit
// POST /api/v1/admin/wallets/:id/adjustments
func (h *WalletHandler) AdjustWallet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input entities.WalletAdjustmentInput
	if !bindJSON(c, &input) {
		return
	}
	tx, err := h.wallets.Adjust(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, tx)
}
