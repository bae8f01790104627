package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

type walletServiceStub struct {
	listUser *uuid.UUID
	adjustFn func(id uuid.UUID, input *entities.WalletAdjustmentInput) (*entities.WalletTransaction, error)
}

func (s *walletServiceStub) ListWallets(_ context.Context, userID *uuid.UUID, _ utils.PaginationParams) ([]*entities.Wallet, int64, error) {
	s.listUser = userID
	return []*entities.Wallet{{ID: uuid.New(), Currency: "USD"}}, 1, nil
}
func (s *walletServiceStub) GetWalletDetail(_ context.Context, id uuid.UUID) (*entities.WalletDetail, error) {
	return &entities.WalletDetail{Wallet: &entities.Wallet{ID: id}}, nil
}
func (s *walletServiceStub) Adjust(_ context.Context, id uuid.UUID, input *entities.WalletAdjustmentInput) (*entities.WalletTransaction, error) {
	return s.adjustFn(id, input)
}

func newWalletRouter(svc walletService) *gin.Engine {
	h := NewWalletHandler(svc)
	r := gin.New()
	r.GET("/wallets", h.ListWallets)
	r.GET("/wallets/:id", h.GetWallet)
	r.POST("/wallets/:id/adjustments", h.AdjustWallet)
	return r
}

func TestWalletHandler_ListByUser(t *testing.T) {
	stub := &walletServiceStub{}
	r := newWalletRouter(stub)
	userID := uuid.New()

	w := performRequest(r, http.MethodGet, "/wallets?userId="+userID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.listUser)
	assert.Equal(t, userID, *stub.listUser)

	w = performRequest(r, http.MethodGet, "/wallets/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWalletHandler_Adjust(t *testing.T) {
	walletID := uuid.New()
	r := newWalletRouter(&walletServiceStub{
		adjustFn: func(id uuid.UUID, input *entities.WalletAdjustmentInput) (*entities.WalletTransaction, error) {
			assert.Equal(t, walletID, id)
			if input.Type == entities.WalletTransactionDebit {
				return nil, domainerrors.ErrInsufficientBalance
			}
			assert.True(t, input.Amount.Equal(decimal.RequireFromString("12.5")))
			return &entities.WalletTransaction{ID: uuid.New(), WalletID: id, Type: input.Type, Amount: input.Amount}, nil
		},
	})
	path := "/wallets/" + walletID.String() + "/adjustments"

	w := performRequest(r, http.MethodPost, path, gin.H{"type": "credit", "amount": "12.5", "description": "goodwill"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "credit", decodeBody(t, w)["type"])

	w = performRequest(r, http.MethodPost, path, gin.H{"type": "debit", "amount": "999", "description": "fix"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = performRequest(r, http.MethodPost, path, gin.H{"type": "bonus", "amount": "1", "description": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
