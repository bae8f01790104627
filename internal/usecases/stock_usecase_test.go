package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/usecases"
)

func TestStockUsecase_AdjustWritesLedger(t *testing.T) {
	products, stock := new(MockProductRepository), new(MockStockRepository)
	audit, rec := newAudit(t)
	uc := usecases.NewStockUsecase(products, stock, newUow(), audit)

	productID, adminID := uuid.New(), uuid.New()
	adjID := uuid.New()
	products.On("AdjustStock", mock.Anything, productID, -3).Return(7, nil).Once()
	stock.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a *entities.StockAdjustment) bool {
		return a.Reason == entities.StockReasonDamage && a.CreatedBy != nil && *a.CreatedBy == adminID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.StockAdjustment).ID = adjID
	}).Return(nil).Once()
	stock.On("CreateLedger", mock.Anything, mock.AnythingOfType("*entities.StockLedger")).Return(nil).Once()

	entry, err := uc.Adjust(actorCtx(adminID), productID, &entities.StockAdjustmentInput{
		Change: -3, Reason: entities.StockReasonDamage, Note: "water damage",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, entry.BalanceAfter)
	assert.Equal(t, entities.StockReferenceAdjustment, entry.ReferenceType)
	assert.Equal(t, adjID.String(), entry.ReferenceID)
	assert.Equal(t, []string{"stock.adjusted"}, rec.actions())
	products.AssertExpectations(t)
	stock.AssertExpectations(t)
}

func TestStockUsecase_AdjustRejectsBadInput(t *testing.T) {
	products, stock := new(MockProductRepository), new(MockStockRepository)
	audit, _ := newAudit(t)
	uc := usecases.NewStockUsecase(products, stock, newUow(), audit)

	_, err := uc.Adjust(context.Background(), uuid.New(), &entities.StockAdjustmentInput{Change: 0, Reason: entities.StockReasonRestock})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), uuid.New(), &entities.StockAdjustmentInput{Change: 2, Reason: "gift"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	products.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestStockUsecase_AdjustInsufficientStock(t *testing.T) {
	products, stock := new(MockProductRepository), new(MockStockRepository)
	audit, rec := newAudit(t)
	uc := usecases.NewStockUsecase(products, stock, newUow(), audit)

	productID := uuid.New()
	products.On("AdjustStock", mock.Anything, productID, -50).
		Return(0, domainerrors.Unprocessable("stock cannot go negative", domainerrors.ErrInsufficientStock)).Once()

	_, err := uc.Adjust(context.Background(), productID, &entities.StockAdjustmentInput{Change: -50, Reason: entities.StockReasonCorrection})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Empty(t, rec.entries)
	stock.AssertNotCalled(t, "CreateLedger", mock.Anything, mock.Anything)
}
