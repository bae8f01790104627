package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

func TestRefundRepository_CreateReviewAndSum(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	repo := NewRefundRepository(db)
	ctx := context.Background()
	orderID, userID := uuid.New(), uuid.New()

	first := &entities.Refund{
		OrderID: orderID,
		UserID:  userID,
		Amount:  decimal.RequireFromString("10.25"),
		Reason:  "damaged",
		Method:  entities.RefundMethodWallet,
		Status:  entities.RefundStatusPending,
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	second := &entities.Refund{
		OrderID: orderID,
		UserID:  userID,
		Amount:  decimal.RequireFromString("4.75"),
		Reason:  "late",
		Method:  entities.RefundMethodOriginalPayment,
		Status:  entities.RefundStatusPending,
	}
	require.NoError(t, repo.Create(ctx, second))

	adminID, txID := uuid.New(), uuid.New()
	first.Status = entities.RefundStatusApproved
	first.AdminNote = "ok"
	first.ProcessedBy = &adminID
	first.ProcessedAt = null.TimeFrom(time.Now())
	first.WalletTransactionID = &txID
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, entities.RefundStatusApproved, got.Status)
	require.Equal(t, "ok", got.AdminNote)
	require.NotNil(t, got.ProcessedBy)
	require.Equal(t, adminID, *got.ProcessedBy)
	require.True(t, got.ProcessedAt.Valid)

	approved, err := repo.SumByOrder(ctx, orderID, entities.RefundStatusApproved)
	require.NoError(t, err)
	require.True(t, approved.Equal(decimal.RequireFromString("10.25")))

	all, err := repo.SumByOrder(ctx, orderID)
	require.NoError(t, err)
	require.True(t, all.Equal(decimal.RequireFromString("15")))

	byOrder, err := repo.ListByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, byOrder, 2)

	items, total, err := repo.List(ctx, entities.RefundFilter{Status: entities.RefundStatusPending}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, second.ID, items[0].ID)

	_, total, err = repo.List(ctx, entities.RefundFilter{OrderID: &orderID, UserID: &userID}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
}

func TestRefundRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	repo := NewRefundRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Refund{ID: uuid.New(), Status: entities.RefundStatusRejected})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	sum, err := repo.SumByOrder(ctx, uuid.New())
	require.NoError(t, err)
	require.True(t, sum.IsZero())
}

func TestRefundRepository_UpdateRejectsAlreadyReviewed(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	repo := NewRefundRepository(db)
	ctx := context.Background()

	rf := &entities.Refund{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Amount:  decimal.RequireFromString("5"),
		Reason:  "damaged",
		Method:  entities.RefundMethodWallet,
		Status:  entities.RefundStatusPending,
	}
	require.NoError(t, repo.Create(ctx, rf))

	// two reviewers load the same pending refund
	first, err := repo.GetByID(ctx, rf.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, rf.ID)
	require.NoError(t, err)

	first.Status = entities.RefundStatusApproved
	require.NoError(t, repo.Update(ctx, first))

	second.Status = entities.RefundStatusApproved
	err = repo.Update(ctx, second)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}
