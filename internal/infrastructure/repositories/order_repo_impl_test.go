package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

func seedOrder(t *testing.T, db *gorm.DB, number, status string, total decimal.Decimal, userID uuid.UUID, createdAt time.Time) *models.Order {
	t.Helper()
	m := &models.Order{
		ID:            uuid.New(),
		Number:        number,
		UserID:        userID,
		Status:        status,
		PaymentStatus: string(entities.PaymentStatusPaid),
		Subtotal:      total,
		Total:         total,
		Currency:      "USD",
		ShippingName:  "Jane Buyer",
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestOrderRepository_GetListAndStatus(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	o := seedOrder(t, db, "ORD-1001", "pending", decimal.NewFromInt(50), userID, now.Add(-time.Hour))
	seedOrder(t, db, "ORD-1002", "shipped", decimal.NewFromInt(20), uuid.New(), now)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusPending, got.Status)
	require.False(t, got.TrackingNumber.Valid)

	items, total, err := repo.List(ctx, entities.OrderFilter{Status: entities.OrderStatusPending}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, o.ID, items[0].ID)

	_, total, err = repo.List(ctx, entities.OrderFilter{Search: "jane"}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)

	_, total, err = repo.List(ctx, entities.OrderFilter{UserID: &userID}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	from := now.Add(-time.Minute)
	_, total, err = repo.List(ctx, entities.OrderFilter{From: &from}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	got.Status = entities.OrderStatusShipped
	got.TrackingNumber = null.StringFrom("TRACK-1")
	got.ShippedAt = null.TimeFrom(now)
	require.NoError(t, repo.UpdateStatus(ctx, got, entities.OrderStatusPending))
	require.NoError(t, repo.UpdatePaymentStatus(ctx, got.ID, entities.PaymentStatusRefunded))

	reloaded, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusShipped, reloaded.Status)
	require.Equal(t, entities.PaymentStatusRefunded, reloaded.PaymentStatus)
	require.Equal(t, "TRACK-1", reloaded.TrackingNumber.String)
	require.True(t, reloaded.ShippedAt.Valid)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.UpdatePaymentStatus(ctx, uuid.New(), entities.PaymentStatusPaid), domainerrors.ErrNotFound)
}

func TestOrderRepository_ItemsPaymentsHistory(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	o := seedOrder(t, db, "ORD-2001", "pending", decimal.NewFromInt(30), uuid.New(), time.Now())

	require.NoError(t, db.Create(&models.OrderItem{
		ID:        uuid.New(), OrderID: o.ID, ProductID: uuid.New(), ProductName: "Mug", SKU: "MUG",
		UnitPrice: decimal.NewFromInt(10), Quantity: 3, Total: decimal.NewFromInt(30),
	}).Error)
	paidAt := time.Now()
	require.NoError(t, db.Create(&models.Payment{
		ID:       uuid.New(), OrderID: o.ID, Method: "card", Amount: decimal.NewFromInt(30),
		Currency: "USD", Status: "captured", PaidAt: &paidAt, CreatedAt: paidAt,
	}).Error)

	items, err := repo.ListItems(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)

	payments, err := repo.ListPayments(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.True(t, payments[0].PaidAt.Valid)

	adminID := uuid.New()
	require.NoError(t, repo.AddHistory(ctx, &entities.OrderStatusHistory{
		OrderID: o.ID, FromStatus: entities.OrderStatusPending, ToStatus: entities.OrderStatusProcessing, ChangedBy: &adminID,
	}))
	history, err := repo.ListHistory(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, entities.OrderStatusProcessing, history[0].ToStatus)
	require.Equal(t, adminID, *history[0].ChangedBy)
}

func TestInvoiceRepository(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	ctx := context.Background()
	repo := NewInvoiceRepository(db)
	orderID := uuid.New()

	last, err := repo.LastNumberWithPrefix(ctx, "INV-2026-")
	require.NoError(t, err)
	require.Empty(t, last)

	for _, number := range []string{"INV-2026-000001", "INV-2026-000002"} {
		require.NoError(t, repo.Create(ctx, &entities.Invoice{
			Number: number, OrderID: orderID, Status: entities.InvoiceStatusIssued,
			Total:  decimal.NewFromInt(10), Currency: "USD", IssuedAt: time.Now(),
		}))
	}
	last, err = repo.LastNumberWithPrefix(ctx, "INV-2026-")
	require.NoError(t, err)
	require.Equal(t, "INV-2026-000002", last)

	issued, err := repo.GetIssuedByOrder(ctx, orderID)
	require.NoError(t, err)
	issued.Status = entities.InvoiceStatusVoid
	issued.VoidedAt = null.TimeFrom(time.Now())
	issued.VoidReason = null.StringFrom("duplicate")
	require.NoError(t, repo.Update(ctx, issued))

	voided, err := repo.GetByID(ctx, issued.ID)
	require.NoError(t, err)
	require.Equal(t, entities.InvoiceStatusVoid, voided.Status)
	require.Equal(t, "duplicate", voided.VoidReason.String)

	list, total, err := repo.List(ctx, &orderID, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, list, 2)

	_, err = repo.GetIssuedByOrder(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRefundRepository(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	ctx := context.Background()
	repo := NewRefundRepository(db)
	orderID := uuid.New()
	userID := uuid.New()

	pending := &entities.Refund{OrderID: orderID, UserID: userID, Amount: decimal.RequireFromString("12.50"),
		Reason: "damaged", Method: entities.RefundMethodWallet, Status: entities.RefundStatusPending}
	approved := &entities.Refund{OrderID: orderID, UserID: userID, Amount: decimal.RequireFromString("7.25"),
		Reason: "late", Method: entities.RefundMethodWallet, Status: entities.RefundStatusApproved}
	rejected := &entities.Refund{OrderID: orderID, UserID: userID, Amount: decimal.NewFromInt(100),
		Reason: "changed mind", Method: entities.RefundMethodOriginalPayment, Status: entities.RefundStatusRejected}
	for _, rf := range []*entities.Refund{pending, approved, rejected} {
		require.NoError(t, repo.Create(ctx, rf))
	}

	sum, err := repo.SumByOrder(ctx, orderID, entities.RefundStatusPending, entities.RefundStatusApproved)
	require.NoError(t, err)
	require.True(t, sum.Equal(decimal.RequireFromString("19.75")), sum.String())

	all, err := repo.SumByOrder(ctx, orderID)
	require.NoError(t, err)
	require.True(t, all.Equal(decimal.RequireFromString("119.75")))

	adminID := uuid.New()
	txID := uuid.New()
	pending.Status = entities.RefundStatusApproved
	pending.ProcessedBy = &adminID
	pending.ProcessedAt = null.TimeFrom(time.Now())
	pending.WalletTransactionID = &txID
	require.NoError(t, repo.Update(ctx, pending))

	got, err := repo.GetByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, entities.RefundStatusApproved, got.Status)
	require.Equal(t, txID, *got.WalletTransactionID)

	list, total, err := repo.List(ctx, entities.RefundFilter{Status: entities.RefundStatusApproved, UserID: &userID}, utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, list, 2)

	byOrder, err := repo.ListByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, byOrder, 3)

	require.ErrorIs(t, repo.Update(ctx, &entities.Refund{ID: uuid.New()}), domainerrors.ErrNotFound)
}

func TestOrderRepository_UpdateStatusGuardsCurrentStatus(t *testing.T) {
	db := newTestDB(t)
	createOrderTables(t, db)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	o := seedOrder(t, db, "ORD-3001", "pending", decimal.NewFromInt(40), uuid.New(), time.Now())

	first, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)

	first.Status = entities.OrderStatusCancelled
	first.CancelledAt = null.TimeFrom(time.Now())
	require.NoError(t, repo.UpdateStatus(ctx, first, entities.OrderStatusPending))

	second.Status = entities.OrderStatusCancelled
	err = repo.UpdateStatus(ctx, second, entities.OrderStatusPending)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	missing := &entities.Order{ID: uuid.New(), Status: entities.OrderStatusCancelled}
	err = repo.UpdateStatus(ctx, missing, entities.OrderStatusPending)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
