package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/utils"
)

// RefundUsecase reviews customer refunds. Approved wallet refunds credit the
// customer's wallet in the order currency.
type RefundUsecase struct {
	refundRepo repositories.RefundRepository
	orderRepo  repositories.OrderRepository
	wallets    *WalletUsecase
	uow        repositories.UnitOfWork
	audit      *AuditService
	now        func() time.Time
}

// NewRefundUsecase creates a new refund usecase
func NewRefundUsecase(
	refundRepo repositories.RefundRepository,
	orderRepo repositories.OrderRepository,
	wallets *WalletUsecase,
	uow repositories.UnitOfWork,
	audit *AuditService,
) *RefundUsecase {
	return &RefundUsecase{
		refundRepo: refundRepo,
		orderRepo:  orderRepo,
		wallets:    wallets,
		uow:        uow,
		audit:      audit,
		now:        time.Now,
	}
}

func (u *RefundUsecase) ListRefunds(ctx context.Context, filter entities.RefundFilter, pagination utils.PaginationParams) ([]*entities.Refund, int64, error) {
	return u.refundRepo.List(ctx, filter, pagination)
}

func (u *RefundUsecase) GetRefund(ctx context.Context, id uuid.UUID) (*entities.Refund, error) {
	return u.refundRepo.GetByID(ctx, id)
}

// CreateRefund opens a pending refund against a paid order
func (u *RefundUsecase) CreateRefund(ctx context.Context, input *entities.CreateRefundInput) (*entities.Refund, error) {
	amount := input.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, domainerrors.ValidationFailed(map[string]string{"amount": "must be greater than zero"})
	}
	method := input.Method
	if method == "" {
		method = entities.RefundMethodWallet
	}
	if method != entities.RefundMethodWallet && method != entities.RefundMethodOriginalPayment {
		return nil, domainerrors.BadRequest("unknown refund method")
	}

	var refund *entities.Refund
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		order, err := u.orderRepo.GetByID(ctx, input.OrderID)
		if err != nil {
			if isNotFound(err) {
				return domainerrors.BadRequest("order does not exist")
			}
			return err
		}
		if !order.PaymentStatus.Refundable() {
			return domainerrors.Unprocessable("order has no captured payment to refund", domainerrors.ErrUnprocessable)
		}
		committed, err := u.refundRepo.SumByOrder(ctx, order.ID, entities.RefundStatusApproved, entities.RefundStatusPending)
		if err != nil {
			return err
		}
		if committed.Add(amount).GreaterThan(order.Total) {
			return domainerrors.Unprocessable(
				fmt.Sprintf("refundable amount is %s", order.Total.Sub(committed).StringFixed(2)),
				domainerrors.ErrRefundExceedsTotal,
			)
		}

		refund = &entities.Refund{
			OrderID: order.ID,
			UserID:  order.UserID,
			Amount:  amount,
			Reason:  input.Reason,
			Method:  method,
			Status:  entities.RefundStatusPending,
		}
		if err := u.refundRepo.Create(ctx, refund); err != nil {
			return err
		}
		return u.audit.Record(ctx, "refunds", entities.AuditActionCreated, "refund", refund.ID.String(), nil, refund)
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

// ApproveRefund approves a pending refund, credits the wallet for wallet
// refunds and moves the order payment status, all in one transaction.
func (u *RefundUsecase) ApproveRefund(ctx context.Context, id uuid.UUID, note string) (*entities.Refund, error) {
	var refund *entities.Refund
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		refund, err = u.pending(ctx, id)
		if err != nil {
			return err
		}
		before := cloneOf(refund)

		order, err := u.orderRepo.GetByID(ctx, refund.OrderID)
		if err != nil {
			return err
		}
		approved, err := u.refundRepo.SumByOrder(ctx, order.ID, entities.RefundStatusApproved)
		if err != nil {
			return err
		}
		approved = approved.Add(refund.Amount)
		if approved.GreaterThan(order.Total) {
			return domainerrors.Unprocessable("approving would refund more than the order total", domainerrors.ErrRefundExceedsTotal)
		}

		if refund.Method == entities.RefundMethodWallet {
			txn, err := u.wallets.Credit(ctx, order.UserID, order.Currency, refund.Amount,
				entities.WalletReferenceRefund, refund.ID.String(), "Refund for order "+order.Number)
			if err != nil {
				return err
			}
			refund.WalletTransactionID = &txn.ID
		}

		u.process(ctx, refund, entities.RefundStatusApproved, note)
		if err := u.refundRepo.Update(ctx, refund); err != nil {
			return err
		}

		paymentStatus := entities.PaymentStatusPartiallyRefunded
		if approved.GreaterThanOrEqual(order.Total) {
			paymentStatus = entities.PaymentStatusRefunded
		}
		if err := u.orderRepo.UpdatePaymentStatus(ctx, order.ID, paymentStatus); err != nil {
			return err
		}
		return u.audit.Record(ctx, "refunds", "approved", "refund", refund.ID.String(), before, refund)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Refund approved",
		zap.String("refund_id", refund.ID.String()),
		zap.String("order_id", refund.OrderID.String()),
		zap.String("amount", refund.Amount.StringFixed(2)),
		zap.String("method", string(refund.Method)),
	)
	return refund, nil
}

// RejectRefund closes a pending refund without moving money
func (u *RefundUsecase) RejectRefund(ctx context.Context, id uuid.UUID, note string) (*entities.Refund, error) {
	var refund *entities.Refund
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		refund, err = u.pending(ctx, id)
		if err != nil {
			return err
		}
		before := cloneOf(refund)
		u.process(ctx, refund, entities.RefundStatusRejected, note)
		if err := u.refundRepo.Update(ctx, refund); err != nil {
			return err
		}
		return u.audit.Record(ctx, "refunds", "rejected", "refund", refund.ID.String(), before, refund)
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

func (u *RefundUsecase) pending(ctx context.Context, id uuid.UUID) (*entities.Refund, error) {
	refund, err := u.refundRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if refund.Status != entities.RefundStatusPending {
		return nil, domainerrors.Unprocessable(fmt.Sprintf("refund is already %s", refund.Status), domainerrors.ErrInvalidTransition)
	}
	return refund, nil
}

func (u *RefundUsecase) process(ctx context.Context, refund *entities.Refund, status entities.RefundStatus, note string) {
	refund.Status = status
	refund.AdminNote = note
	refund.ProcessedBy = actorID(ctx)
	refund.ProcessedAt = null.TimeFrom(u.now())
}
