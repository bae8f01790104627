package usecases

import (
	"context"
	"fmt"
	"strings"
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

// OrderUsecase handles order review and fulfilment transitions
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	refundRepo  repositories.RefundRepository
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
	uow         repositories.UnitOfWork
	audit       *AuditService
	now         func() time.Time
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	refundRepo repositories.RefundRepository,
	productRepo repositories.ProductRepository,
	stockRepo repositories.StockRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		refundRepo:  refundRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		uow:         uow,
		audit:       audit,
		now:         time.Now,
	}
}

// ListOrders lists orders
func (u *OrderUsecase) ListOrders(ctx context.Context, filter entities.OrderFilter, pagination utils.PaginationParams) ([]*entities.Order, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, domainerrors.BadRequest("unknown order status")
	}
	return u.orderRepo.List(ctx, filter, pagination)
}

// GetOrderDetail returns an order with items, payments, status history and refunds
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, id uuid.UUID) (*entities.OrderDetail, error) {
	order, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := u.orderRepo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := u.orderRepo.ListPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := u.orderRepo.ListHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	refunds, err := u.refundRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entities.OrderDetail{Order: order, Items: items, Payments: payments, History: history, Refunds: refunds}, nil
}

// UpdateStatus moves an order along its fulfilment state machine
func (u *OrderUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.BadRequest("unknown order status")
	}

	var order *entities.Order
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = u.orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		from := order.Status
		if !from.CanTransitionTo(input.Status) {
			return domainerrors.Unprocessable(
				fmt.Sprintf("order cannot move from %s to %s", from, input.Status),
				domainerrors.ErrInvalidTransition,
			)
		}
		before := cloneOf(order)

		now := u.now()
		switch input.Status {
		case entities.OrderStatusShipped:
			tracking := strings.TrimSpace(input.TrackingNumber)
			if tracking == "" {
				return domainerrors.ValidationFailed(map[string]string{"trackingNumber": "is required when shipping"})
			}
			order.TrackingNumber = null.StringFrom(tracking)
			order.ShippedAt = null.TimeFrom(now)
		case entities.OrderStatusDelivered:
			order.DeliveredAt = null.TimeFrom(now)
		case entities.OrderStatusCancelled:
			order.CancelledAt = null.TimeFrom(now)
			if err := u.restock(ctx, order.ID); err != nil {
				return err
			}
		}
		order.Status = input.Status

		if err := u.orderRepo.UpdateStatus(ctx, order, from); err != nil {
			return err
		}
		if err := u.orderRepo.AddHistory(ctx, &entities.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: from,
			ToStatus:   input.Status,
			Note:       input.Note,
			ChangedBy:  actorID(ctx),
		}); err != nil {
			return err
		}
		return u.audit.Record(ctx, "orders", "status_changed", "order", order.ID.String(), before, order)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
	)
	return order, nil
}

// restock returns every line of a cancelled order to stock through the ledger
func (u *OrderUsecase) restock(ctx context.Context, orderID uuid.UUID) error {
	items, err := u.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		balance, err := u.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			if isNotFound(err) {
				logger.Warn(ctx, "Skipping restock of removed product",
					zap.String("order_id", orderID.String()),
					zap.String("product_id", item.ProductID.String()),
				)
				continue
			}
			return err
		}
		if err := u.stockRepo.CreateLedger(ctx, &entities.StockLedger{
			ProductID:     item.ProductID,
			Change:        item.Quantity,
			BalanceAfter:  balance,
			ReferenceType: entities.StockReferenceOrderCancel,
			ReferenceID:   orderID.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}
