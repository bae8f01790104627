package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
	"shop-admin.backend/pkg/utils"
)

// InvoiceUsecase generates and voids order invoices
type InvoiceUsecase struct {
	invoiceRepo repositories.InvoiceRepository
	orderRepo   repositories.OrderRepository
	uow         repositories.UnitOfWork
	audit       *AuditService
	now         func() time.Time
}

// NewInvoiceUsecase creates a new invoice usecase
func NewInvoiceUsecase(invoiceRepo repositories.InvoiceRepository, orderRepo repositories.OrderRepository, uow repositories.UnitOfWork, audit *AuditService) *InvoiceUsecase {
	return &InvoiceUsecase{invoiceRepo: invoiceRepo, orderRepo: orderRepo, uow: uow, audit: audit, now: time.Now}
}

func (u *InvoiceUsecase) ListInvoices(ctx context.Context, orderID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Invoice, int64, error) {
	return u.invoiceRepo.List(ctx, orderID, pagination)
}

func (u *InvoiceUsecase) GetInvoice(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	return u.invoiceRepo.GetByID(ctx, id)
}

// Generate issues the invoice of an order. An order has at most one issued invoice.
func (u *InvoiceUsecase) Generate(ctx context.Context, orderID uuid.UUID) (*entities.Invoice, error) {
	var invoice *entities.Invoice
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		order, err := u.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == entities.OrderStatusPending || order.Status == entities.OrderStatusCancelled {
			return domainerrors.Unprocessable(fmt.Sprintf("cannot invoice a %s order", order.Status), domainerrors.ErrUnprocessable)
		}
		existing, err := u.invoiceRepo.GetIssuedByOrder(ctx, orderID)
		if err != nil && !isNotFound(err) {
			return err
		}
		if existing != nil {
			return domainerrors.Conflict("order already has an issued invoice")
		}

		now := u.now()
		number, err := u.nextNumber(ctx, now)
		if err != nil {
			return err
		}
		invoice = &entities.Invoice{
			Number:        number,
			OrderID:       order.ID,
			Status:        entities.InvoiceStatusIssued,
			Subtotal:      order.Subtotal,
			DiscountTotal: order.DiscountTotal,
			ShippingTotal: order.ShippingTotal,
			TaxTotal:      order.TaxTotal,
			Total:         order.Total,
			Currency:      order.Currency,
			IssuedAt:      now,
		}
		if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
		return u.audit.Record(ctx, "invoices", entities.AuditActionCreated, "invoice", invoice.ID.String(), nil, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// Void cancels an issued invoice, freeing the order for a new one
func (u *InvoiceUsecase) Void(ctx context.Context, id uuid.UUID, reason string) (*entities.Invoice, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ValidationFailed(map[string]string{"reason": "is required"})
	}

	var invoice *entities.Invoice
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		invoice, err = u.invoiceRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if invoice.Status != entities.InvoiceStatusIssued {
			return domainerrors.Unprocessable("invoice is already void", domainerrors.ErrInvalidTransition)
		}
		before := cloneOf(invoice)
		invoice.Status = entities.InvoiceStatusVoid
		invoice.VoidedAt = null.TimeFrom(u.now())
		invoice.VoidReason = null.StringFrom(reason)
		if err := u.invoiceRepo.Update(ctx, invoice); err != nil {
			return err
		}
		return u.audit.Record(ctx, "invoices", "voided", "invoice", id.String(), before, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// nextNumber returns INV-<YYYYMM>-<sequence>, the sequence restarting every month
func (u *InvoiceUsecase) nextNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := "INV-" + now.UTC().Format("200601") + "-"
	last, err := u.invoiceRepo.LastNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("parse invoice number %q: %w", last, err)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%06d", prefix, seq), nil
}
