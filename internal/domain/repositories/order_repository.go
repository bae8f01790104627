package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter, pagination utils.PaginationParams) ([]*entities.Order, int64, error)
	UpdateStatus(ctx context.Context, order *entities.Order, from entities.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entities.PaymentStatus) error
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderItem, error)
	ListPayments(ctx context.Context, orderID uuid.UUID) ([]*entities.Payment, error)
	AddHistory(ctx context.Context, entry *entities.OrderStatusHistory) error
	ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderStatusHistory, error)
}

// InvoiceRepository defines invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entities.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	GetIssuedByOrder(ctx context.Context, orderID uuid.UUID) (*entities.Invoice, error)
	Update(ctx context.Context, invoice *entities.Invoice) error
	List(ctx context.Context, orderID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Invoice, int64, error)
	// LastNumberWithPrefix returns "" when no invoice uses the prefix yet
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// RefundRepository defines refund data operations
type RefundRepository interface {
	Create(ctx context.Context, refund *entities.Refund) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Refund, error)
	Update(ctx context.Context, refund *entities.Refund) error
	List(ctx context.Context, filter entities.RefundFilter, pagination utils.PaginationParams) ([]*entities.Refund, int64, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.Refund, error)
	SumByOrder(ctx context.Context, orderID uuid.UUID, statuses ...entities.RefundStatus) (decimal.Decimal, error)
}

// WalletRepository defines wallet and ledger operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)
	GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*entities.Wallet, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	List(ctx context.Context, userID *uuid.UUID, pagination utils.PaginationParams) ([]*entities.Wallet, int64, error)
	CreateTransaction(ctx context.Context, tx *entities.WalletTransaction) error
	ListTransactions(ctx context.Context, walletID uuid.UUID, pagination utils.PaginationParams) ([]*entities.WalletTransaction, int64, error)
}
