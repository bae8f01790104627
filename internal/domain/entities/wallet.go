package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletTransactionType is the ledger direction
type WalletTransactionType string

const (
	WalletTransactionCredit WalletTransactionType = "credit"
	WalletTransactionDebit  WalletTransactionType = "debit"
)

// Wallet reference types
const (
	WalletReferenceRefund     = "refund"
	WalletReferenceAdjustment = "admin_adjustment"
)

// Wallet is a customer's stored balance in one currency
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// WalletTransaction is an immutable ledger entry of a wallet
type WalletTransaction struct {
	ID            uuid.UUID             `json:"id"`
	WalletID      uuid.UUID             `json:"walletId"`
	Type          WalletTransactionType `json:"type"`
	Amount        decimal.Decimal       `json:"amount"`
	BalanceBefore decimal.Decimal       `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal       `json:"balanceAfter"`
	ReferenceType string                `json:"referenceType"`
	ReferenceID   string                `json:"referenceId"`
	Description   string                `json:"description"`
	CreatedBy     *uuid.UUID            `json:"createdBy,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// WalletAdjustmentInput represents a manual balance correction
type WalletAdjustmentInput struct {
	Type        WalletTransactionType `json:"type" binding:"required,oneof=credit debit"`
	Amount      decimal.Decimal       `json:"amount"`
	Description string                `json:"description" binding:"required,max=255"`
}

// WalletDetail bundles a wallet with its latest transactions
type WalletDetail struct {
	Wallet       *Wallet              `json:"wallet"`
	Transactions []*WalletTransaction `json:"transactions"`
}
