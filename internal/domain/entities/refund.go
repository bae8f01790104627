package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// RefundStatus represents the review state of a refund
type RefundStatus string

const (
	RefundStatusPending  RefundStatus = "pending"
	RefundStatusApproved RefundStatus = "approved"
	RefundStatusRejected RefundStatus = "rejected"
)

// RefundMethod is where approved money goes
type RefundMethod string

const (
	RefundMethodWallet          RefundMethod = "wallet"
	RefundMethodOriginalPayment RefundMethod = "original_payment"
)

// Refund is a customer refund request against an order
type Refund struct {
	ID                  uuid.UUID       `json:"id"`
	OrderID             uuid.UUID       `json:"orderId"`
	UserID              uuid.UUID       `json:"userId"`
	Amount              decimal.Decimal `json:"amount"`
	Reason              string          `json:"reason"`
	Method              RefundMethod    `json:"method"`
	Status              RefundStatus    `json:"status"`
	AdminNote           string          `json:"adminNote"`
	ProcessedBy         *uuid.UUID      `json:"processedBy,omitempty"`
	ProcessedAt         null.Time       `json:"processedAt"`
	WalletTransactionID *uuid.UUID      `json:"walletTransactionId,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// RefundFilter narrows refund listings
type RefundFilter struct {
	Status  RefundStatus
	OrderID *uuid.UUID
	UserID  *uuid.UUID
}

// CreateRefundInput represents input for opening a refund
type CreateRefundInput struct {
	OrderID uuid.UUID       `json:"orderId" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  string          `json:"reason" binding:"required,max=500"`
	Method  RefundMethod    `json:"method"`
}

// ReviewRefundInput carries the admin note for approve/reject
type ReviewRefundInput struct {
	Note string `json:"note" binding:"max=500"`
}
