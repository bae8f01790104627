package entities

import (
	"time"

	"github.com/google/uuid"
)

// StockAdjustmentReason explains a manual stock change
type StockAdjustmentReason string

const (
	StockReasonRestock    StockAdjustmentReason = "restock"
	StockReasonDamage     StockAdjustmentReason = "damage"
	StockReasonCorrection StockAdjustmentReason = "correction"
	StockReasonReturn     StockAdjustmentReason = "return"
)

// IsValid reports whether r is a known reason
func (r StockAdjustmentReason) IsValid() bool {
	switch r {
	case StockReasonRestock, StockReasonDamage, StockReasonCorrection, StockReasonReturn:
		return true
	}
	return false
}

// Stock ledger reference types
const (
	StockReferenceAdjustment  = "adjustment"
	StockReferenceOrderCancel = "order_cancel"
)

// StockLedger is an immutable stock movement
type StockLedger struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	Change        int       `json:"change"`
	BalanceAfter  int       `json:"balanceAfter"`
	ReferenceType string    `json:"referenceType"`
	ReferenceID   string    `json:"referenceId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StockAdjustment is a manual stock change made by an admin
type StockAdjustment struct {
	ID        uuid.UUID             `json:"id"`
	ProductID uuid.UUID             `json:"productId"`
	Change    int                   `json:"change"`
	Reason    StockAdjustmentReason `json:"reason"`
	Note      string                `json:"note"`
	CreatedBy *uuid.UUID            `json:"createdBy,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
}

// StockAdjustmentInput represents a manual stock change request
type StockAdjustmentInput struct {
	Change int                   `json:"change"`
	Reason StockAdjustmentReason `json:"reason" binding:"required"`
	Note   string                `json:"note" binding:"max=500"`
}
