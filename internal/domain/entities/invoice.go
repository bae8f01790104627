package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// InvoiceStatus represents the lifecycle of an invoice
type InvoiceStatus string

const (
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// Invoice is a billing document generated from an order
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	OrderID       uuid.UUID       `json:"orderId"`
	Status        InvoiceStatus   `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	ShippingTotal decimal.Decimal `json:"shippingTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	IssuedAt      time.Time       `json:"issuedAt"`
	VoidedAt      null.Time       `json:"voidedAt"`
	VoidReason    null.String     `json:"voidReason"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
