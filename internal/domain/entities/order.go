package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusReturned},
}

// CanTransitionTo reports whether the order may move from s to next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

// PaymentStatus represents the settlement state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusFailed            PaymentStatus = "failed"
)

// Refundable reports whether money has been captured and not fully returned
func (s PaymentStatus) Refundable() bool {
	return s == PaymentStatusPaid || s == PaymentStatusPartiallyRefunded
}

// Order is a customer order
type Order struct {
	ID               uuid.UUID       `json:"id"`
	Number           string          `json:"number"`
	UserID           uuid.UUID       `json:"userId"`
	Status           OrderStatus     `json:"status"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountTotal    decimal.Decimal `json:"discountTotal"`
	ShippingTotal    decimal.Decimal `json:"shippingTotal"`
	TaxTotal         decimal.Decimal `json:"taxTotal"`
	Total            decimal.Decimal `json:"total"`
	Currency         string          `json:"currency"`
	CouponCode       null.String     `json:"couponCode"`
	ShippingName     string          `json:"shippingName"`
	ShippingAddress  string          `json:"shippingAddress"`
	ShippingCity     string          `json:"shippingCity"`
	ShippingState    string          `json:"shippingState"`
	ShippingPostcode string          `json:"shippingPostcode"`
	ShippingCountry  string          `json:"shippingCountry"`
	TrackingNumber   null.String     `json:"trackingNumber"`
	Notes            string          `json:"notes"`
	ShippedAt        null.Time       `json:"shippedAt"`
	DeliveredAt      null.Time       `json:"deliveredAt"`
	CancelledAt      null.Time       `json:"cancelledAt"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Items            []*OrderItem    `json:"items,omitempty"`
}

// OrderItem is a line of an order
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"orderId"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// OrderStatusHistory records one status change
type OrderStatusHistory struct {
	ID         uuid.UUID   `json:"id"`
	OrderID    uuid.UUID   `json:"orderId"`
	FromStatus OrderStatus `json:"fromStatus"`
	ToStatus   OrderStatus `json:"toStatus"`
	Note       string      `json:"note"`
	ChangedBy  *uuid.UUID  `json:"changedBy,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Payment is a captured payment attempt against an order
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"orderId"`
	Method        string          `json:"method"`
	Provider      string          `json:"provider"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaidAt        null.Time       `json:"paidAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Search        string
	UserID        *uuid.UUID
	From          *time.Time
	To            *time.Time
}

// OrderDetail bundles an order with its related rows
type OrderDetail struct {
	Order    *Order                `json:"order"`
	Items    []*OrderItem          `json:"items"`
	Payments []*Payment            `json:"payments"`
	History  []*OrderStatusHistory `json:"history"`
	Refunds  []*Refund             `json:"refunds"`
}

// UpdateOrderStatusInput represents a status change request
type UpdateOrderStatusInput struct {
	Status         OrderStatus `json:"status" binding:"required"`
	Note           string      `json:"note"`
	TrackingNumber string      `json:"trackingNumber"`
}
