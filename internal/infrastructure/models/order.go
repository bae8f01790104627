package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus    string          `gorm:"type:varchar(30);not null;index"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	DiscountTotal    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ShippingTotal    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxTotal         decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	CouponCode       *string         `gorm:"type:varchar(50)"`
	ShippingName     string          `gorm:"type:varchar(150)"`
	ShippingAddress  string          `gorm:"type:varchar(255)"`
	ShippingCity     string          `gorm:"type:varchar(100)"`
	ShippingState    string          `gorm:"type:varchar(100)"`
	ShippingPostcode string          `gorm:"type:varchar(20)"`
	ShippingCountry  string          `gorm:"type:varchar(2)"`
	TrackingNumber   *string         `gorm:"type:varchar(100)"`
	Notes            string          `gorm:"type:text"`
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	SKU         string          `gorm:"column:sku;type:varchar(100)"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	Total       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

type OrderStatusHistory struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromStatus string     `gorm:"type:varchar(20);not null"`
	ToStatus   string     `gorm:"type:varchar(20);not null"`
	Note       string     `gorm:"type:text"`
	ChangedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
}

type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method        string          `gorm:"type:varchar(50);not null"`
	Provider      string          `gorm:"type:varchar(50)"`
	TransactionID string          `gorm:"type:varchar(150)"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	Status        string          `gorm:"type:varchar(20);not null"`
	PaidAt        *time.Time
	CreatedAt     time.Time
}

type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number        string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        string          `gorm:"type:varchar(20);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	DiscountTotal decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ShippingTotal decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxTotal      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	IssuedAt      time.Time
	VoidedAt      *time.Time
	VoidReason    *string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Refund struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount              decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Reason              string          `gorm:"type:varchar(500);not null"`
	Method              string          `gorm:"type:varchar(30);not null"`
	Status              string          `gorm:"type:varchar(20);not null;index"`
	AdminNote           string          `gorm:"type:varchar(500)"`
	ProcessedBy         *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt         *time.Time
	WalletTransactionID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Wallet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_wallets_user_currency"`
	Currency  string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_wallets_user_currency"`
	Balance   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WalletTransaction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ReferenceType string          `gorm:"type:varchar(50);not null"`
	ReferenceID   string          `gorm:"type:varchar(100)"`
	Description   string          `gorm:"type:varchar(255)"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt     time.Time
}
