package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxCountryWildcard matches any country on a tax rule
const TaxCountryWildcard = "*"

// TaxRate is a named percentage
type TaxRate struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TaxRule maps a destination (and optional category) to a tax rate
type TaxRule struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	TaxRateID  uuid.UUID  `json:"taxRateId"`
	Country    string     `json:"country"`
	State      string     `json:"state"`
	Postcode   string     `json:"postcode"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	Priority   int        `json:"priority"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Rate *TaxRate `json:"rate,omitempty"`
}

// TaxRateInput represents input for creating or updating a tax rate
type TaxRateInput struct {
	Name     string          `json:"name" binding:"required,max=100"`
	Rate     decimal.Decimal `json:"rate"`
	IsActive *bool           `json:"isActive"`
}

// TaxRuleInput represents input for creating or updating a tax rule
type TaxRuleInput struct {
	Name       string     `json:"name" binding:"required,max=100"`
	TaxRateID  uuid.UUID  `json:"taxRateId" binding:"required"`
	Country    string     `json:"country" binding:"required"`
	State      string     `json:"state"`
	Postcode   string     `json:"postcode"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Priority   int        `json:"priority"`
	IsActive   *bool      `json:"isActive"`
}

// TaxAddress is the destination a tax rate is resolved for
type TaxAddress struct {
	Country  string `json:"country" binding:"required"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// TaxResolveInput represents a resolve request
type TaxResolveInput struct {
	Address        TaxAddress      `json:"address" binding:"required"`
	CategoryID     *uuid.UUID      `json:"categoryId"`
	FallbackRateID *uuid.UUID      `json:"fallbackRateId"`
	Amount         decimal.Decimal `json:"amount"`
}

// TaxResolution is the outcome of a tax resolve
type TaxResolution struct {
	RuleID    *uuid.UUID      `json:"ruleId"`
	TaxRateID *uuid.UUID      `json:"taxRateId"`
	Rate      decimal.Decimal `json:"rate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
}
