package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is a store currency; exactly one is the default
type Currency struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	DecimalPlaces int             `json:"decimalPlaces"`
	IsDefault     bool            `json:"isDefault"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CurrencyInput represents input for creating or updating a currency
type CurrencyInput struct {
	Code          string          `json:"code" binding:"required,len=3"`
	Name          string          `json:"name" binding:"required,max=100"`
	Symbol        string          `json:"symbol" binding:"required,max=10"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	DecimalPlaces int             `json:"decimalPlaces" binding:"min=0,max=4"`
	IsActive      *bool           `json:"isActive"`
}

// TextDirection of a language
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// Language is a storefront locale; exactly one is the default
type Language struct {
	ID         uuid.UUID     `json:"id"`
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	NativeName string        `json:"nativeName"`
	Direction  TextDirection `json:"direction"`
	IsDefault  bool          `json:"isDefault"`
	IsActive   bool          `json:"isActive"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// LanguageInput represents input for creating or updating a language
type LanguageInput struct {
	Code       string        `json:"code" binding:"required,max=20"`
	Name       string        `json:"name" binding:"required,max=100"`
	NativeName string        `json:"nativeName" binding:"max=100"`
	Direction  TextDirection `json:"direction"`
	IsActive   *bool         `json:"isActive"`
}

// Translation is one localized string
type Translation struct {
	ID        uuid.UUID `json:"id"`
	Group     string    `json:"group"`
	Key       string    `json:"key"`
	Locale    string    `json:"locale"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TranslationInput represents input for creating or updating a translation
type TranslationInput struct {
	Group  string `json:"group" binding:"required,max=100"`
	Key    string `json:"key" binding:"required,max=255"`
	Locale string `json:"locale" binding:"required"`
	Value  string `json:"value"`
}

// TranslationFilter narrows translation listings
type TranslationFilter struct {
	Group  string
	Locale string
	Search string
}

// TranslationBundle is the export shape: group -> key -> value
type TranslationBundle map[string]map[string]string
