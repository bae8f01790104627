package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Currency struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code          string          `gorm:"type:varchar(3);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Symbol        string          `gorm:"type:varchar(10);not null"`
	ExchangeRate  decimal.Decimal `gorm:"type:numeric(18,8);not null"`
	DecimalPlaces int             `gorm:"not null"`
	IsDefault     bool            `gorm:"not null"`
	IsActive      bool            `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Language struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(100);not null"`
	NativeName string    `gorm:"type:varchar(100)"`
	Direction  string    `gorm:"type:varchar(3);not null;default:'ltr'"`
	IsDefault  bool      `gorm:"not null"`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Translation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Group     string    `gorm:"column:group_name;type:varchar(100);not null;uniqueIndex:idx_translations_group_key_locale"`
	Key       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_translations_group_key_locale"`
	Locale    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_translations_group_key_locale"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CmsPage struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(255);not null"`
	Content         string    `gorm:"type:text"`
	MetaTitle       string    `gorm:"type:varchar(255)"`
	MetaDescription string    `gorm:"type:varchar(500)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'draft'"`
	PublishedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
