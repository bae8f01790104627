package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type NotificationTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Event     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_notification_templates_event_channel_locale"`
	Channel   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_notification_templates_event_channel_locale"`
	Locale    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_notification_templates_event_channel_locale"`
	Subject   string    `gorm:"type:varchar(255)"`
	Body      string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NotificationLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TemplateID *uuid.UUID `gorm:"type:uuid"`
	Channel    string     `gorm:"type:varchar(10);not null;index"`
	Recipient  string     `gorm:"type:varchar(255);not null"`
	Subject    string     `gorm:"type:varchar(255)"`
	Status     string     `gorm:"type:varchar(10);not null"`
	Error      string     `gorm:"type:text"`
	SentAt     time.Time  `gorm:"index"`
}

type Provider struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type           string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_providers_type_code"`
	Code           string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_providers_type_code"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Environment    string    `gorm:"type:varchar(20);not null;default:'sandbox'"`
	IsEnabled      bool      `gorm:"not null"`
	Config         null.JSON `gorm:"type:jsonb"`
	LastTestedAt   *time.Time
	LastTestStatus *string `gorm:"type:varchar(20)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProviderSecret struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_provider_secrets_provider_key"`
	Key            string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_provider_secrets_provider_key"`
	ValueEncrypted string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
