package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel is a delivery medium
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelPush  NotificationChannel = "push"
)

// IsValid reports whether c is a known channel
func (c NotificationChannel) IsValid() bool {
	return c == ChannelEmail || c == ChannelSMS || c == ChannelPush
}

// NotificationStatus is the delivery outcome
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// NotificationTemplate is a localized message for an event
type NotificationTemplate struct {
	ID        uuid.UUID           `json:"id"`
	Event     string              `json:"event"`
	Channel   NotificationChannel `json:"channel"`
	Locale    string              `json:"locale"`
	Subject   string              `json:"subject"`
	Body      string              `json:"body"`
	IsActive  bool                `json:"isActive"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// NotificationTemplateInput represents input for creating or updating a template
type NotificationTemplateInput struct {
	Event    string              `json:"event" binding:"required,max=100"`
	Channel  NotificationChannel `json:"channel" binding:"required"`
	Locale   string              `json:"locale" binding:"required"`
	Subject  string              `json:"subject" binding:"max=255"`
	Body     string              `json:"body" binding:"required"`
	IsActive *bool               `json:"isActive"`
}

// RenderedNotification is a preview of a template
type RenderedNotification struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NotificationLog is a record of a delivery attempt
type NotificationLog struct {
	ID         uuid.UUID           `json:"id"`
	TemplateID *uuid.UUID          `json:"templateId,omitempty"`
	Channel    NotificationChannel `json:"channel"`
	Recipient  string              `json:"recipient"`
	Subject    string              `json:"subject"`
	Status     NotificationStatus  `json:"status"`
	Error      string              `json:"error"`
	SentAt     time.Time           `json:"sentAt"`
}

// NotificationLogFilter narrows log listings
type NotificationLogFilter struct {
	Channel NotificationChannel
	Status  NotificationStatus
}
