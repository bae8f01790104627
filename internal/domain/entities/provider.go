package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProviderType is the integration family
type ProviderType string

const (
	ProviderTypePayment  ProviderType = "payment"
	ProviderTypeShipping ProviderType = "shipping"
	ProviderTypeSMS      ProviderType = "sms"
	ProviderTypeEmail    ProviderType = "email"
	ProviderTypePush     ProviderType = "push"
)

// IsValid reports whether t is a known type
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypePayment, ProviderTypeShipping, ProviderTypeSMS, ProviderTypeEmail, ProviderTypePush:
		return true
	}
	return false
}

// Channel returns the notification channel a provider delivers on, if any
func (t ProviderType) Channel() (NotificationChannel, bool) {
	switch t {
	case ProviderTypeSMS:
		return ChannelSMS, true
	case ProviderTypeEmail:
		return ChannelEmail, true
	case ProviderTypePush:
		return ChannelPush, true
	}
	return "", false
}

// ProviderEnvironment selects sandbox or live credentials
type ProviderEnvironment string

const (
	EnvironmentSandbox    ProviderEnvironment = "sandbox"
	EnvironmentProduction ProviderEnvironment = "production"
)

// Last test statuses
const (
	ProviderTestSuccess = "success"
	ProviderTestFailed  = "failed"
)

// Provider is a configured third-party integration
type Provider struct {
	ID             uuid.UUID           `json:"id"`
	Type           ProviderType        `json:"type"`
	Code           string              `json:"code"`
	Name           string              `json:"name"`
	Environment    ProviderEnvironment `json:"environment"`
	IsEnabled      bool                `json:"isEnabled"`
	Config         null.JSON           `json:"config"`
	LastTestedAt   null.Time           `json:"lastTestedAt"`
	LastTestStatus null.String         `json:"lastTestStatus"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`

	Secrets map[string]string `json:"secrets,omitempty"` // masked values only
}

// ProviderSecret is one encrypted credential
type ProviderSecret struct {
	ID             uuid.UUID `json:"id"`
	ProviderID     uuid.UUID `json:"providerId"`
	Key            string    `json:"key"`
	ValueEncrypted string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProviderInput represents input for creating or updating a provider
type ProviderInput struct {
	Type        ProviderType        `json:"type" binding:"required"`
	Code        string              `json:"code" binding:"required,max=50"`
	Name        string              `json:"name" binding:"required,max=100"`
	Environment ProviderEnvironment `json:"environment"`
	Config      null.JSON           `json:"config"`
}

// ProviderTestResult is returned by a connection test
type ProviderTestResult struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	TestedAt time.Time `json:"testedAt"`
}
