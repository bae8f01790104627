package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Audit actions
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
	AuditActionExpired = "expired"
)

// AuditLog is an append-only record of an admin mutation
type AuditLog struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"userId,omitempty"`
	Module      string     `json:"module"`
	Action      string     `json:"action"`
	SubjectType string     `json:"subjectType"`
	SubjectID   string     `json:"subjectId"`
	Before      null.JSON  `json:"before"`
	After       null.JSON  `json:"after"`
	IPAddress   string     `json:"ipAddress"`
	UserAgent   string     `json:"userAgent"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// AuditLogFilter narrows audit log listings
type AuditLogFilter struct {
	Module      string
	Action      string
	SubjectType string
	SubjectID   string
	UserID      *uuid.UUID
	From        *time.Time
	To          *time.Time
}
