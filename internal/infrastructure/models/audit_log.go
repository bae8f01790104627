package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type AuditLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Module      string     `gorm:"type:varchar(50);not null;index:idx_audit_logs_module_action"`
	Action      string     `gorm:"type:varchar(50);not null;index:idx_audit_logs_module_action"`
	SubjectType string     `gorm:"type:varchar(50);not null;index:idx_audit_logs_subject"`
	SubjectID   string     `gorm:"type:varchar(100);not null;index:idx_audit_logs_subject"`
	Before      null.JSON  `gorm:"type:jsonb"`
	After       null.JSON  `gorm:"type:jsonb"`
	IPAddress   string     `gorm:"type:varchar(64)"`
	UserAgent   string     `gorm:"type:varchar(255)"`
	CreatedAt   time.Time  `gorm:"index"`
}

type Setting struct {
	Group     string `gorm:"column:group_name;type:varchar(50);primaryKey"`
	Key       string `gorm:"type:varchar(100);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
