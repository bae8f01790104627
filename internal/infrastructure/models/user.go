package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	RoleID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	IsActive     bool       `gorm:"not null"`
	LastLoginAt  *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID;references:ID"`
}

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Module      string    `gorm:"type:varchar(50);not null;index"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (RolePermission) TableName() string { return "role_permissions" }
