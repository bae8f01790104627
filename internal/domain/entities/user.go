package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RoleSuperAdmin implicitly holds every permission and cannot be removed
const RoleSuperAdmin = "super_admin"

// User is an admin account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	RoleID       uuid.UUID `json:"roleId"`
	RoleName     string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	LastLoginAt  null.Time `json:"lastLoginAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role groups permissions
type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsSuperAdmin reports whether the role bypasses permission checks
func (r *Role) IsSuperAdmin() bool {
	return r != nil && r.Name == RoleSuperAdmin
}

// Permission is a `<module>.<action>` capability
type Permission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Module      string    `json:"module"`
	Description string    `json:"description"`
}

// LoginInput represents input for admin login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	ExpiresAt    int64  `json:"expiresAt,omitempty"`
	User         *User  `json:"user"`
}

// CreateUserInput represents input for creating an admin user
type CreateUserInput struct {
	Email    string    `json:"email" binding:"required,email"`
	Name     string    `json:"name" binding:"required,min=2,max=100"`
	Password string    `json:"password" binding:"required,min=8"`
	RoleID   uuid.UUID `json:"roleId" binding:"required"`
}

// UpdateUserInput represents a partial admin user update
type UpdateUserInput struct {
	Name     *string    `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	RoleID   *uuid.UUID `json:"roleId"`
	IsActive *bool      `json:"isActive"`
	Password *string    `json:"password" binding:"omitempty,min=8"`
}

// RoleInput represents input for creating or updating a role
type RoleInput struct {
	Name        string   `json:"name" binding:"required,min=2,max=50"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}
