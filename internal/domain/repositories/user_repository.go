package repositories

import (
	"context"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/pkg/utils"
)

// UserRepository defines admin user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error)
	CountActiveByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
}

// RoleRepository defines role data operations
type RoleRepository interface {
	Create(ctx context.Context, role *entities.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error)
	GetByName(ctx context.Context, name string) (*entities.Role, error)
	Update(ctx context.Context, role *entities.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Role, error)
	SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error
	CountUsers(ctx context.Context, roleID uuid.UUID) (int64, error)
}

// PermissionRepository defines permission catalogue operations
type PermissionRepository interface {
	List(ctx context.Context) ([]*entities.Permission, error)
	GetByNames(ctx context.Context, names []string) ([]*entities.Permission, error)
	ListNamesByRole(ctx context.Context, roleName string) ([]string, error)
	Upsert(ctx context.Context, permission *entities.Permission) error
}
