package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"shop-admin.backend/internal/domain/entities"
	"shop-admin.backend/internal/infrastructure/models"
	"shop-admin.backend/pkg/utils"
)

// UserRepository implements admin user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	now := time.Now()
	user.ID = ensureID(user.ID)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = now
	user.UpdatedAt = now

	m := &models.User{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		RoleID:       user.RoleID,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	return GetDB(ctx, r.db).Omit("Role").Create(m).Error
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Preload("Role").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Preload("Role").Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return userToEntity(&m), nil
}

// Update updates profile, role, status and password hash
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	user.UpdatedAt = time.Now()
	updates := map[string]interface{}{
		"name":          user.Name,
		"email":         strings.ToLower(strings.TrimSpace(user.Email)),
		"role_id":       user.RoleID,
		"is_active":     user.IsActive,
		"password_hash": user.PasswordHash,
		"updated_at":    user.UpdatedAt,
	}
	return checkAffected(GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates))
}

// UpdateLastLogin stamps a successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Update("last_login_at", time.Now()))
}

// Delete soft deletes a user
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.User{}, "id = ?", id))
}

// List lists users with optional search filter
func (r *UserRepository) List(ctx context.Context, search string, pagination utils.PaginationParams) ([]*entities.User, int64, error) {
	query := GetDB(ctx, r.db).Model(&models.User{})
	if strings.TrimSpace(search) != "" {
		term := likeTerm(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.User
	if err := paginate(query.Preload("Role").Order("created_at DESC"), pagination).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, userToEntity(&ms[i]))
	}
	return users, total, nil
}

// CountActiveByRole counts active users holding a role
func (r *UserRepository) CountActiveByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.User{}).Where("role_id = ? AND is_active = ?", roleID, true).Count(&count).Error
	return count, err
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		RoleID:       m.RoleID,
		RoleName:     m.Role.Name,
		IsActive:     m.IsActive,
		LastLoginAt:  null.TimeFromPtr(m.LastLoginAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RoleRepository implements role data operations
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a role without permissions; see SetPermissions
func (r *RoleRepository) Create(ctx context.Context, role *entities.Role) error {
	now := time.Now()
	role.ID = ensureID(role.ID)
	role.CreatedAt = now
	role.UpdatedAt = now
	m := &models.Role{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return GetDB(ctx, r.db).Omit("Permissions").Create(m).Error
}

// GetByID gets a role with its permission names
func (r *RoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	var m models.Role
	if err := GetDB(ctx, r.db).Preload("Permissions").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return roleToEntity(&m), nil
}

// GetByName gets a role by its unique name
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*entities.Role, error) {
	var m models.Role
	if err := GetDB(ctx, r.db).Preload("Permissions").Where("name = ?", name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return roleToEntity(&m), nil
}

// Update updates name and description
func (r *RoleRepository) Update(ctx context.Context, role *entities.Role) error {
	role.UpdatedAt = time.Now()
	return checkAffected(GetDB(ctx, r.db).Model(&models.Role{}).Where("id = ?", role.ID).Updates(map[string]interface{}{
		"name":        role.Name,
		"description": role.Description,
		"updated_at":  role.UpdatedAt,
	}))
}

// Delete deletes a role and its permission links
func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error; err != nil {
		return err
	}
	return checkAffected(db.Delete(&models.Role{}, "id = ?", id))
}

// List lists roles by name
func (r *RoleRepository) List(ctx context.Context) ([]*entities.Role, error) {
	var ms []models.Role
	if err := GetDB(ctx, r.db).Preload("Permissions").Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}
	roles := make([]*entities.Role, 0, len(ms))
	for i := range ms {
		roles = append(roles, roleToEntity(&ms[i]))
	}
	return roles, nil
}

// SetPermissions replaces the role's permission set
func (r *RoleRepository) SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
		return err
	}
	if len(permissionIDs) == 0 {
		return nil
	}
	links := make([]models.RolePermission, 0, len(permissionIDs))
	for _, pid := range permissionIDs {
		links = append(links, models.RolePermission{RoleID: roleID, PermissionID: pid})
	}
	return db.Create(&links).Error
}

// CountUsers counts users assigned to a role
func (r *RoleRepository) CountUsers(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.User{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

func roleToEntity(m *models.Role) *entities.Role {
	names := make([]string, 0, len(m.Permissions))
	for _, p := range m.Permissions {
		names = append(names, p.Name)
	}
	return &entities.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Permissions: names,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PermissionRepository implements permission catalogue operations
type PermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// List returns the whole catalogue
func (r *PermissionRepository) List(ctx context.Context) ([]*entities.Permission, error) {
	var ms []models.Permission
	if err := GetDB(ctx, r.db).Order("module, name").Find(&ms).Error; err != nil {
		return nil, err
	}
	return permissionsToEntities(ms), nil
}

// GetByNames returns the permissions among names that exist
func (r *PermissionRepository) GetByNames(ctx context.Context, names []string) ([]*entities.Permission, error) {
	if len(names) == 0 {
		return []*entities.Permission{}, nil
	}
	var ms []models.Permission
	if err := GetDB(ctx, r.db).Where("name IN ?", names).Find(&ms).Error; err != nil {
		return nil, err
	}
	return permissionsToEntities(ms), nil
}

// ListNamesByRole returns permission names held by a role name
func (r *PermissionRepository) ListNamesByRole(ctx context.Context, roleName string) ([]string, error) {
	var names []string
	err := GetDB(ctx, r.db).
		Table("permissions").
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Joins("JOIN roles ON roles.id = rp.role_id").
		Where("roles.name = ?", roleName).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	return names, err
}

// Upsert inserts a permission or refreshes its description
func (r *PermissionRepository) Upsert(ctx context.Context, permission *entities.Permission) error {
	db := GetDB(ctx, r.db)
	var existing models.Permission
	err := db.Where("name = ?", permission.Name).First(&existing).Error
	if err == nil {
		permission.ID = existing.ID
		return db.Model(&existing).Updates(map[string]interface{}{
			"module":      permission.Module,
			"description": permission.Description,
		}).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		permission.ID = ensureID(permission.ID)
		return db.Create(&models.Permission{
			ID:          permission.ID,
			Name:        permission.Name,
			Module:      permission.Module,
			Description: permission.Description,
			CreatedAt:   time.Now(),
		}).Error
	}
	return err
}

func permissionsToEntities(ms []models.Permission) []*entities.Permission {
	items := make([]*entities.Permission, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.Permission{
			ID:          m.ID,
			Name:        m.Name,
			Module:      m.Module,
			Description: m.Description,
		})
	}
	return items
}
