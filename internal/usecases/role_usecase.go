package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/internal/domain/repositories"
)

// RolePermissionsCacheKey is the cache key of a role's permission names
func RolePermissionsCacheKey(role string) string {
	return "role_permissions:" + role
}

// RoleUsecase manages roles and answers permission checks
type RoleUsecase struct {
	roleRepo       repositories.RoleRepository
	permissionRepo repositories.PermissionRepository
	uow            repositories.UnitOfWork
	audit          *AuditService
	cache          repositories.CacheStore
	cacheTTL       time.Duration
}

// NewRoleUsecase creates a new role usecase
func NewRoleUsecase(
	roleRepo repositories.RoleRepository,
	permissionRepo repositories.PermissionRepository,
	uow repositories.UnitOfWork,
	audit *AuditService,
	cache repositories.CacheStore,
	cacheTTL time.Duration,
) *RoleUsecase {
	return &RoleUsecase{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		uow:            uow,
		audit:          audit,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

// ListRoles lists roles with their permission names
func (u *RoleUsecase) ListRoles(ctx context.Context) ([]*entities.Role, error) {
	return u.roleRepo.List(ctx)
}

// GetRole gets a role
func (u *RoleUsecase) GetRole(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	return u.roleRepo.GetByID(ctx, id)
}

// ListPermissions returns the permission catalogue
func (u *RoleUsecase) ListPermissions(ctx context.Context) ([]*entities.Permission, error) {
	return u.permissionRepo.List(ctx)
}

// CreateRole creates a role and assigns its permissions
func (u *RoleUsecase) CreateRole(ctx context.Context, input *entities.RoleInput) (*entities.Role, error) {
	name := strings.TrimSpace(input.Name)
	if err := u.ensureNameFree(ctx, name, nil); err != nil {
		return nil, err
	}
	perms, err := u.resolvePermissions(ctx, input.Permissions)
	if err != nil {
		return nil, err
	}

	role := &entities.Role{Name: name, Description: input.Description}
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.roleRepo.Create(ctx, role); err != nil {
			return err
		}
		if err := u.roleRepo.SetPermissions(ctx, role.ID, permissionIDs(perms)); err != nil {
			return err
		}
		role.Permissions = permissionNames(perms)
		return u.audit.Record(ctx, "roles", entities.AuditActionCreated, "role", role.ID.String(), nil, role)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole renames a role and replaces its permission set.
// super_admin keeps its name; its permission list is informational only.
func (u *RoleUsecase) UpdateRole(ctx context.Context, id uuid.UUID, input *entities.RoleInput) (*entities.Role, error) {
	role, err := u.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := cloneOf(role)

	name := strings.TrimSpace(input.Name)
	if role.IsSuperAdmin() && name != role.Name {
		return nil, domainerrors.Unprocessable("the super_admin role cannot be renamed", domainerrors.ErrProtectedResource)
	}
	if err := u.ensureNameFree(ctx, name, &id); err != nil {
		return nil, err
	}
	perms, err := u.resolvePermissions(ctx, input.Permissions)
	if err != nil {
		return nil, err
	}

	role.Name = name
	role.Description = input.Description
	role.Permissions = permissionNames(perms)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.roleRepo.Update(ctx, role); err != nil {
			return err
		}
		if err := u.roleRepo.SetPermissions(ctx, role.ID, permissionIDs(perms)); err != nil {
			return err
		}
		return u.audit.Record(ctx, "roles", entities.AuditActionUpdated, "role", role.ID.String(), before, role)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, u.cache, RolePermissionsCacheKey(before.Name), RolePermissionsCacheKey(role.Name))
	return role, nil
}

// SyncPermissions replaces the role's permission set. Unknown names are rejected.
func (u *RoleUsecase) SyncPermissions(ctx context.Context, id uuid.UUID, names []string) (*entities.Role, error) {
	role, err := u.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	perms, err := u.resolvePermissions(ctx, names)
	if err != nil {
		return nil, err
	}
	before := cloneOf(role)
	role.Permissions = permissionNames(perms)
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.roleRepo.SetPermissions(ctx, role.ID, permissionIDs(perms)); err != nil {
			return err
		}
		return u.audit.Record(ctx, "roles", "permissions_synced", "role", role.ID.String(), before, role)
	})
	if err != nil {
		return nil, err
	}
	invalidate(ctx, u.cache, RolePermissionsCacheKey(role.Name))
	return role, nil
}

// DeleteRole deletes a role nobody is assigned to
func (u *RoleUsecase) DeleteRole(ctx context.Context, id uuid.UUID) error {
	role, err := u.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSuperAdmin() {
		return domainerrors.Unprocessable("the super_admin role cannot be deleted", domainerrors.ErrProtectedResource)
	}
	users, err := u.roleRepo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 {
		return domainerrors.Unprocessable(fmt.Sprintf("role is assigned to %d users", users), domainerrors.ErrInUse)
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.roleRepo.Delete(ctx, id); err != nil {
			return err
		}
		return u.audit.Record(ctx, "roles", entities.AuditActionDeleted, "role", id.String(), role, nil)
	})
	if err != nil {
		return err
	}
	invalidate(ctx, u.cache, RolePermissionsCacheKey(role.Name))
	return nil
}

// HasAnyPermission reports whether role holds at least one of perms
func (u *RoleUsecase) HasAnyPermission(ctx context.Context, role string, perms ...string) (bool, error) {
	if role == entities.RoleSuperAdmin {
		return true, nil
	}
	if role == "" {
		return false, nil
	}
	held, err := u.permissionsOf(ctx, role)
	if err != nil {
		return false, err
	}
	for _, want := range perms {
		for _, have := range held {
			if want == have {
				return true, nil
			}
		}
	}
	return false, nil
}

func (u *RoleUsecase) permissionsOf(ctx context.Context, role string) ([]string, error) {
	key := RolePermissionsCacheKey(role)
	var names []string
	if readCache(ctx, u.cache, key, &names) {
		return names, nil
	}

	names, err := u.permissionRepo.ListNamesByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	writeCache(ctx, u.cache, key, names, u.cacheTTL)
	return names, nil
}

func (u *RoleUsecase) ensureNameFree(ctx context.Context, name string, excludeID *uuid.UUID) error {
	existing, err := u.roleRepo.GetByName(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if excludeID != nil && existing.ID == *excludeID {
		return nil
	}
	return domainerrors.Conflict("role name already taken")
}

// resolvePermissions maps names onto catalogue rows, rejecting unknown names
func (u *RoleUsecase) resolvePermissions(ctx context.Context, names []string) ([]*entities.Permission, error) {
	unique := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" && !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}
	perms, err := u.permissionRepo.GetByNames(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(perms) != len(unique) {
		found := map[string]bool{}
		for _, p := range perms {
			found[p.Name] = true
		}
		var unknown []string
		for _, n := range unique {
			if !found[n] {
				unknown = append(unknown, n)
			}
		}
		sort.Strings(unknown)
		return nil, domainerrors.BadRequest("unknown permissions: " + strings.Join(unknown, ", "))
	}
	return perms, nil
}

func permissionIDs(perms []*entities.Permission) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	return ids
}

func permissionNames(perms []*entities.Permission) []string {
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
