package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
	domainerrors "shop-admin.backend/internal/domain/errors"
	"shop-admin.backend/pkg/utils"
)

func TestUserRepository_CRUDAndRoleJoin(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	ctx := context.Background()
	roles := NewRoleRepository(db)
	users := NewUserRepository(db)

	role := &entities.Role{Name: "editor", Description: "Catalog editor"}
	require.NoError(t, roles.Create(ctx, role))
	require.NotEqual(t, uuid.Nil, role.ID)

	user := &entities.User{Email: "  Editor@Shop.Test ", Name: "Ed", PasswordHash: "hash", RoleID: role.ID, IsActive: false}
	require.NoError(t, users.Create(ctx, user))
	require.Equal(t, "editor@shop.test", user.Email)

	got, err := users.GetByEmail(ctx, "EDITOR@shop.test")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, "editor", got.RoleName)
	require.False(t, got.IsActive, "inactive flag must survive insert")
	require.False(t, got.LastLoginAt.Valid)

	got.Name = "Edith"
	got.IsActive = true
	require.NoError(t, users.Update(ctx, got))
	require.NoError(t, users.UpdateLastLogin(ctx, got.ID))

	reloaded, err := users.GetByID(ctx, got.ID)
	require.NoError(t, err)
	require.Equal(t, "Edith", reloaded.Name)
	require.True(t, reloaded.LastLoginAt.Valid)

	count, err := users.CountActiveByRole(ctx, role.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	list, total, err := users.List(ctx, "edi", utils.GetPaginationParams(1, 10))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, list, 1)

	require.NoError(t, users.Delete(ctx, got.ID))
	_, err = users.GetByID(ctx, got.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, users.Delete(ctx, got.ID), domainerrors.ErrNotFound)
	require.ErrorIs(t, users.UpdateLastLogin(ctx, uuid.New()), domainerrors.ErrNotFound)
}

func TestRoleAndPermissionRepositories(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	ctx := context.Background()
	roles := NewRoleRepository(db)
	perms := NewPermissionRepository(db)

	for name, module := range map[string]string{
		"orders.view":   "orders",
		"orders.update": "orders",
		"catalog.view":  "catalog",
	} {
		require.NoError(t, perms.Upsert(ctx, &entities.Permission{Name: name, Module: module}))
	}
	// upsert is idempotent and refreshes the description
	p := &entities.Permission{Name: "orders.view", Module: "orders", Description: "View orders"}
	require.NoError(t, perms.Upsert(ctx, p))
	all, err := perms.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	found, err := perms.GetByNames(ctx, []string{"orders.view", "orders.update", "missing"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	empty, err := perms.GetByNames(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)

	role := &entities.Role{Name: "support"}
	require.NoError(t, roles.Create(ctx, role))
	require.NoError(t, roles.SetPermissions(ctx, role.ID, []uuid.UUID{found[0].ID, found[1].ID}))

	names, err := perms.ListNamesByRole(ctx, "support")
	require.NoError(t, err)
	require.Equal(t, []string{"orders.update", "orders.view"}, names)

	byName, err := roles.GetByName(ctx, "support")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"orders.view", "orders.update"}, byName.Permissions)

	require.NoError(t, roles.SetPermissions(ctx, role.ID, nil))
	names, err = perms.ListNamesByRole(ctx, "support")
	require.NoError(t, err)
	require.Empty(t, names)

	role.Description = "Support desk"
	require.NoError(t, roles.Update(ctx, role))
	listed, err := roles.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "Support desk", listed[0].Description)

	users, err := roles.CountUsers(ctx, role.ID)
	require.NoError(t, err)
	require.Zero(t, users)

	require.NoError(t, roles.Delete(ctx, role.ID))
	_, err = roles.GetByID(ctx, role.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
