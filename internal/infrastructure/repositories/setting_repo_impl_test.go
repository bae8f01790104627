package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
)

func TestSettingRepository_UpsertReplacesValue(t *testing.T) {
	db := newTestDB(t)
	createAuditTables(t, db)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entities.Setting{Group: "general", Key: "store_name", Value: `"Shop"`}))
	require.NoError(t, repo.Upsert(ctx, &entities.Setting{Group: "general", Key: "timezone", Value: `"UTC"`}))
	require.NoError(t, repo.Upsert(ctx, &entities.Setting{Group: "mail", Key: "from", Value: `"a@b.c"`}))

	s := &entities.Setting{Group: "general", Key: "store_name", Value: `"Renamed"`}
	require.NoError(t, repo.Upsert(ctx, s))
	require.False(t, s.UpdatedAt.IsZero())

	items, err := repo.ListByGroup(ctx, "general")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "store_name", items[0].Key)
	require.Equal(t, `"Renamed"`, items[0].Value)
	require.Equal(t, "timezone", items[1].Key)

	empty, err := repo.ListByGroup(ctx, "payments")
	require.NoError(t, err)
	require.Empty(t, empty)
}
