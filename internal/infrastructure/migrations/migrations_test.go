package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestAll_SortedAndUnique(t *testing.T) {
	list := All()
	require.NotEmpty(t, list)
	seen := map[string]bool{}
	for i, m := range list {
		assert.False(t, seen[m.Version], "duplicate version %s", m.Version)
		seen[m.Version] = true
		assert.NotNil(t, m.Up)
		parts := strings.SplitN(m.Version, "_", 2)
		require.Len(t, parts, 2, m.Version)
		assert.Len(t, parts[0], 10, "unix timestamp prefix")
		if i > 0 {
			assert.Less(t, list[i-1].Version, m.Version)
		}
	}
}

func TestApply_RecordsAndSkipsApplied(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	calls := 0
	list := []Migration{
		{Version: "1000000000_first", Up: func(tx *gorm.DB) error {
			calls++
			return exec(tx, `CREATE TABLE things (id TEXT PRIMARY KEY)`)
		}},
		{Version: "1000000001_second", Up: func(tx *gorm.DB) error {
			calls++
			return exec(tx, `CREATE UNIQUE INDEX idx_things_id ON things (id)`)
		}},
	}

	applied, err := apply(ctx, db, list)
	require.NoError(t, err)
	assert.Equal(t, []string{"1000000000_first", "1000000001_second"}, applied)

	applied, err = apply(ctx, db, list)
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, 2, calls)

	var count int64
	require.NoError(t, db.Model(&SchemaMigration{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestApply_FailureRollsBackThatMigration(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	list := []Migration{
		{Version: "1000000000_ok", Up: func(tx *gorm.DB) error {
			return exec(tx, `CREATE TABLE ok_table (id TEXT PRIMARY KEY)`)
		}},
		{Version: "1000000001_broken", Up: func(tx *gorm.DB) error {
			if err := exec(tx, `CREATE TABLE half_done (id TEXT PRIMARY KEY)`); err != nil {
				return err
			}
			return errors.New("boom")
		}},
	}

	applied, err := apply(ctx, db, list)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1000000001_broken")
	assert.Equal(t, []string{"1000000000_ok"}, applied)
	assert.False(t, db.Migrator().HasTable("half_done"))

	var versions []string
	require.NoError(t, db.Model(&SchemaMigration{}).Pluck("version", &versions).Error)
	assert.Equal(t, []string{"1000000000_ok"}, versions)
}

func TestExec_ReportsStatement(t *testing.T) {
	db := newTestDB(t)
	err := exec(db, "CREATE TABLE\nnot valid sql")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "CREATE TABLE:"))
}
