// Package migrations holds the versioned schema of the admin database.
//
// Each migration lives in its own `<unix-ts>_<name>.go` file and registers
// itself from init. Run applies the pending ones in version order, each in
// its own transaction, and records the version in schema_migrations.
package migrations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"shop-admin.backend/pkg/logger"
)

// Migration is one forward-only schema change
type Migration struct {
	Version string
	Up      func(tx *gorm.DB) error
}

// SchemaMigration is the bookkeeping row of an applied migration
type SchemaMigration struct {
	Version   string `gorm:"type:varchar(100);primaryKey"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string { return "schema_migrations" }

var registry []Migration

func register(version string, up func(tx *gorm.DB) error) {
	registry = append(registry, Migration{Version: version, Up: up})
}

// All returns the registered migrations sorted by version
func All() []Migration {
	out := make([]Migration, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out
}

// Run applies every pending migration and returns the versions it applied
func Run(ctx context.Context, db *gorm.DB) ([]string, error) {
	return apply(ctx, db, All())
}

func apply(ctx context.Context, db *gorm.DB, list []Migration) ([]string, error) {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return nil, fmt.Errorf("ensure schema_migrations: %w", err)
	}

	var done []string
	if err := db.Model(&SchemaMigration{}).Pluck("version", &done).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	seen := make(map[string]bool, len(done))
	for _, v := range done {
		seen[v] = true
	}

	var applied []string
	for _, m := range list {
		if seen[m.Version] {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Version: m.Version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return applied, fmt.Errorf("migration %s: %w", m.Version, err)
		}
		logger.Info(ctx, "Applied migration", zap.String("version", m.Version))
		applied = append(applied, m.Version)
	}
	return applied, nil
}

// exec runs raw statements in order
func exec(tx *gorm.DB, statements ...string) error {
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("%s: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if i := strings.IndexByte(stmt, '\n'); i > 0 {
		return stmt[:i]
	}
	return stmt
}
