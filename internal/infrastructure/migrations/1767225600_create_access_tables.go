package migrations

import (
	"gorm.io/gorm"
	"shop-admin.backend/internal/infrastructure/models"
)

func init() {
	register("1767225600_create_access_tables", func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Role{},
			&models.Permission{},
			&models.RolePermission{},
			&models.User{},
			&models.AuditLog{},
			&models.Setting{},
		); err != nil {
			return err
		}
		return exec(tx,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_live ON users (LOWER(email)) WHERE deleted_at IS NULL`,
			`CREATE INDEX IF NOT EXISTS idx_audit_logs_subject ON audit_logs (subject_type, subject_id)`,
		)
	})
}
