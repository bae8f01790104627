package migrations

import (
	"gorm.io/gorm"
	"shop-admin.backend/internal/infrastructure/models"
)

func init() {
	register("1767226000_create_locale_tables", func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Currency{},
			&models.Language{},
			&models.Translation{},
			&models.CmsPage{},
		); err != nil {
			return err
		}
		// at most one default row; the usecases keep it at exactly one
		return exec(tx,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_currencies_single_default ON currencies (is_default) WHERE is_default`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_languages_single_default ON languages (is_default) WHERE is_default`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_cms_pages_slug_live ON cms_pages (slug) WHERE deleted_at IS NULL`,
		)
	})
}
