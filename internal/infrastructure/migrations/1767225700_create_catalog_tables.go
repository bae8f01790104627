package migrations

import (
	"gorm.io/gorm"
	"shop-admin.backend/internal/infrastructure/models"
)

func init() {
	register("1767225700_create_catalog_tables", func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Category{},
			&models.Brand{},
			&models.Product{},
			&models.StockLedger{},
			&models.StockAdjustment{},
		); err != nil {
			return err
		}
		// slugs and SKUs are reusable once the row is soft deleted
		return exec(tx,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug_live ON categories (slug) WHERE deleted_at IS NULL`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_brands_slug_live ON brands (slug) WHERE deleted_at IS NULL`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug_live ON products (slug) WHERE deleted_at IS NULL`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku_live ON products (sku) WHERE deleted_at IS NULL`,
		)
	})
}
