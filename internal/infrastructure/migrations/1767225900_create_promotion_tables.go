package migrations

import (
	"gorm.io/gorm"
	"shop-admin.backend/internal/infrastructure/models"
)

func init() {
	register("1767225900_create_promotion_tables", func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Coupon{},
			&models.CouponUsage{},
			&models.Deal{},
			&models.TaxRate{},
			&models.TaxRule{},
		); err != nil {
			return err
		}
		return exec(tx,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_coupons_code_live ON coupons (code) WHERE deleted_at IS NULL`,
		)
	})
}
