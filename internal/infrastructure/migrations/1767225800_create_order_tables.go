package migrations

import (
	"gorm.io/gorm"
	"shop-admin.backend/internal/infrastructure/models"
)

func init() {
	register("1767225800_create_order_tables", func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Order{},
			&models.OrderItem{},
			&models.OrderStatusHistory{},
			&models.Payment{},
			&models.Invoice{},
			&models.Refund{},
			&models.Wallet{},
			&models.WalletTransaction{},
		); err != nil {
			return err
		}
		return exec(tx,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_invoices_order_issued ON invoices (order_id) WHERE status = 'issued'`,
			`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`,
			`CREATE INDEX IF NOT EXISTS idx_refunds_order_status ON refunds (order_id, status)`,
		)
	})
}
