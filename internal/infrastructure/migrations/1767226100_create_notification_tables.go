package migrations

import (
	"gorm.io/gorm"
	"shop-admin.backend/internal/infrastructure/models"
)

func init() {
	register("1767226100_create_notification_tables", func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&models.NotificationTemplate{},
			&models.NotificationLog{},
			&models.Provider{},
			&models.ProviderSecret{},
		)
	})
}
