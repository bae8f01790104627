package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestModelTableNames(t *testing.T) {
	naming := schema.NamingStrategy{}
	cases := map[string]string{
		"User":                 "users",
		"AuditLog":             "audit_logs",
		"OrderStatusHistory":   "order_status_histories",
		"WalletTransaction":    "wallet_transactions",
		"NotificationTemplate": "notification_templates",
		"ProviderSecret":       "provider_secrets",
		"CmsPage":              "cms_pages",
		"StockLedger":          "stock_ledgers",
	}
	for model, table := range cases {
		assert.Equal(t, table, naming.TableName(model))
	}
	assert.Equal(t, "role_permissions", RolePermission{}.TableName())
}
