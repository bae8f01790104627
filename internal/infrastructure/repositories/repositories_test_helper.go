package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE roles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE permissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		module TEXT NOT NULL,
		description TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE role_permissions (
		role_id TEXT NOT NULL,
		permission_id TEXT NOT NULL,
		PRIMARY KEY (role_id, permission_id)
	);`)
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role_id TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAuditTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		module TEXT NOT NULL,
		action TEXT NOT NULL,
		subject_type TEXT NOT NULL,
		subject_id TEXT NOT NULL,
		before TEXT,
		after TEXT,
		ip_address TEXT,
		user_agent TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE settings (
		group_name TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME,
		PRIMARY KEY (group_name, key)
	);`)
}

func createCatalogTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		parent_id TEXT,
		description TEXT,
		is_active BOOLEAN NOT NULL,
		sort_order INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE brands (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		logo_url TEXT,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		sku TEXT NOT NULL,
		description TEXT,
		price TEXT NOT NULL,
		compare_at_price TEXT,
		cost_price TEXT,
		stock_quantity INTEGER NOT NULL,
		category_id TEXT,
		brand_id TEXT,
		tax_rate_id TEXT,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE stock_ledgers (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		change INTEGER NOT NULL,
		balance_after INTEGER NOT NULL,
		reference_type TEXT NOT NULL,
		reference_id TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE stock_adjustments (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		change INTEGER NOT NULL,
		reason TEXT NOT NULL,
		note TEXT,
		created_by TEXT,
		created_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		subtotal TEXT NOT NULL,
		discount_total TEXT NOT NULL,
		shipping_total TEXT NOT NULL,
		tax_total TEXT NOT NULL,
		total TEXT NOT NULL,
		currency TEXT NOT NULL,
		coupon_code TEXT,
		shipping_name TEXT,
		shipping_address TEXT,
		shipping_city TEXT,
		shipping_state TEXT,
		shipping_postcode TEXT,
		shipping_country TEXT,
		tracking_number TEXT,
		notes TEXT,
		shipped_at DATETIME,
		delivered_at DATETIME,
		cancelled_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		sku TEXT,
		unit_price TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		total TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE order_status_histories (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		from_status TEXT NOT NULL,
		to_status TEXT NOT NULL,
		note TEXT,
		changed_by TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		method TEXT NOT NULL,
		provider TEXT,
		transaction_id TEXT,
		amount TEXT NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		paid_at DATETIME,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE invoices (
		id TEXT PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		order_id TEXT NOT NULL,
		status TEXT NOT NULL,
		subtotal TEXT NOT NULL,
		discount_total TEXT NOT NULL,
		shipping_total TEXT NOT NULL,
		tax_total TEXT NOT NULL,
		total TEXT NOT NULL,
		currency TEXT NOT NULL,
		issued_at DATETIME,
		voided_at DATETIME,
		void_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE refunds (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		reason TEXT NOT NULL,
		method TEXT NOT NULL,
		status TEXT NOT NULL,
		admin_note TEXT,
		processed_by TEXT,
		processed_at DATETIME,
		wallet_transaction_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		currency TEXT NOT NULL,
		balance TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, currency)
	);`)
	mustExec(t, db, `CREATE TABLE wallet_transactions (
		id TEXT PRIMARY KEY,
		wallet_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount TEXT NOT NULL,
		balance_before TEXT NOT NULL,
		balance_after TEXT NOT NULL,
		reference_type TEXT NOT NULL,
		reference_id TEXT,
		description TEXT,
		created_by TEXT,
		created_at DATETIME
	);`)
}

func createPromotionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE coupons (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		description TEXT,
		type TEXT NOT NULL,
		value TEXT NOT NULL,
		min_order_amount TEXT NOT NULL,
		max_discount_amount TEXT,
		usage_limit INTEGER,
		usage_limit_per_user INTEGER,
		used_count INTEGER NOT NULL,
		starts_at DATETIME,
		expires_at DATETIME,
		is_active BOOLEAN NOT NULL,
		category_ids TEXT,
		product_ids TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE coupon_usages (
		id TEXT PRIMARY KEY,
		coupon_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		order_id TEXT NOT NULL,
		discount_amount TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE deals (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		title TEXT NOT NULL,
		discount_type TEXT NOT NULL,
		discount_value TEXT NOT NULL,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		is_active BOOLEAN NOT NULL,
		priority INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE tax_rates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rate TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE tax_rules (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		tax_rate_id TEXT NOT NULL,
		country TEXT NOT NULL,
		state TEXT,
		postcode TEXT,
		category_id TEXT,
		priority INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLocaleTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE currencies (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		symbol TEXT NOT NULL,
		exchange_rate TEXT NOT NULL,
		decimal_places INTEGER NOT NULL,
		is_default BOOLEAN NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE languages (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		native_name TEXT,
		direction TEXT NOT NULL DEFAULT 'ltr',
		is_default BOOLEAN NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE translations (
		id TEXT PRIMARY KEY,
		group_name TEXT NOT NULL,
		key TEXT NOT NULL,
		locale TEXT NOT NULL,
		value TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (group_name, key, locale)
	);`)
	mustExec(t, db, `CREATE TABLE cms_pages (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		content TEXT,
		meta_title TEXT,
		meta_description TEXT,
		status TEXT NOT NULL DEFAULT 'draft',
		published_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createNotificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notification_templates (
		id TEXT PRIMARY KEY,
		event TEXT NOT NULL,
		channel TEXT NOT NULL,
		locale TEXT NOT NULL,
		subject TEXT,
		body TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (event, channel, locale)
	);`)
	mustExec(t, db, `CREATE TABLE notification_logs (
		id TEXT PRIMARY KEY,
		template_id TEXT,
		channel TEXT NOT NULL,
		recipient TEXT NOT NULL,
		subject TEXT,
		status TEXT NOT NULL,
		error TEXT,
		sent_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE providers (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		environment TEXT NOT NULL DEFAULT 'sandbox',
		is_enabled BOOLEAN NOT NULL,
		config TEXT,
		last_tested_at DATETIME,
		last_test_status TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (type, code)
	);`)
	mustExec(t, db, `CREATE TABLE provider_secrets (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value_encrypted TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (provider_id, key)
	);`)
}
