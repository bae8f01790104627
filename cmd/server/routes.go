package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shop-admin.backend/internal/interfaces/http/handlers"
	"shop-admin.backend/internal/interfaces/http/middleware"
	"shop-admin.backend/pkg/metrics"
)

const (
	serviceName    = "shop-admin-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	auditLogHandler     *handlers.AuditLogHandler
	settingsHandler     *handlers.SettingsHandler
	roleHandler         *handlers.RoleHandler
	userHandler         *handlers.UserHandler
	catalogHandler      *handlers.CatalogHandler
	stockHandler        *handlers.StockHandler
	orderHandler        *handlers.OrderHandler
	invoiceHandler      *handlers.InvoiceHandler
	refundHandler       *handlers.RefundHandler
	walletHandler       *handlers.WalletHandler
	couponHandler       *handlers.CouponHandler
	dealHandler         *handlers.DealHandler
	taxHandler          *handlers.TaxHandler
	localeHandler       *handlers.LocaleHandler
	cmsHandler          *handlers.CmsHandler
	translationHandler  *handlers.TranslationHandler
	notificationHandler *handlers.NotificationHandler
	providerHandler     *handlers.ProviderHandler
	dashboardHandler    *handlers.DashboardHandler

	authMiddleware gin.HandlerFunc
	permissions    middleware.PermissionChecker
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// settingsPermissions maps /settings/:group to settings.<group>.view|update
func settingsPermissions(action string) func(c *gin.Context) []string {
	return func(c *gin.Context) []string {
		return []string{handlers.SettingsPermission(c.Param("group"), action)}
	}
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	can := func(perms ...string) gin.HandlerFunc {
		return middleware.RequirePermission(d.permissions, perms...)
	}

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.AuditContextMiddleware())
		{
			admin.GET("/dashboard/summary", can("dashboard.view"), d.dashboardHandler.Summary)
			admin.GET("/dashboard/orders-by-status", can("dashboard.view"), d.dashboardHandler.OrdersByStatus)
			admin.GET("/dashboard/top-products", can("dashboard.view"), d.dashboardHandler.TopProducts)
			admin.GET("/dashboard/sales-by-day", can("dashboard.view"), d.dashboardHandler.SalesByDay)
			admin.GET("/dashboard/low-stock", can("dashboard.view"), d.dashboardHandler.LowStock)

			admin.GET("/audit-logs", can("audit_logs.view"), d.auditLogHandler.ListAuditLogs)
			admin.GET("/audit-logs/:id", can("audit_logs.view"), d.auditLogHandler.GetAuditLog)

			// per-group checks; the list is filtered inside the handler
			admin.GET("/settings", d.settingsHandler.ListGroups)
			admin.GET("/settings/:group", middleware.RequirePermissionFor(d.permissions, settingsPermissions("view")), d.settingsHandler.GetGroup)
			admin.PUT("/settings/:group", middleware.RequirePermissionFor(d.permissions, settingsPermissions("update")), d.settingsHandler.UpdateGroup)

			admin.GET("/permissions", can("permissions.view"), d.roleHandler.ListPermissions)
			admin.GET("/roles", can("roles.view"), d.roleHandler.ListRoles)
			admin.GET("/roles/:id", can("roles.view"), d.roleHandler.GetRole)
			admin.POST("/roles", can("roles.create"), d.roleHandler.CreateRole)
			admin.PUT("/roles/:id", can("roles.update"), d.roleHandler.UpdateRole)
			admin.PUT("/roles/:id/permissions", can("roles.update"), d.roleHandler.SyncPermissions)
			admin.DELETE("/roles/:id", can("roles.delete"), d.roleHandler.DeleteRole)

			admin.GET("/users", can("users.view"), d.userHandler.ListUsers)
			admin.GET("/users/:id", can("users.view"), d.userHandler.GetUser)
			admin.POST("/users", can("users.create"), d.userHandler.CreateUser)
			admin.PATCH("/users/:id", can("users.update"), d.userHandler.UpdateUser)
			admin.DELETE("/users/:id", can("users.delete"), d.userHandler.DeleteUser)

			admin.GET("/categories", can("categories.view"), d.catalogHandler.ListCategories)
			admin.GET("/categories/:id", can("categories.view"), d.catalogHandler.GetCategory)
			admin.POST("/categories", can("categories.create"), d.catalogHandler.CreateCategory)
			admin.PUT("/categories/:id", can("categories.update"), d.catalogHandler.UpdateCategory)
			admin.DELETE("/categories/:id", can("categories.delete"), d.catalogHandler.DeleteCategory)

			admin.GET("/brands", can("brands.view"), d.catalogHandler.ListBrands)
			admin.GET("/brands/:id", can("brands.view"), d.catalogHandler.GetBrand)
			admin.POST("/brands", can("brands.create"), d.catalogHandler.CreateBrand)
			admin.PUT("/brands/:id", can("brands.update"), d.catalogHandler.UpdateBrand)
			admin.DELETE("/brands/:id", can("brands.delete"), d.catalogHandler.DeleteBrand)

			admin.GET("/products", can("products.view"), d.catalogHandler.ListProducts)
			admin.GET("/products/:id", can("products.view"), d.catalogHandler.GetProduct)
			admin.POST("/products", can("products.create"), d.catalogHandler.CreateProduct)
			admin.PUT("/products/:id", can("products.update"), d.catalogHandler.UpdateProduct)
			admin.DELETE("/products/:id", can("products.delete"), d.catalogHandler.DeleteProduct)
			admin.POST("/products/:id/stock-adjustments", can("stock.adjust"), middleware.IdempotencyMiddleware(), d.stockHandler.AdjustStock)
			admin.GET("/products/:id/stock-ledger", can("stock.view"), d.stockHandler.ListLedger)

			admin.GET("/orders", can("orders.view"), d.orderHandler.ListOrders)
			admin.GET("/orders/:id", can("orders.view"), d.orderHandler.GetOrder)
			admin.POST("/orders/:id/status", can("orders.update"), d.orderHandler.UpdateStatus)
			admin.POST("/orders/:id/invoice", can("invoices.create"), d.invoiceHandler.GenerateInvoice)

			admin.GET("/invoices", can("invoices.view"), d.invoiceHandler.ListInvoices)
			admin.GET("/invoices/:id", can("invoices.view"), d.invoiceHandler.GetInvoice)
			admin.POST("/invoices/:id/void", can("invoices.void"), d.invoiceHandler.VoidInvoice)

			admin.GET("/refunds", can("refunds.view"), d.refundHandler.ListRefunds)
			admin.GET("/refunds/:id", can("refunds.view"), d.refundHandler.GetRefund)
			admin.POST("/refunds", can("refunds.create"), middleware.IdempotencyMiddleware(), d.refundHandler.CreateRefund)
			admin.POST("/refunds/:id/approve", can("refunds.approve"), middleware.IdempotencyMiddleware(), d.refundHandler.ApproveRefund)
			admin.POST("/refunds/:id/reject", can("refunds.reject"), d.refundHandler.RejectRefund)

			admin.GET("/wallets", can("wallets.view"), d.walletHandler.ListWallets)
			admin.GET("/wallets/:id", can("wallets.view"), d.walletHandler.GetWallet)
			admin.POST("/wallets/:id/adjustments", can("wallets.adjust"), middleware.IdempotencyMiddleware(), d.walletHandler.AdjustWallet)

			admin.GET("/coupons", can("coupons.view"), d.couponHandler.ListCoupons)
			admin.GET("/coupons/:id", can("coupons.view"), d.couponHandler.GetCoupon)
			admin.GET("/coupons/:id/usages", can("coupons.view"), d.couponHandler.ListUsages)
			admin.POST("/coupons", can("coupons.create"), d.couponHandler.CreateCoupon)
			admin.PUT("/coupons/:id", can("coupons.update"), d.couponHandler.UpdateCoupon)
			admin.DELETE("/coupons/:id", can("coupons.delete"), d.couponHandler.DeleteCoupon)
			admin.POST("/coupons/:id/preview", can("coupons.view"), d.couponHandler.PreviewCoupon)

			admin.GET("/deals", can("deals.view"), d.dealHandler.ListDeals)
			admin.GET("/deals/:id", can("deals.view"), d.dealHandler.GetDeal)
			admin.POST("/deals", can("deals.create"), d.dealHandler.CreateDeal)
			admin.PUT("/deals/:id", can("deals.update"), d.dealHandler.UpdateDeal)
			admin.DELETE("/deals/:id", can("deals.delete"), d.dealHandler.DeleteDeal)

			admin.GET("/tax-rates", can("tax_rates.view"), d.taxHandler.ListRates)
			admin.GET("/tax-rates/:id", can("tax_rates.view"), d.taxHandler.GetRate)
			admin.POST("/tax-rates", can("tax_rates.create"), d.taxHandler.CreateRate)
			admin.PUT("/tax-rates/:id", can("tax_rates.update"), d.taxHandler.UpdateRate)
			admin.DELETE("/tax-rates/:id", can("tax_rates.delete"), d.taxHandler.DeleteRate)

			admin.GET("/tax-rules", can("tax_rules.view"), d.taxHandler.ListRules)
			admin.GET("/tax-rules/:id", can("tax_rules.view"), d.taxHandler.GetRule)
			admin.POST("/tax-rules", can("tax_rules.create"), d.taxHandler.CreateRule)
			admin.PUT("/tax-rules/:id", can("tax_rules.update"), d.taxHandler.UpdateRule)
			admin.DELETE("/tax-rules/:id", can("tax_rules.delete"), d.taxHandler.DeleteRule)
			admin.POST("/tax-rules/resolve", can("tax_rules.view"), d.taxHandler.Resolve)

			admin.GET("/currencies", can("currencies.view"), d.localeHandler.ListCurrencies)
			admin.GET("/currencies/:id", can("currencies.view"), d.localeHandler.GetCurrency)
			admin.POST("/currencies", can("currencies.create"), d.localeHandler.CreateCurrency)
			admin.PUT("/currencies/:id", can("currencies.update"), d.localeHandler.UpdateCurrency)
			admin.POST("/currencies/:id/default", can("currencies.update"), d.localeHandler.SetDefaultCurrency)
			admin.DELETE("/currencies/:id", can("currencies.delete"), d.localeHandler.DeleteCurrency)

			admin.GET("/languages", can("languages.view"), d.localeHandler.ListLanguages)
			admin.GET("/languages/:id", can("languages.view"), d.localeHandler.GetLanguage)
			admin.POST("/languages", can("languages.create"), d.localeHandler.CreateLanguage)
			admin.PUT("/languages/:id", can("languages.update"), d.localeHandler.UpdateLanguage)
			admin.POST("/languages/:id/default", can("languages.update"), d.localeHandler.SetDefaultLanguage)
			admin.DELETE("/languages/:id", can("languages.delete"), d.localeHandler.DeleteLanguage)

			admin.GET("/cms-pages", can("cms_pages.view"), d.cmsHandler.ListPages)
			admin.GET("/cms-pages/:id", can("cms_pages.view"), d.cmsHandler.GetPage)
			admin.POST("/cms-pages", can("cms_pages.create"), d.cmsHandler.CreatePage)
			admin.PUT("/cms-pages/:id", can("cms_pages.update"), d.cmsHandler.UpdatePage)
			admin.DELETE("/cms-pages/:id", can("cms_pages.delete"), d.cmsHandler.DeletePage)
			admin.POST("/cms-pages/:id/publish", can("cms_pages.publish"), d.cmsHandler.Publish)
			admin.POST("/cms-pages/:id/unpublish", can("cms_pages.publish"), d.cmsHandler.Unpublish)

			admin.GET("/translations", can("translations.view"), d.translationHandler.ListTranslations)
			admin.GET("/translations/export/:locale", can("translations.view"), d.translationHandler.Export)
			admin.POST("/translations/import/:locale", can("translations.import"), d.translationHandler.Import)
			admin.GET("/translations/:id", can("translations.view"), d.translationHandler.GetTranslation)
			admin.POST("/translations", can("translations.create"), d.translationHandler.CreateTranslation)
			admin.PUT("/translations/:id", can("translations.update"), d.translationHandler.UpdateTranslation)
			admin.DELETE("/translations/:id", can("translations.delete"), d.translationHandler.DeleteTranslation)

			admin.GET("/notification-templates", can("notification_templates.view"), d.notificationHandler.ListTemplates)
			admin.GET("/notification-templates/:id", can("notification_templates.view"), d.notificationHandler.GetTemplate)
			admin.POST("/notification-templates", can("notification_templates.create"), d.notificationHandler.CreateTemplate)
			admin.PUT("/notification-templates/:id", can("notification_templates.update"), d.notificationHandler.UpdateTemplate)
			admin.DELETE("/notification-templates/:id", can("notification_templates.delete"), d.notificationHandler.DeleteTemplate)
			admin.POST("/notification-templates/:id/preview", can("notification_templates.view"), d.notificationHandler.PreviewTemplate)
			admin.GET("/notification-logs", can("notification_logs.view"), d.notificationHandler.ListLogs)

			admin.GET("/providers", can("providers.view"), d.providerHandler.ListProviders)
			admin.GET("/providers/:id", can("providers.view"), d.providerHandler.GetProvider)
			admin.POST("/providers", can("providers.create"), d.providerHandler.CreateProvider)
			admin.PUT("/providers/:id", can("providers.update"), d.providerHandler.UpdateProvider)
			admin.DELETE("/providers/:id", can("providers.delete"), d.providerHandler.DeleteProvider)
			admin.PUT("/providers/:id/secrets", can("providers.update"), d.providerHandler.PutSecrets)
			admin.POST("/providers/:id/enable", can("providers.update"), d.providerHandler.Enable)
			admin.POST("/providers/:id/disable", can("providers.update"), d.providerHandler.Disable)
			admin.POST("/providers/:id/test", can("providers.test"), d.providerHandler.TestConnection)
		}
	}
}
