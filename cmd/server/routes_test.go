package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/interfaces/http/handlers"
	"shop-admin.backend/internal/interfaces/http/middleware"
)

type allowList map[string]bool

func (a allowList) HasAnyPermission(_ context.Context, _ string, perms ...string) (bool, error) {
	for _, p := range perms {
		if a[p] {
			return true, nil
		}
	}
	return false, nil
}

func testDeps(perms allowList) routeDeps {
	return routeDeps{
		authHandler:         &handlers.AuthHandler{},
		auditLogHandler:     &handlers.AuditLogHandler{},
		settingsHandler:     &handlers.SettingsHandler{},
		roleHandler:         &handlers.RoleHandler{},
		userHandler:         &handlers.UserHandler{},
		catalogHandler:      &handlers.CatalogHandler{},
		stockHandler:        &handlers.StockHandler{},
		orderHandler:        &handlers.OrderHandler{},
		invoiceHandler:      &handlers.InvoiceHandler{},
		refundHandler:       &handlers.RefundHandler{},
		walletHandler:       &handlers.WalletHandler{},
		couponHandler:       &handlers.CouponHandler{},
		dealHandler:         &handlers.DealHandler{},
		taxHandler:          &handlers.TaxHandler{},
		localeHandler:       &handlers.LocaleHandler{},
		cmsHandler:          &handlers.CmsHandler{},
		translationHandler:  &handlers.TranslationHandler{},
		notificationHandler: &handlers.NotificationHandler{},
		providerHandler:     &handlers.ProviderHandler{},
		dashboardHandler:    &handlers.DashboardHandler{},
		authMiddleware: func(c *gin.Context) {
			c.Set(middleware.UserRoleKey, "support")
			c.Next()
		},
		permissions: perms,
	}
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, testDeps(allowList{}))

	routes := r.Routes()
	require.Greater(t, len(routes), 120)

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/login"},
		{"GET", "/api/v1/auth/me"},
		{"GET", "/api/v1/admin/dashboard/summary"},
		{"PUT", "/api/v1/admin/settings/:group"},
		{"PUT", "/api/v1/admin/roles/:id/permissions"},
		{"POST", "/api/v1/admin/products/:id/stock-adjustments"},
		{"POST", "/api/v1/admin/orders/:id/status"},
		{"POST", "/api/v1/admin/refunds/:id/approve"},
		{"POST", "/api/v1/admin/wallets/:id/adjustments"},
		{"POST", "/api/v1/admin/coupons/:id/preview"},
		{"POST", "/api/v1/admin/tax-rules/resolve"},
		{"POST", "/api/v1/admin/languages/:id/default"},
		{"GET", "/api/v1/admin/translations/export/:locale"},
		{"POST", "/api/v1/admin/cms-pages/:id/publish"},
		{"POST", "/api/v1/admin/providers/:id/test"},
	}

	registered := make(map[string]bool, len(routes))
	for _, route := range routes {
		registered[route.Method+" "+route.Path] = true
	}
	for _, exp := range expects {
		assert.True(t, registered[exp.method+" "+exp.path], "route %s %s not registered", exp.method, exp.path)
	}
}

func TestRegisterAPIV1Routes_PermissionGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, testDeps(allowList{"settings.mail.view": true}))

	// denied before the handler runs, so the empty handler structs are never touched
	for _, path := range []string{"/api/v1/admin/orders", "/api/v1/admin/settings/general", "/api/v1/admin/audit-logs"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestSettingsPermissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "group", Value: "payment"}}

	assert.Equal(t, []string{"settings.payment.update"}, settingsPermissions("update")(c))
}

func TestRegisterHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerMetricsRoute(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"status": "ok", "service": serviceName, "version": serviceVersion}, body)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
