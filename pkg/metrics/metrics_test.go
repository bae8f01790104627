package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "settings", KeyPrefix("settings:general"))
	assert.Equal(t, "role_permissions", KeyPrefix("role_permissions:editor"))
	assert.Equal(t, "plain", KeyPrefix("plain"))
}

func TestHandlerExposesCollectors(t *testing.T) {
	AuditEntriesTotal.WithLabelValues("products", "created").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `audit_entries_total{action="created",module="products"}`))
}
