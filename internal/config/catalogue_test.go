package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shop-admin.backend/internal/domain/entities"
)

func TestLoadSettingGroups(t *testing.T) {
	groups, err := LoadSettingGroups()
	require.NoError(t, err)

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"general", "auth", "email", "payments", "shipping", "tax", "notifications", "storage", "seo"}, names)

	f, ok := groups[0].Field("low_stock_threshold")
	require.True(t, ok)
	assert.Equal(t, entities.SettingTypeInt, f.Type)
	assert.Equal(t, "5", f.Default)
	require.NotNil(t, f.Min)
	assert.Equal(t, 0.0, *f.Min)

	smtp, ok := groups[2].Field("smtp_password")
	require.True(t, ok)
	assert.Equal(t, entities.SettingTypeSecret, smtp.Type)
}

func TestLoadPermissions(t *testing.T) {
	groups, err := LoadSettingGroups()
	require.NoError(t, err)
	perms, err := LoadPermissions(groups)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, p := range perms {
		assert.False(t, names[p.Name], "duplicate permission %s", p.Name)
		names[p.Name] = true
	}
	for _, want := range []string{"products.update", "refunds.approve", "settings.payments.update", "settings.seo.view", "audit_logs.view"} {
		assert.True(t, names[want], want)
	}
}

func TestLoadCatalogue_ReadAndParseErrors(t *testing.T) {
	orig := readCatalogue
	t.Cleanup(func() { readCatalogue = orig })

	readCatalogue = func(string) ([]byte, error) { return nil, errors.New("gone") }
	_, err := LoadSettingGroups()
	assert.ErrorContains(t, err, "gone")
	_, err = LoadPermissions(nil)
	assert.ErrorContains(t, err, "gone")

	readCatalogue = func(string) ([]byte, error) { return []byte("groups: [::"), nil }
	_, err = LoadSettingGroups()
	assert.ErrorContains(t, err, "parse")

	readCatalogue = func(string) ([]byte, error) {
		return []byte("groups:\n  - name: a\n    fields:\n      - {key: x, type: select}\n"), nil
	}
	_, err = LoadSettingGroups()
	assert.ErrorContains(t, err, "no options")

	readCatalogue = func(string) ([]byte, error) {
		return []byte("groups:\n  - name: a\n  - name: a\n"), nil
	}
	_, err = LoadSettingGroups()
	assert.ErrorContains(t, err, "declared twice")
}
