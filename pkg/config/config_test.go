package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.True(t, cfg.App.IsDev())
	assert.Equal(t, "client_preferences", cfg.AWS.PreferencesTable)
	assert.Equal(t, 12*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, "Supply2.xlsx", cfg.Catalog.Supply2File)
	assert.Equal(t, "rough_list.xlsx", cfg.Catalog.Lists["rough"])
	assert.InDelta(t, 0.07, cfg.Estimate.TaxRate, 1e-9)
	assert.Equal(t, "/material_list", cfg.Estimate.ListBaseURL)
}

func TestLoadPrefixedAndBareNames(t *testing.T) {
	t.Setenv("ESTIMATOR_APP_PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("TAX_RATE", "0.0825")
	t.Setenv("ESTIMATOR_REDIS_SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.App.IsProd())
	assert.InDelta(t, 0.0825, cfg.Estimate.TaxRate, 1e-9)
	assert.Equal(t, 30*time.Minute, cfg.Redis.SessionTTL)
}

func TestLoadRejectsInvalidTaxRate(t *testing.T) {
	t.Setenv("TAX_RATE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tax rate")
}
