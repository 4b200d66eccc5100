// server/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config.yaml in a temp dir: defaults and environment only.
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "24h", cfg.JWT.Expiration)
	assert.Equal(t, "Alphaline Portal", cfg.App.Name)
	assert.Equal(t, "AED", cfg.App.Currency)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_DBNAME", "alphaline_test")
	t.Setenv("APP_CURRENCY", "USD")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "alphaline_test", cfg.Mongo.DBName)
	assert.Equal(t, "USD", cfg.App.Currency)
}
