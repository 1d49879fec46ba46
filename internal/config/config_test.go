package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "APP_NAME", "APP_DEBUG",
		"HTTP_LISTEN_ADDR", "ADMIN_BASE_PATH",
		"PROM_NAMESPACE", "METRICS_ENABLE", "METRICS_ADDR", "METRICS_ENDPOINT",
		"MIGRATIONS_DIR",
	} {
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	require.NoError(t, Load(""))
	c := Get()

	assert.Equal(t, "dev", c.AppEnv)
	assert.Equal(t, "treasury", c.AppName)
	assert.True(t, c.AppDebug)
	assert.Equal(t, ":8080", c.HttpListenAddr)
	assert.Equal(t, "/admin/", c.AdminBasePath)
	assert.Equal(t, "treasury", c.PromNamespace)
	assert.False(t, c.MetricsEnable)
	assert.Equal(t, ":9090", c.MetricsAddr)
	assert.Equal(t, "/metrics", c.MetricsEndpoint)
	assert.Equal(t, "./migrations", c.MigrationsDir)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ADMIN_BASE_PATH", "/backoffice/")
	t.Setenv("HTTP_LISTEN_ADDR", ":9000")

	require.NoError(t, Load(""))

	assert.Equal(t, "/backoffice/", Get().AdminBasePath)
	assert.Equal(t, ":9000", Get().HttpListenAddr)
}
