package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	for _, k := range []string{"PORT", "CACHE_BACKEND", "CACHE_TTL", "MAX_WAYPOINTS", "APP_ENV"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CacheSqlite, cfg.CacheBackend)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 23, cfg.MaxWaypoints)
	assert.Equal(t, "production", cfg.AppEnv)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", " k ")
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("MAX_WAYPOINTS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.GoogleAPIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.MaxWaypoints)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing key":        {"GOOGLE_API_KEY": ""},
		"bad ttl":            {"CACHE_TTL": "soon"},
		"bad waypoints":      {"MAX_WAYPOINTS": "many"},
		"too many waypoints": {"MAX_WAYPOINTS": "24"},
		"unknown backend":    {"CACHE_BACKEND": "memcached"},
		"postgres no url":    {"CACHE_BACKEND": "postgres", "DATABASE_URL": ""},
		"redis no url":       {"CACHE_BACKEND": "redis", "REDIS_URL": ""},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("GOOGLE_API_KEY", "k")
			t.Setenv("CACHE_BACKEND", "")
			t.Setenv("CACHE_TTL", "")
			t.Setenv("MAX_WAYPOINTS", "")
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOTENV_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("DOTENV_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("DOTENV_TEST_VALUE"))

	assert.True(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", Get("DOTENV_TEST_VALUE", "fallback"))

	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
