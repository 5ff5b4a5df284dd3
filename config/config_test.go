package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "http://localhost:4000/api/lender-products", cfg.CatalogURL)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 60, cfg.RateLimitBurst)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LENDERMATCH_SERVER_ADDR", ":9090")
	t.Setenv("LENDERMATCH_REDIS_ADDR", "localhost:6379")
	t.Setenv("LENDERMATCH_CATALOG_CACHE_TTL", "30s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  addr: \":7070\"\ncatalog:\n  url: \"http://staff-backend:4000/api/lender-products\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddr)
	assert.Equal(t, "http://staff-backend:4000/api/lender-products", cfg.CatalogURL)
	// Untouched keys keep their defaults.
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
