package config

import (
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_DRIVER", "DATABASE_URL", "MODELS_DIR", "CORS", "SECRET_KEY", "COOKIE_SECURE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "anatomy.db", cfg.DatabaseURL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MODELS_DIR", "/srv/models")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "/srv/models", cfg.ModelsDir)
}

func TestEnsureModelsDir(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.EnsureModelsDir())

	cfg.ModelsDir = filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, cfg.EnsureModelsDir())

	entries, err := os.ReadDir(cfg.ModelsDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "write probe must be removed")

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.ModelsDir = file
	assert.Error(t, cfg.EnsureModelsDir())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{}
	origins, err := cfg.AllowedOrigins()
	require.NoError(t, err)
	require.Len(t, origins, 1)
	assert.True(t, origins[0].MatchString("http://localhost:3000"))
	assert.True(t, origins[0].MatchString("https://localhost:8443"))
	assert.False(t, origins[0].MatchString("http://localhost.evil.com:3000"))

	cfg.CORS = `^https://anatomy\.example\.org$`
	origins, err = cfg.AllowedOrigins()
	require.NoError(t, err)
	assert.Len(t, origins, 2)

	cfg.CORS = "("
	_, err = cfg.AllowedOrigins()
	assert.Error(t, err)
}

func TestSessionKey(t *testing.T) {
	cfg := &Config{}
	key, generated, err := cfg.SessionKey()
	require.NoError(t, err)
	assert.True(t, generated)
	assert.Len(t, key, 32)

	raw := make([]byte, 32)
	raw[0] = 1
	cfg.SecretKey = base64.StdEncoding.EncodeToString(raw)
	key, generated, err = cfg.SessionKey()
	require.NoError(t, err)
	assert.False(t, generated)
	assert.Equal(t, raw, key)

	cfg.SecretKey = base64.StdEncoding.EncodeToString(raw[:16])
	_, _, err = cfg.SessionKey()
	assert.Error(t, err)

	cfg.SecretKey = "%%%"
	_, _, err = cfg.SessionKey()
	assert.Error(t, err)
}
