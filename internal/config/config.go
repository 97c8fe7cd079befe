package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultOrigin is always allowed so a locally served frontend can talk to the API.
const DefaultOrigin = `^https?://localhost:\d{1,6}$`

type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string
	ModelsDir      string
	SiteDir        string
	CORS           string
	SecretKey      string
	CookieSecure   bool
	LogLevel       string
	AdminUsername  string
	AdminPassword  string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", "anatomy.db"),
		ModelsDir:      getEnv("MODELS_DIR", ""),
		SiteDir:        getEnv("SITE_DIR", ""),
		CORS:           getEnv("CORS", ""),
		SecretKey:      getEnv("SECRET_KEY", ""),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AdminUsername:  getEnv("ADMIN_USERNAME", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
	}
}

// EnsureModelsDir creates the models directory if needed and checks that it is writable.
func (c *Config) EnsureModelsDir() error {
	if c.ModelsDir == "" {
		return errors.New("missing environment variable MODELS_DIR")
	}
	if err := os.MkdirAll(c.ModelsDir, 0o755); err != nil {
		return fmt.Errorf("create models dir %q: %w", c.ModelsDir, err)
	}

	probe, err := os.CreateTemp(c.ModelsDir, ".write-probe-*")
	if err != nil {
		return fmt.Errorf("models dir %q is not writable: %w", c.ModelsDir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(filepath.Clean(name))
}

func (c *Config) AllowedOrigins() ([]*regexp.Regexp, error) {
	patterns := []string{DefaultOrigin}
	if c.CORS != "" {
		patterns = append(patterns, c.CORS)
	}

	origins := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid CORS origin pattern %q: %w", p, err)
		}
		origins = append(origins, re)
	}
	return origins, nil
}

// SessionKey returns the 32-byte cookie sealing key. When SECRET_KEY is unset a
// random key is generated and generated is true; sessions then die with the process.
func (c *Config) SessionKey() (key []byte, generated bool, err error) {
	if c.SecretKey == "" {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, false, err
		}
		return key, true, nil
	}

	key, err = base64.StdEncoding.DecodeString(c.SecretKey)
	if err != nil {
		return nil, false, fmt.Errorf("SECRET_KEY is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, false, fmt.Errorf("SECRET_KEY must decode to 32 bytes, got %d", len(key))
	}
	return key, false, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
