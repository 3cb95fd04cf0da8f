package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, key := range []string{"PORT", "EVENT_API_URL", "CATALOG_PAGE_SIZE", "IDENTITY_DEBOUNCE", "SESSION_BACKEND", "SESSION_ID", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "EVENT_API_TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, 10, cfg.CatalogPageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.IdentityDebounce)
	assert.Equal(t, SessionBackendFile, cfg.SessionBackend)
	assert.Equal(t, "", cfg.SessionID)
	assert.Equal(t, time.Local, cfg.EventAPILocation)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("EVENT_API_URL", "https://events.example.edu/api")
	t.Setenv("EVENT_API_TIMEOUT", "3s")
	t.Setenv("EVENT_API_TIMEZONE", "UTC")
	t.Setenv("CATALOG_PAGE_SIZE", "25")
	t.Setenv("IDENTITY_DEBOUNCE", "250ms")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://events.example.edu/api", cfg.EventAPIURL)
	assert.Equal(t, 3*time.Second, cfg.EventAPITimeout)
	assert.Equal(t, time.UTC, cfg.EventAPILocation)
	assert.Equal(t, 25, cfg.CatalogPageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.IdentityDebounce)
	assert.Equal(t, SessionBackendRedis, cfg.SessionBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("CATALOG_PAGE_SIZE", "-4")
	t.Setenv("IDENTITY_DEBOUNCE", "soon")
	t.Setenv("SESSION_BACKEND", "etcd")
	t.Setenv("EVENT_API_TIMEZONE", "Mars/Olympus_Mons")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.CatalogPageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.IdentityDebounce)
	assert.Equal(t, SessionBackendFile, cfg.SessionBackend)
	assert.Equal(t, time.Local, cfg.EventAPILocation)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("production", "warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "event_id", "7")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "7", rec["event_id"])

	buf.Reset()
	NewLogger("development", "debug", &buf).Debug("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
