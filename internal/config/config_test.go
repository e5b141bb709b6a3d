package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestPurpose: Validates default configuration values when only the required variables are set.
// Scope: Unit Test
// Expected: Onboarding TTL 2h, redirect /dashboard, chat history memory backend with 50 messages.
// Test Case ID: CFG-01
func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Onboarding.IdleTTL)
	assert.Equal(t, "/dashboard", cfg.Onboarding.RedirectPath)
	assert.Equal(t, ChatBackendMemory, cfg.ChatHistory.Backend)
	assert.Equal(t, 50, cfg.ChatHistory.Limit)
	assert.Equal(t, "ruoom_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.Lifetime)
}

func TestLoad_RequiresDatabasePassword(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_PASSWORD")
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("ONBOARDING_IDLE_TTL", "45m")
	t.Setenv("ONBOARDING_REDIRECT_PATH", "/admin")
	t.Setenv("CHAT_HISTORY_BACKEND", "redis")
	t.Setenv("CHAT_HISTORY_LIMIT", "10")
	t.Setenv("RATELIMIT_RPS", "not-a-number")
	t.Setenv("RATELIMIT_BURST", "5")
	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "0.2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, cfg.Onboarding.IdleTTL)
	assert.Equal(t, "/admin", cfg.Onboarding.RedirectPath)
	assert.Equal(t, ChatBackendRedis, cfg.ChatHistory.Backend)
	assert.Equal(t, 10, cfg.ChatHistory.Limit)
	assert.Equal(t, float64(10), cfg.RateLimit.RequestsPerSecond, "invalid numbers fall back to default")
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, 0.2, cfg.Observability.TraceSampleRatio)
}

func TestLoad_RejectsUnknownChatBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CHAT_HISTORY_BACKEND", "memcached")

	_, err := Load()
	assert.ErrorContains(t, err, "CHAT_HISTORY_BACKEND")
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PASSWORD=from-file\nSERVER_PORT=9090\n"), 0o600))
	chdir(t, dir)
	// registered so t.Setenv restores the process env after godotenv writes to it
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("SERVER_PORT", "")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("SERVER_PORT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Database.Password)
	assert.Equal(t, "9090", cfg.Server.Port)
}
