package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "database:\n  dsn: \"file::memory:\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, float64(10), cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 300, cfg.Server.CacheTTLSeconds)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 1, cfg.WorkerPool.Size)
	assert.Equal(t, 64, cfg.WorkerPool.QueueSize)
	assert.Equal(t, 10*time.Second, cfg.WorkerPool.SendTimeout())
	assert.Equal(t, "Artist Booking <onboarding@resend.dev>", cfg.Email.From)
	assert.Equal(t, 3600, cfg.Push.TTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "auth:\n  jwt_secret: from-file\ntelegram:\n  chat_id: 1\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")
	t.Setenv("GCS_BUCKET_NAME", "media-bucket")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, int64(-100200), cfg.Telegram.ChatID)
	assert.Equal(t, "media-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "re_123", cfg.Email.APIKey)
	assert.Equal(t, "owner@example.com", cfg.Email.AdminEmail)
}

func TestLoad_InvalidTelegramChatID(t *testing.T) {
	path := writeConfig(t, "telegram:\n  chat_id: 1\n")
	t.Setenv("TELEGRAM_CHAT_ID", "-100abc")

	_, err := Load(path)
	assert.ErrorContains(t, err, "TELEGRAM_CHAT_ID")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
