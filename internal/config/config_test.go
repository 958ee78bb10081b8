package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "JWT_EXPIRES_IN", "LOG_LEVEL", "AUTH_ISSUER", "JWT_SECRET"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr())
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Contains(t, cfg.DBConn, "product_intel")
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "10000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AUTH_ISSUER", "https://clerk.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":10000", cfg.ServerAddr())
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DBConn)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "https://clerk.example.com", cfg.AuthIssuer)
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "forever")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadAPIRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := LoadAPI()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "   ")
	_, err = LoadAPI()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	// the db scripts do not need it
	_, err = Load()
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := LoadAPI()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}
