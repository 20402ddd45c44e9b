package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET_KEY", "override-secret")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ALLOWED_UPLOAD_EXTENSIONS", "pdf,zip")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "override-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"pdf", "zip"}, cfg.AllowedUploadExtensions)
}

func TestLoadKeepsDefaultOnBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, DefaultConfig().Port, cfg.Port)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Contains(t, cfg.AllowedUploadExtensions, "pdf")
	assert.NotEmpty(t, cfg.AdminEmail)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
	assert.Empty(t, splitList(" , "))
}
