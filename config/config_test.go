package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES", "BELCORP_BASE_URL", "SCRAPE_MODE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "your-secret-key-here", cfg.SecretKey)
	assert.Equal(t, 60*24*7, cfg.TokenExpireMinutes)
	assert.Equal(t, "https://www.somosbelcorp.com", cfg.ScrapeBaseURL)
	assert.Equal(t, "session", cfg.ScrapeMode)
	assert.False(t, cfg.LegacyMode())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SCRAPE_MODE", "legacy")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("BELCORP_USERNAME", "123456")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.LegacyMode())
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiry())
	assert.Equal(t, "123456", cfg.ScrapeUsername)
}

func TestLoadIgnoresBadInteger(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 60*24*7, cfg.TokenExpireMinutes)
}
