package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.RateLimitContactLimit)
		assert.Equal(t, 10*time.Second, cfg.ContactSubmitTimeout)
		assert.True(t, cfg.ContactArchiveToDB)
		assert.Equal(t, "melbourne@roopetroleum.com.au", cfg.ContactEmailTo)
	})

	t.Run("Should read overrides from the environment", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		t.Setenv("SITE_URL", "https://roopetroleum.com.au/")
		t.Setenv("RATE_LIMIT_CONTACT_LIMIT", "2")
		t.Setenv("CONTACT_SUBMIT_TIMEOUT", "3s")
		t.Setenv("CONTACT_ARCHIVE_TO_DB", "false")
		t.Setenv("ALLOWED_ORIGINS", "https://a.example/, ,https://b.example")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "production", cfg.SecurityLogEnvironment)
		assert.Equal(t, "https://roopetroleum.com.au", cfg.SiteURL)
		assert.Equal(t, 2, cfg.RateLimitContactLimit)
		assert.Equal(t, 3*time.Second, cfg.ContactSubmitTimeout)
		assert.False(t, cfg.ContactArchiveToDB)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	})

	t.Run("Should ignore malformed numbers and durations", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "sixty")
		t.Setenv("CONTACT_RETRY_BACKOFF", "-1s")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
		assert.Equal(t, 500*time.Millisecond, cfg.ContactRetryBackoff)
	})
}

func TestSMTPConfigured(t *testing.T) {
	t.Run("Should need host and credentials", func(t *testing.T) {
		cfg := &Config{SMTPHost: "smtp-relay.brevo.com", SMTPUsername: "user"}
		assert.False(t, cfg.SMTPConfigured())

		cfg.SMTPPassword = "key"
		assert.True(t, cfg.SMTPConfigured())
	})
}
