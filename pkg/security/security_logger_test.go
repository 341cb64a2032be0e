package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "roo-petroleum-web", "test"), logs
}

func TestSecurityLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Should log rate limits as warnings", func(t *testing.T) {
		sl, logs := newObserved()
		sl.LogRateLimitTriggered(ctx, "203.0.113.9", "curl", "req-1", "/contact")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
		assert.Equal(t, "rate_limit_triggered", entry.Message)
		assert.Equal(t, "203.0.113.9", entry.ContextMap()["ip"])
		assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
	})

	t.Run("Should log failed submissions as errors with a masked email", func(t *testing.T) {
		sl, logs := newObserved()
		sl.LogSubmissionFailed(ctx, "jane@co.com", "203.0.113.9", "req-2", "/contact")

		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, "j***@co.com", entry.ContextMap()["subject_value"])
	})

	t.Run("Should record field names without values", func(t *testing.T) {
		sl, logs := newObserved()
		sl.LogValidationFailed(ctx, "203.0.113.9", "req-3", "/contact", []string{"email", "phone"})

		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		assert.Equal(t, `{"fields":["email","phone"]}`, entry.ContextMap()["details"])
	})

	t.Run("Should persist events in the background", func(t *testing.T) {
		sl, _ := newObserved()
		got := make(chan SecurityEvent, 1)
		sl.SetPersistFunc(func(_ context.Context, e SecurityEvent) error {
			got <- e
			return nil
		})
		sl.LogCSRFViolation(ctx, "203.0.113.9", "curl", "req-4", "/contact", "token mismatch")

		e := <-got
		assert.Equal(t, EventCSRFViolation, e.Event)
		assert.Equal(t, "test", e.Environment)
		assert.Equal(t, "warn", e.Level)
		assert.False(t, e.Timestamp.IsZero())
	})
}

func TestMaskEmail(t *testing.T) {
	t.Run("Should keep the first letter and domain", func(t *testing.T) {
		assert.Equal(t, "j***@example.com", MaskEmail(" jane@example.com "))
		assert.Equal(t, "***", MaskEmail("a@"))
		assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
	})
}
