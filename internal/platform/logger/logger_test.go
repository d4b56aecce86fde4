package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs_RedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"api_key", "abc", "Authorization", "Bearer x", "product_id", 3, "dangling"})

	assert.Equal(t, []interface{}{"api_key", "[REDACTED]", "Authorization", "[REDACTED]", "product_id", 3, "dangling"}, got)
}

func TestLogger_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "test").Info("order created", "order_id", 7, "gemini_api_key", "k")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "order created", entries[0].Message)
		assert.Equal(t, "test", fields["component"])
		assert.EqualValues(t, 7, fields["order_id"])
		assert.Equal(t, "[REDACTED]", fields["gemini_api_key"])
	}
}
