package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
)

func TestZapLoggerLevel(t *testing.T) {
	log := NewZapLogger(Options{Level: "warn", Service: "marketplace"})
	zl := log.(*ZapLogger)

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	assert.False(t, zl.logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, zl.logger.Core().Enabled(zap.WarnLevel))

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.True(t, zl.logger.Core().Enabled(zap.DebugLevel))
}

func TestMapToZapFields(t *testing.T) {
	fields := mapToZapFields(map[string]any{
		"user_id": uint64(3),
		"error":   errors.New("boom"),
	})
	assert.Len(t, fields, 2)

	for _, f := range fields {
		if f.Key == "error" {
			assert.Equal(t, "boom", f.Interface.(error).Error())
		}
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	assert.Equal(t, core.LogLevelInfo, log.GetLevel())

	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())

	log.Info("ignored", map[string]any{"k": "v"})
	assert.NoError(t, log.Flush())
}
