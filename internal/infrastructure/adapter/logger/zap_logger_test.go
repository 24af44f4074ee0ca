package logger

import (
	"testing"

	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Run("Writes fields at or above the level", func(t *testing.T) {
		obs, logs := observer.New(zapcore.DebugLevel)
		l := NewZapLoggerFromCore(obs, core.LogLevelInfo)

		l.Debug("hidden", nil)
		l.Info("Module registered", map[string]any{"module": "net"})
		l.Error("Sink panicked", map[string]any{"call": "info"})

		require.Equal(t, 2, logs.Len())
		entries := logs.All()
		assert.Equal(t, "Module registered", entries[0].Message)
		assert.Equal(t, "net", entries[0].ContextMap()["module"])
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	})

	t.Run("SetLevel changes what is written", func(t *testing.T) {
		obs, logs := observer.New(zapcore.DebugLevel)
		l := NewZapLoggerFromCore(obs, core.LogLevelError)

		l.Warn("hidden", nil)
		assert.Equal(t, 0, logs.Len())

		l.SetLevel(core.LogLevelDebug)
		assert.Equal(t, core.LogLevelDebug, l.GetLevel())
		l.Debug("visible", nil)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("Development logger builds", func(t *testing.T) {
		l, err := NewZapLogger(false, "stderr", core.LogLevelWarn)

		require.NoError(t, err)
		assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	})

	t.Run("Invalid output path fails", func(t *testing.T) {
		l, err := NewZapLogger(true, "/nonexistent-dir/sub/out.log", core.LogLevelInfo)

		assert.Error(t, err)
		assert.Nil(t, l)
	})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()

	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())

	l.Info("ignored", map[string]any{"k": "v"})
	assert.NoError(t, l.Flush())
}
