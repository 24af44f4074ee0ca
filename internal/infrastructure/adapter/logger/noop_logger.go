package logger

import (
	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
)

// NoopLogger implements the operational Logger interface but discards
// everything. It is the default when the façade is embedded in a program
// that does not care about the façade's own events.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel records the level so GetLevel stays consistent
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(message string, fields map[string]any) {}
func (l *NoopLogger) Info(message string, fields map[string]any)  {}
func (l *NoopLogger) Warn(message string, fields map[string]any)  {}
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush has nothing to flush
func (l *NoopLogger) Flush() error {
	return nil
}
