package sink

import "github.com/amirhossein-jamali/modlog/internal/domain/entity"

// NoopSink accepts every ranked call and drops it. It supports no diagnostics.
type NoopSink struct{}

// NewNoopSink creates a new no-op sink
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (NoopSink) Error(args ...any)                         {}
func (NoopSink) Warn(args ...any)                          {}
func (NoopSink) Info(args ...any)                          {}
func (NoopSink) Debug(args ...any)                         {}
func (NoopSink) Log(args ...any)                           {}
func (NoopSink) Supports(d entity.Diagnostic) bool         { return false }
func (NoopSink) Diagnose(d entity.Diagnostic, args ...any) {}
