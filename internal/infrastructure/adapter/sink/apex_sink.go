package sink

import (
	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"github.com/apex/log"
)

var (
	_ core.ErrorSink = (*ApexSink)(nil)
	_ core.LogSink   = (*ApexSink)(nil)
)

// ApexSink writes ranked output to an apex/log logger. It has no rich
// variant and no diagnostics, so groups and timers are dropped.
type ApexSink struct {
	logger log.Interface
}

// NewApexSink creates a sink over logger; nil uses the apex default logger
func NewApexSink(logger log.Interface) *ApexSink {
	if logger == nil {
		logger = log.Log
	}
	return &ApexSink{logger: logger}
}

func (s *ApexSink) Error(args ...any) { s.logger.Error(render(args)) }
func (s *ApexSink) Warn(args ...any)  { s.logger.Warn(render(args)) }
func (s *ApexSink) Info(args ...any)  { s.logger.Info(render(args)) }
func (s *ApexSink) Debug(args ...any) { s.logger.Debug(render(args)) }

// Log writes at info level tagged kind=log
func (s *ApexSink) Log(args ...any) {
	s.logger.WithField("kind", "log").Info(render(args))
}
