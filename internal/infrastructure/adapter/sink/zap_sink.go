package sink

import (
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"go.uber.org/zap"
)

var _ core.ConsoleSink = (*ZapSink)(nil)

// ZapSink forwards console output to a zap logger. Ranked methods map onto
// zap levels, "log" is written at debug level with kind=log. Groups become a
// slash separated "group" field on every line written inside them.
type ZapSink struct {
	logger       *zap.Logger
	timeProvider core.TimeProvider

	mu     sync.Mutex
	groups []string
	timers map[string]time.Time
	counts map[string]int
}

// NewZapSink creates a sink writing to logger
func NewZapSink(logger *zap.Logger, timeProvider core.TimeProvider) *ZapSink {
	return &ZapSink{
		logger:       logger,
		timeProvider: timeProvider,
		timers:       make(map[string]time.Time),
		counts:       make(map[string]int),
	}
}

func (s *ZapSink) Error(args ...any) { s.scoped().Error(render(args)) }
func (s *ZapSink) Warn(args ...any)  { s.scoped().Warn(render(args)) }
func (s *ZapSink) Info(args ...any)  { s.scoped().Info(render(args)) }
func (s *ZapSink) Debug(args ...any) { s.scoped().Debug(render(args)) }

func (s *ZapSink) Log(args ...any) {
	s.scoped().Debug(render(args), zap.String("kind", "log"))
}

// Sync flushes the underlying logger
func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}

// Supports reports every diagnostic except clear and profiling, which have
// no meaning for a structured log stream
func (s *ZapSink) Supports(d entity.Diagnostic) bool {
	switch d {
	case entity.DiagnosticClear, entity.DiagnosticProfile, entity.DiagnosticProfileEnd:
		return false
	default:
		return d.Valid()
	}
}

func (s *ZapSink) Diagnose(d entity.Diagnostic, args ...any) {
	switch d {
	case entity.DiagnosticGroup, entity.DiagnosticGroupCollapsed:
		s.mu.Lock()
		s.groups = append(s.groups, label(args))
		s.mu.Unlock()
	case entity.DiagnosticGroupEnd:
		s.mu.Lock()
		if len(s.groups) > 0 {
			s.groups = s.groups[:len(s.groups)-1]
		}
		s.mu.Unlock()
	case entity.DiagnosticTime:
		s.mu.Lock()
		s.timers[label(args)] = s.timeProvider.Now()
		s.mu.Unlock()
	case entity.DiagnosticTimeEnd:
		name := label(args)
		s.mu.Lock()
		start, ok := s.timers[name]
		delete(s.timers, name)
		s.mu.Unlock()
		if !ok {
			s.scoped().Warn("timer does not exist", zap.String("timer", name))
			return
		}
		s.scoped().Info(name, zap.Duration("elapsed", s.timeProvider.Since(start)))
	case entity.DiagnosticCount:
		name := label(args)
		s.mu.Lock()
		s.counts[name]++
		n := s.counts[name]
		s.mu.Unlock()
		s.scoped().Info(name, zap.Int("count", n))
	case entity.DiagnosticAssert:
		if !asserted(args) {
			s.scoped().Error("Assertion failed: " + render(args[min(1, len(args)):]))
		}
	case entity.DiagnosticException:
		s.scoped().Error(render(args))
	case entity.DiagnosticTrace:
		s.scoped().Debug("Trace: "+render(args), zap.Stack("stack"))
	case entity.DiagnosticTable, entity.DiagnosticDir, entity.DiagnosticDirXML:
		for _, arg := range args {
			s.scoped().Info(d.String(), zap.Any("value", arg))
		}
	}
}

// scoped returns the logger annotated with the current group path
func (s *ZapSink) scoped() *zap.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.groups) == 0 {
		return s.logger
	}
	return s.logger.With(zap.String("group", strings.Join(s.groups, "/")))
}
