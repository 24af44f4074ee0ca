package logging

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"github.com/amirhossein-jamali/modlog/internal/domain/usecase/gate"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/modlog/mocks/port/core"
)

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

// sinkCall is one call observed by recordingSink
type sinkCall struct {
	name string
	args []any
}

// recordingSink is a full console sink that records calls in order
type recordingSink struct {
	calls []sinkCall
}

func (s *recordingSink) record(name string, args []any) {
	s.calls = append(s.calls, sinkCall{name: name, args: entity.CloneArgs(args)})
}

func (s *recordingSink) Error(args ...any) { s.record("error", args) }
func (s *recordingSink) Warn(args ...any)  { s.record("warn", args) }
func (s *recordingSink) Info(args ...any)  { s.record("info", args) }
func (s *recordingSink) Debug(args ...any) { s.record("debug", args) }
func (s *recordingSink) Log(args ...any)   { s.record("log", args) }

func (s *recordingSink) Supports(d entity.Diagnostic) bool { return true }

func (s *recordingSink) Diagnose(d entity.Diagnostic, args ...any) { s.record(d.String(), args) }

func (s *recordingSink) names() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.name
	}
	return out
}

func (s *recordingSink) count(name string) int {
	n := 0
	for _, c := range s.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// logOnlySink exposes only the generic fallback
type logOnlySink struct {
	calls [][]any
}

func (s *logOnlySink) Log(args ...any) { s.calls = append(s.calls, entity.CloneArgs(args)) }

// infoOnlySink exposes a single named method
type infoOnlySink struct {
	calls [][]any
}

func (s *infoOnlySink) Info(args ...any) { s.calls = append(s.calls, entity.CloneArgs(args)) }

// panickingSink blows up on every call
type panickingSink struct{}

func (panickingSink) Info(args ...any)                          { panic("sink exploded") }
func (panickingSink) Supports(d entity.Diagnostic) bool         { return true }
func (panickingSink) Diagnose(d entity.Diagnostic, args ...any) { panic("diagnose exploded") }

func newFixedTimeProvider(t *testing.T) coreport.TimeProvider {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	return mockTime
}

// newTestRegistry wires a registry over sink with a fresh gate
func newTestRegistry(t *testing.T, sink coreport.Sink) (*Registry, *gate.Gate) {
	t.Helper()
	g := gate.New()
	noop := logger.NewNoopLogger()
	global := NewGlobal(g, NewSinkAdapter(sink, noop))
	return NewRegistry(global, newFixedTimeProvider(t), noop), g
}

func entryValues(entries []entity.Entry) [][]any {
	out := make([][]any, len(entries))
	for i, e := range entries {
		out[i] = e.Values()
	}
	return out
}
