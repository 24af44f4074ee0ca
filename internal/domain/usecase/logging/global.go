package logging

import (
	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	"github.com/amirhossein-jamali/modlog/internal/domain/usecase/gate"
)

// Global is the moduleless logging surface. Ranked calls are gated by level
// only, never filtered and never recorded. Dump replays through it.
type Global struct {
	gate *gate.Gate
	sink *SinkAdapter
}

// NewGlobal creates a global logger writing to sink under gate g
func NewGlobal(g *gate.Gate, sink *SinkAdapter) *Global {
	return &Global{
		gate: g,
		sink: sink,
	}
}

// Emit forwards args for method m when a sink is present and the level allows m
func (l *Global) Emit(m entity.Method, args ...any) {
	if !l.sink.Present() || !l.gate.HasLevel(m) {
		return
	}
	l.sink.Forward(m, args)
}

func (l *Global) Error(args ...any) { l.Emit(entity.MethodError, args...) }
func (l *Global) Warn(args ...any)  { l.Emit(entity.MethodWarn, args...) }
func (l *Global) Info(args ...any)  { l.Emit(entity.MethodInfo, args...) }
func (l *Global) Debug(args ...any) { l.Emit(entity.MethodDebug, args...) }
func (l *Global) Log(args ...any)   { l.Emit(entity.MethodLog, args...) }

// Diagnose passes d straight to the sink unless the level is 0 or the sink
// does not implement d
func (l *Global) Diagnose(d entity.Diagnostic, args ...any) {
	if l.gate.Silent() || !l.sink.Supports(d) {
		return
	}
	l.sink.Diagnose(d, args)
}

func (l *Global) Assert(args ...any)         { l.Diagnose(entity.DiagnosticAssert, args...) }
func (l *Global) Clear(args ...any)          { l.Diagnose(entity.DiagnosticClear, args...) }
func (l *Global) Count(args ...any)          { l.Diagnose(entity.DiagnosticCount, args...) }
func (l *Global) Dir(args ...any)            { l.Diagnose(entity.DiagnosticDir, args...) }
func (l *Global) DirXML(args ...any)         { l.Diagnose(entity.DiagnosticDirXML, args...) }
func (l *Global) Exception(args ...any)      { l.Diagnose(entity.DiagnosticException, args...) }
func (l *Global) Group(args ...any)          { l.Diagnose(entity.DiagnosticGroup, args...) }
func (l *Global) GroupCollapsed(args ...any) { l.Diagnose(entity.DiagnosticGroupCollapsed, args...) }
func (l *Global) GroupEnd(args ...any)       { l.Diagnose(entity.DiagnosticGroupEnd, args...) }
func (l *Global) Profile(args ...any)        { l.Diagnose(entity.DiagnosticProfile, args...) }
func (l *Global) ProfileEnd(args ...any)     { l.Diagnose(entity.DiagnosticProfileEnd, args...) }
func (l *Global) Table(args ...any)          { l.Diagnose(entity.DiagnosticTable, args...) }
func (l *Global) Time(args ...any)           { l.Diagnose(entity.DiagnosticTime, args...) }
func (l *Global) TimeEnd(args ...any)        { l.Diagnose(entity.DiagnosticTimeEnd, args...) }
func (l *Global) Trace(args ...any)          { l.Diagnose(entity.DiagnosticTrace, args...) }
