package logging

import (
	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
	coreport "github.com/amirhossein-jamali/modlog/internal/domain/port/core"
)

// namedResolvers maps each rank to the lookup of its named sink method
var namedResolvers = [entity.MethodCount]func(coreport.Sink) func(...any){
	entity.MethodError: func(s coreport.Sink) func(...any) {
		if v, ok := s.(coreport.ErrorSink); ok {
			return v.Error
		}
		return nil
	},
	entity.MethodWarn: func(s coreport.Sink) func(...any) {
		if v, ok := s.(coreport.WarnSink); ok {
			return v.Warn
		}
		return nil
	},
	entity.MethodInfo: func(s coreport.Sink) func(...any) {
		if v, ok := s.(coreport.InfoSink); ok {
			return v.Info
		}
		return nil
	},
	entity.MethodDebug: func(s coreport.Sink) func(...any) {
		if v, ok := s.(coreport.DebugSink); ok {
			return v.Debug
		}
		return nil
	},
	entity.MethodLog: func(s coreport.Sink) func(...any) {
		if v, ok := s.(coreport.LogSink); ok {
			return v.Log
		}
		return nil
	},
}

// SinkAdapter resolves the capabilities of an injected sink once and
// forwards calls through the best available one. A missing sink, a missing
// method or a panicking sink never reaches the caller.
type SinkAdapter struct {
	present bool
	rich    coreport.RichSink
	named   [entity.MethodCount]func(...any)
	log     func(...any)
	diag    coreport.DiagnosticSink
	logger  coreport.Logger
}

// NewSinkAdapter inspects sink, which may be nil. Sink failures are reported
// to logger.
func NewSinkAdapter(sink coreport.Sink, logger coreport.Logger) *SinkAdapter {
	a := &SinkAdapter{logger: logger}
	if sink == nil {
		return a
	}

	a.present = true
	if v, ok := sink.(coreport.RichSink); ok {
		a.rich = v
	}
	for i, resolve := range namedResolvers {
		a.named[i] = resolve(sink)
	}
	a.log = a.named[entity.MethodLog]
	if v, ok := sink.(coreport.DiagnosticSink); ok {
		a.diag = v
	}
	return a
}

// Present reports whether a sink was injected
func (a *SinkAdapter) Present() bool {
	return a.present
}

// Forward sends args to the sink for method m: rich variant first, then the
// named method, then the generic Log. Without any of them the call is dropped.
func (a *SinkAdapter) Forward(m entity.Method, args []any) {
	if !a.present || !m.Valid() {
		return
	}
	defer a.recoverPanic(m.String())

	switch {
	case a.rich != nil:
		a.rich.Emit(m, args...)
	case a.named[m] != nil:
		a.named[m](args...)
	case a.log != nil:
		a.log(args...)
	}
}

// Supports reports whether the sink implements diagnostic d
func (a *SinkAdapter) Supports(d entity.Diagnostic) bool {
	if a.diag == nil || !d.Valid() {
		return false
	}
	supported := false
	func() {
		defer a.recoverPanic("supports " + d.String())
		supported = a.diag.Supports(d)
	}()
	return supported
}

// Diagnose forwards a pass-through diagnostic unchanged
func (a *SinkAdapter) Diagnose(d entity.Diagnostic, args []any) {
	if a.diag == nil {
		return
	}
	defer a.recoverPanic(d.String())
	a.diag.Diagnose(d, args...)
}

func (a *SinkAdapter) recoverPanic(call string) {
	r := recover()
	if r == nil || a.logger == nil {
		return
	}
	err := &errs.SinkPanicError{Call: call, Recovered: r}
	a.logger.Error("Sink panicked", err.LogFields())
}
