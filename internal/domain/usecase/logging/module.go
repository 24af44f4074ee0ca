package logging

import (
	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/modlog/internal/domain/port/core"
)

// ModuleLogger is the logging surface of one registered module. Every ranked
// call is recorded in the module log before the gate is consulted; only
// live forwarding is gated. Diagnostics are inherited from Global unchanged.
type ModuleLogger struct {
	*Global
	module       string
	tag          string
	store        *ModuleLog
	timeProvider coreport.TimeProvider
}

func newModuleLogger(global *Global, module string, store *ModuleLog, timeProvider coreport.TimeProvider) *ModuleLogger {
	return &ModuleLogger{
		Global:       global,
		module:       module,
		tag:          "[" + module + "]",
		store:        store,
		timeProvider: timeProvider,
	}
}

// Module returns the module name the logger was registered under
func (l *ModuleLogger) Module() string {
	return l.module
}

// Emit records the call, then forwards it with the module tag prepended when
// the level allows m and the module is not filtered
func (l *ModuleLogger) Emit(m entity.Method, args ...any) {
	if !m.Valid() {
		return
	}
	l.store.Add(entity.NewEntry(m, args, l.timeProvider.Now()))

	if !l.sink.Present() || !l.gate.Allow(m, l.module) {
		return
	}
	tagged := make([]any, 0, len(args)+1)
	tagged = append(tagged, l.tag)
	tagged = append(tagged, args...)
	l.sink.Forward(m, tagged)
}

func (l *ModuleLogger) Error(args ...any) { l.Emit(entity.MethodError, args...) }
func (l *ModuleLogger) Warn(args ...any)  { l.Emit(entity.MethodWarn, args...) }
func (l *ModuleLogger) Info(args ...any)  { l.Emit(entity.MethodInfo, args...) }
func (l *ModuleLogger) Debug(args ...any) { l.Emit(entity.MethodDebug, args...) }
func (l *ModuleLogger) Log(args ...any)   { l.Emit(entity.MethodLog, args...) }
