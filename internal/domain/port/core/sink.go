package core

import "github.com/amirhossein-jamali/modlog/internal/domain/entity"

// Sink is the console-like destination for forwarded output. A sink may
// implement any subset of the capability interfaces below; the logging
// engine checks each capability explicitly and degrades when one is
// missing. A nil Sink is valid and means "no sink".
type Sink any

// RichSink is the enhanced capability: a single entry point receiving the
// ranked method and the spread argument list. When present it is preferred
// over the named methods.
type RichSink interface {
	Emit(method entity.Method, args ...any)
}

// ErrorSink receives error output
type ErrorSink interface {
	Error(args ...any)
}

// WarnSink receives warning output
type WarnSink interface {
	Warn(args ...any)
}

// InfoSink receives informational output
type InfoSink interface {
	Info(args ...any)
}

// DebugSink receives debug output
type DebugSink interface {
	Debug(args ...any)
}

// LogSink is the generic fallback used when the named method is missing
type LogSink interface {
	Log(args ...any)
}

// DiagnosticSink receives pass-through diagnostics such as group/groupEnd,
// time/timeEnd or count. Supports must report which diagnostics the sink
// actually implements; unsupported ones are dropped by the caller.
type DiagnosticSink interface {
	Supports(d entity.Diagnostic) bool
	Diagnose(d entity.Diagnostic, args ...any)
}

// ConsoleSink is a sink implementing every named ranked method, the generic
// fallback and diagnostics. It is the shape of a full console.
type ConsoleSink interface {
	ErrorSink
	WarnSink
	InfoSink
	DebugSink
	LogSink
	DiagnosticSink
}
