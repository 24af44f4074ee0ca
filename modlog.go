// Package modlog is an in-process logging façade. Code modules register
// named loggers whose calls are buffered in memory, gated by a numeric
// severity level and a per-module filter, and replayable on demand.
package modlog

import (
	"errors"
	"os"
	"syscall"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
	"github.com/amirhossein-jamali/modlog/internal/domain/port/core"
	"github.com/amirhossein-jamali/modlog/internal/domain/usecase/gate"
	"github.com/amirhossein-jamali/modlog/internal/domain/usecase/logging"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/sink"
	timeProvider "github.com/amirhossein-jamali/modlog/internal/infrastructure/adapter/time"
)

type (
	// ModuleLogger is the logger handed out by Register
	ModuleLogger = logging.ModuleLogger
	// Entry is one buffered ranked call
	Entry = entity.Entry
	// Method is a ranked logging method
	Method = entity.Method
	// Diagnostic is a pass-through console operation
	Diagnostic = entity.Diagnostic
	// Sink is anything that exposes some console-like methods
	Sink = core.Sink
	// Logger receives the façade's own operational events
	Logger = core.Logger
)

const (
	MethodError = entity.MethodError
	MethodWarn  = entity.MethodWarn
	MethodInfo  = entity.MethodInfo
	MethodDebug = entity.MethodDebug
	MethodLog   = entity.MethodLog
)

// Errors returned by the façade
var (
	ErrModuleNotFound = errs.ErrModuleNotFound
	ErrInvalidConfig  = errs.ErrInvalidConfig
)

// DefaultLevel enables all five ranked methods
const DefaultLevel = gate.DefaultLevel

// Facade bundles one gate, one global logger and one registry. Its embedded
// Global provides the ranked methods and the pass-through diagnostics.
type Facade struct {
	*logging.Global
	gate     *gate.Gate
	registry *logging.Registry
	sink     Sink
	logger   core.Logger
}

type options struct {
	sink         Sink
	sinkSet      bool
	logger       core.Logger
	timeProvider core.TimeProvider
	level        any
	filter       string
}

// Option configures a Facade built by New
type Option func(*options)

// WithSink sets the sink. A nil sink turns live output off while buffering
// continues.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
		o.sinkSet = true
	}
}

// WithLogger sets the operational logger
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTimeProvider sets the clock used for entry timestamps and sink timers
func WithTimeProvider(tp core.TimeProvider) Option {
	return func(o *options) {
		o.timeProvider = tp
	}
}

// WithLevel sets the initial level. Values are normalized like SetLevel.
func WithLevel(level any) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFilter sets the initial filter from a whitespace separated list
func WithFilter(names string) Option {
	return func(o *options) {
		o.filter = names
	}
}

// New creates an independent façade. Without WithSink it writes to a
// console sink on stderr.
func New(opts ...Option) *Facade {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNoopLogger()
	}
	if o.timeProvider == nil {
		o.timeProvider = timeProvider.NewRealTimeProvider()
	}
	if !o.sinkSet {
		o.sink = sink.NewConsoleSink(os.Stderr, o.timeProvider)
	}

	g := gate.New()
	if o.level != nil {
		g.SetLevelValue(o.level)
	}
	g.SetFilter(o.filter)

	global := logging.NewGlobal(g, logging.NewSinkAdapter(o.sink, o.logger))
	return &Facade{
		Global:   global,
		gate:     g,
		registry: logging.NewRegistry(global, o.timeProvider, o.logger),
		sink:     o.sink,
		logger:   o.logger,
	}
}

// SetLevel sets the severity level. Integers of any width, whole floats and
// numeric strings are accepted; anything else restores DefaultLevel.
func (f *Facade) SetLevel(level any) {
	f.gate.SetLevelValue(level)
}

// GetLevel returns the current severity level
func (f *Facade) GetLevel() int {
	return f.gate.GetLevel()
}

// SetFilter suppresses live output of the listed modules
func (f *Facade) SetFilter(names string) (map[string]bool, bool) {
	return f.gate.SetFilter(names)
}

// UnsetFilter restores live output of the listed modules
func (f *Facade) UnsetFilter(names string) (map[string]bool, bool) {
	return f.gate.UnsetFilter(names)
}

// Reset restores DefaultLevel and clears the filter. Buffered entries are kept.
func (f *Facade) Reset() {
	f.gate.Reset()
}

// GetFilter returns a copy of the filter set
func (f *Facade) GetFilter() map[string]bool {
	return f.gate.GetFilter()
}

// Register returns the logger of module, creating it on first use
func (f *Facade) Register(module string) *ModuleLogger {
	return f.registry.Register(module)
}

// GetModule returns the logger of an already registered module
func (f *Facade) GetModule(module string) (*ModuleLogger, bool) {
	return f.registry.GetModule(module)
}

// Modules lists registered modules in registration order
func (f *Facade) Modules() []string {
	return f.registry.Modules()
}

// Entries returns a copy of the buffered entries of module
func (f *Facade) Entries(module string) ([]Entry, bool) {
	return f.registry.Entries(module)
}

// Logs returns a copy of every module buffer
func (f *Facade) Logs() map[string][]Entry {
	return f.registry.Logs()
}

// Dump replays module, or every module when module is empty
func (f *Facade) Dump(module string) error {
	return f.registry.Dump(module)
}

// ClearLogs drops the buffered entries of module
func (f *Facade) ClearLogs(module string) error {
	return f.registry.Clear(module)
}

// ClearAllLogs drops the buffered entries of every module
func (f *Facade) ClearAllLogs() {
	f.registry.ClearAll()
}

// Close flushes the sink, when it buffers, and the operational logger.
// Sync errors from terminals and pipes, which cannot be fsynced, are ignored.
func (f *Facade) Close() error {
	var firstErr error
	if s, ok := f.sink.(interface{ Sync() error }); ok {
		firstErr = syncError(s.Sync())
	}
	if err := syncError(f.logger.Flush()); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// syncError drops the errors fsync reports for stdout and stderr
func syncError(err error) error {
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
