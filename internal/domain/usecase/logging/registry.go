package logging

import (
	"sync"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
	coreport "github.com/amirhossein-jamali/modlog/internal/domain/port/core"
)

// Registry maps module names to their single logger and entry buffer
type Registry struct {
	mu           sync.RWMutex
	global       *Global
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	loggers      map[string]*ModuleLogger
	logs         map[string]*ModuleLog
	order        []string
}

// NewRegistry creates an empty registry whose module loggers share global's
// gate and sink. logger receives the registry's own operational events.
func NewRegistry(
	global *Global,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Registry {
	return &Registry{
		global:       global,
		timeProvider: timeProvider,
		logger:       logger,
		loggers:      make(map[string]*ModuleLogger),
		logs:         make(map[string]*ModuleLog),
	}
}

// Register returns the logger of module, creating it and its empty log on
// first use. Later calls return the same instance.
func (r *Registry) Register(module string) *ModuleLogger {
	if l, ok := r.GetModule(module); ok {
		return l
	}

	r.mu.Lock()
	if l, ok := r.loggers[module]; ok {
		r.mu.Unlock()
		return l
	}
	store := newModuleLog()
	l := newModuleLogger(r.global, module, store, r.timeProvider)
	r.logs[module] = store
	r.loggers[module] = l
	r.order = append(r.order, module)
	r.mu.Unlock()

	if module == "" {
		r.logger.Warn("Module registered with empty name", map[string]any{
			"error": errs.ErrEmptyModuleName.Error(),
		})
	}
	r.logger.Debug("Module registered", map[string]any{
		"module": module,
	})
	return l
}

// GetModule looks module up without creating it
func (r *Registry) GetModule(module string) (*ModuleLogger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loggers[module]
	return l, ok
}

// Modules returns registered module names in registration order
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns a copy of the entries recorded for module
func (r *Registry) Entries(module string) ([]entity.Entry, bool) {
	r.mu.RLock()
	store, ok := r.logs[module]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return store.GetAll(), true
}

// Logs returns a copy of every module log keyed by module name
func (r *Registry) Logs() map[string][]entity.Entry {
	r.mu.RLock()
	stores := make(map[string]*ModuleLog, len(r.logs))
	for name, store := range r.logs {
		stores[name] = store
	}
	r.mu.RUnlock()

	out := make(map[string][]entity.Entry, len(stores))
	for name, store := range stores {
		out[name] = store.GetAll()
	}
	return out
}

// Clear empties the log of module while keeping its registration
func (r *Registry) Clear(module string) error {
	r.mu.RLock()
	store, ok := r.logs[module]
	r.mu.RUnlock()
	if !ok {
		return errs.NewModuleError(module, "clear", errs.ErrModuleNotFound)
	}
	store.Clear()
	return nil
}

// ClearAll empties every module log
func (r *Registry) ClearAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, store := range r.logs {
		store.Clear()
	}
}
