package logging

import (
	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/modlog/internal/domain/error"
)

// DumpAllLabel labels the outer group of a full dump
const DumpAllLabel = "Loggers Dump"

// Dump replays recorded entries through the global logger. An empty module
// dumps every registered module, in registration order, inside one outer
// group. A module that was never registered yields ErrModuleNotFound and no
// output. At level 0 the group brackets are suppressed too, so nothing is
// printed.
func (r *Registry) Dump(module string) error {
	if module == "" {
		r.dumpAll()
		return nil
	}

	entries, ok := r.Entries(module)
	if !ok {
		err := &errs.ModuleError{Module: module, Operation: "dump", Err: errs.ErrModuleNotFound}
		r.logger.Warn("Dump of unregistered module", err.LogFields())
		return err
	}

	r.logger.Debug("Dumping module", map[string]any{
		"module":  module,
		"entries": len(entries),
	})
	r.replay(module, entries)
	return nil
}

func (r *Registry) dumpAll() {
	modules := r.Modules()
	r.logger.Debug("Dumping all modules", map[string]any{
		"modules": len(modules),
	})

	r.global.GroupCollapsed(DumpAllLabel)
	for _, module := range modules {
		entries, _ := r.Entries(module)
		r.replay(module, entries)
	}
	r.global.GroupEnd()
}

// replay works on a snapshot, so a sink that logs back into the registry
// cannot change what is being replayed
func (r *Registry) replay(module string, entries []entity.Entry) {
	r.global.GroupCollapsed(module)
	for _, e := range entries {
		r.global.Emit(e.Method, e.Args...)
	}
	r.global.GroupEnd()
}
