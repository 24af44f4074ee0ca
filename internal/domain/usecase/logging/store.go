package logging

import (
	"sync"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
)

// ModuleLog is the append-only entry buffer of one module. It is
// thread-safe and lives as long as the registry that owns it.
type ModuleLog struct {
	mu      sync.RWMutex
	entries []entity.Entry
}

func newModuleLog() *ModuleLog {
	return &ModuleLog{
		entries: make([]entity.Entry, 0, 64),
	}
}

// Add appends an entry
func (s *ModuleLog) Add(entry entity.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// GetAll returns a copy of all entries in insertion order
func (s *ModuleLog) GetAll() []entity.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entriesCopy := make([]entity.Entry, len(s.entries))
	for i, e := range s.entries {
		entriesCopy[i] = e.Clone()
	}
	return entriesCopy
}

// Clear drops every entry
func (s *ModuleLog) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]entity.Entry, 0, 64)
}
