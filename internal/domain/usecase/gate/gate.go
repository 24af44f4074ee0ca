package gate

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/modlog/internal/domain/entity"
)

// DefaultLevel enables every ranked method
const DefaultLevel = 5

// Gate holds the process-wide verbosity level and the set of modules whose
// live output is suppressed. It decides, per call, whether an entry is
// forwarded to the sink. It never affects recording.
type Gate struct {
	mu     sync.RWMutex
	level  int
	filter map[string]bool
}

// New creates a gate at the default level with an empty filter
func New() *Gate {
	return &Gate{
		level:  DefaultLevel,
		filter: make(map[string]bool),
	}
}

// SetLevel sets the verbosity level.
//
// A positive level L emits ranks below L. A non-positive level L emits
// ranks R with MethodCount+L <= R, so it counts down from full silence.
// Level 0 emits nothing and also disables pass-through diagnostics.
func (g *Gate) SetLevel(level int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.level = level
}

// SetLevelValue sets the level from an arbitrary value, normalized by
// NormalizeLevel.
func (g *Gate) SetLevelValue(v any) {
	g.SetLevel(NormalizeLevel(v))
}

// GetLevel returns the current level
func (g *Gate) GetLevel() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.level
}

// NormalizeLevel converts v to a level. Integers of any width, whole floats
// and numeric strings are accepted; anything else yields DefaultLevel.
func NormalizeLevel(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint:
		return int(n)
	case uint64:
		return int(n)
	case uintptr:
		return int(n)
	case float32:
		return wholeLevel(float64(n))
	case float64:
		return wholeLevel(n)
	case string:
		return ParseLevel(n)
	default:
		return DefaultLevel
	}
}

func wholeLevel(f float64) int {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return DefaultLevel
	}
	return int(f)
}

// ParseLevel parses a decimal level, returning DefaultLevel when s is not an integer
func ParseLevel(s string) int {
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultLevel
	}
	return level
}

// HasLevel reports whether the current level lets method m through
func (g *Gate) HasLevel(m entity.Method) bool {
	level := g.GetLevel()
	if level > 0 {
		return level > m.Rank()
	}
	return entity.MethodCount+level <= m.Rank()
}

// Silent reports whether the level is exactly 0
func (g *Gate) Silent() bool {
	return g.GetLevel() == 0
}

// SetFilter suppresses live output of every whitespace-separated module
// name in names. It returns a copy of the updated filter, or false when
// names holds no module name.
func (g *Gate) SetFilter(names string) (map[string]bool, bool) {
	modules := strings.Fields(names)
	if len(modules) == 0 {
		return nil, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range modules {
		g.filter[m] = true
	}
	return g.snapshotLocked(), true
}

// UnsetFilter is the inverse of SetFilter. Names that are not filtered are
// ignored.
func (g *Gate) UnsetFilter(names string) (map[string]bool, bool) {
	modules := strings.Fields(names)
	if len(modules) == 0 {
		return nil, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, m := range modules {
		delete(g.filter, m)
	}
	return g.snapshotLocked(), true
}

// ReplaceFilter swaps the whole filter set for the names in names. Unlike
// SetFilter an empty list is valid and clears the filter.
func (g *Gate) ReplaceFilter(names string) map[string]bool {
	filter := make(map[string]bool)
	for _, m := range strings.Fields(names) {
		filter[m] = true
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.filter = filter
	return g.snapshotLocked()
}

// GetFilter returns a copy of the filter set
func (g *Gate) GetFilter() map[string]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotLocked()
}

// HasFilter reports whether module is suppressed
func (g *Gate) HasFilter(module string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.filter[module]
}

// Allow is the combined gate decision for a module logger call
func (g *Gate) Allow(m entity.Method, module string) bool {
	return g.HasLevel(m) && !g.HasFilter(module)
}

// Reset restores the default level and clears the filter
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.level = DefaultLevel
	g.filter = make(map[string]bool)
}

func (g *Gate) snapshotLocked() map[string]bool {
	out := make(map[string]bool, len(g.filter))
	for k, v := range g.filter {
		out[k] = v
	}
	return out
}
