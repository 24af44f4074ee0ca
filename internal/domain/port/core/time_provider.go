package core

import "time"

// TimeProvider abstracts the clock so entry timestamps and timers can be
// pinned in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
