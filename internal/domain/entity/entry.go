package entity

import "time"

// Entry is one recorded call to a ranked method of a module logger
type Entry struct {
	Method Method    // Ranked method that was called
	Args   []any     // Arguments exactly as passed by the caller
	At     time.Time // When the call was recorded
}

// NewEntry creates an entry owning a private copy of args
func NewEntry(method Method, args []any, at time.Time) Entry {
	return Entry{
		Method: method,
		Args:   CloneArgs(args),
		At:     at,
	}
}

// Values renders the entry as the method name followed by its arguments
func (e Entry) Values() []any {
	values := make([]any, 0, len(e.Args)+1)
	values = append(values, e.Method.String())
	return append(values, e.Args...)
}

// Clone returns a copy of the entry that shares no argument storage
func (e Entry) Clone() Entry {
	e.Args = CloneArgs(e.Args)
	return e
}

// CloneArgs copies an argument list. A nil or empty list yields nil.
func CloneArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	copy(out, args)
	return out
}
