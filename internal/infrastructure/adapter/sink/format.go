package sink

import (
	"fmt"
	"strings"
)

// render joins args with single spaces, the way a console prints them
func render(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// label returns the first argument as a label, or "default"
func label(args []any) string {
	if len(args) == 0 {
		return "default"
	}
	return fmt.Sprint(args[0])
}

// asserted reports whether an assert call holds: a missing, nil or false
// first argument fails, anything else passes
func asserted(args []any) bool {
	if len(args) == 0 {
		return false
	}
	switch v := args[0].(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}
