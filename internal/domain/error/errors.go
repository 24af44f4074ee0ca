package error

import (
	"errors"
	"fmt"
)

// Base error types
var (
	// ErrModuleNotFound is returned when an operation names a module that was never registered
	ErrModuleNotFound = errors.New("module not registered")

	// ErrEmptyModuleName is reported when a module is registered under an empty name
	ErrEmptyModuleName = errors.New("module name is empty")

	// ErrUnknownSinkKind is returned when the sink factory gets a kind it cannot build
	ErrUnknownSinkKind = errors.New("unknown sink kind")

	// ErrInvalidConfig is returned when configuration values fail validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSinkPanic is reported when a sink panics while handling a call
	ErrSinkPanic = errors.New("sink panicked")
)

// ModuleError represents a failed operation on a named module
type ModuleError struct {
	Module    string
	Operation string
	Err       error
}

// Error implements the error interface for ModuleError
func (e *ModuleError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Operation, e.Module, e.Err)
}

// Unwrap returns the underlying error
func (e *ModuleError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ModuleError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "module_error",
		"module":     e.Module,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
	}
}

// NewModuleError creates a module error for the given operation
func NewModuleError(module, operation string, err error) error {
	return &ModuleError{
		Module:    module,
		Operation: operation,
		Err:       err,
	}
}

// SinkPanicError carries the value recovered from a panicking sink
type SinkPanicError struct {
	Call      string
	Recovered any
}

// Error implements the error interface
func (e *SinkPanicError) Error() string {
	return fmt.Sprintf("sink panicked during %s: %v", e.Call, e.Recovered)
}

// Is checks if the target error is an ErrSinkPanic
func (e *SinkPanicError) Is(target error) bool {
	return target == ErrSinkPanic
}

// LogFields returns a map of fields for structured logging
func (e *SinkPanicError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "sink_panic",
		"call":       e.Call,
		"recovered":  fmt.Sprint(e.Recovered),
	}
}

// IsModuleNotFoundError checks if the error is a module not found error
func IsModuleNotFoundError(err error) bool {
	return errors.Is(err, ErrModuleNotFound)
}

// IsInvalidConfigError checks if the error is a configuration validation error
func IsInvalidConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsSinkPanicError checks if the error was produced by a recovered sink panic
func IsSinkPanicError(err error) bool {
	return errors.Is(err, ErrSinkPanic)
}
