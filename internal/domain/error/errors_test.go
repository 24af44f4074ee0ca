package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrModuleNotFound.Error() != "module not registered" {
		t.Errorf("ErrModuleNotFound has unexpected message: %s", ErrModuleNotFound.Error())
	}
	if ErrUnknownSinkKind.Error() != "unknown sink kind" {
		t.Errorf("ErrUnknownSinkKind has unexpected message: %s", ErrUnknownSinkKind.Error())
	}
}

func TestModuleError(t *testing.T) {
	err := NewModuleError("net", "dump", ErrModuleNotFound)

	expectedErrMsg := `dump "net": module not registered`
	if err.Error() != expectedErrMsg {
		t.Errorf("ModuleError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("errors.Is(err, ErrModuleNotFound) = false, want true")
	}

	var modErr *ModuleError
	if !errors.As(err, &modErr) {
		t.Fatalf("errors.As failed: not a *ModuleError")
	}
	fields := modErr.LogFields()
	if fields["module"] != "net" || fields["operation"] != "dump" {
		t.Errorf("LogFields() = %v, want module=net operation=dump", fields)
	}
}

func TestSinkPanicError(t *testing.T) {
	err := &SinkPanicError{Call: "info", Recovered: "boom"}

	expectedErrMsg := "sink panicked during info: boom"
	if err.Error() != expectedErrMsg {
		t.Errorf("SinkPanicError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsSinkPanicError(err) {
		t.Errorf("IsSinkPanicError(err) = false, want true")
	}
	if err.LogFields()["recovered"] != "boom" {
		t.Errorf("LogFields()[recovered] = %v, want boom", err.LogFields()["recovered"])
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsModuleNotFoundError(ErrInvalidConfig) {
		t.Errorf("IsModuleNotFoundError(ErrInvalidConfig) = true, want false")
	}

	wrappedNotFound := fmt.Errorf("wrapped: %w", ErrModuleNotFound)
	if !IsModuleNotFoundError(wrappedNotFound) {
		t.Errorf("IsModuleNotFoundError(wrappedNotFound) = false, want true")
	}

	wrappedConfig := fmt.Errorf("load: %w", ErrInvalidConfig)
	if !IsInvalidConfigError(wrappedConfig) {
		t.Errorf("IsInvalidConfigError(wrappedConfig) = false, want true")
	}
}
