package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", &OperationError{Op: "init"}, "init"},
		{"op and target", &OperationError{Op: "load", Target: "a.toml"}, "load a.toml"},
		{"with error", NewOperationError("load", "a.toml", base), "load a.toml: boom"},
		{"with context", NewOperationError("load", "a.toml", base).WithContext("config"), "load a.toml (config): boom"},
		{"no target", NewOperationError("load", "", base).WithContext("config"), "load (config): boom"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationError_WithContext_Nil(t *testing.T) {
	var err *OperationError
	if err.WithContext("x") != nil {
		t.Error("WithContext on nil should return nil")
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	err := NewOperationError("open", "log", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped error")
	}

	var nilErr *OperationError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil should return nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrQuit, ErrAlreadyRunning, ErrNoBackend}
	for i, a := range sentinels {
		if a.Error() == "" {
			t.Errorf("sentinel %d has empty message", i)
		}
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %d matches sentinel %d", i, j)
			}
		}
	}
}
