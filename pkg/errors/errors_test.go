package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingTool, "dpkg-query not found on PATH")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeMissingTool {
		t.Errorf("expected code %s, got %s", ErrCodeMissingTool, err.Code)
	}
	if err.Message != "dpkg-query not found on PATH" {
		t.Errorf("expected message 'dpkg-query not found on PATH', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeExternalCommand, "listing failed", cause)

	if err.Code != ErrCodeExternalCommand {
		t.Errorf("expected code %s, got %s", ErrCodeExternalCommand, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("signal: killed")
	ctx := map[string]interface{}{
		"command": "pacman",
		"manager": "pacman",
	}

	err := WrapWithContext(ErrCodeExternalCommand, "query timed out", cause, ctx)

	if err.Code != ErrCodeExternalCommand {
		t.Errorf("expected code %s, got %s", ErrCodeExternalCommand, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["command"] != "pacman" {
		t.Errorf("expected command to be pacman")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeEmptyInventory, "no packages enumerated"),
			expected: "[EMPTY_INVENTORY] no packages enumerated",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeWriteFailed, "failed", errors.New("disk full")),
			expected: "[WRITE_FAILED] failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeWriteFailed, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "structured error",
			err:  New(ErrCodeUnsupportedBackend, "zypper is not supported"),
			want: ErrCodeUnsupportedBackend,
		},
		{
			name: "wrapped through fmt",
			err:  fmt.Errorf("snapshot failed: %w", New(ErrCodeEmptyInventory, "no packages")),
			want: ErrCodeEmptyInventory,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("expected code %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeExternalCommand, "rpm exited non-zero")
	outer := Wrap(ErrCodeWriteFailed, "snapshot not persisted", inner)

	if !IsCode(outer, ErrCodeWriteFailed) {
		t.Errorf("expected outer code to match")
	}
	if !IsCode(outer, ErrCodeExternalCommand) {
		t.Errorf("expected inner code to match through the chain")
	}
	if IsCode(outer, ErrCodeMissingTool) {
		t.Errorf("did not expect MISSING_TOOL in the chain")
	}
	if IsCode(nil, ErrCodeWriteFailed) {
		t.Errorf("nil error should match nothing")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeUnsupportedBackend,
		ErrCodeMissingTool,
		ErrCodeExternalCommand,
		ErrCodeEmptyInventory,
		ErrCodeWriteFailed,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
