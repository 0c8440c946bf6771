package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnsupportedPlatform, "platform %s", "windows")

	if err.Code != ErrCodeUnsupportedPlatform {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnsupportedPlatform)
	}
	if err.Message != "platform windows" {
		t.Errorf("Message = %v, want %v", err.Message, "platform windows")
	}

	expected := "UNSUPPORTED_PLATFORM: platform windows"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exec: not found")
	err := Wrap(ErrCodeClientLaunch, cause, "start client")

	if err.Code != ErrCodeClientLaunch {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeClientLaunch)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "CLIENT_LAUNCH: start client: exec: not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeLengthMismatch, "test"),
			code:     ErrCodeLengthMismatch,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeLengthMismatch, "test"),
			code:     ErrCodeUnsupportedKind,
			expected: false,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("dispatch: %w", New(ErrCodeAutoSelectionUndefined, "inner")),
			code:     ErrCodeAutoSelectionUndefined,
			expected: true,
		},
		{
			name:     "outermost code wins",
			err:      Wrap(ErrCodeExportFailed, New(ErrCodeClientLaunch, "inner"), "outer"),
			code:     ErrCodeExportFailed,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "friendly message")); got != "friendly message" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}
