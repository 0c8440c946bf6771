// Package errors provides structured error types for showviz.
//
// Every failure that callers are expected to branch on carries a
// machine-readable [Code]. Errors raised by the rendering engine or the
// client launcher are wrapped, never swallowed, so errors.Is / errors.As
// still reach the original cause.
//
// # Error Codes
//
//   - UNSUPPORTED_PLATFORM: the host is neither macOS nor Linux
//   - AUTO_SELECTION_UNDEFINED: no chart encoding exists for the column kinds
//   - INVALID_INPUT, LENGTH_MISMATCH, UNSUPPORTED_KIND: rejected plot inputs
//   - CLIENT_LAUNCH, EXPORT_FAILED: the rendering client could not serve a request
//
// # Usage
//
//	path, err := client.Locate()
//	if errors.Is(err, errors.ErrCodeUnsupportedPlatform) {
//	    // fall back to exporting JSON
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidTarget   Code = "INVALID_TARGET"
	ErrCodeLengthMismatch  Code = "LENGTH_MISMATCH"
	ErrCodeUnsupportedKind Code = "UNSUPPORTED_KIND"

	// Selection errors
	ErrCodeAutoSelectionUndefined Code = "AUTO_SELECTION_UNDEFINED"

	// Environment errors
	ErrCodeUnsupportedPlatform Code = "UNSUPPORTED_PLATFORM"
	ErrCodeClientLaunch        Code = "CLIENT_LAUNCH"
	ErrCodeExportFailed        Code = "EXPORT_FAILED"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
