// Package errors provides structured error types for the postscript-graph library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and server
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the layout engine's failure taxonomy:
//   - INVALID_*: configuration errors, always fatal at construction
//   - MISSING_*: a required collaborator is absent
//   - BAD_DATA*: malformed external input rejected before layout
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRange, "y axis: low %g >= high %g", lo, hi)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeBadData, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: invalid or contradictory chart options.
	// These are raised eagerly at construction, before any output is emitted.
	ErrCodeInvalidRange  Code = "INVALID_RANGE"
	ErrCodeInvalidExtent Code = "INVALID_EXTENT"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidAxis   Code = "INVALID_AXIS"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidPaper  Code = "INVALID_PAPER"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource errors: a required collaborator object is missing.
	ErrCodeMissingSink Code = "MISSING_SINK"
	ErrCodeMissingData Code = "MISSING_DATA"

	// Data shape errors: malformed external input (ragged rows,
	// non-numeric cells) rejected before it reaches the layout engine.
	ErrCodeBadData Code = "BAD_DATA"

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

// IsConfiguration reports whether err is any of the INVALID_* configuration
// codes. Construction failures of this kind are never retried or downgraded.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidRange, ErrCodeInvalidExtent, ErrCodeInvalidLayout,
		ErrCodeInvalidAxis, ErrCodeInvalidStyle, ErrCodeInvalidPaper,
		ErrCodeInvalidConfig:
		return true
	}
	return false
}
