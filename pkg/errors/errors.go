// Package errors provides structured error types for conllview.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages in the viewer's status line
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes are grouped by the stage that raises them:
//   - MISSING_*, INVALID_HEAD: graph construction from a sentence
//   - FORMAT_*: DOT/TikZ serialization
//   - RENDERER_*: the external DOT→SVG renderer boundary
//   - NO_GRAPH_SELECTED: export or render requested on an empty treebank
//   - EXPORT_WRITE_FAILURE: an export file could not be written
//   - INVALID_*: input and option validation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingHead, "token %d has no head", i)
//	if errors.Is(err, errors.ErrCodeMissingHead) {
//	    // skip the sentence
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRendererIO, origErr, "read SVG from %s", cmd)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph construction errors (scoped to one sentence)
	ErrCodeMissingHead     Code = "MISSING_HEAD"
	ErrCodeMissingRelation Code = "MISSING_RELATION"
	ErrCodeInvalidHead     Code = "INVALID_HEAD"
	ErrCodeGraphHasCycle   Code = "GRAPH_HAS_CYCLE"

	// Serialization errors (unexpected, never retried)
	ErrCodeFormatWrite Code = "FORMAT_WRITE_FAILURE"

	// Renderer boundary errors (never retried)
	ErrCodeRendererSpawn Code = "RENDERER_SPAWN_FAILURE"
	ErrCodeRendererIO    Code = "RENDERER_IO_FAILURE"

	// Cursor errors
	ErrCodeNoGraphSelected Code = "NO_GRAPH_SELECTED"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidLayer    Code = "INVALID_LAYER"
	ErrCodeInvalidLabel    Code = "INVALID_LABEL"
	ErrCodeInvalidRenderer Code = "INVALID_RENDERER"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Export file errors
	ErrCodeExportWrite Code = "EXPORT_WRITE_FAILURE"
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
// Only the outermost *Error is consulted.
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsConstruction reports whether err is a per-sentence graph construction
// failure. Such errors are recoverable by skipping the offending sentence.
func IsConstruction(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingHead, ErrCodeMissingRelation, ErrCodeInvalidHead, ErrCodeGraphHasCycle, ErrCodeInvalidInput:
		return true
	}
	return false
}
