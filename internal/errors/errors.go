// Package errors defines stable error codes and a coded error type for all
// waveform-mcp failure modes. Boundary consumers never see raw errors; the
// MCP and CLI layers render these as readable reports.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// LoadFailure indicates the waveform file is missing, unreadable, or
	// unparseable by the trace loader
	LoadFailure ErrorCode = "LOAD_FAILURE"
	// SignalNotFound indicates the requested signal is absent from the trace
	SignalNotFound ErrorCode = "SIGNAL_NOT_FOUND"
	// PatternError indicates a malformed signal filter regular expression
	PatternError ErrorCode = "PATTERN_ERROR"
	// ParseFailure indicates malformed WAL expression syntax
	ParseFailure ErrorCode = "PARSE_FAILURE"
	// EvaluationFailure indicates a WAL expression failed at evaluation time
	EvaluationFailure ErrorCode = "EVALUATION_FAILURE"
	// InvalidParameter indicates a malformed or missing tool parameter
	InvalidParameter ErrorCode = "INVALID_PARAMETER"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// WaveError represents a waveform-mcp error with code, message, and suggestions
type WaveError struct {
	Code        ErrorCode   `json:"code"`
	Message     string      `json:"message"`
	Details     interface{} `json:"details,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
	cause       error       // underlying error (not exported to JSON)
}

// Error implements the error interface
func (e *WaveError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *WaveError) Unwrap() error {
	return e.cause
}

// WithSuggestions attaches remediation suggestions to the error
func (e *WaveError) WithSuggestions(suggestions ...string) *WaveError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// NewLoadError wraps a trace loader failure for the given path
func NewLoadError(path string, cause error) *WaveError {
	return &WaveError{
		Code:    LoadFailure,
		Message: fmt.Sprintf("failed to load waveform %s", path),
		cause:   cause,
	}
}

// NewSignalNotFoundError reports a signal absent from a trace. The message
// always carries the exact requested name.
func NewSignalNotFoundError(signal, path string) *WaveError {
	return &WaveError{
		Code:    SignalNotFound,
		Message: fmt.Sprintf("signal '%s' not found in %s", signal, path),
	}
}

// NewPatternError wraps a regexp compile failure, preserving the literal
// pattern text in the message
func NewPatternError(pattern string, cause error) *WaveError {
	return &WaveError{
		Code:    PatternError,
		Message: fmt.Sprintf("invalid regex pattern '%s'", pattern),
		cause:   cause,
	}
}

// NewParseError wraps a WAL expression parse failure
func NewParseError(cause error) *WaveError {
	return &WaveError{
		Code:    ParseFailure,
		Message: "failed to parse WAL expression",
		cause:   cause,
	}
}

// NewEvalError wraps a WAL expression evaluation failure
func NewEvalError(cause error) *WaveError {
	return &WaveError{
		Code:    EvaluationFailure,
		Message: "failed to evaluate WAL expression",
		cause:   cause,
	}
}

// NewInvalidParameterError reports a missing or malformed tool parameter
func NewInvalidParameterError(name, detail string) *WaveError {
	msg := fmt.Sprintf("invalid or missing parameter '%s'", name)
	if detail != "" {
		msg += ": " + detail
	}
	return &WaveError{
		Code:    InvalidParameter,
		Message: msg,
	}
}

// NewInternalError wraps an unexpected failure during an operation
func NewInternalError(operation string, cause error) *WaveError {
	return &WaveError{
		Code:    InternalError,
		Message: fmt.Sprintf("operation failed: %s", operation),
		cause:   cause,
	}
}

// As is a passthrough to the standard library so callers need only one
// errors import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is a passthrough to the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// CodeOf extracts the ErrorCode from an error chain, or InternalError if the
// chain carries no WaveError.
func CodeOf(err error) ErrorCode {
	var we *WaveError
	if errors.As(err, &we) {
		return we.Code
	}
	return InternalError
}
