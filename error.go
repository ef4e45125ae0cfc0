package tabread

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic enough to reuse across the pipeline while
// mapping cleanly onto the failure modes a caller can act on.
const (
	EINTERNAL    = "internal"    // internal fault, not caller-actionable
	EINVALID     = "invalid"     // malformed input or request
	ENOTFOUND    = "not_found"   // requested item (e.g. keyword) absent
	ENOPRIMARY   = "no_primary"  // reduction found no primary content
	ETIMEOUT     = "timeout"     // time budget exceeded
	EUNAVAILABLE = "unavailable" // external dependency not reachable
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("tabread error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
