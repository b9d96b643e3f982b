// Package domainerrors defines the request-level error taxonomy shared by the
// service and transport layers. Services return these; the HTTP layer maps
// codes to status lines without inspecting messages.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of request failure.
type Code string

const (
	// CodeBadRequest marks a missing or malformed required parameter.
	CodeBadRequest Code = "bad_request"
	// CodeUnknownDimension marks a ventilation token that no catalog entry or
	// endpoint contract covers.
	CodeUnknownDimension Code = "unknown_dimension"
	// CodeNoResult marks a perimeter that matches no stays.
	CodeNoResult Code = "no_result"
	// CodeInternal marks a defect; the message never reaches the client.
	CodeInternal Code = "internal_error"
)

// Error carries a code plus a human-readable message, optionally wrapping a
// lower-level cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New builds an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to a lower-level cause.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in this taxonomy.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
