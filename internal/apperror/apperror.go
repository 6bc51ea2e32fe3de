// Package apperror defines the error taxonomy shared by all API modules.
// Repositories and services return these errors; the HTTP layer maps each
// kind onto exactly one status code.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced identifier that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or foreign-key constraint violation.
	ErrConflict = errors.New("conflict")
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("invalid input")
)

// Error carries a caller-facing message on top of one of the sentinel kinds.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound builds an ErrNotFound with a message.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Conflict builds an ErrConflict with a message.
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

// Validation builds an ErrValidation with a message.
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}
