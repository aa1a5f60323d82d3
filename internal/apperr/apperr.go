// Package apperr classifies failures so the console can decide whether to
// print a message, re-prompt, or log and abort the current operation.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the category of a failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindConnection means the database could not be reached.
	KindConnection
	// KindMalformedInput means a value typed at the terminal could not be parsed.
	KindMalformedInput
	// KindQuery means a statement failed while executing.
	KindQuery
	// KindValidation is a business-rule rejection reported to the user as-is.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindMalformedInput:
		return "malformed_input"
	case KindQuery:
		return "query"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error carries a Kind along with the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a business-rule error with a user-facing message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// MalformedInput reports that the value entered for field could not be parsed.
func MalformedInput(field string, err error) *Error {
	return &Error{Kind: KindMalformedInput, Msg: "invalid " + field, Err: err}
}

// Query wraps a failed statement.
func Query(op string, err error) *Error {
	return &Error{Kind: KindQuery, Op: op, Err: err}
}

// Connection wraps a failure to reach the database.
func Connection(op string, err error) *Error {
	return &Error{Kind: KindConnection, Op: op, Err: err}
}

// KindOf reports the kind of err. Errors that were never classified are
// treated as query failures.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindQuery
}

// Is reports whether err is of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
