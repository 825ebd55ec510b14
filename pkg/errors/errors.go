// Package errors provides structured error handling for the Vitrine framework.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates invalid component or application configuration.
	KindConfig
	// KindSerialize indicates a transport (de)serialization failure.
	KindSerialize
	// KindProcess indicates a pre- or postprocessing failure.
	KindProcess
	// KindPredict indicates that the wrapped demo function returned an error.
	KindPredict
	// KindInterpret indicates an interpretation run failure.
	KindInterpret
	// KindServer indicates a transport or session error.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSerialize:
		return "serialize"
	case KindProcess:
		return "process"
	case KindPredict:
		return "predict"
	case KindInterpret:
		return "interpret"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Vitrine framework.
type Error struct {
	// Op is the operation that failed (e.g., "session.Process").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Component is the label or ID of the component involved, if any.
	Component string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error.
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Ef constructs an Error wrapping a formatted message.
func Ef(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// As is the standard library's errors.As, re-exported so callers need not
// import both packages.
func As(err error, target any) bool { return errors.As(err, target) }

// Is is the standard library's errors.Is, re-exported so callers need not
// import both packages.
func Is(err, target error) bool { return errors.Is(err, target) }

// KindOf returns the Kind of err if it is (or wraps) an *Error, and
// KindUnknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
