// Package errs defines the typed error kinds surfaced across the package
// boundary: malformed input, out-of-range values, invalid arithmetic, and
// unrecognised HTTP methods.
package errs

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies a failure so callers can branch on it without parsing
// error strings.
type Kind int

const (
	// Parse marks malformed hex, wrong-length, or non-hex input.
	Parse Kind = iota
	// Range marks a scalar or coordinate outside its required bound.
	Range
	// Arithmetic marks an operation that has no defined result, such as
	// inverting zero or signing with a zero scalar.
	Arithmetic
	// Method marks an HTTP method outside {GET, POST, PUT, DELETE}.
	Method
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "ParseError"
	case Range:
		return "RangeError"
	case Arithmetic:
		return "ArithmeticError"
	case Method:
		return "MethodError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type returned across the public surface.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap lets errors.Is/As see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// New builds a *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Wrap builds a *Error around an existing error, attaching a stack via
// github.com/pkg/errors so the failure is traceable back to its origin.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, err: pkgerrors.WithStack(cause)}
}

// Is reports whether err is an *Error of the given kind. When err
// aggregates several errors (such as a multierror), Is reports whether any
// of the aggregated errors is of that kind.
func Is(err error, kind Kind) bool {
	var multi interface{ WrappedErrors() []error }
	if errors.As(err, &multi) {
		for _, inner := range multi.WrappedErrors() {
			if Is(inner, kind) {
				return true
			}
		}
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
