// Package trajerr defines the error taxonomy shared by the path and
// trajectory packages. Every fallible construction in this module
// returns one of these kinds, wrapped with pkg/errors so callers get a
// readable message alongside a kind they can switch on.
package trajerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the handful of ways a construction in this module
// can fail. Query operations on well-formed trajectories never fail and
// so never produce a Kind.
type Kind int

const (
	// InvalidInput covers malformed arguments: too few waypoints, a
	// waypoint velocity constraint exceeding max_v, update() called on
	// an unsuitable path, or a tank trajectory requested from
	// non-tank params.
	InvalidInput Kind = iota
	// ConstraintInfeasible means a waypoint velocity constraint cannot
	// be met within the acceleration limit during either solver pass.
	ConstraintInfeasible
	// MatrixSingular means the quintic coefficient system had no
	// nonzero pivot to eliminate on.
	MatrixSingular
	// LookupNotReady means s2t or t2s was called before compute_len.
	LookupNotReady
	// DomainOutOfRange means Eliminate was asked to reduce a matrix
	// with more rows than columns.
	DomainOutOfRange
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case ConstraintInfeasible:
		return "ConstraintInfeasible"
	case MatrixSingular:
		return "MatrixSingular"
	case LookupNotReady:
		return "LookupNotReady"
	case DomainOutOfRange:
		return "DomainOutOfRange"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned by fallible operations in
// this module. It wraps an underlying cause (for New, a pkg/errors
// error carrying the same message) with a Kind that callers can match
// on via errors.As.
type Error struct {
	Kind Kind
	msg  string
	// cause is the wrapped underlying error, if any. Carried via
	// pkg/errors so %+v formatting yields a stack trace at the
	// call site that constructed it.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error of the given kind with a formatted message,
// annotated with a stack trace via pkg/errors.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: errors.New(fmt.Sprintf(format, args...))}
}

// Wrap builds an Error of the given kind wrapping an existing cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: errors.Wrap(cause, fmt.Sprintf(format, args...))}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
