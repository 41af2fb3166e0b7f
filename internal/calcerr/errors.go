// Package calcerr gives num.Status a concrete error representation:
// a *NumError that carries the status, the operation that produced
// it, and (optionally) a wrapped cause, so a CLI can print either a
// terse status name or a full stack trace depending on -debug.
package calcerr

import (
	"fmt"

	"github.com/pkg/errors"

	"bcnum/internal/num"
)

// Status mirrors num.Status so callers outside internal/num don't need
// to import it just to compare against Ok.
type Status = num.Status

const (
	Ok           = num.Ok
	Interrupted  = num.Interrupted
	DivideByZero = num.DivideByZero
	Negative     = num.Negative
	NonInteger   = num.NonInteger
	Overflow     = num.Overflow
)

// NumError wraps a non-Ok num.Status with the operation that raised it
// and, optionally, an underlying cause (e.g. a store or parse error
// that a Status alone can't describe).
type NumError struct {
	Op     string
	Status Status
	Cause  error
}

// New builds a *NumError for a failed operation, or nil if status is
// Ok — so callers can write `if err := calcerr.New("div", st); err !=
// nil` directly off a num.Status return.
func New(op string, status Status) error {
	if status == Ok {
		return nil
	}
	return &NumError{Op: op, Status: status}
}

// Wrap is like New but attaches cause, via github.com/pkg/errors so
// %+v on the result prints a full stack trace.
func Wrap(op string, status Status, cause error) error {
	if status == Ok && cause == nil {
		return nil
	}
	return &NumError{Op: op, Status: status, Cause: errors.WithStack(cause)}
}

func (e *NumError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}

// Unwrap lets errors.Is/errors.As see through to Cause.
func (e *NumError) Unwrap() error { return e.Cause }

// Format supports %+v (full cause chain via pkg/errors) as well as %s/%v.
func (e *NumError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.Cause != nil {
			fmt.Fprintf(s, "%s: %s\n%+v", e.Op, e.Status, e.Cause)
			return
		}
		fmt.Fprint(s, e.Error())
	default:
		fmt.Fprint(s, e.Error())
	}
}

// Is reports whether target is the same Status, so callers can write
// errors.Is(err, calcerr.Sentinel(calcerr.DivideByZero)) without a type
// assertion.
func (e *NumError) Is(target error) bool {
	t, ok := target.(*NumError)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// Sentinel returns a comparable *NumError for Status s, usable as an
// errors.Is target (e.g. calcerr.Sentinel(num.DivideByZero)).
func Sentinel(s Status) error {
	return &NumError{Status: s}
}
