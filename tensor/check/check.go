package check

import (
	"errors"
	"fmt"
)

// Sentinel errors for the helpers in this package.
var (
	// ErrNotImplemented marks functionality that is declared but not yet built.
	ErrNotImplemented = errors.New("check: not implemented")

	// ErrInvalidArgument indicates a caller-supplied value violated a precondition.
	ErrInvalidArgument = errors.New("check: invalid argument")
)

// Errf builds an error whose message is the concatenation of the string
// representations of parts. It always returns a non-nil error, even for an
// empty parts list.
func Errf(parts ...any) error {
	return errors.New(fmt.Sprint(parts...))
}

// Failed runs fn and reports whether it failed. A non-nil error and a panic
// both count as failure; the error identity and panic value are discarded.
// Failed itself never panics. Side effects of fn up to the failure point
// still occur.
func Failed(fn func() error) (failed bool) {
	if fn == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			failed = true
		}
	}()
	return fn() != nil
}

// NotImplemented returns an error wrapping ErrNotImplemented, optionally
// extended with detail values.
func NotImplemented(details ...any) error {
	if len(details) == 0 {
		return ErrNotImplemented
	}
	return fmt.Errorf("%w: %s", ErrNotImplemented, fmt.Sprint(details...))
}

// Invalid returns an invalid-argument error carrying msg.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// Require returns nil when cond holds and Invalid(msg) otherwise. It is the
// lightweight precondition idiom used throughout the tensor packages:
//
//	if err := check.Require(len(shape) > 0, "shape must not be empty"); err != nil {
//		return err
//	}
func Require(cond bool, msg string) error {
	if cond {
		return nil
	}
	return Invalid(msg)
}
