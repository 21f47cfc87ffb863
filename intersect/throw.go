package intersect

import "github.com/pkg/errors"

// Threading errors up through the sweep and reconstruction would add a ton of
// complexity for conditions that are either caller contract violations or
// internal invariant violations. Instead, we use panics, and the public API
// recovers to convert to an error. This mirrors how validation errors and
// internal errors differ: validation returns errors directly, because bad
// user input is expected; the engine throws, because bad engine state is not.

// User input errors. Validation returns these (wrapped with context) and the
// drawing layer surfaces them while the user is still working on a shape.
var (
	ErrNotIsothetic     = errors.New("edge is not horizontal or vertical")
	ErrDegenerateEdge   = errors.New("zero length edge")
	ErrSelfIntersecting = errors.New("polygon boundary intersects itself")
)

// Internal contract errors. These indicate a bug, not bad user input. They
// abort the single computation and are never accompanied by partial results.
var (
	ErrPrecursorNotValidated = errors.New("polygon was not validated before sweeping")
	ErrMalformedSweepOutput  = errors.New("sweep output does not form closed loops")
)

type IntersectError error

// Panic with an IntersectError.
func fatalf(format string, args ...interface{}) {
	panic(IntersectError(errors.Errorf(format, args...)))
}

// Panic with an IntersectError wrapping one of the sentinel errors above, so
// the recovered error still matches with errors.Is / errors.Cause.
func throw(sentinel error, format string, args ...interface{}) {
	panic(IntersectError(errors.Wrapf(sentinel, format, args...)))
}

func HandleIntersectPanicRecover(r interface{}) error {
	if r != nil {
		if intersectError, ok := r.(IntersectError); ok {
			return intersectError
		}
		panic(r)
	}
	return nil
}
