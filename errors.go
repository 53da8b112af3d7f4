package motion

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors describing invalid timeline construction. Combinators
// panic with a [*CombinatorError] wrapping one of these; use errors.Is on the
// recovered value to check the cause.
var (
	ErrEmptyRepeat      = errors.New("motion: cannot repeat a timeline of zero duration")
	ErrUnbounded        = errors.New("motion: timeline has no finite duration")
	ErrInvalidRange     = errors.New("motion: invalid time range")
	ErrInvalidCount     = errors.New("motion: invalid repeat count")
	ErrInvalidSteps     = errors.New("motion: step count must be at least 1")
	ErrNoSamples        = errors.New("motion: at least one sample or point is required")
	ErrNotEnumerable    = errors.New("motion: timeline has no stored values")
	ErrNegativeDuration = errors.New("motion: negative duration")
)

// CombinatorError is the value combinators panic with when they are used
// incorrectly.
type CombinatorError struct {
	Op  string
	Err error
}

func (err *CombinatorError) Error() string {
	return fmt.Sprintf("%s: %s", err.Op, err.Err)
}

func (err *CombinatorError) Unwrap() error {
	return err.Err
}

func fail(op string, err error) {
	panic(&CombinatorError{Op: op, Err: err})
}

func checkDuration(op string, d time.Duration) {
	if d < 0 {
		fail(op, ErrNegativeDuration)
	}
}
