package motion

import (
	"fmt"
	"time"
)

// Instant is the constraint satisfied by time values. Instants are supplied
// by the caller; this package never reads a clock.
//
// Both [time.Time] and [Seconds] are instants.
type Instant[T any] interface {
	// Sub returns the duration t-u.
	Sub(u T) time.Duration
	// Add returns the instant t+d.
	Add(d time.Duration) T
}

// Seconds is an instant measured in seconds from an arbitrary epoch. It is
// useful for driving animations from frame counters and in tests.
type Seconds float64

var _ Instant[Seconds] = Seconds(0)
var _ Instant[time.Time] = time.Time{}

func (s Seconds) Sub(u Seconds) time.Duration {
	return time.Duration(float64(s-u) * float64(time.Second))
}

func (s Seconds) Add(d time.Duration) Seconds {
	return s + Seconds(d.Seconds())
}

func (s Seconds) String() string {
	return fmt.Sprintf("%gs", float64(s))
}

// ratio returns elapsed/d, treating zero durations as instantaneous.
func ratio(elapsed, d time.Duration) float64 {
	if d == 0 {
		if elapsed >= 0 {
			return 1
		}
		return 0
	}
	return float64(elapsed) / float64(d)
}
