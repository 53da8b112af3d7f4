package motion

import (
	"fmt"
	"time"
)

// Animated is a value that changes over time.
type Animated[V any, T Instant[T]] interface {
	// Get returns the value at time t.
	Get(t T) V
	// IsFinished reports whether the value has stopped changing at time t.
	IsFinished(t T) bool
}

var (
	_ Animated[float64, time.Time] = Animation[float64, time.Time]{}
	_ Animated[float64, time.Time] = Inertial[float64, time.Time]{}
	_ Animated[float64, Seconds]   = Still[float64, Seconds]{}
)

// Animation is a [Keyframes] value bound to a start time.
type Animation[V any, T Instant[T]] struct {
	k     Keyframes[V]
	start T
}

// Run starts playing k at start.
func Run[V any, T Instant[T]](k Keyframes[V], start T) Animation[V, T] {
	return Animation[V, T]{k: k, start: start}
}

// Get returns the value at time t. Times before the start and after the end
// extrapolate the first and last segments.
func (a Animation[V, T]) Get(t T) V {
	return a.k.At(t.Sub(a.start))
}

// IsFinished reports whether the animation has ended at time t. Animations
// that never end are never finished.
func (a Animation[V, T]) IsFinished(t T) bool {
	return a.k.IsFinished(t.Sub(a.start))
}

func (a Animation[V, T]) StartTime() T { return a.start }

// EndTime returns the time at which the animation ends. ok is false if it
// never ends.
func (a Animation[V, T]) EndTime() (end T, ok bool) {
	if !a.k.IsFinite() {
		return end, false
	}
	return a.start.Add(a.k.Duration()), true
}

func (a Animation[V, T]) Keyframes() Keyframes[V] { return a.k }

func (a Animation[V, T]) String() string {
	return fmt.Sprintf("Run(%s, %v)", a.k, a.start)
}

// Still is a value that never changes. It is always finished.
type Still[V any, T Instant[T]] struct {
	Value V
}

func (s Still[V, T]) Get(T) V           { return s.Value }
func (s Still[V, T]) IsFinished(T) bool { return true }
func (s Still[V, T]) String() string    { return fmt.Sprintf("Still(%v)", s.Value) }
