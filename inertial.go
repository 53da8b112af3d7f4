package motion

import (
	"fmt"
	"time"
)

// Inertial is a value that follows a target which may change at any time.
// Every change of target starts a transition from wherever the value is at
// that moment, so the value never jumps. Its velocity may.
//
// Inertial is immutable. GoTo and EaseTo return new values.
type Inertial[V any, T Instant[T]] struct {
	anchor   V
	anchorAt T
	target   V
	blend    BlendFunc[V]
	active   bool
	d        time.Duration
	anim     Animation[V, T]
}

// NewInertial returns an Inertial resting at v.
func NewInertial[V any, T Instant[T]](v V, blend BlendFunc[V]) Inertial[V, T] {
	return Inertial[V, T]{anchor: v, target: v, blend: blend}
}

// Get returns the value at time t. Before the current transition starts,
// the value it started from is returned; once it has completed, the target
// is.
func (in Inertial[V, T]) Get(t T) V {
	if !in.active {
		return in.anchor
	}
	e := t.Sub(in.anchorAt)
	switch {
	case e < 0:
		return in.anchor
	case e >= in.d:
		return in.target
	default:
		return in.anim.Get(t)
	}
}

// GoTo returns an Inertial that moves from its current value at now to
// target, taking d and shaped by c. The value at now is unchanged unless d
// is zero, in which case the Inertial is at target from now on.
func (in Inertial[V, T]) GoTo(target V, now T, d time.Duration, c Curve) Inertial[V, T] {
	checkDuration("GoTo", d)
	frozen := in.Get(now)
	return Inertial[V, T]{
		anchor:   frozen,
		anchorAt: now,
		target:   target,
		blend:    in.blend,
		active:   true,
		d:        d,
		anim:     Run(Seed(frozen, in.blend).Extend(target, d, c), now),
	}
}

// EaseTo is like GoTo but uses [DefaultCurve].
func (in Inertial[V, T]) EaseTo(target V, now T, d time.Duration) Inertial[V, T] {
	return in.GoTo(target, now, d, DefaultCurve)
}

// Target returns the value the Inertial is moving toward, or resting at.
func (in Inertial[V, T]) Target() V { return in.target }

// IsFinished reports whether the current transition has completed at time
// t. An Inertial without a transition is always finished.
func (in Inertial[V, T]) IsFinished(t T) bool {
	return !in.active || t.Sub(in.anchorAt) >= in.d
}

// EndTime returns the time at which the current transition completes. ok
// is false if there is no transition.
func (in Inertial[V, T]) EndTime() (end T, ok bool) {
	if !in.active {
		return end, false
	}
	return in.anchorAt.Add(in.d), true
}

func (in Inertial[V, T]) String() string {
	if !in.active {
		return fmt.Sprintf("Inertial(%v)", in.anchor)
	}
	return fmt.Sprintf("Inertial(%v → %v at %v over %s)", in.anchor, in.target, in.anchorAt, in.d)
}
