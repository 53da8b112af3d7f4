package motion

import (
	"math"
	"time"
)

// Keyframes describes how a value changes over time, independently of when
// the change happens. Use [Run] to bind keyframes to a start time.
//
// Keyframes are immutable: every method returns a new value and leaves its
// receiver untouched, so keyframes can be shared freely and used as
// building blocks for other keyframes. Internally, keyframes are a tree
// whose leaves are lists of segments, and whose inner nodes repeat,
// sequence, join and otherwise transform their children.
//
// The zero value is not usable; create keyframes with [Seed], [Function] or
// [Endless].
type Keyframes[V any] struct {
	root  node[V]
	blend BlendFunc[V]
}

// Seed returns keyframes that start at v and have no segments yet. blend is
// used to interpolate between values.
func Seed[V any](v V, blend BlendFunc[V]) Keyframes[V] {
	return Keyframes[V]{root: newSegments(v, blend), blend: blend}
}

// Function returns keyframes computed by f, which receives the ratio of
// elapsed time to d. Like segments, the ratio extrapolates outside of
// [0, d]. A zero duration passes 0 before the start and 1 afterwards.
func Function[V any](f func(r float64) V, d time.Duration, blend BlendFunc[V]) Keyframes[V] {
	checkDuration("Function", d)
	return Keyframes[V]{root: &function[V]{f: f, d: d}, blend: blend}
}

// Endless returns keyframes computed by f that never end. f receives the
// elapsed time divided by period. It panics if period isn't positive.
func Endless[V any](f func(r float64) V, period time.Duration, blend BlendFunc[V]) Keyframes[V] {
	if period <= 0 {
		fail("Endless", ErrInvalidRange)
	}
	return Keyframes[V]{root: &function[V]{f: f, d: period, endless: true}, blend: blend}
}

func (k Keyframes[V]) with(n node[V]) Keyframes[V] {
	return Keyframes[V]{root: n, blend: k.blend}
}

// Extend appends a segment that moves to target over d, shaped by c. It
// panics if k never ends.
func (k Keyframes[V]) Extend(target V, d time.Duration, c Curve) Keyframes[V] {
	checkDuration("Extend", d)
	seg := Segment[V]{Duration: d, Target: target, Curve: c}
	switch n := k.root.(type) {
	case *segments[V]:
		return k.with(n.with(seg))
	case *sequence[V]:
		last := len(n.parts) - 1
		if s, ok := n.parts[last].(*segments[V]); ok {
			parts := append(n.parts[:last:last], s.with(seg))
			return k.with(newSequence(parts))
		}
	}
	tail := newSegments(k.mustEnd("Extend"), k.blend).with(seg)
	return k.with(newSequence([]node[V]{k.root, tail}))
}

// Stay appends a segment that holds the final value for d.
func (k Keyframes[V]) Stay(d time.Duration) Keyframes[V] {
	return k.Extend(k.mustEnd("Stay"), d, Linear)
}

// Map returns keyframes whose stored values, the start value and every
// segment's target, have been transformed by f. Timing is unchanged.
// Keyframes that compute their values, such as joined or function
// keyframes, apply f to their output instead.
func (k Keyframes[V]) Map(f func(V) V) Keyframes[V] {
	return k.with(k.root.remap(f))
}

// MapTo converts keyframes to another value type by applying f to their
// output. blend interpolates the new type in segments added later.
func MapTo[V, W any](k Keyframes[V], f func(V) W, blend BlendFunc[W]) Keyframes[W] {
	return Keyframes[W]{root: &projected[V, W]{inner: k.root, f: f}, blend: blend}
}

// ApplyCurve returns keyframes in which every segment is shaped by c,
// keeping targets and durations. Function keyframes pass their ratio
// through c.
func (k Keyframes[V]) ApplyCurve(c Curve) Keyframes[V] {
	return k.with(k.root.reshape(c))
}

// Slice returns the portion of k between from and to. Its start value is
// k's value at from. Segments crossing from or to are shortened
// proportionally and keep tracing the same values.
//
// Slice panics if from > to, or if k is an [Endless] function.
func (k Keyframes[V]) Slice(from, to time.Duration) Keyframes[V] {
	if from > to {
		fail("Slice", ErrInvalidRange)
	}
	switch n := k.root.(type) {
	case *segments[V]:
		return k.with(n.sliced(from, to))
	case *function[V]:
		if n.endless {
			fail("Slice", ErrUnbounded)
		}
	}
	return k.with(&clamped[V]{inner: k.root, from: from, to: to})
}

// Repeat plays k n times, or indefinitely if n is [Forever]. In [PingPong]
// mode, every other cycle plays k backwards.
//
// Repeat panics if n is neither positive nor Forever, if k never ends, if
// k has zero duration, or if n cycles of k would last longer than the
// largest [time.Duration].
func (k Keyframes[V]) Repeat(n int, mode RepeatMode) Keyframes[V] {
	if n < 1 && n != Forever {
		fail("Repeat", ErrInvalidCount)
	}
	d, ok := k.root.span()
	if !ok {
		fail("Repeat", ErrUnbounded)
	}
	if d == 0 {
		fail("Repeat", ErrEmptyRepeat)
	}
	if n != Forever && d > math.MaxInt64/time.Duration(n) {
		fail("Repeat", ErrInvalidCount)
	}
	return k.with(newRepeat(k.root, d, n, mode))
}

// Reverse returns k played backwards. Segments are reversed structurally:
// targets swap places and curves are replaced by their reverses. It panics
// if k never ends.
func (k Keyframes[V]) Reverse() Keyframes[V] {
	k.mustDuration("Reverse")
	return k.with(reverseNode(k.root))
}

// Scale stretches k in time by factor f, which must be positive and finite.
func (k Keyframes[V]) Scale(f float64) Keyframes[V] {
	if !(f > 0) || math.IsInf(f, 1) {
		fail("Scale", ErrInvalidRange)
	}
	return k.with(scaleNode(k.root, f))
}

// ScaleTo stretches k to last d. It panics if k never ends or has zero
// duration.
func (k Keyframes[V]) ScaleTo(d time.Duration) Keyframes[V] {
	checkDuration("ScaleTo", d)
	cur := k.mustDuration("ScaleTo")
	if cur == 0 || d == 0 {
		fail("ScaleTo", ErrInvalidRange)
	}
	return k.Scale(float64(d) / float64(cur))
}

// Then returns k followed by o.
func (k Keyframes[V]) Then(o Keyframes[V]) Keyframes[V] {
	return Sequence(k, o)
}

// Sequence plays the given keyframes one after another. Every part but
// the last must end. Parts don't have to start where the previous part
// ended.
//
// It panics if parts is empty.
func Sequence[V any](parts ...Keyframes[V]) Keyframes[V] {
	if len(parts) == 0 {
		fail("Sequence", ErrNotEnumerable)
	}
	nodes := make([]node[V], len(parts))
	for i, p := range parts {
		if _, ok := p.root.span(); !ok && i < len(parts)-1 {
			fail("Sequence", ErrUnbounded)
		}
		nodes[i] = p.root
	}
	return Keyframes[V]{root: newSequence(nodes), blend: parts[0].blend}
}

// Join plays a and b side by side, producing pairs of their values. Each
// side is evaluated at its own local time; when one side ends before the
// other, it holds its final value. The boundaries of the result are the
// union of both sides' boundaries.
func Join[A, B any](a Keyframes[A], b Keyframes[B]) Keyframes[Pair[A, B]] {
	return Keyframes[Pair[A, B]]{
		root:  &joined[A, B]{a: a.root, b: b.root},
		blend: BlendPair(a.blend, b.blend),
	}
}

// Flatten plays the keyframes stored in kk, its start value followed by
// each segment's target, one after another. The timing of kk itself is
// ignored.
//
// Flatten panics if any of the stored keyframes never ends, or if kk
// doesn't store its values, as is the case for function keyframes.
func Flatten[V any](kk Keyframes[Keyframes[V]]) Keyframes[V] {
	vals, ok := kk.root.values()
	if !ok {
		fail("Flatten", ErrNotEnumerable)
	}
	parts := make([]node[V], len(vals))
	for i, inner := range vals {
		if inner.root == nil {
			fail("Flatten", ErrNotEnumerable)
		}
		if _, ok := inner.root.span(); !ok {
			fail("Flatten", ErrUnbounded)
		}
		parts[i] = inner.root
	}
	return Keyframes[V]{root: newSequence(parts), blend: vals[0].blend}
}

// At returns the value at elapsed time e, measured from the start of the
// keyframes. Before the start and after the end, the first and last
// segments extrapolate.
func (k Keyframes[V]) At(e time.Duration) V {
	return k.root.at(e)
}

// Duration returns the total duration of k, or 0 if k never ends.
func (k Keyframes[V]) Duration() time.Duration {
	d, _ := k.root.span()
	return d
}

// IsFinite reports whether k ends.
func (k Keyframes[V]) IsFinite() bool {
	_, ok := k.root.span()
	return ok
}

// IsFinished reports whether k has ended at elapsed time e.
func (k Keyframes[V]) IsFinished(e time.Duration) bool {
	d, ok := k.root.span()
	return ok && e >= d
}

// Start returns the value at elapsed time 0.
func (k Keyframes[V]) Start() V {
	return k.root.at(0)
}

// End returns the final value. It panics if k never ends.
func (k Keyframes[V]) End() V {
	return k.mustEnd("End")
}

// Boundaries returns the times at which k's segments end, in ascending
// order. For keyframes that repeat forever, only the first cycle is
// reported.
func (k Keyframes[V]) Boundaries() []time.Duration {
	return k.root.boundaries(nil, 0)
}

// Blend returns the blend function of k.
func (k Keyframes[V]) Blend() BlendFunc[V] {
	return k.blend
}

func (k Keyframes[V]) String() string {
	if k.root == nil {
		return "Keyframes(nil)"
	}
	return k.root.String()
}

func (k Keyframes[V]) mustDuration(op string) time.Duration {
	d, ok := k.root.span()
	if !ok {
		fail(op, ErrUnbounded)
	}
	return d
}

func (k Keyframes[V]) mustEnd(op string) V {
	return k.root.at(k.mustDuration(op))
}
