package motion

import (
	"fmt"
	"math"
)

// BlendFunc interpolates between two values of a type. Implementations must
// return a exactly for t = 0 and b exactly for t = 1. Ratios outside [0, 1]
// occur during extrapolation and should be handled gracefully, either by
// extrapolating or by snapping to the nearer value.
type BlendFunc[V any] func(a, b V, t float64) V

// Lerper is implemented by types that know how to linearly interpolate
// themselves, such as [Point] and [Vec2].
type Lerper[V any] interface {
	Lerp(o V, t float64) V
}

// Float linearly interpolates between two floating point numbers.
func Float[F ~float32 | ~float64](a, b F, t float64) F {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return F(float64(a) + (float64(b)-float64(a))*t)
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer linearly interpolates between two integers, rounding to the nearest
// integer. Values that extrapolate beyond the range of I saturate at its
// minimum or maximum. A NaN t yields a.
func Integer[I integer](a, b I, t float64) I {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	if math.IsNaN(t) {
		return a
	}
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	lo, hi := intRange[I]()
	if v >= float64(hi) {
		return hi
	}
	if v <= float64(lo) {
		return lo
	}
	return I(v)
}

func intRange[I integer]() (lo, hi I) {
	hi = 1
	for hi<<1|1 > hi {
		hi = hi<<1 | 1
	}
	if ^I(0) > 0 {
		return 0, hi
	}
	return -hi - 1, hi
}

// Discrete doesn't interpolate. It returns a for t ≤ 0.5 and b otherwise. It
// is suitable for booleans, enums and other values that have no meaningful
// intermediate states.
func Discrete[V any](a, b V, t float64) V {
	if t > 0.5 {
		return b
	}
	return a
}

// Lerp blends values by calling their Lerp method.
func Lerp[V Lerper[V]](a, b V, t float64) V {
	if t == 1 {
		return b
	}
	return a.Lerp(b, t)
}

// Pair holds two values that are animated together. It is the value type of
// timelines created by [Join].
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// BlendPair returns a blend function that blends the members of a pair
// independently.
func BlendPair[A, B any](ba BlendFunc[A], bb BlendFunc[B]) BlendFunc[Pair[A, B]] {
	return func(a, b Pair[A, B], t float64) Pair[A, B] {
		return Pair[A, B]{
			First:  ba(a.First, b.First, t),
			Second: bb(a.Second, b.Second, t),
		}
	}
}

// BlendSlice returns a blend function that blends slices element-wise.
// Slices of different lengths cannot be matched up and are switched between
// like [Discrete] values.
func BlendSlice[V any](blend BlendFunc[V]) BlendFunc[[]V] {
	return func(a, b []V, t float64) []V {
		if len(a) != len(b) {
			return Discrete(a, b, t)
		}
		out := make([]V, len(a))
		for i := range a {
			out[i] = blend(a[i], b[i], t)
		}
		return out
	}
}

// Optional is a value that may be absent.
type Optional[V any] struct {
	Value V
	Valid bool
}

// Some returns a present optional value.
func Some[V any](v V) Optional[V] {
	return Optional[V]{Value: v, Valid: true}
}

// None returns an absent optional value.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

func (o Optional[V]) String() string {
	if !o.Valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Value)
}

// BlendOptional returns a blend function for optional values. If both values
// are present, their contents are blended. If only one of them is present,
// the result jumps from a to b at t = 0.5, using the same rule as
// [Discrete].
func BlendOptional[V any](blend BlendFunc[V]) BlendFunc[Optional[V]] {
	return func(a, b Optional[V], t float64) Optional[V] {
		if a.Valid && b.Valid {
			return Some(blend(a.Value, b.Value, t))
		}
		return Discrete(a, b, t)
	}
}
