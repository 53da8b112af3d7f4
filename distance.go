package motion

import "math"

// DistanceFunc measures the distance between two points. It must be
// non-negative, symmetric, and zero if and only if the points are equal.
//
// The method expression Point.Distance is a DistanceFunc[Point].
type DistanceFunc[P any] func(a, b P) float64

// FloatDistance returns |a-b|.
func FloatDistance[F ~float32 | ~float64](a, b F) float64 {
	return math.Abs(float64(a) - float64(b))
}

// PairDistance returns the euclidean combination of the distances between
// the pairs' members.
func PairDistance[A, B any](da DistanceFunc[A], db DistanceFunc[B]) DistanceFunc[Pair[A, B]] {
	return func(a, b Pair[A, B]) float64 {
		return math.Hypot(da(a.First, b.First), db(a.Second, b.Second))
	}
}
