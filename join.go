package motion

import (
	"fmt"
	"slices"
	"time"
)

// joined plays two timelines of different types side by side.
type joined[A, B any] struct {
	a node[A]
	b node[B]
}

// local returns the time at which a side of the join is evaluated. A side
// that ends before the other one holds its final value until the join ends.
func (j *joined[A, B]) local(e time.Duration, d time.Duration, finite bool) time.Duration {
	if !finite || e <= d {
		return e
	}
	if total, ok := j.span(); ok && d == total {
		return e
	}
	return d
}

func (j *joined[A, B]) at(e time.Duration) Pair[A, B] {
	da, fa := j.a.span()
	db, fb := j.b.span()
	return Pair[A, B]{
		First:  j.a.at(j.local(e, da, fa)),
		Second: j.b.at(j.local(e, db, fb)),
	}
}

func (j *joined[A, B]) span() (time.Duration, bool) {
	da, fa := j.a.span()
	db, fb := j.b.span()
	if !fa || !fb {
		return 0, false
	}
	return max(da, db), true
}

func (j *joined[A, B]) remap(f func(Pair[A, B]) Pair[A, B]) node[Pair[A, B]] {
	return &mapped[Pair[A, B]]{inner: j, f: f}
}

func (j *joined[A, B]) reshape(c Curve) node[Pair[A, B]] {
	return &joined[A, B]{a: j.a.reshape(c), b: j.b.reshape(c)}
}

// boundaries returns the union of both sides' boundaries.
func (j *joined[A, B]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	bs := j.a.boundaries(nil, offset)
	bs = j.b.boundaries(bs, offset)
	slices.Sort(bs)
	return append(dst, slices.Compact(bs)...)
}

func (j *joined[A, B]) values() ([]Pair[A, B], bool) { return nil, false }

func (j *joined[A, B]) String() string {
	return fmt.Sprintf("Join(%s, %s)", j.a, j.b)
}
