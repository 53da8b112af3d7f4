package motion

import "math"

// SolveITP solves an arbitrary function for a zero-crossing in the bracket
// [a, b], using the [ITP method].
//
// The values of ya and yb are given as arguments rather than computed from f,
// as they are frequently known already. It is assumed that ya < 0.0 and
// yb > 0.0.
//
// The number of iterations is bounded by that of bisection plus n0, so the
// solver always terminates, even for functions that are flat over parts of
// the bracket. When the function is monotonic, the result is within epsilon
// of the zero crossing. k1 is a tuning parameter; 0.2 / (b - a) is a good
// default. k2 is hardwired to 2.
//
// The value of epsilon must be larger than 2**-63 * (b - a).
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}
