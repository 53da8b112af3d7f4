package motion

import "math"

// BezierEpsilon is the accuracy to which cubic Bézier curves solve for the
// curve parameter.
const BezierEpsilon = 1e-7

// CubicBezier returns a timing function in the style of CSS's cubic-bezier().
// The curve is the cubic Bézier from (0, 0) to (1, 1) with control points
// (x1, y1) and (x2, y2); evaluating it at r finds the point whose x
// coordinate is r and returns its y coordinate.
//
// The x coordinates are clamped to [0, 1], which keeps the curve a function
// of x. The y coordinates are unrestricted and may overshoot.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	x1 = min(max(x1, 0), 1)
	x2 = min(max(x2, 0), 1)
	return Curve{
		Kind: BezierKind,
		bez:  CubicBez{Pt(0, 0), Pt(x1, y1), Pt(x2, y2), Pt(1, 1)},
	}
}

func (c Curve) evalBezier(r float64) float64 {
	switch {
	case r == 0:
		return 0
	case r == 1:
		return 1
	case r < 0:
		return r * c.bezierStartSlope()
	case r > 1:
		return 1 + (r-1)*c.bezierEndSlope()
	}
	return c.bez.Eval(c.solveBezierX(r)).Y
}

// solveBezierX finds the parameter u at which the curve's x coordinate is
// r, for r in (0, 1).
func (c Curve) solveBezierX(r float64) float64 {
	b := c.bez
	d := b.Differentiate()
	u := r
	for range 8 {
		x := b.Eval(u).X - r
		if math.Abs(x) < BezierEpsilon {
			return u
		}
		dx := d.Eval(u).X
		if math.Abs(dx) < 1e-6 {
			break
		}
		u -= x / dx
		if u < 0 || u > 1 {
			break
		}
	}

	// Newton didn't converge, most likely because of a flat spot in x(u).
	// x(u) is monotonic, so bracketing always works.
	f := func(u float64) float64 { return b.Eval(u).X - r }
	return SolveITP(f, 0, 1, BezierEpsilon, 1, 0.2, -r, 1-r)
}

// bezierStartSlope returns dy/dx at the start of the curve, which is used to
// extrapolate to negative ratios.
func (c Curve) bezierStartSlope() float64 {
	p1, p2 := c.bez.P1, c.bez.P2
	switch {
	case p1.X > 0:
		return p1.Y / p1.X
	case p1.Y == 0 && p2.X > 0:
		return p2.Y / p2.X
	case p1.Y == 0 && p2.Y == 0:
		return 1
	default:
		return 0
	}
}

// bezierEndSlope returns dy/dx at the end of the curve, which is used to
// extrapolate to ratios larger than 1.
func (c Curve) bezierEndSlope() float64 {
	p1, p2 := c.bez.P1, c.bez.P2
	switch {
	case p2.X < 1:
		return (p2.Y - 1) / (p2.X - 1)
	case p2.Y == 1 && p1.X < 1:
		return (p1.Y - 1) / (p1.X - 1)
	case p2.Y == 1 && p1.Y == 1:
		return 1
	default:
		return 0
	}
}
