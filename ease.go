package motion

import (
	"fmt"
	"math"
	"strconv"
)

type CurveKind int

const (
	// The identity curve. This is the zero value of CurveKind, making the zero
	// value of Curve a linear curve.
	LinearKind CurveKind = iota
	// Polynomial easing, rⁿ for a configurable exponent.
	PowerKind
	SineKind
	CircKind
	ExpoKind
	BackKind
	ElasticKind
	BounceKind
	// Quantization into a fixed number of steps.
	StepsKind
	// A CSS-style cubic Bézier timing function.
	BezierKind
	// Linear interpolation between sampled points.
	TabularKind
	// A portion of another curve, rescaled to map 0 to 0 and 1 to 1.
	WindowKind
)

func (k CurveKind) String() string {
	switch k {
	case LinearKind:
		return "Linear"
	case PowerKind:
		return "Power"
	case SineKind:
		return "Sine"
	case CircKind:
		return "Circ"
	case ExpoKind:
		return "Expo"
	case BackKind:
		return "Back"
	case ElasticKind:
		return "Elastic"
	case BounceKind:
		return "Bounce"
	case StepsKind:
		return "Steps"
	case BezierKind:
		return "CubicBezier"
	case TabularKind:
		return "Tabular"
	case WindowKind:
		return "Window"
	default:
		return "CurveKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Mode selects which end of an analytic curve is eased.
type Mode int

const (
	// Ease the start of the motion.
	In Mode = iota
	// Ease the end of the motion. Out curves are In curves rotated by 180°:
	// out(r) = 1 - in(1-r).
	Out
	// Ease both ends, using the In curve for the first half and the Out curve
	// for the second half.
	InOut
)

func (m Mode) String() string {
	switch m {
	case In:
		return "In"
	case Out:
		return "Out"
	case InOut:
		return "InOut"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Jump determines at which end of a bucket a Steps curve changes its value.
type Jump int

const (
	// The value jumps at the end of each bucket. The first bucket evaluates to
	// 0; only the final boundary reaches 1.
	JumpEnd Jump = iota
	// The value jumps at the start of each bucket. Any positive ratio
	// evaluates to at least 1/n.
	JumpStart
)

func (j Jump) String() string {
	switch j {
	case JumpEnd:
		return "JumpEnd"
	case JumpStart:
		return "JumpStart"
	default:
		return "Jump(" + strconv.Itoa(int(j)) + ")"
	}
}

// Curve maps the linear progress of a segment, a ratio that is nominally in
// [0, 1], to eased progress. Curves are immutable values.
//
// Evaluating a curve at 0 returns exactly 0, and evaluating it at 1 returns
// exactly 1, with the exception of tabular curves whose samples don't span
// [0, 1]. Outside of [0, 1], analytic curves extrapolate using their closed
// forms, Bézier curves extrapolate along their end tangents, and tabular
// curves clamp.
type Curve struct {
	// This is a tagged union like PathSegment. Only the fields relevant to
	// Kind are meaningful.

	Kind CurveKind
	Mode Mode
	// Exp is the exponent of power curves.
	Exp float64
	// Steps and Jump describe steps curves.
	Steps int
	Jump  Jump

	bez     CubicBez
	samples []Sample
	window  *window
}

// Linear is the identity curve.
var Linear = Curve{}

var (
	QuadraticIn    = Ease(2, In)
	QuadraticOut   = Ease(2, Out)
	QuadraticInOut = Ease(2, InOut)
	CubicIn        = Ease(3, In)
	CubicOut       = Ease(3, Out)
	CubicInOut     = Ease(3, InOut)
	QuarticIn      = Ease(4, In)
	QuarticOut     = Ease(4, Out)
	QuarticInOut   = Ease(4, InOut)
	QuinticIn      = Ease(5, In)
	QuinticOut     = Ease(5, Out)
	QuinticInOut   = Ease(5, InOut)

	SineIn       = Sine(In)
	SineOut      = Sine(Out)
	SineInOut    = Sine(InOut)
	CircIn       = Circ(In)
	CircOut      = Circ(Out)
	CircInOut    = Circ(InOut)
	ExpoIn       = Expo(In)
	ExpoOut      = Expo(Out)
	ExpoInOut    = Expo(InOut)
	BackIn       = Back(In)
	BackOut      = Back(Out)
	BackInOut    = Back(InOut)
	ElasticIn    = Elastic(In)
	ElasticOut   = Elastic(Out)
	ElasticInOut = Elastic(InOut)
	BounceIn     = Bounce(In)
	BounceOut    = Bounce(Out)
	BounceInOut  = Bounce(InOut)

	// CSS's named timing functions.
	CSSEase      = CubicBezier(0.25, 0.1, 0.25, 1)
	CSSEaseIn    = CubicBezier(0.42, 0, 1, 1)
	CSSEaseOut   = CubicBezier(0, 0, 0.58, 1)
	CSSEaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// DefaultCurve is the curve used by [Inertial.EaseTo].
var DefaultCurve = QuadraticInOut

// Ease returns a power curve with exponent exp. For In, it evaluates to rᵉˣᵖ.
func Ease(exp float64, mode Mode) Curve {
	return Curve{Kind: PowerKind, Mode: mode, Exp: exp}
}

// Sine returns a curve following a quarter of a cosine wave.
func Sine(mode Mode) Curve { return Curve{Kind: SineKind, Mode: mode} }

// Circ returns a curve following a quarter circle.
func Circ(mode Mode) Curve { return Curve{Kind: CircKind, Mode: mode} }

// Expo returns an exponential curve, 2^(10r-10) for In.
func Expo(mode Mode) Curve { return Curve{Kind: ExpoKind, Mode: mode} }

// Back returns a curve that pulls back before moving, overshooting [0, 1].
func Back(mode Mode) Curve { return Curve{Kind: BackKind, Mode: mode} }

// Elastic returns a curve that oscillates like a rubber band.
func Elastic(mode Mode) Curve { return Curve{Kind: ElasticKind, Mode: mode} }

// Bounce returns a curve that bounces like a dropped ball.
func Bounce(mode Mode) Curve { return Curve{Kind: BounceKind, Mode: mode} }

// Steps returns a curve that quantizes progress into n equally sized buckets.
// It panics if n < 1.
func Steps(n int, jump Jump) Curve {
	if n < 1 {
		fail("Steps", ErrInvalidSteps)
	}
	return Curve{Kind: StepsKind, Steps: n, Jump: jump}
}

const (
	backC1    = 1.70158
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
	bounceN1  = 7.5625
	bounceD1  = 2.75
)

// Eval evaluates the curve at ratio r.
func (c Curve) Eval(r float64) float64 {
	switch c.Kind {
	case LinearKind:
		return r
	case StepsKind:
		n := float64(max(c.Steps, 1))
		if c.Jump == JumpStart {
			return math.Ceil(r*n) / n
		}
		return math.Floor(r*n) / n
	case BezierKind:
		return c.evalBezier(r)
	case TabularKind:
		return evalTabular(c.samples, r)
	case WindowKind:
		return c.window.eval(r)
	}

	switch r {
	case 0:
		return 0
	case 1:
		return 1
	}
	switch c.Mode {
	case Out:
		return 1 - c.in(1-r)
	case InOut:
		if r < 0.5 {
			return c.in(2*r) / 2
		}
		return 1 - c.in(2-2*r)/2
	default:
		return c.in(r)
	}
}

// in evaluates the In form of an analytic curve.
func (c Curve) in(r float64) float64 {
	switch c.Kind {
	case PowerKind:
		return pow(r, c.Exp)
	case SineKind:
		return 1 - math.Cos(r*math.Pi/2)
	case CircKind:
		return 1 - math.Sqrt(max(0, 1-r*r))
	case ExpoKind:
		if r == 0 {
			return 0
		}
		return math.Exp2(10*r - 10)
	case BackKind:
		return backC3*r*r*r - backC1*r*r
	case ElasticKind:
		if r == 0 {
			return 0
		}
		return -math.Exp2(10*r-10) * math.Sin((10*r-10.75)*elasticC4)
	case BounceKind:
		return 1 - bounceOut(1-r)
	default:
		return r
	}
}

// pow computes r**exp, preserving the sign of r for fractional exponents so
// that extrapolating to negative ratios doesn't produce NaN.
func pow(r, exp float64) float64 {
	if exp == math.Trunc(exp) || r >= 0 {
		return math.Pow(r, exp)
	}
	return -math.Pow(-r, exp)
}

func bounceOut(r float64) float64 {
	switch {
	case r < 1/bounceD1:
		return bounceN1 * r * r
	case r < 2/bounceD1:
		r -= 1.5 / bounceD1
		return bounceN1*r*r + 0.75
	case r < 2.5/bounceD1:
		r -= 2.25 / bounceD1
		return bounceN1*r*r + 0.9375
	default:
		r -= 2.625 / bounceD1
		return bounceN1*r*r + 0.984375
	}
}

// Reverse returns the curve that, played forward, traces c played backward:
// c.Reverse().Eval(r) = 1 - c.Eval(1-r). In and Out curves swap, and InOut
// curves stay the same.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case LinearKind:
		return c
	case StepsKind:
		if c.Jump == JumpStart {
			c.Jump = JumpEnd
		} else {
			c.Jump = JumpStart
		}
		return c
	case BezierKind:
		p1, p2 := c.bez.P1, c.bez.P2
		return CubicBezier(1-p2.X, 1-p2.Y, 1-p1.X, 1-p1.Y)
	case TabularKind:
		out := make([]Sample, len(c.samples))
		for i, s := range c.samples {
			out[len(out)-1-i] = Sample{X: 1 - s.X, Y: 1 - s.Y}
		}
		return Curve{Kind: TabularKind, samples: out}
	case WindowKind:
		w := c.window
		return w.inner.Reverse().Window(1-w.r1, 1-w.r0)
	default:
		switch c.Mode {
		case In:
			c.Mode = Out
		case Out:
			c.Mode = In
		}
		return c
	}
}

// Window returns the portion of c between r0 and r1, rescaled so that it
// evaluates to 0 at 0 and to 1 at 1. For linear blends, blending from
// c.Eval(r0) to c.Eval(r1) with the windowed curve reproduces the values of
// the original curve. If c.Eval(r0) equals c.Eval(r1) there is nothing to
// rescale by, and the window is linear.
func (c Curve) Window(r0, r1 float64) Curve {
	if r0 == 0 && r1 == 1 {
		return c
	}
	return Curve{
		Kind: WindowKind,
		window: &window{
			inner: c,
			r0:    r0,
			r1:    r1,
			c0:    c.Eval(r0),
			c1:    c.Eval(r1),
		},
	}
}

type window struct {
	inner  Curve
	r0, r1 float64
	c0, c1 float64
}

func (w *window) eval(s float64) float64 {
	switch s {
	case 0:
		return 0
	case 1:
		return 1
	}
	if w.c0 == w.c1 {
		return s
	}
	r := w.r0 + s*(w.r1-w.r0)
	return (w.inner.Eval(r) - w.c0) / (w.c1 - w.c0)
}

func (c Curve) String() string {
	switch c.Kind {
	case LinearKind:
		return "Linear"
	case PowerKind:
		switch c.Exp {
		case 2:
			return "Quadratic" + c.Mode.String()
		case 3:
			return "Cubic" + c.Mode.String()
		case 4:
			return "Quartic" + c.Mode.String()
		case 5:
			return "Quintic" + c.Mode.String()
		default:
			return fmt.Sprintf("Ease(%g, %s)", c.Exp, c.Mode)
		}
	case StepsKind:
		return fmt.Sprintf("Steps(%d, %s)", c.Steps, c.Jump)
	case BezierKind:
		return fmt.Sprintf("CubicBezier(%g, %g, %g, %g)", c.bez.P1.X, c.bez.P1.Y, c.bez.P2.X, c.bez.P2.Y)
	case TabularKind:
		return fmt.Sprintf("Tabular(%d samples)", len(c.samples))
	case WindowKind:
		return fmt.Sprintf("Window(%s, %g, %g)", c.window.inner, c.window.r0, c.window.r1)
	default:
		return c.Kind.String() + c.Mode.String()
	}
}
