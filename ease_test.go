package motion

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func allCurves() []Curve {
	spring, _ := Spring(60, 6, 0.5)
	curves := []Curve{
		Linear,
		QuadraticIn, QuadraticOut, QuadraticInOut,
		CubicIn, CubicOut, CubicInOut,
		QuarticIn, QuarticOut, QuarticInOut,
		QuinticIn, QuinticOut, QuinticInOut,
		Ease(1.5, In), Ease(0.5, Out), Ease(2.5, InOut),
		SineIn, SineOut, SineInOut,
		CircIn, CircOut, CircInOut,
		ExpoIn, ExpoOut, ExpoInOut,
		BackIn, BackOut, BackInOut,
		ElasticIn, ElasticOut, ElasticInOut,
		BounceIn, BounceOut, BounceInOut,
		Steps(1, JumpEnd), Steps(4, JumpEnd), Steps(4, JumpStart),
		CSSEase, CSSEaseIn, CSSEaseOut, CSSEaseInOut,
		CubicBezier(0, 0, 0, 0),
		CubicBezier(1, 0, 0, 1),
		CubicBezier(0.3, -0.5, 0.7, 1.5),
		CubicBezier(-1, 2, 3, -1),
		Tabular([]Sample{{0, 0}, {0.3, 0.6}, {1, 1}}),
		spring,
		CubicInOut.Window(0.2, 0.7),
		BounceOut.Window(0, 0.4),
		CSSEase.Window(0.5, 1),
	}
	for _, c := range curves[:len(curves):len(curves)] {
		curves = append(curves, c.Reverse())
	}
	return curves
}

func TestCurveEndpoints(t *testing.T) {
	for _, c := range allCurves() {
		if got := c.Eval(0); got != 0 {
			t.Errorf("%s at 0 = %g, want 0", c, got)
		}
		if got := c.Eval(1); got != 1 {
			t.Errorf("%s at 1 = %g, want 1", c, got)
		}
	}
}

func TestCurveValues(t *testing.T) {
	tests := []struct {
		c    Curve
		r    float64
		want float64
	}{
		{Linear, 0.3, 0.3},
		{QuadraticIn, 0.5, 0.25},
		{QuadraticOut, 0.5, 0.75},
		{QuadraticInOut, 0.25, 0.125},
		{QuadraticInOut, 0.5, 0.5},
		{CubicInOut, 0.25, 0.0625},
		{CubicOut, 0.5, 0.875},
		{SineIn, 1.0 / 3, 1 - math.Cos(math.Pi/6)},
		{SineInOut, 0.5, 0.5},
		{CircOut, 0.5, math.Sqrt(0.75)},
		{ExpoIn, 0.5, math.Exp2(-5)},
		{BackIn, 0.5, backC3/8 - backC1/4},
		{BounceOut, 0.5, bounceN1*math.Pow(0.5-1.5/bounceD1, 2) + 0.75},
		{Steps(4, JumpEnd), 0.3, 0.25},
		{Steps(4, JumpEnd), 0.99, 0.75},
		{Steps(4, JumpStart), 0.3, 0.5},
		{Steps(4, JumpStart), 0.01, 0.25},
		{CubicBezier(0, 0, 0, 0), 0.5, 0.5},
		{CubicBezier(1, 0, 0, 1), 0.5, 0.5},
		{CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3), 0.3, 0.3},
		{Tabular([]Sample{{1, 1}, {0, 0}, {0.5, 0.8}}), 0.25, 0.4},
	}
	for _, tt := range tests {
		if got := tt.c.Eval(tt.r); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%s at %g = %g, want %g", tt.c, tt.r, got, tt.want)
		}
	}
}

func TestCurveExtrapolation(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	diff(t, -1.0, Linear.Eval(-1), opt)
	diff(t, 4.0, QuadraticIn.Eval(2), opt)
	diff(t, 1.0, Steps(4, JumpEnd).Eval(1.1), opt)

	// Bézier curves continue along their boundary tangents.
	ease := CubicBezier(0.25, 0.1, 0.25, 1)
	diff(t, -0.4, ease.Eval(-1), opt)
	diff(t, 1.0, ease.Eval(2), opt)
	diff(t, -1/0.58, CSSEaseOut.Eval(-1), opt)
	diff(t, 3.0, CubicBezier(0, 0, 1, 1).Eval(3), opt)
	for _, r := range []float64{-1e6, -1, 2, 1e6} {
		if v := CSSEaseInOut.Eval(r); math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("CSSEaseInOut at %g = %g", r, v)
		}
	}

	// Tabular curves clamp.
	tab := Tabular([]Sample{{0.2, 0.1}, {0.8, 0.9}})
	diff(t, 0.1, tab.Eval(-5))
	diff(t, 0.1, tab.Eval(0.2))
	diff(t, 0.9, tab.Eval(7))
	diff(t, 0.5, tab.Eval(0.5), opt)
}

func TestCurveReverse(t *testing.T) {
	for _, c := range allCurves() {
		rev := c.Reverse()
		for i := range 11 {
			r := float64(i) / 10
			want := 1 - c.Eval(1-r)
			if got := rev.Eval(r); math.Abs(got-want) > 1e-5 {
				t.Errorf("%s at %g = %g, want %g", rev, r, got, want)
			}
		}
	}
}

func TestCurveWindow(t *testing.T) {
	for _, c := range allCurves() {
		const r0, r1 = 0.25, 0.75
		w := c.Window(r0, r1)
		c0, c1 := c.Eval(r0), c.Eval(r1)
		for i := range 11 {
			s := float64(i) / 10
			// Blending c0 and c1 by the window reproduces the curve.
			got := Float(c0, c1, w.Eval(s))
			want := c.Eval(r0 + s*(r1-r0))
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("%s at %g = %g, want %g", w, s, got, want)
			}
		}
	}
	if c := QuadraticIn.Window(0, 1); c.Kind != PowerKind {
		t.Errorf("full window has kind %s, want %s", c.Kind, PowerKind)
	}
}

func TestCubicBezierTerminates(t *testing.T) {
	// Control points that make x(u) flat in places must not stall the
	// solver.
	curves := []Curve{
		CubicBezier(0, 1, 0, 1),
		CubicBezier(1, 0, 1, 0),
		CubicBezier(1, 0, 0, 1),
		CubicBezier(0, 0, 1, 1),
		CubicBezier(0.5, 5, 0.5, -5),
	}
	for _, c := range curves {
		for i := range 1001 {
			r := float64(i) / 1000
			if y := c.Eval(r); math.IsNaN(y) {
				t.Fatalf("%s at %g is NaN", c, r)
			}
			x := c.bez.Eval(c.solveBezierX(r)).X
			if 0 < r && r < 1 && math.Abs(x-r) > 1e-6 {
				t.Errorf("%s: solved x = %g, want %g", c, x, r)
			}
		}
	}
}

func TestStepsInvalid(t *testing.T) {
	wantPanic(t, ErrInvalidSteps, func() { Steps(0, JumpEnd) })
	wantPanic(t, ErrNoSamples, func() { Tabular(nil) })
}

func TestTabularCopiesSamples(t *testing.T) {
	in := []Sample{{1, 1}, {0, 0}}
	c := Tabular(in)
	in[0] = Sample{0.5, 0.9}
	diff(t, []Sample{{0, 0}, {1, 1}}, c.Samples())

	got := c.Samples()
	got[0].Y = 42
	diff(t, []Sample{{0, 0}, {1, 1}}, c.Samples())

	if s := Linear.Samples(); s != nil {
		t.Errorf("got samples %v for linear curve, want nil", s)
	}
}

func TestSpring(t *testing.T) {
	c, d := Spring(60, 6, 0.5)
	if d <= 0 {
		t.Fatalf("got duration %s, want positive", d)
	}
	samples := c.Samples()
	diff(t, Sample{0, 0}, samples[0])
	diff(t, Sample{1, 1}, samples[len(samples)-1])

	var peak float64
	for _, s := range samples {
		peak = max(peak, s.Y)
	}
	if peak <= 1 {
		t.Errorf("underdamped spring peaked at %g, want overshoot", peak)
	}

	// A critically damped spring doesn't overshoot.
	c, _ = Spring(0, 6, 1)
	for _, s := range c.Samples() {
		if s.Y > 1+springRest {
			t.Errorf("critically damped spring reached %g", s.Y)
			break
		}
	}
}

func TestCurveString(t *testing.T) {
	diff(t, "QuadraticInOut", QuadraticInOut.String())
	diff(t, "SineOut", SineOut.String())
	diff(t, "Steps(4, JumpStart)", Steps(4, JumpStart).String())
	diff(t, "CubicBezier(0.42, 0, 0.58, 1)", CSSEaseInOut.String())
	diff(t, "Ease(1.5, In)", Ease(1.5, In).String())
	diff(t, "Linear", Linear.String())
}

func TestErrorsWrap(t *testing.T) {
	err := error(&CombinatorError{Op: "Repeat", Err: ErrEmptyRepeat})
	if !errors.Is(err, ErrEmptyRepeat) {
		t.Errorf("%v doesn't wrap %v", err, ErrEmptyRepeat)
	}
	diff(t, "Repeat: motion: cannot repeat a timeline of zero duration", err.Error())
}

func FuzzCurveEval(f *testing.F) {
	f.Add(uint8(0), 0.5)
	f.Add(uint8(7), -0.25)
	f.Add(uint8(30), 1.75)
	f.Add(uint8(40), 0.999)
	curves := allCurves()
	f.Fuzz(func(t *testing.T, idx uint8, r float64) {
		if math.IsNaN(r) || math.Abs(r) > 100 {
			t.Skip()
		}
		c := curves[int(idx)%len(curves)]
		if v := c.Eval(r); math.IsNaN(v) {
			t.Errorf("%s at %g is NaN", c, r)
		}
	})
}

func FuzzCubicBezier(f *testing.F) {
	f.Add(0.25, 0.1, 0.25, 1.0, 0.5)
	f.Add(0.0, 0.0, 0.0, 0.0, 0.001)
	f.Add(1.0, 0.0, 0.0, 1.0, 0.5)
	f.Fuzz(func(t *testing.T, x1, y1, x2, y2, r float64) {
		for _, v := range []float64{x1, y1, x2, y2, r} {
			if math.IsNaN(v) || math.Abs(v) > 1e3 {
				t.Skip()
			}
		}
		c := CubicBezier(x1, y1, x2, y2)
		if v := c.Eval(r); math.IsNaN(v) {
			t.Errorf("%s at %g is NaN", c, r)
		}
	})
}

func BenchmarkCubicBezier(b *testing.B) {
	for range b.N {
		for i := range 100 {
			CSSEaseInOut.Eval(float64(i) / 100)
		}
	}
}

func BenchmarkElastic(b *testing.B) {
	for range b.N {
		for i := range 100 {
			ElasticInOut.Eval(float64(i) / 100)
		}
	}
}
