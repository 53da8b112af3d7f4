package motion

import (
	"testing"
	"time"
)

func TestAnimation(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Run(scenarioA(), t0)
	tests := []struct {
		t    time.Time
		want float64
	}{
		{t0, 0},
		{t0.Add(500 * ms), 5},
		{t0.Add(time.Second), 10},
		{t0.Add(2 * time.Second), 7.5},
		{t0.Add(3 * time.Second), 5},
	}
	for _, tt := range tests {
		if got := a.Get(tt.t); got != tt.want {
			t.Errorf("at %s: got %g, want %g", tt.t.Sub(t0), got, tt.want)
		}
	}
	if a.IsFinished(t0.Add(2 * time.Second)) {
		t.Error("animation finished early")
	}
	if !a.IsFinished(t0.Add(3 * time.Second)) {
		t.Error("animation didn't finish")
	}
	end, ok := a.EndTime()
	if !ok || !end.Equal(t0.Add(3*time.Second)) {
		t.Errorf("got end time %v, %t", end, ok)
	}
	diff(t, t0, a.StartTime())
	diff(t, scenarioA().Duration(), a.Keyframes().Duration())

	forever := Run(scenarioA().Repeat(Forever, PingPong), Seconds(2))
	if _, ok := forever.EndTime(); ok {
		t.Error("unbounded animation has an end time")
	}
	diff(t, 7.5, forever.Get(Seconds(6)))
	if forever.IsFinished(Seconds(1e6)) {
		t.Error("unbounded animation finished")
	}
}

func TestStill(t *testing.T) {
	var a Animated[string, Seconds] = Still[string, Seconds]{Value: "x"}
	diff(t, "x", a.Get(Seconds(-5)))
	if !a.IsFinished(0) {
		t.Error("still values are always finished")
	}
}

func TestInertialScenarioB(t *testing.T) {
	t0 := Seconds(100)
	in := NewInertial[float64, Seconds](5, Float[float64]).GoTo(10, t0, time.Second, Linear)
	tests := []struct {
		t    Seconds
		want float64
	}{
		{t0, 5},
		{t0.Add(500 * ms), 7.5},
		{t0.Add(time.Second), 10},
		{t0.Add(2 * time.Second), 10},
	}
	for _, tt := range tests {
		if got := in.Get(tt.t); got != tt.want {
			t.Errorf("at %s: got %g, want %g", tt.t, got, tt.want)
		}
	}
	diff(t, 10.0, in.Target())
}

func TestInertialRest(t *testing.T) {
	in := NewInertial[float64, Seconds](3, Float[float64])
	diff(t, 3.0, in.Get(-100))
	diff(t, 3.0, in.Get(100))
	diff(t, 3.0, in.Target())
	if !in.IsFinished(0) {
		t.Error("resting inertial should be finished")
	}
	if _, ok := in.EndTime(); ok {
		t.Error("resting inertial has an end time")
	}
}

func TestInertialRetargetContinuity(t *testing.T) {
	curves := []Curve{Linear, CubicInOut, ElasticOut, BackIn, CSSEase, Steps(5, JumpStart)}
	in := NewInertial[float64, Seconds](0, Float[float64])
	now := Seconds(0)
	for i, c := range curves {
		target := float64(i%3)*7 - 4
		before := in.Get(now)
		in = in.GoTo(target, now, time.Second, c)
		// Retargeting with a positive duration never jumps.
		if got := in.Get(now); got != before {
			t.Errorf("retargeting with %s at %s: got %g, want %g", c, now, got, before)
		}
		now += 0.25
	}
}

func TestInertialTransition(t *testing.T) {
	in := NewInertial[float64, Seconds](0, Float[float64]).GoTo(10, 0, time.Second, CubicInOut)
	frozen := in.Get(0.25)
	in = in.GoTo(-5, 0.25, 2*time.Second, ElasticOut)

	// Before the transition starts, the value it started from is held.
	diff(t, frozen, in.Get(0.1))
	diff(t, -5.0, in.Get(2.25))
	diff(t, -5.0, in.Get(100))
	diff(t, -5.0, in.Target())
	if in.IsFinished(2) || !in.IsFinished(2.25) {
		t.Error("transition should finish exactly at its end")
	}
	end, ok := in.EndTime()
	if !ok || end != 2.25 {
		t.Errorf("got end time %v, %t, want 2.25s", end, ok)
	}

	eased := NewInertial[float64, Seconds](0, Float[float64]).EaseTo(10, 0, time.Second)
	diff(t, 5.0, eased.Get(0.5))
	diff(t, 10*DefaultCurve.Eval(0.25), eased.Get(0.25))

	// A zero duration jumps at now.
	jump := in.GoTo(7, 3, 0, Linear)
	diff(t, -5.0, jump.Get(2.5))
	diff(t, 7.0, jump.Get(3))

	wantPanic(t, ErrNegativeDuration, func() { in.GoTo(1, 3, -time.Second, Linear) })
}

func TestInertialPoint(t *testing.T) {
	in := NewInertial[Point, time.Time](Pt(0, 0), Lerp[Point])
	t0 := time.Unix(1000, 0)
	in = in.GoTo(Pt(10, 20), t0, 2*time.Second, Linear)
	diff(t, Pt(5, 10), in.Get(t0.Add(time.Second)))
}

func BenchmarkInertialGet(b *testing.B) {
	in := NewInertial[float64, Seconds](0, Float[float64]).GoTo(10, 0, time.Second, CSSEaseInOut)
	for i := range b.N {
		in.Get(Seconds(i%1000) / 1000)
	}
}
