package motion_test

import (
	"fmt"
	"time"

	"honnef.co/go/motion"
)

func ExampleKeyframes() {
	k := motion.Seed(0.0, motion.Float[float64]).
		Extend(10, time.Second, motion.Linear).
		Extend(5, 2*time.Second, motion.QuadraticInOut)
	for _, e := range []time.Duration{0, 500 * time.Millisecond, time.Second, 2 * time.Second, 3 * time.Second} {
		fmt.Printf("%v: %g\n", e, k.At(e))
	}
	// Output:
	// 0s: 0
	// 500ms: 5
	// 1s: 10
	// 2s: 7.5
	// 3s: 5
}

func ExampleKeyframes_Repeat() {
	k := motion.Seed(0.0, motion.Float[float64]).
		Extend(1, time.Second, motion.Linear).
		Repeat(3, motion.PingPong)
	fmt.Println(k.Duration())
	for _, e := range []time.Duration{250 * time.Millisecond, 1250 * time.Millisecond, 2250 * time.Millisecond} {
		fmt.Printf("%v: %g\n", e, k.At(e))
	}
	// Output:
	// 3s
	// 250ms: 0.25
	// 1.25s: 0.75
	// 2.25s: 0.25
}

func ExampleInertial() {
	in := motion.NewInertial[float64, motion.Seconds](0, motion.Float[float64])
	in = in.GoTo(100, 0, time.Second, motion.Linear)
	fmt.Println(in.Get(0.5))

	// Changing course halfway starts from where the value currently is.
	in = in.GoTo(0, 0.5, time.Second, motion.Linear)
	fmt.Println(in.Get(1))
	fmt.Println(in.Get(1.5), in.IsFinished(1.5))
	// Output:
	// 50
	// 25
	// 0 true
}

func ExamplePointPath() {
	var p motion.BezPath
	p.MoveTo(motion.Pt(0, 0))
	p.LineTo(motion.Pt(30, 0))
	p.LineTo(motion.Pt(30, 40))

	path := motion.PointPath(p.Elements(), motion.PathOptions{})
	fmt.Println(path.Length())
	fmt.Println(path.At(0.5))
	// Output:
	// 70
	// (30, 5)
}

func ExampleCurve_Reverse() {
	fmt.Println(motion.QuadraticIn.Reverse().Eval(0.5), motion.QuadraticOut.Eval(0.5))
	fmt.Println(motion.Steps(4, motion.JumpEnd).Eval(0.3))
	// Output:
	// 0.75 0.75
	// 0.25
}
