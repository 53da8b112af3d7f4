package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultSpringFPS is the simulation rate used by [Spring] when fps is
	// not positive.
	DefaultSpringFPS = 60

	maxSpringFrames = 600
	springRest      = 1e-3
)

// Spring returns a tabular curve that follows a damped harmonic oscillator
// moving from 0 to 1, simulated at fps frames per second with the given
// angular frequency and damping ratio. Damping ratios below 1 overshoot.
//
// The simulation runs until the spring comes to rest, or for at most 600
// frames, and is stretched to fit [0, 1]. The second return value is the
// time the spring took to come to rest; using it as the segment's duration
// reproduces the spring's natural speed.
func Spring(fps int, frequency, damping float64) (Curve, time.Duration) {
	if fps <= 0 {
		fps = DefaultSpringFPS
	}
	s := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	ys := []float64{0}
	var pos, vel float64
	for range maxSpringFrames {
		pos, vel = s.Update(pos, vel, 1)
		ys = append(ys, pos)
		if math.Abs(pos-1) < springRest && math.Abs(vel) < springRest {
			break
		}
	}
	ys[len(ys)-1] = 1

	frames := len(ys) - 1
	samples := make([]Sample, len(ys))
	for i, y := range ys {
		samples[i] = Sample{X: float64(i) / float64(frames), Y: y}
	}
	d := time.Duration(frames) * time.Second / time.Duration(fps)
	return Tabular(samples), d
}
