package motion

import (
	"cmp"
	"slices"
	"sort"
)

// Sample is a point of a tabular curve, mapping the ratio X to the eased
// ratio Y.
type Sample struct {
	X float64
	Y float64
}

// Tabular returns a curve that linearly interpolates between samples. The
// samples are copied and sorted by X. Outside the sampled range, the curve
// clamps to the first or last sample. It panics if samples is empty.
func Tabular(samples []Sample) Curve {
	if len(samples) == 0 {
		fail("Tabular", ErrNoSamples)
	}
	s := slices.Clone(samples)
	slices.SortStableFunc(s, func(a, b Sample) int { return cmp.Compare(a.X, b.X) })
	return Curve{Kind: TabularKind, samples: s}
}

// Samples returns a copy of a tabular curve's samples, or nil for other
// kinds of curves.
func (c Curve) Samples() []Sample {
	return slices.Clone(c.samples)
}

func evalTabular(s []Sample, r float64) float64 {
	first, last := s[0], s[len(s)-1]
	if r <= first.X {
		return first.Y
	}
	if r >= last.X {
		return last.Y
	}
	// r is strictly inside the sampled range, so 1 ≤ i < len(s).
	i := sort.Search(len(s), func(i int) bool { return s[i].X > r })
	a, b := s[i-1], s[i]
	t := (r - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*t
}
