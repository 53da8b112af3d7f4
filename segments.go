package motion

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

// Segment describes the motion from the previous value of a timeline to
// Target, taking Duration and shaped by Curve.
type Segment[V any] struct {
	Duration time.Duration
	Target   V
	Curve    Curve

	cut *cut[V]
}

// cut is the part of a motion that remains of a segment after slicing. The
// segment blends from and to with its curve evaluated over [r0, r1] rather
// than over [0, 1], so it traces exactly the values of the original motion,
// whatever the shape of the curve.
type cut[V any] struct {
	from, to V
	r0, r1   float64
}

// ratio maps the segment's local ratio to a ratio of the original motion.
func (c *cut[V]) ratio(r float64) float64 {
	switch r {
	case 0:
		return c.r0
	case 1:
		return c.r1
	}
	return c.r0 + r*(c.r1-c.r0)
}

func (seg Segment[V]) String() string {
	return fmt.Sprintf("%v over %s (%s)", seg.Target, seg.Duration, seg.Curve)
}

// segments is the leaf of the timeline tree: a start value followed by
// contiguous segments. ends[i] is the time at which segs[i] ends.
type segments[V any] struct {
	start V
	segs  []Segment[V]
	ends  []time.Duration
	blend BlendFunc[V]
}

func newSegments[V any](start V, blend BlendFunc[V]) *segments[V] {
	return &segments[V]{start: start, blend: blend}
}

// push appends a segment in place. It is only used while constructing a new
// value.
func (s *segments[V]) push(seg Segment[V]) {
	end := seg.Duration
	if n := len(s.ends); n > 0 {
		end += s.ends[n-1]
	}
	s.segs = append(s.segs, seg)
	s.ends = append(s.ends, end)
}

// with returns a copy of s with seg appended.
func (s *segments[V]) with(seg Segment[V]) *segments[V] {
	out := &segments[V]{
		start: s.start,
		segs:  slices.Clip(s.segs),
		ends:  slices.Clip(s.ends),
		blend: s.blend,
	}
	out.push(seg)
	return out
}

func (s *segments[V]) segStart(i int) time.Duration {
	if i == 0 {
		return 0
	}
	return s.ends[i-1]
}

func (s *segments[V]) prev(i int) V {
	if i == 0 {
		return s.start
	}
	return s.segs[i-1].Target
}

func (s *segments[V]) at(e time.Duration) V {
	n := len(s.segs)
	if n == 0 {
		return s.start
	}
	// The segment that starts at or before e and ends after it. Before the
	// start this picks the first segment and past the end the last one; the
	// local ratio then extrapolates.
	i := sort.Search(n, func(i int) bool { return s.ends[i] > e })
	if i == n {
		i = n - 1
	}
	return s.eval(i, ratio(e-s.segStart(i), s.segs[i].Duration))
}

// motion returns the values segment i blends between and the range of
// ratios its curve is evaluated over.
func (s *segments[V]) motion(i int) *cut[V] {
	seg := s.segs[i]
	if seg.cut != nil {
		return seg.cut
	}
	return &cut[V]{from: s.prev(i), to: seg.Target, r0: 0, r1: 1}
}

// eval returns the value of segment i at local ratio r.
func (s *segments[V]) eval(i int, r float64) V {
	seg := s.segs[i]
	if c := seg.cut; c != nil {
		return s.blend(c.from, c.to, seg.Curve.Eval(c.ratio(r)))
	}
	return s.blend(s.prev(i), seg.Target, seg.Curve.Eval(r))
}

func (s *segments[V]) span() (time.Duration, bool) {
	if len(s.ends) == 0 {
		return 0, true
	}
	return s.ends[len(s.ends)-1], true
}

func (s *segments[V]) remap(f func(V) V) node[V] {
	out := newSegments(f(s.start), s.blend)
	for _, seg := range s.segs {
		seg.Target = f(seg.Target)
		if c := seg.cut; c != nil {
			seg.cut = &cut[V]{from: f(c.from), to: f(c.to), r0: c.r0, r1: c.r1}
		}
		out.push(seg)
	}
	return out
}

func (s *segments[V]) reshape(c Curve) node[V] {
	out := newSegments(s.start, s.blend)
	for _, seg := range s.segs {
		seg.Curve = c
		seg.cut = nil
		out.push(seg)
	}
	return out
}

func (s *segments[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	for _, end := range s.ends {
		dst = append(dst, offset+end)
	}
	return dst
}

func (s *segments[V]) values() ([]V, bool) {
	out := make([]V, 0, len(s.segs)+1)
	out = append(out, s.start)
	for _, seg := range s.segs {
		out = append(out, seg.Target)
	}
	return out, true
}

// reversed returns the segments played backwards. Targets and segment order
// are reversed and every curve is replaced by its reverse, so that the
// result traces the same values in the opposite direction.
func (s *segments[V]) reversed() *segments[V] {
	n := len(s.segs)
	if n == 0 {
		return s
	}
	out := newSegments(s.segs[n-1].Target, s.blend)
	for i := n - 1; i >= 0; i-- {
		seg := s.segs[i]
		if c := seg.cut; c != nil {
			// Running the ratio range backwards reverses a cut segment.
			out.push(Segment[V]{
				Duration: seg.Duration,
				Target:   s.prev(i),
				Curve:    seg.Curve,
				cut:      &cut[V]{from: c.from, to: c.to, r0: c.r1, r1: c.r0},
			})
			continue
		}
		out.push(Segment[V]{
			Duration: seg.Duration,
			Target:   s.prev(i),
			Curve:    seg.Curve.Reverse(),
		})
	}
	return out
}

func (s *segments[V]) scaled(f float64) *segments[V] {
	out := newSegments(s.start, s.blend)
	for _, seg := range s.segs {
		seg.Duration = time.Duration(float64(seg.Duration) * f)
		out.push(seg)
	}
	return out
}

// sliced returns the portion of the timeline between from and to. Segments
// that are cut keep blending between their original values over the part
// of their curve that remains, which preserves their values.
func (s *segments[V]) sliced(from, to time.Duration) *segments[V] {
	out := newSegments(s.at(from), s.blend)
	n := len(s.segs)
	if n > 0 && from < 0 && s.segs[0].Duration == 0 {
		// Before a leading jump, the start value holds.
		out.push(Segment[V]{Duration: min(to, 0) - from, Target: out.start})
	}
	for i, seg := range s.segs {
		a, b := s.segStart(i), s.ends[i]
		if seg.Duration == 0 {
			// A jump at from is already part of the start value.
			if from < a && a <= to {
				out.push(seg)
			}
			continue
		}
		// The first and last segments extend infinitely through
		// extrapolation.
		lo, hi := a, b
		if i == 0 {
			lo = min(lo, from)
		}
		if i == n-1 {
			hi = max(hi, to)
		}
		lo, hi = max(lo, from), min(hi, to)
		if hi <= lo {
			continue
		}
		r0 := ratio(lo-a, seg.Duration)
		r1 := ratio(hi-a, seg.Duration)
		if r0 == 0 && r1 == 1 {
			out.push(seg)
			continue
		}
		m := s.motion(i)
		c := &cut[V]{from: m.from, to: m.to, r0: m.ratio(r0), r1: m.ratio(r1)}
		out.push(Segment[V]{
			Duration: hi - lo,
			Target:   s.blend(c.from, c.to, seg.Curve.Eval(c.r1)),
			Curve:    seg.Curve,
			cut:      c,
		})
	}
	if d, _ := out.span(); d < to-from {
		out.push(Segment[V]{Duration: to - from - d, Target: s.at(to)})
	}
	return out
}

func (s *segments[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Seed(%v)", s.start)
	for _, seg := range s.segs {
		fmt.Fprintf(&sb, " → %s", seg)
	}
	return sb.String()
}
