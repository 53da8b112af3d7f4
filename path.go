package motion

import (
	"fmt"
	"iter"
	"sort"
	"time"
)

// Defaults used by [PathOptions].
const (
	DefaultPathSteps = 32
	DefaultMaxDepth  = 8
)

// PathOptions configures how finely a path's length is measured. The zero
// value selects the defaults.
type PathOptions struct {
	// Steps is the number of samples per curved piece. Lines are always
	// measured exactly. Defaults to DefaultPathSteps.
	Steps int
	// Tolerance enables adaptive refinement. A sample interval is split in
	// half while the path between its ends is longer than the chord by more
	// than Tolerance. Zero disables refinement.
	Tolerance float64
	// MaxDepth bounds the number of times an interval is split. Defaults to
	// DefaultMaxDepth.
	MaxDepth int
}

type pieceKind int

const (
	linePiece pieceKind = iota
	quadPiece
	cubicPiece
	funcPiece
)

// piece is one part of a path, parameterized over [0, 1].
type piece[P any] struct {
	kind           pieceKind
	p0, p1, p2, p3 P
	f              func(t float64) P
}

func (pc *piece[P]) eval(t float64, blend BlendFunc[P]) P {
	// de Casteljau
	switch pc.kind {
	case linePiece:
		return blend(pc.p0, pc.p1, t)
	case quadPiece:
		a := blend(pc.p0, pc.p1, t)
		b := blend(pc.p1, pc.p2, t)
		return blend(a, b, t)
	case cubicPiece:
		a := blend(pc.p0, pc.p1, t)
		b := blend(pc.p1, pc.p2, t)
		c := blend(pc.p2, pc.p3, t)
		return blend(blend(a, b, t), blend(b, c, t), t)
	case funcPiece:
		return pc.f(t)
	default:
		panic(fmt.Sprintf("unhandled case %v", pc.kind))
	}
}

// PathBuilder builds a [Path] piece by piece.
type PathBuilder[P any] struct {
	start  P
	last   P
	pieces []piece[P]
	blend  BlendFunc[P]
	dist   DistanceFunc[P]
}

// NewPathBuilder starts a path at start. blend interpolates points and dist
// measures the distance between them.
func NewPathBuilder[P any](start P, blend BlendFunc[P], dist DistanceFunc[P]) *PathBuilder[P] {
	return &PathBuilder[P]{start: start, last: start, blend: blend, dist: dist}
}

func (b *PathBuilder[P]) push(pc piece[P], end P) *PathBuilder[P] {
	b.pieces = append(b.pieces, pc)
	b.last = end
	return b
}

// LineTo adds a straight line to p.
func (b *PathBuilder[P]) LineTo(p P) *PathBuilder[P] {
	return b.push(piece[P]{kind: linePiece, p0: b.last, p1: p}, p)
}

// QuadTo adds a quadratic Bézier curve with control point p1, ending at p2.
func (b *PathBuilder[P]) QuadTo(p1, p2 P) *PathBuilder[P] {
	return b.push(piece[P]{kind: quadPiece, p0: b.last, p1: p1, p2: p2}, p2)
}

// CubicTo adds a cubic Bézier curve with control points p1 and p2, ending at
// p3.
func (b *PathBuilder[P]) CubicTo(p1, p2, p3 P) *PathBuilder[P] {
	return b.push(piece[P]{kind: cubicPiece, p0: b.last, p1: p1, p2: p2, p3: p3}, p3)
}

// CurveTo adds an arbitrary parametric curve. f is evaluated over [0, 1]
// and should start where the path currently ends. The path continues from
// f(1).
func (b *PathBuilder[P]) CurveTo(f func(t float64) P) *PathBuilder[P] {
	return b.push(piece[P]{kind: funcPiece, f: f}, f(1))
}

// Build measures the path and returns it. The builder may be reused
// afterwards; the path doesn't share state with it.
func (b *PathBuilder[P]) Build(opts PathOptions) Path[P] {
	if opts.Steps < 0 {
		fail("Build", ErrInvalidSteps)
	}
	if opts.MaxDepth < 0 || opts.Tolerance < 0 {
		fail("Build", ErrInvalidRange)
	}
	if opts.Steps == 0 {
		opts.Steps = DefaultPathSteps
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Path[P]{
		start:  b.start,
		pieces: append([]piece[P](nil), b.pieces...),
		blend:  b.blend,
		table:  []pathEntry{{u: 0, dist: 0}},
	}
	m := measurer[P]{path: &p, opts: opts}
	for i := range p.pieces {
		pc := &p.pieces[i]
		off := float64(i)
		if pc.kind == linePiece {
			m.add(off+1, b.dist(pc.p0, pc.p1))
			continue
		}
		prev := pc.eval(0, p.blend)
		for s := 1; s <= opts.Steps; s++ {
			t0 := float64(s-1) / float64(opts.Steps)
			t1 := float64(s) / float64(opts.Steps)
			next := pc.eval(t1, p.blend)
			m.refine(pc, off, t0, t1, prev, next, b.dist, 0)
			prev = next
		}
	}
	return p
}

type measurer[P any] struct {
	path *Path[P]
	opts PathOptions
}

// add appends a table entry for parameter u. Intervals of zero length don't
// get an entry; the previous entry advances to u instead, which keeps
// distances strictly increasing.
func (m *measurer[P]) add(u, inc float64) {
	t := m.path.table
	last := &t[len(t)-1]
	if inc <= 0 {
		last.u = u
		return
	}
	m.path.table = append(t, pathEntry{u: u, dist: last.dist + inc})
}

func (m *measurer[P]) refine(pc *piece[P], off, t0, t1 float64, a, b P, dist DistanceFunc[P], depth int) {
	chord := dist(a, b)
	if m.opts.Tolerance > 0 && depth < m.opts.MaxDepth {
		tm := (t0 + t1) / 2
		mid := pc.eval(tm, m.path.blend)
		if dist(a, mid)+dist(mid, b)-chord > m.opts.Tolerance {
			m.refine(pc, off, t0, tm, a, mid, dist, depth+1)
			m.refine(pc, off, tm, t1, mid, b, dist, depth+1)
			return
		}
	}
	m.add(off+t1, chord)
}

// pathEntry maps a distance along the path to the global parameter u. The
// integer part of u selects the piece; the fractional part is the parameter
// within it.
type pathEntry struct {
	u    float64
	dist float64
}

// Path is a measured path that can be traversed at constant speed. Create
// paths with [NewPathBuilder], [PointPath] or [Polyline].
type Path[P any] struct {
	start  P
	pieces []piece[P]
	blend  BlendFunc[P]
	table  []pathEntry
}

func (p Path[P]) eval(u float64) P {
	n := len(p.pieces)
	if n == 0 {
		return p.start
	}
	i := min(int(u), n-1)
	return p.pieces[i].eval(u-float64(i), p.blend)
}

// Length returns the length of the path.
func (p Path[P]) Length() float64 {
	if len(p.table) == 0 {
		return 0
	}
	return p.table[len(p.table)-1].dist
}

// AtDistance returns the point at distance d along the path. d is clamped to
// [0, p.Length()].
func (p Path[P]) AtDistance(d float64) P {
	t := p.table
	if len(t) == 0 {
		return p.start
	}
	switch {
	case len(t) == 1 || !(d > 0):
		return p.eval(t[0].u)
	case d >= t[len(t)-1].dist:
		return p.eval(t[len(t)-1].u)
	}
	j := sort.Search(len(t), func(i int) bool { return t[i].dist >= d })
	a, b := t[j-1], t[j]
	u := a.u + (b.u-a.u)*(d-a.dist)/(b.dist-a.dist)
	return p.eval(u)
}

// At returns the point at ratio r of the path's length. Driving r uniformly
// moves along the path at constant speed.
func (p Path[P]) At(r float64) P {
	return p.AtDistance(r * p.Length())
}

func (p Path[P]) String() string {
	return fmt.Sprintf("Path(%d pieces, length %g)", len(p.pieces), p.Length())
}

// PointPath builds a path that follows the segments of a Bézier path.
// Subpaths that don't start where the previous one ended are connected with
// straight lines.
//
// Curved segments are evaluated in their polynomial form rather than by
// repeated blending.
func PointPath(elements iter.Seq[PathElement], opts PathOptions) Path[Point] {
	var b *PathBuilder[Point]
	var end Point
	for seg := range Segments(elements) {
		if b == nil {
			b = NewPathBuilder(seg.Start(), Lerp[Point], Point.Distance)
		} else if seg.Start() != end {
			b.LineTo(seg.Start())
		}
		switch seg.Kind {
		case LineKind:
			b.LineTo(seg.End())
		case QuadKind, CubicKind:
			b.CurveTo(seg.Eval)
		}
		end = seg.End()
	}
	if b == nil {
		// No segments, so at most a lone MoveTo.
		var start Point
		for el := range elements {
			if el.Kind == MoveToKind {
				start = el.P0
				break
			}
		}
		b = NewPathBuilder(start, Lerp[Point], Point.Distance)
	}
	return b.Build(opts)
}

// Polyline builds a path of straight lines through points. It panics if
// points is empty.
func Polyline[P any](points []P, blend BlendFunc[P], dist DistanceFunc[P], opts PathOptions) Path[P] {
	if len(points) == 0 {
		fail("Polyline", ErrNoSamples)
	}
	b := NewPathBuilder(points[0], blend, dist)
	for _, pt := range points[1:] {
		b.LineTo(pt)
	}
	return b.Build(opts)
}

// AlongPath appends a movement along p to k, taking d and shaped by c. The
// movement covers equal distances in equal eased time. It starts at the
// beginning of p regardless of where k ends; use [Keyframes.PolyTo] to
// continue from k's final value. It panics if k never ends.
func (k Keyframes[V]) AlongPath(p Path[V], d time.Duration, c Curve) Keyframes[V] {
	checkDuration("AlongPath", d)
	k.mustDuration("AlongPath")
	fn := &function[V]{
		f: func(r float64) V { return p.At(c.Eval(r)) },
		d: d,
	}
	return k.with(newSequence([]node[V]{k.root, fn}))
}

// PolyTo appends a movement from k's final value through points, taking d
// and shaped by c. The movement follows straight lines at constant speed,
// as measured by dist. It panics if k never ends or if points is empty.
func (k Keyframes[V]) PolyTo(points []V, dist DistanceFunc[V], d time.Duration, c Curve) Keyframes[V] {
	checkDuration("PolyTo", d)
	if len(points) == 0 {
		fail("PolyTo", ErrNoSamples)
	}
	all := make([]V, 0, len(points)+1)
	all = append(all, k.mustEnd("PolyTo"))
	all = append(all, points...)
	return k.AlongPath(Polyline(all, k.blend, dist, PathOptions{}), d, c)
}
