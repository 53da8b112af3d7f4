package motion

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a Bézier path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [QuadBez], and [CubicBez]).
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only valid when Kind ==
// CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// BezPath is a Bézier path, represented as a slice of path elements. Use
// [PointPath] to traverse it at constant speed.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(slices.Values(p)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments converts a sequence of path elements to a sequence of path segments.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		first := true
		var start, last Point
		for el := range seq {
			if first {
				first = false
				switch el.Kind {
				case MoveToKind:
					start = el.P0
				case LineToKind:
					start = el.P0
				case QuadToKind:
					start = el.P1
				case CubicToKind:
					start = el.P2
				case ClosePathKind:
					panic("first path element mustn't be ClosePath")
				}
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(Line{p, el.P0}.Seg()) {
					return
				}
			case QuadToKind:
				p := last
				last = el.P1
				if !yield(QuadBez{p, el.P0, el.P1}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}
