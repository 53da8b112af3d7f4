package motion

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

// node is a node in the tree that makes up a timeline. Nodes are immutable.
type node[V any] interface {
	fmt.Stringer

	// at evaluates the node at elapsed time e. Times outside of the node's
	// span extrapolate or clamp, depending on the node.
	at(e time.Duration) V
	// span returns the node's duration. ok is false if the node never ends.
	span() (d time.Duration, ok bool)
	// remap applies f to every value stored in the node.
	remap(f func(V) V) node[V]
	// reshape replaces the curve of every segment in the node.
	reshape(c Curve) node[V]
	// boundaries appends the end times of the node's segments, shifted by
	// offset, in ascending order.
	boundaries(dst []time.Duration, offset time.Duration) []time.Duration
	// values returns the node's stored values, in order. ok is false if the
	// node is computed rather than stored.
	values() (vs []V, ok bool)
}

func reverseNode[V any](n node[V]) node[V] {
	switch n := n.(type) {
	case *segments[V]:
		return n.reversed()
	case *repeat[V]:
		return n.reversed()
	case *reversed[V]:
		return n.inner
	default:
		d, _ := n.span()
		return &reversed[V]{inner: n, d: d}
	}
}

func scaleNode[V any](n node[V], f float64) node[V] {
	switch n := n.(type) {
	case *segments[V]:
		return n.scaled(f)
	case *scaled[V]:
		return &scaled[V]{inner: n.inner, factor: n.factor * f}
	default:
		return &scaled[V]{inner: n, factor: f}
	}
}

// function is a timeline computed by a function of the ratio of elapsed
// time to duration. Endless functions use a period instead of a duration.
type function[V any] struct {
	f       func(r float64) V
	d       time.Duration
	endless bool
}

func (fn *function[V]) at(e time.Duration) V {
	return fn.f(ratio(e, fn.d))
}

func (fn *function[V]) span() (time.Duration, bool) {
	if fn.endless {
		return 0, false
	}
	return fn.d, true
}

func (fn *function[V]) remap(f func(V) V) node[V] {
	g := fn.f
	return &function[V]{
		f:       func(r float64) V { return f(g(r)) },
		d:       fn.d,
		endless: fn.endless,
	}
}

func (fn *function[V]) reshape(c Curve) node[V] {
	g := fn.f
	return &function[V]{
		f:       func(r float64) V { return g(c.Eval(r)) },
		d:       fn.d,
		endless: fn.endless,
	}
}

func (fn *function[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	if fn.endless {
		return dst
	}
	return append(dst, offset+fn.d)
}

func (fn *function[V]) values() ([]V, bool) { return nil, false }

func (fn *function[V]) String() string {
	if fn.endless {
		return fmt.Sprintf("Endless(period %s)", fn.d)
	}
	return fmt.Sprintf("Function(%s)", fn.d)
}

// sequence plays its parts one after another. Only the last part may be
// unbounded. ends[i] is the time at which parts[i] ends and only covers
// bounded parts.
type sequence[V any] struct {
	parts []node[V]
	ends  []time.Duration
}

func newSequence[V any](parts []node[V]) *sequence[V] {
	seq := &sequence[V]{}
	for _, p := range parts {
		if inner, ok := p.(*sequence[V]); ok {
			for _, p := range inner.parts {
				seq.add(p)
			}
		} else {
			seq.add(p)
		}
	}
	return seq
}

func (seq *sequence[V]) add(p node[V]) {
	seq.parts = append(seq.parts, p)
	if d, ok := p.span(); ok {
		var end time.Duration
		if n := len(seq.ends); n > 0 {
			end = seq.ends[n-1]
		}
		seq.ends = append(seq.ends, end+d)
	}
}

func (seq *sequence[V]) partStart(i int) time.Duration {
	if i == 0 {
		return 0
	}
	return seq.ends[i-1]
}

func (seq *sequence[V]) at(e time.Duration) V {
	n := len(seq.parts)
	i := sort.Search(len(seq.ends), func(i int) bool { return seq.ends[i] > e })
	if i >= n {
		i = n - 1
	}
	return seq.parts[i].at(e - seq.partStart(i))
}

func (seq *sequence[V]) span() (time.Duration, bool) {
	if len(seq.ends) < len(seq.parts) {
		return 0, false
	}
	return seq.ends[len(seq.ends)-1], true
}

func (seq *sequence[V]) remap(f func(V) V) node[V] {
	parts := make([]node[V], len(seq.parts))
	for i, p := range seq.parts {
		parts[i] = p.remap(f)
	}
	return newSequence(parts)
}

func (seq *sequence[V]) reshape(c Curve) node[V] {
	parts := make([]node[V], len(seq.parts))
	for i, p := range seq.parts {
		parts[i] = p.reshape(c)
	}
	return newSequence(parts)
}

func (seq *sequence[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	for i, p := range seq.parts {
		dst = p.boundaries(dst, offset+seq.partStart(i))
	}
	return dst
}

func (seq *sequence[V]) values() ([]V, bool) {
	var out []V
	for _, p := range seq.parts {
		vs, ok := p.values()
		if !ok {
			return nil, false
		}
		out = append(out, vs...)
	}
	return out, true
}

func (seq *sequence[V]) String() string {
	parts := make([]string, len(seq.parts))
	for i, p := range seq.parts {
		parts[i] = p.String()
	}
	return "Sequence(" + strings.Join(parts, "; ") + ")"
}

// mapped applies a function to the output of a node that can't apply it to
// stored values.
type mapped[V any] struct {
	inner node[V]
	f     func(V) V
}

func (m *mapped[V]) at(e time.Duration) V         { return m.f(m.inner.at(e)) }
func (m *mapped[V]) span() (time.Duration, bool) { return m.inner.span() }

func (m *mapped[V]) remap(f func(V) V) node[V] {
	g := m.f
	return &mapped[V]{inner: m.inner, f: func(v V) V { return f(g(v)) }}
}

func (m *mapped[V]) reshape(c Curve) node[V] {
	return &mapped[V]{inner: m.inner.reshape(c), f: m.f}
}

func (m *mapped[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	return m.inner.boundaries(dst, offset)
}

func (m *mapped[V]) values() ([]V, bool) {
	vs, ok := m.inner.values()
	if !ok {
		return nil, false
	}
	out := make([]V, len(vs))
	for i, v := range vs {
		out[i] = m.f(v)
	}
	return out, true
}

func (m *mapped[V]) String() string { return "Map(" + m.inner.String() + ")" }

// projected converts the values of a node to another type.
type projected[V, W any] struct {
	inner node[V]
	f     func(V) W
}

func (p *projected[V, W]) at(e time.Duration) W         { return p.f(p.inner.at(e)) }
func (p *projected[V, W]) span() (time.Duration, bool) { return p.inner.span() }

func (p *projected[V, W]) remap(f func(W) W) node[W] {
	return &mapped[W]{inner: p, f: f}
}

func (p *projected[V, W]) reshape(c Curve) node[W] {
	return &projected[V, W]{inner: p.inner.reshape(c), f: p.f}
}

func (p *projected[V, W]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	return p.inner.boundaries(dst, offset)
}

func (p *projected[V, W]) values() ([]W, bool) {
	vs, ok := p.inner.values()
	if !ok {
		return nil, false
	}
	out := make([]W, len(vs))
	for i, v := range vs {
		out[i] = p.f(v)
	}
	return out, true
}

func (p *projected[V, W]) String() string { return "MapTo(" + p.inner.String() + ")" }

// reversed plays a bounded node backwards.
type reversed[V any] struct {
	inner node[V]
	d     time.Duration
}

func (r *reversed[V]) at(e time.Duration) V         { return r.inner.at(r.d - e) }
func (r *reversed[V]) span() (time.Duration, bool) { return r.d, true }

func (r *reversed[V]) remap(f func(V) V) node[V] {
	return &reversed[V]{inner: r.inner.remap(f), d: r.d}
}

func (r *reversed[V]) reshape(c Curve) node[V] {
	return &reversed[V]{inner: r.inner.reshape(c.Reverse()), d: r.d}
}

func (r *reversed[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	// The segments' start times become end times.
	inner := append([]time.Duration{0}, r.inner.boundaries(nil, 0)...)
	for _, b := range slices.Backward(inner) {
		if b != r.d {
			dst = append(dst, offset+r.d-b)
		}
	}
	return dst
}

func (r *reversed[V]) values() ([]V, bool) {
	vs, ok := r.inner.values()
	if !ok {
		return nil, false
	}
	vs = slices.Clone(vs)
	slices.Reverse(vs)
	return vs, true
}

func (r *reversed[V]) String() string { return "Reverse(" + r.inner.String() + ")" }

// scaled stretches a node in time by a positive factor.
type scaled[V any] struct {
	inner  node[V]
	factor float64
}

func (s *scaled[V]) at(e time.Duration) V {
	return s.inner.at(time.Duration(float64(e) / s.factor))
}

func (s *scaled[V]) span() (time.Duration, bool) {
	d, ok := s.inner.span()
	return time.Duration(float64(d) * s.factor), ok
}

func (s *scaled[V]) remap(f func(V) V) node[V] {
	return &scaled[V]{inner: s.inner.remap(f), factor: s.factor}
}

func (s *scaled[V]) reshape(c Curve) node[V] {
	return &scaled[V]{inner: s.inner.reshape(c), factor: s.factor}
}

func (s *scaled[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	for _, b := range s.inner.boundaries(nil, 0) {
		dst = append(dst, offset+time.Duration(float64(b)*s.factor))
	}
	return dst
}

func (s *scaled[V]) values() ([]V, bool) { return s.inner.values() }

func (s *scaled[V]) String() string {
	return fmt.Sprintf("Scale(%s, %g)", s.inner, s.factor)
}

// clamped restricts a composite node to [from, to], holding the values at
// either end outside of that range.
type clamped[V any] struct {
	inner    node[V]
	from, to time.Duration
}

func (c *clamped[V]) at(e time.Duration) V {
	e = min(max(e, 0), c.to-c.from)
	return c.inner.at(c.from + e)
}

func (c *clamped[V]) span() (time.Duration, bool) { return c.to - c.from, true }

func (c *clamped[V]) remap(f func(V) V) node[V] {
	return &clamped[V]{inner: c.inner.remap(f), from: c.from, to: c.to}
}

func (c *clamped[V]) reshape(cv Curve) node[V] {
	return &clamped[V]{inner: c.inner.reshape(cv), from: c.from, to: c.to}
}

func (c *clamped[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	for _, b := range c.inner.boundaries(nil, 0) {
		if b > c.from && b < c.to {
			dst = append(dst, offset+b-c.from)
		}
	}
	return append(dst, offset+c.to-c.from)
}

func (c *clamped[V]) values() ([]V, bool) { return nil, false }

func (c *clamped[V]) String() string {
	return fmt.Sprintf("Slice(%s, %s, %s)", c.inner, c.from, c.to)
}
