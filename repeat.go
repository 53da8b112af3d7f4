package motion

import (
	"fmt"
	"time"
)

// Forever is the repeat count of timelines that repeat indefinitely.
const Forever = -1

// RepeatMode determines how successive cycles of a repeated timeline are
// played.
type RepeatMode int

const (
	// Every cycle plays the timeline from the start.
	Restart RepeatMode = iota
	// Odd cycles play the timeline backwards, so that the motion alternates
	// direction without jumps.
	PingPong
)

func (m RepeatMode) String() string {
	switch m {
	case Restart:
		return "Restart"
	case PingPong:
		return "PingPong"
	default:
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
}

type repeat[V any] struct {
	src   node[V]
	back  node[V]
	cycle time.Duration
	count int
	mode  RepeatMode
}

func newRepeat[V any](src node[V], cycle time.Duration, count int, mode RepeatMode) *repeat[V] {
	r := &repeat[V]{src: src, cycle: cycle, count: count, mode: mode}
	if mode == PingPong {
		r.back = reverseNode(src)
	}
	return r
}

// play returns the node playing during cycle k.
func (r *repeat[V]) play(k int64) node[V] {
	if r.mode == PingPong && k%2 == 1 {
		return r.back
	}
	return r.src
}

func (r *repeat[V]) at(e time.Duration) V {
	if e < 0 {
		return r.src.at(e)
	}
	k := int64(e / r.cycle)
	if r.count != Forever && k >= int64(r.count) {
		// Past the end, the last cycle extrapolates.
		k = int64(r.count) - 1
	}
	return r.play(k).at(e - time.Duration(k)*r.cycle)
}

func (r *repeat[V]) span() (time.Duration, bool) {
	if r.count == Forever {
		return 0, false
	}
	return time.Duration(r.count) * r.cycle, true
}

func (r *repeat[V]) remap(f func(V) V) node[V] {
	return newRepeat(r.src.remap(f), r.cycle, r.count, r.mode)
}

func (r *repeat[V]) reshape(c Curve) node[V] {
	return newRepeat(r.src.reshape(c), r.cycle, r.count, r.mode)
}

// reversed returns the repetition played backwards. It must only be called
// on bounded repetitions.
func (r *repeat[V]) reversed() node[V] {
	if r.mode == PingPong && r.count%2 == 0 {
		// Forward and backward cycles pair up and the sequence is its own
		// reverse.
		return r
	}
	return newRepeat(reverseNode(r.src), r.cycle, r.count, r.mode)
}

// boundaries reports the boundaries of every cycle. Unbounded repetitions
// only report their first cycle.
func (r *repeat[V]) boundaries(dst []time.Duration, offset time.Duration) []time.Duration {
	n := int64(r.count)
	if r.count == Forever {
		n = 1
	}
	for k := range n {
		dst = r.play(k).boundaries(dst, offset+time.Duration(k)*r.cycle)
	}
	return dst
}

func (r *repeat[V]) values() ([]V, bool) {
	if r.count == Forever {
		return nil, false
	}
	var out []V
	for k := range int64(r.count) {
		vs, ok := r.play(k).values()
		if !ok {
			return nil, false
		}
		out = append(out, vs...)
	}
	return out, true
}

func (r *repeat[V]) String() string {
	if r.count == Forever {
		return fmt.Sprintf("Repeat(%s, forever, %s)", r.src, r.mode)
	}
	return fmt.Sprintf("Repeat(%s, %d, %s)", r.src, r.count, r.mode)
}
