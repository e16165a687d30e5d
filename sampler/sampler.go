package sampler

import (
	"iter"

	"github.com/sgostarter/libfeather/lerp"
	"github.com/sgostarter/libfeather/ramp"
)

// Resolved is the value resolved for one anchor.
type Resolved[A, T any] struct {
	Index    int
	Anchor   A
	Position float64
	Value    T
}

// Position maps anchor index i of n onto the ramp domain. The first anchor is
// always at 0 and, when n > 1, the last one at 1. A single anchor resolves at 0.
func Position(i, n int) float64 {
	return float64(i) / float64(max(n-1, 1))
}

func Positions(n int) []float64 {
	ps := make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		ps = append(ps, Position(i, n))
	}

	return ps
}

// Resolve lazily queries g once per anchor, in anchor order. Every iteration
// of the returned sequence starts over from the first anchor. On a lookup
// failure the error is yielded once and the sequence ends.
func Resolve[A any, T lerp.Lerpable[T]](anchors []A, g *ramp.Graph[T]) iter.Seq2[Resolved[A, T], error] {
	return func(yield func(Resolved[A, T], error) bool) {
		n := len(anchors)

		for i, anchor := range anchors {
			position := Position(i, n)

			v, err := g.Get(position)
			if err != nil {
				yield(Resolved[A, T]{Index: i, Anchor: anchor, Position: position}, err)

				return
			}

			if !yield(Resolved[A, T]{Index: i, Anchor: anchor, Position: position, Value: v}, nil) {
				return
			}
		}
	}
}

// ResolveAll resolves every anchor. Either all anchors resolve or nothing is
// returned.
func ResolveAll[A any, T lerp.Lerpable[T]](anchors []A, g *ramp.Graph[T]) (rs []Resolved[A, T], err error) {
	rs = make([]Resolved[A, T], 0, len(anchors))

	for r, e := range Resolve(anchors, g) {
		if e != nil {
			return nil, e
		}

		rs = append(rs, r)
	}

	return
}
