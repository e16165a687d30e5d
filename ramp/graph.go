package ramp

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sgostarter/libfeather/lerp"
	"github.com/spf13/cast"
)

// Graph is a continuous line over the ramp domain [0, 1] defined by a sparse
// set of control points, linearly interpolated in between. Positions 0 and 1
// are always defined.
//
// A Graph is not safe for concurrent mutation.
type Graph[T lerp.Lerpable[T]] struct {
	points       map[float64]T
	keys         []float64
	defaultValue T
}

// New builds a graph from points. Missing 0 and 1 entries are filled with the
// default value (see WithDefault).
func New[T lerp.Lerpable[T]](points map[float64]T, opts ...Option[T]) (*Graph[T], error) {
	g := newEmpty(optionNew(opts...).defaultValue)

	for position, v := range points {
		if err := g.Set(position, v); err != nil {
			return nil, err
		}
	}

	g.fillEnds()

	return g, nil
}

// NewFromAny is New with positions coerced to float64, so keys such as 1,
// float32(0.5) or "0.25" are accepted.
func NewFromAny[T lerp.Lerpable[T]](points map[any]T, opts ...Option[T]) (*Graph[T], error) {
	converted := make(map[float64]T, len(points))

	for key, v := range points {
		position, err := cast.ToFloat64E(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %s", ErrInvalidParameter, key, err.Error())
		}

		converted[position] = v
	}

	return New(converted, opts...)
}

// MustNew is New for literal configuration; it panics on an invalid position.
func MustNew[T lerp.Lerpable[T]](points map[float64]T, opts ...Option[T]) *Graph[T] {
	g, err := New(points, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

func newEmpty[T lerp.Lerpable[T]](defaultValue T) *Graph[T] {
	return &Graph[T]{
		points:       make(map[float64]T),
		defaultValue: defaultValue,
	}
}

func (g *Graph[T]) fillEnds() {
	if _, ok := g.points[0]; !ok {
		g.insert(0, g.defaultValue)
	}

	if _, ok := g.points[1]; !ok {
		g.insert(1, g.defaultValue)
	}
}

// orFlat lets a nil or zero graph act as a flat graph of its default value.
func (g *Graph[T]) orFlat() *Graph[T] {
	if g != nil && g.points != nil {
		return g
	}

	var defaultValue T
	if g != nil {
		defaultValue = g.defaultValue
	}

	flat := newEmpty(defaultValue)
	flat.fillEnds()

	return flat
}

func validPosition(position float64) bool {
	return position >= 0 && position <= 1
}

func (g *Graph[T]) insert(position float64, v T) {
	if _, ok := g.points[position]; !ok {
		idx := sort.SearchFloat64s(g.keys, position)
		g.keys = append(g.keys, 0)
		copy(g.keys[idx+1:], g.keys[idx:])
		g.keys[idx] = position
	}

	g.points[position] = v
}

// PointLocations returns the defined positions in ascending order.
func (g *Graph[T]) PointLocations() []float64 {
	g = g.orFlat()

	return append([]float64(nil), g.keys...)
}

func (g *Graph[T]) Len() int {
	return len(g.orFlat().keys)
}

func (g *Graph[T]) Contains(position float64) bool {
	_, ok := g.orFlat().points[position]

	return ok
}

func (g *Graph[T]) Default() T {
	return g.orFlat().defaultValue
}

// ToMap returns a copy of the control points.
func (g *Graph[T]) ToMap() map[float64]T {
	g = g.orFlat()

	m := make(map[float64]T, len(g.points))
	for position, v := range g.points {
		m[position] = v
	}

	return m
}

// Get returns the value at position. Control points are returned as stored;
// any other position in [0, 1] is interpolated between its neighbours.
func (g *Graph[T]) Get(position float64) (v T, err error) {
	g = g.orFlat()

	if stored, ok := g.points[position]; ok {
		v = stored

		return
	}

	if !validPosition(position) {
		err = fmt.Errorf("%w: %g", ErrUnresolvableParameter, position)

		return
	}

	idx := sort.SearchFloat64s(g.keys, position)
	if idx == 0 || idx >= len(g.keys) {
		err = fmt.Errorf("%w: %g has no bracketing control points", ErrUnresolvableParameter, position)

		return
	}

	low, high := g.keys[idx-1], g.keys[idx]
	v = g.points[low].Lerp(g.points[high], (position-low)/(high-low))

	return
}

// Set inserts or overwrites the control point at position. A zero Graph gets
// its end points on the first Set.
func (g *Graph[T]) Set(position float64, v T) error {
	if g == nil {
		return ErrNilGraph
	}

	if math.IsNaN(position) || !validPosition(position) {
		return fmt.Errorf("%w: %g", ErrInvalidParameter, position)
	}

	if g.points == nil {
		g.points = make(map[float64]T)
		g.keys = nil
		g.fillEnds()
	}

	g.insert(position, v)

	return nil
}

func (g *Graph[T]) mustGet(position float64) T {
	v, err := g.Get(position)
	if err != nil {
		// only reachable when the 0/1 invariant has been broken
		panic(err)
	}

	return v
}

// Lerp returns a new graph blending g toward other by t. The result has a
// control point at every position defined in either graph; positions missing
// from one side are interpolated on that side first. Neither input is changed.
func (g *Graph[T]) Lerp(other *Graph[T], t float64) *Graph[T] {
	g = g.orFlat()
	other = other.orFlat()

	result := newEmpty(g.defaultValue)

	for _, keys := range [][]float64{g.keys, other.keys} {
		for _, position := range keys {
			if _, ok := result.points[position]; ok {
				continue
			}

			result.insert(position, g.mustGet(position).Lerp(other.mustGet(position), t))
		}
	}

	return result
}

func (g *Graph[T]) Clone() *Graph[T] {
	g = g.orFlat()

	c := newEmpty(g.defaultValue)
	c.keys = append(c.keys, g.keys...)

	for position, v := range g.points {
		c.points[position] = v
	}

	return c
}

func (g *Graph[T]) String() string {
	g = g.orFlat()

	var ss strings.Builder

	ss.WriteString("{\n")

	for _, position := range g.keys {
		ss.WriteString(fmt.Sprintf("\t%g: %v\n", position, g.points[position]))
	}

	ss.WriteString("}")

	return ss.String()
}
