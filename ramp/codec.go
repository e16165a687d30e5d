package ramp

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type pointSpec[T any] struct {
	At    float64 `yaml:"at"`
	Value T       `yaml:"value"`
}

// MarshalYAML writes the control points as an ascending list of
// {at, value} entries.
func (g *Graph[T]) MarshalYAML() (interface{}, error) {
	g = g.orFlat()

	ps := make([]pointSpec[T], 0, len(g.keys))
	for _, position := range g.keys {
		ps = append(ps, pointSpec[T]{At: position, Value: g.points[position]})
	}

	return ps, nil
}

// UnmarshalYAML reads the list written by MarshalYAML. A default value set on
// g before decoding is kept and used for missing end points.
func (g *Graph[T]) UnmarshalYAML(value *yaml.Node) error {
	var ps []pointSpec[T]

	if err := value.Decode(&ps); err != nil {
		return err
	}

	decoded := newEmpty(g.defaultValue)

	for _, p := range ps {
		if decoded.Contains(p.At) {
			return fmt.Errorf("%w: duplicate position %g", ErrInvalidParameter, p.At)
		}

		if err := decoded.Set(p.At, p.Value); err != nil {
			return err
		}
	}

	decoded.fillEnds()

	*g = *decoded

	return nil
}
