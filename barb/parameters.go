package barb

import (
	"fmt"

	"github.com/sgostarter/libfeather/lerp"
	"gopkg.in/yaml.v3"
)

// Parameters is the set of values that shape one barb. It is immutable once
// constructed; use NewParameters to build one.
type Parameters struct {
	position   float64
	length     float64
	startAngle float64
	endAngle   float64
}

// Spec is the plain, serializable form of Parameters.
type Spec struct {
	Position   float64 `yaml:"position" json:"position"`
	Length     float64 `yaml:"length" json:"length"`
	StartAngle float64 `yaml:"startAngle" json:"startAngle"`
	EndAngle   float64 `yaml:"endAngle" json:"endAngle"`
}

// NewParameters builds a parameter set. position is clamped to [0, 1]; length
// and the angles (degrees) are kept as given.
func NewParameters(position, length, startAngle, endAngle float64) Parameters {
	return Parameters{
		position:   clamp01(position),
		length:     length,
		startAngle: startAngle,
		endAngle:   endAngle,
	}
}

func FromSpec(spec Spec) Parameters {
	return NewParameters(spec.Position, spec.Length, spec.StartAngle, spec.EndAngle)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

func (p Parameters) Position() float64 {
	return p.position
}

func (p Parameters) Length() float64 {
	return p.length
}

func (p Parameters) StartAngle() float64 {
	return p.startAngle
}

func (p Parameters) EndAngle() float64 {
	return p.endAngle
}

func (p Parameters) Spec() Spec {
	return Spec{
		Position:   p.position,
		Length:     p.length,
		StartAngle: p.startAngle,
		EndAngle:   p.endAngle,
	}
}

// Lerp blends every field independently toward other.
func (p Parameters) Lerp(other Parameters, t float64) Parameters {
	return NewParameters(
		lerp.Float(p.position, other.position, t),
		lerp.Float(p.length, other.length, t),
		lerp.Float(p.startAngle, other.startAngle, t),
		lerp.Float(p.endAngle, other.endAngle, t),
	)
}

func (p Parameters) String() string {
	return fmt.Sprintf("position: %g, length: %g, start angle: %g, end angle: %g",
		p.position, p.length, p.startAngle, p.endAngle)
}

func (p Parameters) MarshalYAML() (interface{}, error) {
	return p.Spec(), nil
}

func (p *Parameters) UnmarshalYAML(value *yaml.Node) error {
	var spec Spec

	if err := value.Decode(&spec); err != nil {
		return err
	}

	*p = FromSpec(spec)

	return nil
}
