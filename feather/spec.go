package feather

import (
	"fmt"
	"strings"

	"github.com/sgostarter/libfeather/vec3"
	"github.com/spf13/cast"
)

const (
	RachisName          = "rachis_geo"
	BarbName            = "feather_barb"
	BarbGroupName       = "barbs_grp"
	FeatherGroupName    = "feather_barbs_geo_grp"
	DefaultDupeGroup    = "dupe_group_grp"
	BarbFitTolerance    = 0.01
	FlattenFactor       = 1e-5
	MergeVertexDistance = 0.05
)

type RachisSpec struct {
	Length      float64 `yaml:"length" json:"length"`
	Radius      float64 `yaml:"radius" json:"radius"`
	BarbDensity int     `yaml:"barbDensity" json:"barbDensity"`
	Taper       float64 `yaml:"taper" json:"taper"`
}

func (spec RachisSpec) Check() error {
	if spec.Length <= 0 || spec.Radius <= 0 {
		return fmt.Errorf("%w: rachis length and radius must be positive", ErrBadSpec)
	}

	if spec.BarbDensity < 1 {
		return fmt.Errorf("%w: barb density must be at least 1", ErrBadSpec)
	}

	return nil
}

type FillSpec struct {
	Edges        string        `yaml:"edges" json:"edges"`
	Subdivisions int           `yaml:"subdivisions" json:"subdivisions"`
	Taper        float64       `yaml:"taper" json:"taper"`
	Mode         ComponentMode `yaml:"mode,omitempty" json:"mode,omitempty"`
}

func (spec FillSpec) components() ([]int, error) {
	components, err := ParseComponentList(spec.Edges)
	if err != nil {
		return nil, err
	}

	if spec.Subdivisions < 0 {
		return nil, fmt.Errorf("%w: negative subdivisions", ErrBadSpec)
	}

	return components, nil
}

type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

func ParseAxis(s string) (Axis, error) {
	switch a := Axis(strings.ToLower(strings.TrimSpace(s))); a {
	case AxisX, AxisY, AxisZ:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadAxis, s)
	}
}

func (a Axis) apply(v vec3.Vec3, factor float64) vec3.Vec3 {
	switch a {
	case AxisX:
		v.X *= factor
	case AxisY:
		v.Y *= factor
	case AxisZ:
		v.Z *= factor
	}

	return v
}

type ScaleSpec struct {
	Factor    float64 `yaml:"factor" json:"factor"`
	Primary   string  `yaml:"primary" json:"primary"`
	Secondary string  `yaml:"secondary" json:"secondary"`
}

func (spec ScaleSpec) axes() (primary, secondary Axis, err error) {
	if primary, err = ParseAxis(spec.Primary); err != nil {
		return
	}

	if secondary, err = ParseAxis(spec.Secondary); err != nil {
		return
	}

	if spec.Factor < 0 {
		err = fmt.Errorf("%w: negative scale factor", ErrBadSpec)
	}

	return
}

// ParseComponentList parses a component index list such as "0, 2" or "1 3".
func ParseComponentList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty component list", ErrBadSpec)
	}

	ids := make([]int, 0, len(fields))

	for _, field := range fields {
		id, err := cast.ToIntE(field)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: bad component index %q", ErrBadSpec, field)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
