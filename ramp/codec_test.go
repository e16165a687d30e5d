package ramp

import (
	"errors"
	"testing"

	"github.com/sgostarter/libfeather/barb"
	"github.com/sgostarter/libfeather/lerp"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestYAMLScalarGraph(t *testing.T) {
	g := MustNew(map[float64]lerp.Scalar{0.5: 10})

	d, err := yaml.Marshal(g)
	assert.Nil(t, err)
	assert.Equal(t, "- at: 0\n  value: 0\n- at: 0.5\n  value: 10\n- at: 1\n  value: 0\n", string(d))

	var decoded Graph[lerp.Scalar]

	err = yaml.Unmarshal(d, &decoded)
	assert.Nil(t, err)
	assert.Equal(t, g.ToMap(), decoded.ToMap())
}

func TestYAMLBarbGraph(t *testing.T) {
	src := `
- at: 0.5
  value: {position: 0.5, length: 2, startAngle: 10, endAngle: 20}
`

	var g Graph[barb.Parameters]

	err := yaml.Unmarshal([]byte(src), &g)
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, g.PointLocations())

	p, err := g.Get(0.5)
	assert.Nil(t, err)
	assert.Equal(t, barb.NewParameters(0.5, 2, 10, 20), p)
}

func TestYAMLRejectsBadPositions(t *testing.T) {
	var g Graph[lerp.Scalar]

	err := yaml.Unmarshal([]byte("- at: 2\n  value: 1\n"), &g)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	err = yaml.Unmarshal([]byte("- at: 0.5\n  value: 1\n- at: 0.5\n  value: 2\n"), &g)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
