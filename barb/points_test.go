package barb

import (
	"testing"

	"github.com/sgostarter/libfeather/vec3"
	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, expected, actual vec3.Vec3) {
	t.Helper()

	assert.InDelta(t, expected.X, actual.X, 1e-9)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9)
	assert.InDelta(t, expected.Z, actual.Z, 1e-9)
}

func TestCurvePointsStraight(t *testing.T) {
	origin := vec3.New(1, 2, 3)
	ps := CurvePoints(origin, NewParameters(0, 4, 0, 0))

	assert.Equal(t, origin, ps[0])
	assertVecInDelta(t, vec3.New(1, 2, 4), ps[1])
	assertVecInDelta(t, vec3.New(1, 2, 5), ps[2])
	assertVecInDelta(t, vec3.New(1, 2, 7), ps[3])
}

func TestCurvePointsBent(t *testing.T) {
	ps := CurvePoints(vec3.New(0, -1, 0), NewParameters(0.5, 4, 0, 90))

	assertVecInDelta(t, vec3.New(0, -1, 2), ps[2])
	assertVecInDelta(t, vec3.New(2, -1, 2), ps[3])

	for _, p := range ps {
		assert.EqualValues(t, -1, p.Y)
	}
}
