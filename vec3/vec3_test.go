package vec3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)

	assert.Equal(t, New(5, 7, 9), a.Add(b))
	assert.Equal(t, New(3, 3, 3), b.Sub(a))
	assert.Equal(t, New(4, 10, 18), a.MulComponents(b))
	assert.Equal(t, "(1, 2, 3)", a.String())
}
