package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBBoxCenter(t *testing.T) {
	bbox := NewBBox(NewVec3(-2, -2, -2), NewVec3(2, 2, 2))
	assert.True(t, bbox.Center().Compare(NewVec3Zero(), K_FLOAT_EPSILON))

	// Asymmetric box; center is mins + (maxs-mins)/2, not the origin.
	bbox = NewBBox(NewVec3(0, 0, 0), NewVec3(10, 4, 6))
	assert.True(t, bbox.Center().Compare(NewVec3(5, 2, 3), K_FLOAT_EPSILON))
}

func TestBBoxContains(t *testing.T) {
	bbox := NewBBox(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	assert.True(t, bbox.Contains(NewVec3Zero()))
	assert.True(t, bbox.Contains(NewVec3(1, 1, 1)))
	assert.False(t, bbox.Contains(NewVec3(1.5, 0, 0)))
}
