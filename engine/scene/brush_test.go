package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OMGOMGplays/Doom.NET/engine/math"
)

func TestNewBrushRegisters(t *testing.T) {
	f := NewFile("")
	b := NewBrush(f, math.NewVec3(-1, -1, -1), math.NewVec3(1, 1, 1))

	require.Len(t, f.Brushes, 1)
	assert.Same(t, b, f.Brushes[0])
}

func TestNewBrushStandalone(t *testing.T) {
	b := NewBrush(nil, math.NewVec3Zero(), math.NewVec3One())
	assert.NotNil(t, b)
}

func TestBrushCenter(t *testing.T) {
	b := NewBrush(nil, math.NewVec3(0, 0, 0), math.NewVec3(4, 8, 12))
	assert.True(t, b.Center().Compare(math.NewVec3(2, 4, 6), math.K_FLOAT_EPSILON))
}

func TestTurnIntoEntity(t *testing.T) {
	f := NewFile("")
	b := NewBrush(f, math.NewVec3(0, 0, 0), math.NewVec3(8, 8, 8))
	target := NewEntity(ClassProp)

	b.TurnIntoEntity(f, target)

	// The target takes the brush's volume and sits at its center; the
	// brush leaves the file and the target joins it.
	assert.True(t, target.BBox.Compare(b.BBox, math.K_FLOAT_EPSILON))
	assert.True(t, target.Position.Compare(math.NewVec3(4, 4, 4), math.K_FLOAT_EPSILON))
	assert.Empty(t, f.Brushes)
	require.Len(t, f.Entities, 1)
	assert.Same(t, target, f.Entities[0])
}

func TestTurnIntoEntityKeepsLifecycle(t *testing.T) {
	f := NewFile("")
	b := NewBrush(f, math.NewVec3Zero(), math.NewVec3One())
	target := NewEntity(ClassEntity)

	b.TurnIntoEntity(f, target)

	// Promotion moves geometry, not lifecycle: the target still needs a
	// spawn before it participates in updates.
	assert.Equal(t, StateUnspawned, target.State())
}
