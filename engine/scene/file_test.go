package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OMGOMGplays/Doom.NET/engine/math"
)

func TestAssignIDs(t *testing.T) {
	f := NewFile("")
	f.AddEntity(NewPlayer())
	f.AddEntity(NewEntity(ClassNPC))
	f.AddEntity(NewEntity(ClassProp))
	NewBrush(f, math.NewVec3Zero(), math.NewVec3One())
	NewBrush(f, math.NewVec3Zero(), math.NewVec3One())

	f.AssignIDs()

	assert.Equal(t, "player", f.Entities[0].ID)
	assert.Equal(t, "entity 1", f.Entities[1].ID)
	assert.Equal(t, "entity 2", f.Entities[2].ID)
	assert.Equal(t, "brush 0", f.Brushes[0].ID)
	assert.Equal(t, "brush 1", f.Brushes[1].ID)
}

func TestAssignIDsNonPlayerFirst(t *testing.T) {
	f := NewFile("")
	f.AddEntity(NewEntity(ClassNPC))
	f.AddEntity(NewPlayer())

	f.AssignIDs()

	// Only a player at index 0 earns the "player" id.
	assert.Equal(t, "entity 0", f.Entities[0].ID)
	assert.Equal(t, "entity 1", f.Entities[1].ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.wtf")

	f := NewFile(path)
	player := NewPlayer()
	player.Position = math.NewVec3(1, 2, 3)
	player.Health = 80
	f.AddEntity(player)

	npc := NewEntity(ClassNPC)
	npc.Position = math.NewVec3(10, 0, -5)
	npc.BBox = math.NewBBox(math.NewVec3(-16, 0, -16), math.NewVec3(16, 64, 16))
	f.AddEntity(npc)

	NewBrush(f, math.NewVec3(-32, 0, -32), math.NewVec3(32, 8, 32))

	require.NoError(t, f.Save(""))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Len(t, loaded.Entities, 2)
	require.Len(t, loaded.Brushes, 1)

	assert.Equal(t, ClassPlayer, loaded.Entities[0].Class)
	assert.Equal(t, "player", loaded.Entities[0].ID)
	assert.True(t, loaded.Entities[0].Position.Compare(math.NewVec3(1, 2, 3), math.K_FLOAT_EPSILON))
	assert.Equal(t, float32(80), loaded.Entities[0].Health)

	assert.Equal(t, ClassNPC, loaded.Entities[1].Class)
	assert.True(t, loaded.Entities[1].BBox.Compare(npc.BBox, math.K_FLOAT_EPSILON))

	assert.True(t, loaded.Brushes[0].BBox.Compare(f.Brushes[0].BBox, math.K_FLOAT_EPSILON))

	// Loaded entities come back unspawned regardless of their state at
	// save time.
	assert.Equal(t, StateUnspawned, loaded.Entities[0].State())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.wtf"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wtf")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestLoadUnknownEntityType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknown.wtf")
	doc := `{"entities":[{"type":"dragon"}],"brushes":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown entity type")
}

func TestLoadNullBrushEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nullbrush.wtf")
	doc := `{"entities":[],"brushes":[null]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	// A null list entry must fail the load, not surface later as a nil
	// brush that crashes AssignIDs/Save.
	_, err := Load(path)
	assert.ErrorContains(t, err, "null brush")
}

func TestLoadNullEntityEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nullentity.wtf")
	doc := `{"entities":[null],"brushes":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	// A null entity decodes to an empty discriminator and fails the
	// closed-variant check.
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown entity type")
}

func TestSaveNoPath(t *testing.T) {
	f := NewFile("")
	assert.ErrorIs(t, f.Save(""), ErrNoSavePath)
}

func TestSavePathPrecedence(t *testing.T) {
	dir := t.TempDir()
	recorded := filepath.Join(dir, "recorded.wtf")
	supplied := filepath.Join(dir, "supplied.wtf")

	f := NewFile(recorded)
	f.AddEntity(NewPlayer())

	// The file's own path wins over the argument.
	require.NoError(t, f.Save(supplied))

	_, err := os.Stat(recorded)
	assert.NoError(t, err)
	_, err = os.Stat(supplied)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveAdoptsSuppliedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adopted.wtf")

	f := NewFile("")
	require.NoError(t, f.Save(path))

	// A pathless file records the supplied path for later saves.
	assert.Equal(t, path, f.Path)
	require.NoError(t, f.Save(""))
}

func TestRemoveEntityByIDDuplicates(t *testing.T) {
	f := NewFile("")
	a := NewEntity(ClassEntity)
	b := NewEntity(ClassEntity)
	c := NewEntity(ClassEntity)
	a.ID, b.ID, c.ID = "dup", "keep", "dup"
	f.AddEntity(a)
	f.AddEntity(b)
	f.AddEntity(c)

	f.RemoveEntityByID("dup")

	require.Len(t, f.Entities, 1)
	assert.Equal(t, "keep", f.Entities[0].ID)
}

func TestRemoveEntityPreservesOrder(t *testing.T) {
	f := NewFile("")
	entities := make([]*Entity, 4)
	for i := range entities {
		entities[i] = NewEntity(ClassEntity)
		f.AddEntity(entities[i])
	}

	f.RemoveEntity(entities[1])

	require.Len(t, f.Entities, 3)
	assert.Same(t, entities[0], f.Entities[0])
	assert.Same(t, entities[2], f.Entities[1])
	assert.Same(t, entities[3], f.Entities[2])
}

func TestFindEntity(t *testing.T) {
	f := NewFile("")
	e := NewEntity(ClassEntity)
	e.ID = "target"
	f.AddEntity(e)

	found, ok := f.FindEntity("target")
	assert.True(t, ok)
	assert.Same(t, e, found)

	_, ok = f.FindEntity("missing")
	assert.False(t, ok)
}

func TestPlayerLookup(t *testing.T) {
	f := NewFile("")
	_, ok := f.Player()
	assert.False(t, ok)

	f.AddEntity(NewEntity(ClassNPC))
	p := NewPlayer()
	f.AddEntity(p)

	found, ok := f.Player()
	assert.True(t, ok)
	assert.Same(t, p, found)
}
