package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/OMGOMGplays/Doom.NET/engine/core"
)

var (
	// Load was pointed at a path that does not exist.
	ErrFileNotFound = errors.New("map file not found")
	// Save was called with neither a recorded path nor a supplied one.
	ErrNoSavePath = errors.New("no path available to save the map file")
)

// File is a WTF map container. It exclusively owns its entity and brush
// lists; entities and brushes are attached through the Add/Remove
// operations or the constructors that take a *File.
type File struct {
	Path     string
	Entities []*Entity
	Brushes  []*Brush
}

// NewFile constructs an empty map file bound to the given path. The path
// may be empty for an in-memory file; Save then requires an explicit one.
func NewFile(path string) *File {
	return &File{
		Path: path,
	}
}

// AddEntity appends the entity to the file's entity list.
func (f *File) AddEntity(e *Entity) {
	f.Entities = append(f.Entities, e)
}

// RemoveEntity removes the given entity from the entity list, preserving
// the order of the remainder.
func (f *File) RemoveEntity(e *Entity) {
	kept := f.Entities[:0]
	for _, other := range f.Entities {
		if other != e {
			kept = append(kept, other)
		}
	}
	f.Entities = kept
}

// RemoveEntityByID removes every entity carrying the given id. Filtering
// into a fresh ordered list sidesteps the remove-while-iterating hazard;
// under duplicate ids all matches go at once, so removal order is moot.
func (f *File) RemoveEntityByID(id string) {
	kept := f.Entities[:0]
	for _, e := range f.Entities {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.Entities = kept
}

// AddBrush appends the brush to the file's brush list.
func (f *File) AddBrush(b *Brush) {
	f.Brushes = append(f.Brushes, b)
}

// RemoveBrush removes the given brush from the brush list, preserving the
// order of the remainder.
func (f *File) RemoveBrush(b *Brush) {
	kept := f.Brushes[:0]
	for _, other := range f.Brushes {
		if other != b {
			kept = append(kept, other)
		}
	}
	f.Brushes = kept
}

// RemoveBrushByID removes every brush carrying the given id. Same
// collect-then-filter contract as RemoveEntityByID.
func (f *File) RemoveBrushByID(id string) {
	kept := f.Brushes[:0]
	for _, b := range f.Brushes {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.Brushes = kept
}

// FindEntity returns the first entity carrying the given id.
func (f *File) FindEntity(id string) (*Entity, bool) {
	for _, e := range f.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Player returns the first player-class entity in the file.
func (f *File) Player() (*Entity, bool) {
	for _, e := range f.Entities {
		if e.Class == ClassPlayer {
			return e, true
		}
	}
	return nil, false
}

// AssignIDs normalizes identifiers in list order: the entity at index 0
// gets "player" when it is the player, every other entity "entity {i}",
// every brush "brush {i}". IDs are labels for the serialized document, not
// enforced references.
func (f *File) AssignIDs() {
	for i, e := range f.Entities {
		if i == 0 && e.Class == ClassPlayer {
			e.ID = "player"
			continue
		}
		e.ID = fmt.Sprintf("entity %d", i)
	}
	for i, b := range f.Brushes {
		b.ID = fmt.Sprintf("brush %d", i)
	}
}

// Load reads and decodes the WTF document at path into a fresh file. The
// caller's state is untouched on any failure.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f := NewFile(path)
	if err := decodeFile(data, f); err != nil {
		return nil, fmt.Errorf("malformed map file %s: %w", path, err)
	}

	core.LogInfo("loaded map %s (%d entities, %d brushes)", path, len(f.Entities), len(f.Brushes))
	return f, nil
}

// Save normalizes identifiers and writes the serialized document. The
// file's own recorded path takes precedence over the supplied one; with
// neither available the save fails.
func (f *File) Save(path string) error {
	target := f.Path
	if target == "" {
		target = path
	}
	if target == "" {
		return ErrNoSavePath
	}

	f.AssignIDs()

	data, err := encodeFile(f)
	if err != nil {
		return fmt.Errorf("failed to encode map file: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write map file %s: %w", target, err)
	}

	f.Path = target
	core.LogInfo("saved map %s (%d entities, %d brushes)", target, len(f.Entities), len(f.Brushes))
	return nil
}
