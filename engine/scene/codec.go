package scene

import (
	"encoding/json"
	"fmt"

	"github.com/OMGOMGplays/Doom.NET/engine/math"
)

// The WTF wire format is a single JSON object with ordered entity and
// brush lists. Each entity object carries a "type" discriminator that
// selects the variant constructor on decode. There is no version field.

type entityDoc struct {
	Type     Class           `json:"type"`
	ID       string          `json:"id"`
	Position math.Vec3       `json:"position"`
	Rotation math.Quaternion `json:"rotation"`
	BBox     math.BBox       `json:"bbox"`
	Health   float32         `json:"health"`
	Velocity math.Vec3       `json:"velocity"`
}

type fileDoc struct {
	Entities []entityDoc `json:"entities"`
	Brushes  []*Brush    `json:"brushes"`
}

func encodeFile(f *File) ([]byte, error) {
	doc := fileDoc{
		Entities: make([]entityDoc, 0, len(f.Entities)),
		Brushes:  f.Brushes,
	}
	for _, e := range f.Entities {
		doc.Entities = append(doc.Entities, entityDoc{
			Type:     e.Class,
			ID:       e.ID,
			Position: e.Position,
			Rotation: e.Rotation,
			BBox:     e.BBox,
			Health:   e.Health,
			Velocity: e.Velocity,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

func decodeFile(data []byte, f *File) error {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	f.Entities = make([]*Entity, 0, len(doc.Entities))
	for _, ed := range doc.Entities {
		// The variant set is closed: an unlisted discriminator is a
		// format error, not a default entity.
		if _, ok := behaviors[ed.Type]; !ok {
			return fmt.Errorf("unknown entity type %q", ed.Type)
		}
		e := NewEntity(ed.Type)
		if ed.ID != "" {
			e.ID = ed.ID
		}
		e.Position = ed.Position
		e.Rotation = ed.Rotation
		e.BBox = ed.BBox
		e.Health = ed.Health
		e.Velocity = ed.Velocity
		f.Entities = append(f.Entities, e)
	}

	// Null list entries are a format error, not a deferred crash.
	f.Brushes = make([]*Brush, 0, len(doc.Brushes))
	for i, b := range doc.Brushes {
		if b == nil {
			return fmt.Errorf("null brush at index %d", i)
		}
		f.Brushes = append(f.Brushes, b)
	}
	return nil
}
