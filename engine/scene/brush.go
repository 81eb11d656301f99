package scene

import (
	"github.com/OMGOMGplays/Doom.NET/engine/math"
)

// Brush is an axis-aligned box volume that can be promoted into an entity.
type Brush struct {
	BBox math.BBox `json:"bbox"`
	ID   string    `json:"id"`
}

// NewBrush constructs a brush from the supplied corners and registers it
// with the given map file. A nil file leaves the brush standalone.
func NewBrush(f *File, mins, maxs math.Vec3) *Brush {
	b := &Brush{
		BBox: math.NewBBox(mins, maxs),
	}
	if f != nil {
		f.AddBrush(b)
	}
	return b
}

// Center returns the center point of the brush volume.
func (b *Brush) Center() math.Vec3 {
	return b.BBox.Center()
}

// TurnIntoEntity promotes the brush: the target entity takes the brush's
// bounding box and its computed center as position, the brush leaves the
// file's brush list and the target joins the entity list. The caller is
// responsible for passing the file that actually holds the brush; no
// cross-file check is performed.
func (b *Brush) TurnIntoEntity(f *File, target *Entity) {
	target.BBox = b.BBox
	target.Position = b.BBox.Center()
	if f != nil {
		f.RemoveBrush(b)
		f.AddEntity(target)
	}
}
