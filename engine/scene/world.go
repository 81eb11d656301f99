package scene

// World is the single owner of per-frame updates: it holds the active map
// file and an explicit registry of entities to update each tick. Entities
// join via Spawn and leave via Unregister (or a Delete event). The engine
// frame loop is the only caller of Tick, so no locking is needed.
type World struct {
	file     *File
	updaters []*Entity
}

func NewWorld(f *File) *World {
	return &World{
		file: f,
	}
}

// File returns the active map file.
func (w *World) File() *File {
	return w.file
}

// SetFile swaps the active map file and drops the updater registry; the
// caller re-spawns whatever should live in the new map.
func (w *World) SetFile(f *File) {
	w.file = f
	w.updaters = nil
}

// Register adds the entity to the per-frame registry. Duplicate
// registrations are ignored.
func (w *World) Register(e *Entity) {
	for _, other := range w.updaters {
		if other == e {
			return
		}
	}
	w.updaters = append(w.updaters, e)
}

// Unregister removes the entity from the per-frame registry.
func (w *World) Unregister(e *Entity) {
	kept := w.updaters[:0]
	for _, other := range w.updaters {
		if other != e {
			kept = append(kept, other)
		}
	}
	w.updaters = kept
}

// Registered reports whether the entity is in the per-frame registry.
func (w *World) Registered(e *Entity) bool {
	for _, other := range w.updaters {
		if other == e {
			return true
		}
	}
	return false
}

// Tick updates every registered entity once. A snapshot is iterated so
// handlers may unregister entities mid-frame without skipping others.
func (w *World) Tick(delta float64) {
	snapshot := make([]*Entity, len(w.updaters))
	copy(snapshot, w.updaters)
	for _, e := range snapshot {
		e.Update(delta)
	}
}

// Dispatch delivers an event to the target entity within this world.
func (w *World) Dispatch(target *Entity, ev Event) {
	if target == nil {
		return
	}
	target.HandleEvent(w, ev)
}
