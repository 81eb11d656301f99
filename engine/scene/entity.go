package scene

import (
	"github.com/google/uuid"

	"github.com/OMGOMGplays/Doom.NET/engine/core"
	"github.com/OMGOMGplays/Doom.NET/engine/math"
)

// Class discriminates entity variants. The set is closed: every class maps
// to a behavior in the behaviors table, and the map codec rejects anything
// else.
type Class string

const (
	ClassEntity Class = "entity"
	ClassPlayer Class = "player"
	ClassNPC    Class = "npc"
	ClassProp   Class = "prop"
)

// State tracks the entity lifecycle. Gibbed is the sub-terminal variant of
// dead, entered when damage pushes health at or below GibHealthThreshold.
type State uint8

const (
	StateUnspawned State = iota
	StateAlive
	StateDead
	StateGibbed
)

const (
	// Starting health for freshly constructed entities.
	DefaultHealth float32 = 100.0
	// At or below this health a lethal hit gibs instead of a plain death.
	GibHealthThreshold float32 = -25.0
	// Per-frame velocity decay factor.
	DragFactor float32 = 0.9
	// Below this speed the velocity snaps to zero.
	VelocityRestThreshold float32 = 0.5
)

// EventKind is the closed enumeration of entity events.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKill
	EventDelete
	EventTakeDamage
	EventSetPosition
	EventSetRotation
	EventSetBBox
	EventSpawnEntity
)

// Event is a single message delivered to an entity. Data carries the
// kind-specific payload; a payload of the wrong type is ignored.
type Event struct {
	Kind   EventKind
	Data   interface{}
	Source *Entity
}

// Entity is a positioned, optionally living game object. Variants share
// this shape and differ only by the behavior hooks selected by Class.
type Entity struct {
	ID       string
	Class    Class
	Position math.Vec3
	Rotation math.Quaternion
	BBox     math.BBox
	Health   float32
	Velocity math.Vec3

	Target       *Entity
	LastAttacker *Entity

	state State
	hooks behavior

	// NPC wander bookkeeping, advanced by think.
	age      float64
	wanderAt float64
}

// NewEntity constructs an entity of the given class with a provisional
// uuid identifier. Save-time normalization replaces the identifier with a
// stable one.
func NewEntity(class Class) *Entity {
	hooks, ok := behaviors[class]
	if !ok {
		hooks = baseBehavior{}
	}
	return &Entity{
		ID:       uuid.NewString(),
		Class:    class,
		Rotation: math.NewQuatIdentity(),
		Health:   DefaultHealth,
		hooks:    hooks,
	}
}

// NewPlayer constructs the player entity.
func NewPlayer() *Entity {
	return NewEntity(ClassPlayer)
}

func (e *Entity) State() State {
	return e.state
}

func (e *Entity) Alive() bool {
	return e.state == StateAlive
}

// Spawn brings an unspawned entity to life: velocity is zeroed, the entity
// joins the world's per-frame registry and the spawn hook runs. Spawning an
// already spawned or dead entity does nothing.
func (e *Entity) Spawn(w *World) {
	if e.state != StateUnspawned {
		return
	}
	e.Velocity = math.NewVec3Zero()
	e.state = StateAlive
	w.Register(e)
	e.hooks.onSpawn(e)
}

// TakeDamage applies damage from source while alive. The damage hook owns
// the death transition: health at or below zero kills, at or below the gib
// threshold gibs.
func (e *Entity) TakeDamage(amount float32, source *Entity) {
	if !e.Alive() {
		return
	}
	e.Health -= amount
	e.LastAttacker = source
	e.hooks.onDamage(e, amount, source)
}

// die moves an alive entity to the plain dead state.
func (e *Entity) die() {
	if !e.Alive() {
		return
	}
	e.state = StateDead
	e.hooks.onDeath(e)
}

// gib moves an alive entity to the gibbed variant of dead.
func (e *Entity) gib() {
	if !e.Alive() {
		return
	}
	e.state = StateGibbed
	e.hooks.onXDeath(e)
}

// Update advances the entity by one frame. Only alive entities move:
// position integrates velocity over the elapsed time, velocity decays by
// the drag factor and snaps to zero below the rest threshold.
func (e *Entity) Update(delta float64) {
	if !e.Alive() {
		return
	}

	e.hooks.think(e, delta)

	e.Position = e.Position.Add(e.Velocity.MulScalar(float32(delta)))
	e.Velocity = e.Velocity.MulScalar(DragFactor)
	if e.Velocity.Length() < VelocityRestThreshold {
		e.Velocity = math.NewVec3Zero()
	}
}

// HandleEvent dispatches an event to the entity. Unrecognized kinds and
// payloads of the wrong type are silently ignored.
func (e *Entity) HandleEvent(w *World, ev Event) {
	switch ev.Kind {
	case EventKill:
		e.die()

	case EventDelete:
		if w != nil {
			if f := w.File(); f != nil {
				f.RemoveEntity(e)
			}
			w.Unregister(e)
		}

	case EventTakeDamage:
		if amount, ok := ev.Data.(float32); ok {
			e.TakeDamage(amount, ev.Source)
		}

	case EventSetPosition:
		if pos, ok := ev.Data.(math.Vec3); ok {
			e.Position = pos
		}

	case EventSetRotation:
		if rot, ok := ev.Data.(math.Quaternion); ok {
			e.Rotation = rot
		}

	case EventSetBBox:
		if bbox, ok := ev.Data.(math.BBox); ok {
			e.BBox = bbox
		}

	case EventSpawnEntity:
		other, ok := ev.Data.(*Entity)
		if !ok || w == nil {
			return
		}
		if f := w.File(); f != nil {
			f.AddEntity(other)
		}
		other.Spawn(w)

	default:
		// EventNone and anything beyond the closed set fall through.
		core.LogDebug("entity %s ignoring event kind %d", e.ID, ev.Kind)
	}
}
