package scene

import (
	"github.com/OMGOMGplays/Doom.NET/engine/core"
	"github.com/OMGOMGplays/Doom.NET/engine/math"
)

// behavior holds the per-class hooks. Variants override individual hooks
// and embed baseBehavior for the rest, which replaces the subclass
// hierarchy of the original prototype with a closed table.
type behavior interface {
	onSpawn(e *Entity)
	onDamage(e *Entity, amount float32, source *Entity)
	onDeath(e *Entity)
	onXDeath(e *Entity)
	think(e *Entity, delta float64)
}

// behaviors is the closed variant table consulted by NewEntity and the
// map codec.
var behaviors = map[Class]behavior{
	ClassEntity: baseBehavior{},
	ClassPlayer: playerBehavior{},
	ClassNPC:    npcBehavior{},
	ClassProp:   baseBehavior{},
}

type baseBehavior struct{}

func (baseBehavior) onSpawn(e *Entity) {}

// onDamage owns the lifecycle transition out of alive. The gib check runs
// first so a single massive hit skips the plain death state.
func (baseBehavior) onDamage(e *Entity, amount float32, source *Entity) {
	if e.Health <= GibHealthThreshold {
		e.gib()
	} else if e.Health <= 0 {
		e.die()
	}
}

func (baseBehavior) onDeath(e *Entity) {}

func (baseBehavior) onXDeath(e *Entity) {}

func (baseBehavior) think(e *Entity, delta float64) {}

type playerBehavior struct {
	baseBehavior
}

func (playerBehavior) onSpawn(e *Entity) {
	core.LogInfo("player %s spawned at [%.2f, %.2f, %.2f]", e.ID, e.Position.X, e.Position.Y, e.Position.Z)
}

func (playerBehavior) onDeath(e *Entity) {
	if e.LastAttacker != nil {
		core.LogInfo("player %s was killed by %s", e.ID, e.LastAttacker.ID)
		return
	}
	core.LogInfo("player %s died", e.ID)
}

func (playerBehavior) onXDeath(e *Entity) {
	core.LogInfo("player %s was gibbed", e.ID)
}

type npcBehavior struct {
	baseBehavior
}

// think gives NPCs a lazy wander: every 1-3 seconds a small horizontal
// impulse in a random direction.
func (npcBehavior) think(e *Entity, delta float64) {
	e.age += delta
	if e.age < e.wanderAt {
		return
	}
	dir := math.NewVec3(math.FKRandomInRange(-1, 1), 0, math.FKRandomInRange(-1, 1))
	if dir.Length() > math.K_FLOAT_EPSILON {
		speed := math.FKRandomInRange(1.0, 3.0)
		e.Velocity = e.Velocity.Add(dir.Normalize().MulScalar(speed))
	}
	e.wanderAt = e.age + float64(math.FKRandomInRange(1.0, 3.0))
}
