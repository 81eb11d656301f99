package testbed

import (
	"fmt"

	"github.com/OMGOMGplays/Doom.NET/engine"
	"github.com/OMGOMGplays/Doom.NET/engine/core"
	"github.com/OMGOMGplays/Doom.NET/engine/math"
	"github.com/OMGOMGplays/Doom.NET/engine/scene"
)

const moveSpeed float32 = 50.0

type TestGame struct {
	*engine.Game
}

type gameState struct {
	player *scene.Entity

	width  uint32
	height uint32
}

func NewTestGame() (*TestGame, error) {
	config, err := engine.LoadApplicationConfig("config.toml")
	if err != nil {
		core.LogWarn("no config.toml found, using defaults: %s", err)
		config = engine.DefaultApplicationConfig()
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")
	return nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.World == nil {
		return fmt.Errorf("the engine has not attached a world yet")
	}

	state := g.State.(*gameState)
	file := g.World.File()

	// The player always lives at index 0. Maps authored without one get a
	// fresh player prepended.
	player, ok := file.Player()
	if !ok {
		player = scene.NewPlayer()
		file.Entities = append([]*scene.Entity{player}, file.Entities...)
	}
	state.player = player

	// A couple of world brushes to stand in for level geometry when the
	// map brought none of its own.
	if len(file.Brushes) == 0 {
		scene.NewBrush(file, math.NewVec3(-64, 0, -64), math.NewVec3(64, 8, 64))
		scene.NewBrush(file, math.NewVec3(-16, 8, 32), math.NewVec3(16, 40, 48))
	}

	for _, e := range file.Entities {
		e.Spawn(g.World)
	}

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g.gameOnKey)
	core.EventRegister(core.EVENT_CODE_MAP_CHANGED, g.gameOnMapChanged)

	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	player := state.player

	if player == nil || !player.Alive() {
		return nil
	}

	impulse := math.NewVec3Zero()
	if core.InputIsKeyDown(core.KEY_W) || core.InputIsKeyDown(core.KEY_UP) {
		impulse.Z -= 1
	}
	if core.InputIsKeyDown(core.KEY_S) || core.InputIsKeyDown(core.KEY_DOWN) {
		impulse.Z += 1
	}
	if core.InputIsKeyDown(core.KEY_A) || core.InputIsKeyDown(core.KEY_LEFT) {
		impulse.X -= 1
	}
	if core.InputIsKeyDown(core.KEY_D) || core.InputIsKeyDown(core.KEY_RIGHT) {
		impulse.X += 1
	}

	if impulse.Length() > math.K_FLOAT_EPSILON {
		player.Velocity = player.Velocity.Add(impulse.Normalize().MulScalar(moveSpeed * float32(deltaTime)))
	}

	if core.InputIsKeyUp(core.KEY_P) && core.InputWasKeyDown(core.KEY_P) {
		fps, frameTime := core.MetricsFrame()
		core.LogDebug("FPS: %5.1f(%4.1fms) Pos:[%.2f, %.2f, %.2f]",
			fps, frameTime, player.Position.X, player.Position.Y, player.Position.Z)
	}

	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)

	state.width = width
	state.height = height

	return nil
}

func (g *TestGame) Shutdown() error {
	return nil
}

func (g *TestGame) gameOnKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return
	}

	switch ke.KeyCode {
	case core.KEY_F5:
		file := g.World.File()
		if err := file.Save("quicksave.wtf"); err != nil {
			core.LogError("quicksave failed: %s", err)
		}
	case core.KEY_K:
		// Debug: kill the player through the event path.
		state := g.State.(*gameState)
		g.World.Dispatch(state.player, scene.Event{Kind: scene.EventKill})
	}
}

func (g *TestGame) gameOnMapChanged(context core.EventContext) {
	path, ok := context.Data.(string)
	if !ok {
		return
	}
	core.LogInfo("map %s changed on disk", path)

	f, err := scene.Load(path)
	if err != nil {
		core.LogError("hot reload failed: %s", err)
		return
	}

	g.World.SetFile(f)
	state := g.State.(*gameState)
	player, ok := f.Player()
	if !ok {
		player = scene.NewPlayer()
		f.Entities = append([]*scene.Entity{player}, f.Entities...)
	}
	state.player = player
	for _, e := range f.Entities {
		e.Spawn(g.World)
	}
}
