package engine

import (
	"github.com/OMGOMGplays/Doom.NET/engine/scene"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// World is set by the engine during Initialize, once the start map has
	// been loaded.
	World        *scene.World
	State        interface{}
	FnBoot       Boot
	FnInitialize Initialize
	FnUpdate     Update
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
