package engine

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/OMGOMGplays/Doom.NET/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Directory holding the assets tree. Relative to the working directory.
	AssetBasePath string
	// Map loaded on startup, by name (no extension). Empty starts with a
	// blank in-memory map.
	StartMap string
}

// applicationConfigDoc is the on-disk shape of the config.
type applicationConfigDoc struct {
	Window struct {
		PosX   uint32 `toml:"pos_x"`
		PosY   uint32 `toml:"pos_y"`
		Width  uint32 `toml:"width"`
		Height uint32 `toml:"height"`
		Title  string `toml:"title"`
	} `toml:"window"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Assets struct {
		BasePath string `toml:"base_path"`
		StartMap string `toml:"start_map"`
	} `toml:"assets"`
}

// DefaultApplicationConfig returns the configuration used when no config
// file is present.
func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:     100,
		StartPosY:     100,
		StartWidth:    1280,
		StartHeight:   720,
		Name:          "Doom.NET",
		LogLevel:      core.DebugLevel,
		AssetBasePath: "assets",
		StartMap:      "",
	}
}

// LoadApplicationConfig reads a TOML config file, filling in defaults for
// anything the file leaves out.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc applicationConfigDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	config := DefaultApplicationConfig()
	if doc.Window.PosX != 0 {
		config.StartPosX = doc.Window.PosX
	}
	if doc.Window.PosY != 0 {
		config.StartPosY = doc.Window.PosY
	}
	if doc.Window.Width != 0 {
		config.StartWidth = doc.Window.Width
	}
	if doc.Window.Height != 0 {
		config.StartHeight = doc.Window.Height
	}
	if doc.Window.Title != "" {
		config.Name = doc.Window.Title
	}
	if doc.Log.Level != "" {
		config.LogLevel = parseLogLevel(doc.Log.Level)
	}
	if doc.Assets.BasePath != "" {
		config.AssetBasePath = doc.Assets.BasePath
	}
	config.StartMap = doc.Assets.StartMap

	return config, nil
}

func parseLogLevel(level string) core.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return core.DebugLevel
	case "info":
		return core.InfoLevel
	case "warn", "warning":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	case "fatal":
		return core.FatalLevel
	default:
		return core.DebugLevel
	}
}
