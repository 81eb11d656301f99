package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OMGOMGplays/Doom.NET/engine/core"
)

func TestLoadApplicationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[window]
width = 1920
height = 1080
title = "Test Window"

[log]
level = "warn"

[assets]
base_path = "data"
start_map = "e1m1"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(1920), config.StartWidth)
	assert.Equal(t, uint32(1080), config.StartHeight)
	assert.Equal(t, "Test Window", config.Name)
	assert.Equal(t, core.WarnLevel, config.LogLevel)
	assert.Equal(t, "data", config.AssetBasePath)
	assert.Equal(t, "e1m1", config.StartMap)

	// Fields the file omits keep their defaults.
	assert.Equal(t, uint32(100), config.StartPosX)
}

func TestLoadApplicationConfigMissingFile(t *testing.T) {
	_, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.InfoLevel, parseLogLevel("info"))
	assert.Equal(t, core.WarnLevel, parseLogLevel("WARNING"))
	assert.Equal(t, core.FatalLevel, parseLogLevel("fatal"))
	assert.Equal(t, core.DebugLevel, parseLogLevel("bogus"))
}
