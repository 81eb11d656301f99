package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OMGOMGplays/Doom.NET/engine/core"
)

func TestCursorPosCallbackClampsNegative(t *testing.T) {
	require.NoError(t, core.InputInitialize())

	cursorPosCallback(nil, 10, 10)
	cursorPosCallback(nil, -32.5, -7.0)

	// Negative drag coordinates clamp to the window edge instead of
	// wrapping through the unsigned conversion.
	x, y := core.InputGetMousePosition()
	assert.Equal(t, int32(0), x)
	assert.Equal(t, int32(0), y)
}
