package core

import (
	"errors"
)

// A subsystem operation ran before its Initialize call.
var ErrNotInitialized = errors.New("subsystem not initialized")
