package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventRegisterAndFire(t *testing.T) {
	EventSystemInitialize()
	defer EventSystemShutdown()

	var received []EventContext
	EventRegister(EVENT_CODE_MAP_CHANGED, func(context EventContext) {
		received = append(received, context)
	})

	fired := EventFire(EventContext{Type: EVENT_CODE_MAP_CHANGED, Data: "maps/e1m1.wtf"})

	assert.True(t, fired)
	assert.Len(t, received, 1)
	assert.Equal(t, "maps/e1m1.wtf", received[0].Data)
}

func TestEventFireWithoutListeners(t *testing.T) {
	EventSystemInitialize()
	defer EventSystemShutdown()

	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
}
