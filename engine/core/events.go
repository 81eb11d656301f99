package core

import "sync"

// Engine-internal event codes. Application should use codes beyond 255.
type EventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data is a *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data is a *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed. Data is a *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released. Data is a *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved. Data is a *MouseEvent.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel scrolled. Data is a *MouseEvent.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Resized/resolution changed from the OS. Data is a *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	// A watched map file changed on disk. Data is the file path as a string.
	EVENT_CODE_MAP_CHANGED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

// EventContext carries an event code and an optional typed payload.
type EventContext struct {
	Type EventCode
	Data interface{}
}

// KeyEvent is the payload of key pressed/released events.
type KeyEvent struct {
	KeyCode KeyCode
}

// MouseEvent is the payload of mouse button/move/wheel events.
type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

// SystemEvent is the payload of window-level events.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type FnOnEvent func(context EventContext)

type eventSystemState struct {
	registered map[EventCode][]FnOnEvent
}

var onceEvent sync.Once
var eventState *eventSystemState

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[EventCode][]FnOnEvent),
		}
	})
	return true
}

func EventSystemShutdown() error {
	if eventState != nil {
		eventState.registered = make(map[EventCode][]FnOnEvent)
	}
	return nil
}

// EventRegister subscribes the callback to the given code. Returns false
// when the event system has not been initialized.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if eventState == nil {
		return false
	}
	eventState.registered[code] = append(eventState.registered[code], onEvent)
	return true
}

// EventFire dispatches the context to every callback registered for its
// code. Dispatch is synchronous: the frame loop is the single owner of all
// engine state, so callbacks run inline on the calling goroutine.
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	callbacks := eventState.registered[context.Type]
	if len(callbacks) == 0 {
		return false
	}
	for _, cb := range callbacks {
		cb(context)
	}
	return true
}
