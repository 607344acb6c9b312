// Package ui holds the state shared between the Ebiten thread and the
// emulation goroutine, and the audio output.
package ui

import "sync"

// SharedInput holds controller and pointer state written by the Ebiten
// thread and read by the emulation goroutine once per frame.
type SharedInput struct {
	mu      sync.Mutex
	buttons uint32 // emucore button mask for player 0
	mouse   Mouse
}

// Mouse is the pointer in console pixels.
type Mouse struct {
	X, Y    int
	Buttons int
	Wheel   int
}

// SetButtons replaces the button mask.
func (si *SharedInput) SetButtons(buttons uint32) {
	si.mu.Lock()
	si.buttons = buttons
	si.mu.Unlock()
}

// SetMouse replaces the pointer state. Wheel movement accumulates until
// the next Read so fast scrolls between frames are not lost.
func (si *SharedInput) SetMouse(x, y, buttons, wheelDelta int) {
	si.mu.Lock()
	si.mouse.X = x
	si.mouse.Y = y
	si.mouse.Buttons = buttons
	si.mouse.Wheel += wheelDelta
	si.mu.Unlock()
}

// Read returns the current input state and clears the accumulated wheel
// movement.
func (si *SharedInput) Read() (uint32, Mouse) {
	si.mu.Lock()
	buttons, mouse := si.buttons, si.mouse
	si.mouse.Wheel = 0
	si.mu.Unlock()
	return buttons, mouse
}
