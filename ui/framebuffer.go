package ui

import (
	"sync"

	"github.com/user-none/empico/emu"
)

const framebufferSize = emu.ScreenWidth * emu.ScreenHeight * 4

// SharedFramebuffer holds RGBA pixels written by the emulation goroutine
// and read by Ebiten's Draw(). Read hands out a copy so Draw never holds
// the lock while rendering.
type SharedFramebuffer struct {
	mu           sync.Mutex
	writePixels  []byte
	readPixels   []byte
	stride       int
	activeHeight int
	frames       uint64
}

// NewSharedFramebuffer creates a pre-allocated framebuffer.
func NewSharedFramebuffer() *SharedFramebuffer {
	return &SharedFramebuffer{
		writePixels: make([]byte, framebufferSize),
		readPixels:  make([]byte, framebufferSize),
	}
}

// Update copies a finished frame from the emulation goroutine.
func (sf *SharedFramebuffer) Update(pixels []byte, stride, activeHeight int) {
	sf.mu.Lock()
	n := min(stride*activeHeight, len(sf.writePixels), len(pixels))
	copy(sf.writePixels[:n], pixels[:n])
	sf.stride = stride
	sf.activeHeight = activeHeight
	sf.frames++
	sf.mu.Unlock()
}

// Read returns a snapshot of the latest frame. The returned slice stays
// valid until the next Read.
func (sf *SharedFramebuffer) Read() (pixels []byte, stride, activeHeight int) {
	sf.mu.Lock()
	stride = sf.stride
	activeHeight = sf.activeHeight
	n := min(stride*activeHeight, len(sf.writePixels))
	if n > 0 {
		copy(sf.readPixels[:n], sf.writePixels[:n])
	}
	pixels = sf.readPixels
	sf.mu.Unlock()
	return
}

// Frames returns how many frames have been published.
func (sf *SharedFramebuffer) Frames() uint64 {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.frames
}
