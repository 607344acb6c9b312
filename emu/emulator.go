package emu

import (
	"image"

	"github.com/retroenv/retrogolib/log"
	emucore "github.com/user-none/eblitui/api"
)

const (
	Name    = "empico"
	Version = "0.1.0"
)

// Core option keys.
const (
	OptionIntegrityCheck = "integrity_check"
)

// Compile-time interface checks.
var _ emucore.Emulator = (*Emulator)(nil)
var _ emucore.SaveStater = (*Emulator)(nil)
var _ emucore.BatterySaver = (*Emulator)(nil)
var _ emucore.MemoryInspector = (*Emulator)(nil)
var _ emucore.MemoryMapper = (*Emulator)(nil)

// Program is the code a cartridge runs. Init is called once before the
// first frame, Update and Draw once per frame.
type Program interface {
	Init(c *Console)
	Update(c *Console)
	Draw(c *Console)
}

// Emulator drives a Console and a Program one frame at a time and
// presents the result through the emucore interfaces.
type Emulator struct {
	console *Console
	program Program
	started bool

	cartCRC uint32
	region  Region

	// Input latched by the frontend, sampled once per frame.
	pendingInput [MaxPlayers]uint8
	pendingMouse MouseState

	integrityCheck bool

	frame       *image.RGBA
	audioBuffer []int16

	logger *log.Logger
}

// NewEmulator creates an emulator running program. cartCRC identifies
// the cartridge in save states.
func NewEmulator(program Program, cartCRC uint32, region Region, opts ...Option) (*Emulator, error) {
	c, err := NewConsole(opts...)
	if err != nil {
		return nil, err
	}
	return &Emulator{
		console:     c,
		program:     program,
		cartCRC:     cartCRC,
		region:      region,
		frame:       image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
		audioBuffer: make([]int16, audioFrameSamples),
		logger:      c.logger,
	}, nil
}

// Console returns the emulated console.
func (e *Emulator) Console() *Console {
	return e.console
}

// RunFrame executes one frame: input sampling, the program's Init (first
// frame only), Update and Draw, the cart data flush and presentation.
func (e *Emulator) RunFrame() {
	c := e.console
	for p, mask := range e.pendingInput {
		c.SetInputState(mask, p)
	}
	c.SetMouseState(e.pendingMouse)

	if e.integrityCheck {
		if err := c.CheckIntegrity(); err != nil {
			panic(err)
		}
	}

	if !e.started {
		e.program.Init(c)
		e.started = true
	}
	e.program.Update(c)
	e.program.Draw(c)

	// Flush errors are logged by the console; the next dirty frame retries.
	_ = c.FlushCartData()

	c.RenderRGBA(e.frame)
	e.generateAudio()
}

// SetInput translates a frontend button mask into the console's button
// bits for player.
func (e *Emulator) SetInput(player int, buttons uint32) {
	if player < 0 || player >= MaxPlayers {
		return
	}
	var mask uint8
	if buttons&(1<<emucore.ButtonLeft) != 0 {
		mask |= 1 << ButtonLeft
	}
	if buttons&(1<<emucore.ButtonRight) != 0 {
		mask |= 1 << ButtonRight
	}
	if buttons&(1<<emucore.ButtonUp) != 0 {
		mask |= 1 << ButtonUp
	}
	if buttons&(1<<emucore.ButtonDown) != 0 {
		mask |= 1 << ButtonDown
	}
	if buttons&(1<<4) != 0 {
		mask |= 1 << ButtonO
	}
	if buttons&(1<<5) != 0 {
		mask |= 1 << ButtonX
	}
	if buttons&(1<<7) != 0 {
		mask |= 1 << ButtonPause
	}
	e.pendingInput[player] = mask
}

// SetMouse latches the pointer state for the next frame. Coordinates
// are in screen pixels.
func (e *Emulator) SetMouse(x, y, buttons, wheel int) {
	e.pendingMouse = MouseState{X: x, Y: y, Buttons: buttons, Wheel: wheel}
}

// GetFramebuffer returns raw RGBA pixel data for the current frame.
func (e *Emulator) GetFramebuffer() []byte {
	return e.frame.Pix
}

// GetFramebufferStride returns the stride (bytes per row) of the framebuffer.
func (e *Emulator) GetFramebufferStride() int {
	return e.frame.Stride
}

// GetActiveHeight returns the display height.
func (e *Emulator) GetActiveHeight() int {
	return ScreenHeight
}

// GetRegion returns the emulator's region setting.
func (e *Emulator) GetRegion() Region {
	return e.region
}

// SetRegion records the region. Timing does not depend on it.
func (e *Emulator) SetRegion(region Region) {
	e.region = region
}

// GetTiming returns the fixed frame rate and line count.
func (e *Emulator) GetTiming() emucore.Timing {
	return emucore.Timing{
		FPS:       FrameRate,
		Scanlines: frameLines,
	}
}

// SetOption applies a core option change identified by key.
func (e *Emulator) SetOption(key string, value string) {
	switch key {
	case OptionIntegrityCheck:
		e.integrityCheck = value == "true"
	}
}

// Close releases any resources held by the emulator.
func (e *Emulator) Close() {}

// HasSRAM reports true: every cartridge has persistent cart data.
func (e *Emulator) HasSRAM() bool {
	return true
}

// GetSRAM returns a copy of the committed cart data.
func (e *Emulator) GetSRAM() []byte {
	return e.console.CartData()
}

// SetSRAM loads cart data from a save file.
func (e *Emulator) SetSRAM(data []byte) {
	e.console.SetCartData(data)
}

// ReadMemory reads console addresses into buf and returns the number of
// bytes read. Reading stops at the end of the 64 KiB address space.
func (e *Emulator) ReadMemory(addr uint32, buf []byte) uint32 {
	var count uint32
	for i := range buf {
		cur := addr + uint32(i)
		if cur > 0xFFFF {
			return count
		}
		buf[i] = e.console.Peek(uint16(cur))
		count++
	}
	return count
}

// MemoryMap returns a list of available memory regions with sizes.
func (e *Emulator) MemoryMap() []emucore.MemoryRegion {
	return []emucore.MemoryRegion{
		{Type: emucore.MemorySaveRAM, Size: MemCartDataSize},
		{Type: emucore.MemorySystemRAM, Size: MemScratchSize},
	}
}

// ReadRegion returns a copy of the specified memory region.
func (e *Emulator) ReadRegion(regionType int) []byte {
	switch regionType {
	case emucore.MemorySaveRAM:
		return e.GetSRAM()
	case emucore.MemorySystemRAM:
		out := make([]byte, MemScratchSize)
		copy(out, e.console.scratch[:])
		return out
	default:
		return nil
	}
}

// WriteRegion writes data to the specified memory region.
func (e *Emulator) WriteRegion(regionType int, data []byte) {
	switch regionType {
	case emucore.MemorySaveRAM:
		e.SetSRAM(data)
	case emucore.MemorySystemRAM:
		copy(e.console.scratch[:], data)
	}
}
