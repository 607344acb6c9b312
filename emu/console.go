package emu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Console is the complete machine state: framebuffer, graphics state,
// sprite, map and font stores, input and the memory map over all of
// them. A Console is not safe for concurrent use.
type Console struct {
	gfx      GraphicsState
	fb       *Framebuffer
	sprites  SpriteSheet
	font     SpriteSheet
	mapSheet *MapSheet

	ram      RAM
	cartData *DeferredArea
	scratch  [MemScratchSize]uint8

	input [MaxPlayers]InputState
	mouse MouseState

	logger *log.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger used for load warnings, cart data flushes
// and integrity failures.
func WithLogger(logger *log.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithSaveTarget sets where cart data is written on flush.
func WithSaveTarget(target SaveTarget) Option {
	return func(c *Console) {
		c.cartData.target = target
	}
}

// NewConsole creates a console in its power-on state with the built-in
// font loaded.
func NewConsole(opts ...Option) (*Console, error) {
	c := &Console{
		fb:       newFramebuffer(),
		cartData: NewDeferredArea(MemCartDataAddr, MemCartDataSize, nil),
	}
	c.mapSheet = newMapSheet(&c.sprites)
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		c.logger = log.NewWithConfig(cfg)
	}

	c.gfx.reset()
	c.font.rasterDefaultFont()

	if err := c.mapMemory(); err != nil {
		return nil, err
	}
	return c, nil
}

// mapMemory registers every memory area in the address map.
func (c *Console) mapMemory() error {
	c.ram.logger = c.logger

	shared, err := NewDualArea(
		&mapAliasArea{m: c.mapSheet},
		NewNibbleArea(MemGfx2Map2Addr, c.sprites.pix[sharedPixelBase:]),
	)
	if err != nil {
		return fmt.Errorf("mapping shared sprite/map area: %w", err)
	}

	areas := []MemoryArea{
		NewNibbleArea(MemGfxAddr, c.sprites.pix[:sharedPixelBase]),
		shared,
		NewLinearArea(MemMapAddr, c.mapSheet.upper[:]),
		NewLinearArea(MemGfxFlagsAddr, c.sprites.flags[:]),
		NewNibbleArea(MemScreenAddr, c.fb.pix),
		NewNibbleArea(MemFontAddr, c.font.pix[:]),
		c.cartData,
		NewLinearArea(MemScratchAddr, c.scratch[:]),
	}
	for _, a := range areas {
		if err := c.ram.AddArea(a); err != nil {
			return fmt.Errorf("mapping memory: %w", err)
		}
	}
	return nil
}

// Peek reads a byte from the address space.
func (c *Console) Peek(addr uint16) uint8 {
	return c.ram.Peek(addr)
}

// Poke writes a byte to the address space.
func (c *Console) Poke(addr uint16, v uint8) {
	c.ram.Poke(addr, v)
}

// Peek4 reads a little-endian 32-bit value.
func (c *Console) Peek4(addr uint16) uint32 {
	return c.ram.Peek4(addr)
}

// Poke4 writes a little-endian 32-bit value.
func (c *Console) Poke4(addr uint16, v uint32) {
	c.ram.Poke4(addr, v)
}

// MemoryAreas returns the registered areas in registration order.
func (c *Console) MemoryAreas() []MemoryArea {
	return c.ram.Areas()
}

// CheckIntegrity verifies the framebuffer guard regions. A failure means
// a drawing routine wrote outside the screen and is returned as a
// *GuardError.
func (c *Console) CheckIntegrity() error {
	if err := c.fb.CheckGuards(); err != nil {
		c.logger.Error("Framebuffer integrity check failed", log.Err(err))
		return err
	}
	return nil
}

// Buffer returns the screen pixels and their dimensions after verifying
// the guard regions. A corrupted guard is an unrecoverable internal
// fault and panics.
func (c *Console) Buffer() ([]Colour, int, int) {
	if err := c.CheckIntegrity(); err != nil {
		panic(err)
	}
	return c.fb.pix, ScreenWidth, ScreenHeight
}
