package emu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Console address map (16-bit, byte addressed):
//
//	0x0000-0x0FFF  Sprite sheet rows 0-63 (nibble packed)
//	0x1000-0x1FFF  Map rows 32-63 / sprite sheet rows 64-127 (shared)
//	0x2000-0x2FFF  Map rows 0-31
//	0x3000-0x30FF  Sprite flags
//	0x4300-0x5DFF  Scratch data
//	0x5E00-0x5EFF  Cartridge persistent data (deferred flush)
//	0x6000-0x7FFF  Screen (nibble packed)
//	0x8000-0x9FFF  Font sheet (nibble packed)
//
// Everything else is unmapped: reads return 0 and writes are dropped.
const (
	MemGfxAddr      = 0x0000
	MemGfxSize      = 0x1000
	MemGfx2Map2Addr = 0x1000
	MemGfx2Map2Size = 0x1000
	MemMapAddr      = 0x2000
	MemMapSize      = 0x1000
	MemGfxFlagsAddr = 0x3000
	MemGfxFlagsSize = 0x0100
	MemScratchAddr  = 0x4300
	MemScratchSize  = 0x1B00
	MemCartDataAddr = 0x5E00
	MemCartDataSize = 0x0100
	MemScreenAddr   = 0x6000
	MemScreenSize   = 0x2000
	MemFontAddr     = 0x8000
	MemFontSize     = 0x2000
)

// ErrOverlap is returned when a memory area is registered over an
// address range that is already mapped.
var ErrOverlap = errors.New("memory area overlaps an existing area")

// AreaKind tags how a memory area interprets its backing store.
type AreaKind int

const (
	AreaLinear   AreaKind = iota // one byte per address
	AreaNibble                   // two 4-bit elements per address
	AreaDual                     // two views sharing one address range
	AreaDeferred                 // linear, committed on explicit flush
)

func (k AreaKind) String() string {
	switch k {
	case AreaLinear:
		return "linear"
	case AreaNibble:
		return "nibble"
	case AreaDual:
		return "dual"
	case AreaDeferred:
		return "deferred"
	default:
		return fmt.Sprintf("AreaKind(%d)", int(k))
	}
}

// MemoryArea is one contiguous region of the console address space.
// Peek and Poke take the offset from Base, always in [0, Size).
type MemoryArea interface {
	Base() uint16
	Size() int
	Kind() AreaKind
	Peek(off int) uint8
	Poke(off int, v uint8)
}

// LinearArea maps a byte slice one address per byte.
type LinearArea struct {
	base uint16
	data []uint8
}

// NewLinearArea creates a linear area over data starting at base.
func NewLinearArea(base uint16, data []uint8) *LinearArea {
	return &LinearArea{base: base, data: data}
}

func (a *LinearArea) Base() uint16          { return a.base }
func (a *LinearArea) Size() int             { return len(a.data) }
func (a *LinearArea) Kind() AreaKind        { return AreaLinear }
func (a *LinearArea) Peek(off int) uint8    { return a.data[off] }
func (a *LinearArea) Poke(off int, v uint8) { a.data[off] = v }

// NibbleArea exposes an unpacked colour-index store (one element per
// byte) as packed bytes: address base+i covers elements 2i and 2i+1.
type NibbleArea struct {
	base uint16
	pix  []Colour
}

// NewNibbleArea creates a packed view over pix. The area spans
// len(pix)/2 addresses.
func NewNibbleArea(base uint16, pix []Colour) *NibbleArea {
	return &NibbleArea{base: base, pix: pix}
}

func (a *NibbleArea) Base() uint16   { return a.base }
func (a *NibbleArea) Size() int      { return len(a.pix) / 2 }
func (a *NibbleArea) Kind() AreaKind { return AreaNibble }

// Peek packs the two elements behind off.
func (a *NibbleArea) Peek(off int) uint8 {
	return packNibbles(a.pix[off*2], a.pix[off*2+1])
}

// Poke unpacks v into the two elements behind off.
func (a *NibbleArea) Poke(off int, v uint8) {
	a.pix[off*2], a.pix[off*2+1] = unpackNibbles(v)
}

// DualArea maps one address range onto two views of shared storage.
// Reads are served by the primary view; writes go through both so each
// view observes them regardless of how the storage is shared.
type DualArea struct {
	primary   MemoryArea
	secondary MemoryArea
}

// NewDualArea pairs two views of the same size and base.
func NewDualArea(primary, secondary MemoryArea) (*DualArea, error) {
	if primary.Base() != secondary.Base() || primary.Size() != secondary.Size() {
		return nil, fmt.Errorf("dual area views differ: %04X+%X vs %04X+%X",
			primary.Base(), primary.Size(), secondary.Base(), secondary.Size())
	}
	return &DualArea{primary: primary, secondary: secondary}, nil
}

func (a *DualArea) Base() uint16       { return a.primary.Base() }
func (a *DualArea) Size() int          { return a.primary.Size() }
func (a *DualArea) Kind() AreaKind     { return AreaDual }
func (a *DualArea) Peek(off int) uint8 { return a.primary.Peek(off) }

func (a *DualArea) Poke(off int, v uint8) {
	a.primary.Poke(off, v)
	a.secondary.Poke(off, v)
}

// SaveTarget receives committed cartridge data on flush.
type SaveTarget interface {
	SaveCartData(data []byte) error
}

// DeferredArea is a linear area whose writes are only committed to the
// save target on Flush.
type DeferredArea struct {
	base      uint16
	live      []uint8
	committed []uint8
	dirty     bool
	target    SaveTarget
}

// NewDeferredArea creates a deferred area of size bytes at base.
func NewDeferredArea(base uint16, size int, target SaveTarget) *DeferredArea {
	return &DeferredArea{
		base:      base,
		live:      make([]uint8, size),
		committed: make([]uint8, size),
		target:    target,
	}
}

func (a *DeferredArea) Base() uint16       { return a.base }
func (a *DeferredArea) Size() int          { return len(a.live) }
func (a *DeferredArea) Kind() AreaKind     { return AreaDeferred }
func (a *DeferredArea) Peek(off int) uint8 { return a.live[off] }

func (a *DeferredArea) Poke(off int, v uint8) {
	if a.live[off] != v {
		a.live[off] = v
		a.dirty = true
	}
}

// Dirty reports whether there are uncommitted writes.
func (a *DeferredArea) Dirty() bool {
	return a.dirty
}

// Committed returns a copy of the last flushed contents.
func (a *DeferredArea) Committed() []byte {
	out := make([]byte, len(a.committed))
	copy(out, a.committed)
	return out
}

// Load replaces both the live and committed contents, e.g. from a save
// file. The area is clean afterwards.
func (a *DeferredArea) Load(data []byte) {
	clear(a.live)
	copy(a.live, data)
	copy(a.committed, a.live)
	a.dirty = false
}

// Flush commits pending writes and hands them to the save target.
// A clean area is a no-op.
func (a *DeferredArea) Flush() error {
	if !a.dirty {
		return nil
	}
	copy(a.committed, a.live)
	a.dirty = false
	if a.target == nil {
		return nil
	}
	if err := a.target.SaveCartData(a.Committed()); err != nil {
		return fmt.Errorf("saving cart data: %w", err)
	}
	return nil
}

// RAM routes 16-bit addresses to registered memory areas.
type RAM struct {
	areas  []MemoryArea
	logger *log.Logger
}

// AddArea registers a memory area. Ranges must not overlap.
func (r *RAM) AddArea(a MemoryArea) error {
	start := int(a.Base())
	end := start + a.Size()
	if end > 0x10000 {
		return fmt.Errorf("area %04X+%X exceeds the address space", start, a.Size())
	}
	for _, other := range r.areas {
		otherStart := int(other.Base())
		otherEnd := otherStart + other.Size()
		if start < otherEnd && otherStart < end {
			return fmt.Errorf("%w: %s %04X-%04X and %s %04X-%04X", ErrOverlap,
				a.Kind(), start, end-1, other.Kind(), otherStart, otherEnd-1)
		}
	}
	r.areas = append(r.areas, a)
	if r.logger != nil {
		r.logger.Debug("Memory area mapped",
			log.Hex("base", a.Base()),
			log.Int("size", a.Size()),
			log.String("kind", a.Kind().String()))
	}
	return nil
}

// Areas returns the registered areas in registration order.
func (r *RAM) Areas() []MemoryArea {
	return r.areas
}

// find returns the area containing addr and the offset inside it.
func (r *RAM) find(addr uint16) (MemoryArea, int) {
	for _, a := range r.areas {
		off := int(addr) - int(a.Base())
		if off >= 0 && off < a.Size() {
			return a, off
		}
	}
	return nil, 0
}

// Peek reads a byte. Unmapped addresses read as 0.
func (r *RAM) Peek(addr uint16) uint8 {
	a, off := r.find(addr)
	if a == nil {
		return 0
	}
	return a.Peek(off)
}

// Poke writes a byte. Writes to unmapped addresses are dropped.
func (r *RAM) Poke(addr uint16, v uint8) {
	a, off := r.find(addr)
	if a == nil {
		return
	}
	a.Poke(off, v)
}

// Peek4 reads four consecutive bytes as a little-endian value.
func (r *RAM) Peek4(addr uint16) uint32 {
	v := uint32(r.Peek(addr))
	v |= uint32(r.Peek(addr+1)) << 8
	v |= uint32(r.Peek(addr+2)) << 16
	v |= uint32(r.Peek(addr+3)) << 24
	return v
}

// Poke4 writes v as four consecutive little-endian bytes.
func (r *RAM) Poke4(addr uint16, v uint32) {
	r.Poke(addr, uint8(v))
	r.Poke(addr+1, uint8(v>>8))
	r.Poke(addr+2, uint8(v>>16))
	r.Poke(addr+3, uint8(v>>24))
}
