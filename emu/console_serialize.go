package emu

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	consoleSerializeVersion = 1

	sheetSerializeSize = sheetPixels/2 + 256
	gfxSerializeSize   = 2 + 2 + 8*4 + 16 + 16 // fg/bg + pattern + ints + palette + transparency

	// ConsoleSerializeSize is the total bytes needed for console
	// serialization.
	ConsoleSerializeSize = 1 + // version
		sheetSerializeSize + // sprites
		sheetSerializeSize + // font
		mapUpper +
		screenPixels/2 +
		MemScratchSize +
		MemCartDataSize*2 + 1 + // live + committed + dirty
		gfxSerializeSize +
		MaxPlayers*3 +
		4*4 // mouse
)

func serializeSheet(buf []byte, s *SpriteSheet) int {
	packPixels(buf, s.pix[:])
	n := sheetPixels / 2
	n += copy(buf[n:], s.flags[:])
	return n
}

func deserializeSheet(buf []byte, s *SpriteSheet) int {
	unpackPixels(s.pix[:], buf)
	n := sheetPixels / 2
	n += copy(s.flags[:], buf[n:n+256])
	return n
}

func putInt32(buf []byte, v int) int {
	binary.LittleEndian.PutUint32(buf, uint32(int32(v)))
	return 4
}

func getInt32(buf []byte) int {
	return int(int32(binary.LittleEndian.Uint32(buf)))
}

// Serialize writes the console state to buf. buf must be at least
// ConsoleSerializeSize bytes.
func (c *Console) Serialize(buf []byte) error {
	if len(buf) < ConsoleSerializeSize {
		return errors.New("console serialize buffer too small")
	}

	offset := 0
	buf[offset] = consoleSerializeVersion
	offset++

	offset += serializeSheet(buf[offset:], &c.sprites)
	offset += serializeSheet(buf[offset:], &c.font)
	offset += copy(buf[offset:], c.mapSheet.upper[:])

	packPixels(buf[offset:], c.fb.pix)
	offset += screenPixels / 2

	offset += copy(buf[offset:], c.scratch[:])

	// Cart data
	offset += copy(buf[offset:], c.cartData.live)
	offset += copy(buf[offset:], c.cartData.committed)
	buf[offset] = boolByte(c.cartData.dirty)
	offset++

	// Graphics state
	g := &c.gfx
	buf[offset] = g.FG
	buf[offset+1] = g.BG
	offset += 2
	binary.LittleEndian.PutUint16(buf[offset:], g.Pattern)
	offset += 2
	for _, v := range []int{g.TextX, g.TextY, g.ClipX1, g.ClipY1, g.ClipX2, g.ClipY2, g.CameraX, g.CameraY} {
		offset += putInt32(buf[offset:], v)
	}
	offset += copy(buf[offset:], g.PaletteMap[:])
	for _, t := range g.Transparent {
		buf[offset] = boolByte(t)
		offset++
	}

	// Input
	for i := range c.input {
		buf[offset] = c.input[i].previous
		buf[offset+1] = c.input[i].current
		buf[offset+2] = c.input[i].repeat
		offset += 3
	}

	// Mouse
	for _, v := range []int{c.mouse.X, c.mouse.Y, c.mouse.Buttons, c.mouse.Wheel} {
		offset += putInt32(buf[offset:], v)
	}

	return nil
}

// Deserialize restores console state from buf. buf must be at least
// ConsoleSerializeSize bytes.
func (c *Console) Deserialize(buf []byte) error {
	if len(buf) < ConsoleSerializeSize {
		return errors.New("console deserialize buffer too small")
	}

	offset := 0
	version := buf[offset]
	offset++
	if version != consoleSerializeVersion {
		return fmt.Errorf("unsupported console state version %d", version)
	}

	offset += deserializeSheet(buf[offset:], &c.sprites)
	offset += deserializeSheet(buf[offset:], &c.font)
	offset += copy(c.mapSheet.upper[:], buf[offset:offset+mapUpper])

	unpackPixels(c.fb.pix, buf[offset:])
	offset += screenPixels / 2

	offset += copy(c.scratch[:], buf[offset:offset+MemScratchSize])

	// Cart data
	offset += copy(c.cartData.live, buf[offset:offset+MemCartDataSize])
	offset += copy(c.cartData.committed, buf[offset:offset+MemCartDataSize])
	c.cartData.dirty = buf[offset] != 0
	offset++

	// Graphics state
	g := &c.gfx
	g.FG = buf[offset] & 0x0F
	g.BG = buf[offset+1] & 0x0F
	offset += 2
	g.Pattern = binary.LittleEndian.Uint16(buf[offset:])
	offset += 2
	for _, p := range []*int{&g.TextX, &g.TextY, &g.ClipX1, &g.ClipY1, &g.ClipX2, &g.ClipY2, &g.CameraX, &g.CameraY} {
		*p = getInt32(buf[offset:])
		offset += 4
	}
	for i := range g.PaletteMap {
		g.PaletteMap[i] = buf[offset] & 0x0F
		offset++
	}
	for i := range g.Transparent {
		g.Transparent[i] = buf[offset] != 0
		offset++
	}
	// Keep the clip rectangle on screen whatever the state holds.
	c.Clip(g.ClipX1, g.ClipY1, g.ClipX2-g.ClipX1, g.ClipY2-g.ClipY1)

	// Input
	for i := range c.input {
		c.input[i].previous = buf[offset]
		c.input[i].current = buf[offset+1]
		c.input[i].repeat = buf[offset+2]
		offset += 3
	}

	// Mouse
	c.mouse.X = getInt32(buf[offset:])
	c.mouse.Y = getInt32(buf[offset+4:])
	c.mouse.Buttons = getInt32(buf[offset+8:])
	c.mouse.Wheel = getInt32(buf[offset+12:])

	return nil
}

// boolByte converts a bool to a uint8 (0 or 1).
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
