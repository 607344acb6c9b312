package emu

const (
	sheetSize   = 128
	sheetPixels = sheetSize * sheetSize

	mapWidth     = 128
	mapHeight    = 64
	mapCells     = mapWidth * mapHeight
	mapUpperRows = 32
	mapUpper     = mapWidth * mapUpperRows

	// Map rows 32..63 share storage with sprite rows 64..127.
	sharedPixelBase = 64 * sheetSize
)

// SpriteSheet is a 128x128 sheet of colour indices plus one flag byte
// per 8x8 sprite. The font uses the same layout.
type SpriteSheet struct {
	pix   [sheetPixels]Colour
	flags [256]uint8
}

func (s *SpriteSheet) at(x, y int) Colour {
	return s.pix[(y&0x7F)*sheetSize + (x & 0x7F)]
}

// MapSheet is the 128x64 tile map. The top 32 rows have their own
// storage. The bottom 32 rows are the lower half of the sprite sheet
// read through the nibble codec: cell 4096+i is the byte formed by
// sprite pixels 8192+2i and 8192+2i+1.
type MapSheet struct {
	upper   [mapUpper]uint8
	sprites *SpriteSheet
}

func newMapSheet(sprites *SpriteSheet) *MapSheet {
	return &MapSheet{sprites: sprites}
}

func (m *MapSheet) get(i int) uint8 {
	if i < mapUpper {
		return m.upper[i]
	}
	p := sharedPixelBase + (i-mapUpper)*2
	return packNibbles(m.sprites.pix[p], m.sprites.pix[p+1])
}

func (m *MapSheet) set(i int, v uint8) {
	if i < mapUpper {
		m.upper[i] = v
		return
	}
	p := sharedPixelBase + (i-mapUpper)*2
	m.sprites.pix[p], m.sprites.pix[p+1] = unpackNibbles(v)
}

// mapAliasArea is the map's view of the shared region: one byte per
// cell, rows 32..63.
type mapAliasArea struct {
	m *MapSheet
}

func (a *mapAliasArea) Base() uint16          { return MemGfx2Map2Addr }
func (a *mapAliasArea) Size() int             { return MemGfx2Map2Size }
func (a *mapAliasArea) Kind() AreaKind        { return AreaLinear }
func (a *mapAliasArea) Peek(off int) uint8    { return a.m.get(mapUpper + off) }
func (a *mapAliasArea) Poke(off int, v uint8) { a.m.set(mapUpper+off, v) }

// SGet returns the sprite sheet pixel at (x, y). Both axes wrap at 128.
func (c *Console) SGet(x, y int) Colour {
	return c.sprites.at(x, y)
}

// SSet writes a sprite sheet pixel. Both axes wrap at 128.
func (c *Console) SSet(x, y int, col Colour) {
	c.sprites.pix[(y&0x7F)*sheetSize + (x & 0x7F)] = col & 0x0F
}

// MGet returns the map cell at (x, y). The cell is addressed as the flat
// index y*128+x; an index outside the map reads 0.
func (c *Console) MGet(x, y int) uint8 {
	i := y*mapWidth + x
	if i < 0 || i >= mapCells {
		return 0
	}
	return c.mapSheet.get(i)
}

// MSet writes a map cell. Indexing matches MGet; writes outside the map
// are ignored.
func (c *Console) MSet(x, y int, v uint8) {
	i := y*mapWidth + x
	if i < 0 || i >= mapCells {
		return
	}
	c.mapSheet.set(i, v)
}

// FGet returns the flag byte of sprite n.
func (c *Console) FGet(n int) uint8 {
	return c.sprites.flags[n&0xFF]
}

// FGetBit reports whether flag bit of sprite n is set.
func (c *Console) FGetBit(n, bit int) bool {
	return c.FGet(n)>>(bit&7)&1 != 0
}

// FSet replaces the flag byte of sprite n.
func (c *Console) FSet(n int, v uint8) {
	c.sprites.flags[n&0xFF] = v
}

// FSetBit sets or clears a single flag bit of sprite n.
func (c *Console) FSetBit(n, bit int, v bool) {
	mask := uint8(1) << (bit & 7)
	if v {
		c.FSet(n, c.FGet(n)|mask)
	} else {
		c.FSet(n, c.FGet(n)&^mask)
	}
}

// Spr draws sprite n at (x, y).
func (c *Console) Spr(n, x, y int) {
	c.SprRegion(n, x, y, 1, 1, false, false)
}

// SprRegion draws a w x h block of sprites (in 8 pixel tiles) starting at
// sprite n, optionally mirrored on either axis.
func (c *Console) SprRegion(n, x, y, w, h int, flipX, flipY bool) {
	x, y = c.applyCamera(x, y)
	sx := (n % 16) * 8
	sy := (n / 16) * 8
	c.blit(&c.sprites, x, y, sx, sy, w*8, h*8, flipX, flipY)
}

// SSpr copies an sw x sh region of the sprite sheet to (dx, dy)
// unscaled.
func (c *Console) SSpr(sx, sy, sw, sh, dx, dy int) {
	dx, dy = c.applyCamera(dx, dy)
	c.blit(&c.sprites, dx, dy, sx, sy, sw, sh, false, false)
}

// SSprScaled stretches an sw x sh region of the sprite sheet over a
// dw x dh destination rectangle.
func (c *Console) SSprScaled(sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool) {
	dx, dy = c.applyCamera(dx, dy)
	c.stretchBlit(&c.sprites, sx, sy, sw, sh, dx, dy, dw, dh, flipX, flipY)
}

// Map draws a cw x ch block of map cells starting at cell (cx, cy) with
// its top-left corner at (sx, sy). Empty cells are skipped. A non-zero
// layer only draws sprites whose flags contain every bit of layer.
func (c *Console) Map(cx, cy, sx, sy, cw, ch int, layer uint8) {
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			cell := c.MGet(cx+x, cy+y)
			if cell == 0 {
				continue
			}
			if layer != 0 && c.FGet(int(cell))&layer != layer {
				continue
			}
			c.Spr(int(cell), sx+x*8, sy+y*8)
		}
	}
}
