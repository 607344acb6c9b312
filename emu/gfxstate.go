package emu

// GraphicsState holds the draw state shared by every drawing call.
type GraphicsState struct {
	FG      Colour
	BG      Colour
	Pattern uint16

	TextX, TextY int

	// Clip rectangle, half open: [ClipX1, ClipX2) x [ClipY1, ClipY2).
	ClipX1, ClipY1 int
	ClipX2, ClipY2 int

	CameraX, CameraY int

	PaletteMap  [16]Colour
	Transparent [16]bool
}

func (g *GraphicsState) restorePalette() {
	for i := range g.PaletteMap {
		g.PaletteMap[i] = Colour(i)
	}
}

func (g *GraphicsState) restoreTransparency() {
	for i := range g.Transparent {
		g.Transparent[i] = false
	}
	g.Transparent[0] = true
}

func (g *GraphicsState) restoreClip() {
	g.ClipX1, g.ClipY1 = 0, 0
	g.ClipX2, g.ClipY2 = ScreenWidth, ScreenHeight
}

// reset puts every field back to its power-on value.
func (g *GraphicsState) reset() {
	*g = GraphicsState{FG: 7}
	g.restoreClip()
	g.restorePalette()
	g.restoreTransparency()
}

// visible reports whether the w x h rectangle at (x, y) intersects the
// clip rectangle.
func (g *GraphicsState) visible(x, y, w, h int) bool {
	return x < g.ClipX2 && y < g.ClipY2 && x+w > g.ClipX1 && y+h > g.ClipY1
}

// inClip reports whether a single pixel lies inside the clip rectangle.
func (g *GraphicsState) inClip(x, y int) bool {
	return x >= g.ClipX1 && x < g.ClipX2 && y >= g.ClipY1 && y < g.ClipY2
}

// State returns a copy of the current graphics state.
func (c *Console) State() GraphicsState {
	return c.gfx
}

// Restore resets the whole graphics state: colours, pattern, cursor,
// clip, camera, palette and transparency.
func (c *Console) Restore() {
	c.gfx.reset()
}

// Color sets the draw colours from a packed byte: the low nibble becomes
// the foreground and the high nibble the background.
func (c *Console) Color(col uint8) {
	c.gfx.FG = col & 0x0F
	c.gfx.BG = col >> 4
}

// Pen returns the current foreground colour.
func (c *Console) Pen() Colour {
	return c.gfx.FG
}

// applyCamera translates a point from world to screen space.
func (c *Console) applyCamera(x, y int) (int, int) {
	return x - c.gfx.CameraX, y - c.gfx.CameraY
}

// Camera sets the draw offset subtracted from every coordinate.
func (c *Console) Camera(x, y int) {
	c.gfx.CameraX = x
	c.gfx.CameraY = y
}

// ResetCamera clears the draw offset.
func (c *Console) ResetCamera() {
	c.Camera(0, 0)
}

// Clip limits drawing to the w x h rectangle at (x, y). The rectangle is
// clamped to the screen; a negative size leaves an empty clip region.
func (c *Console) Clip(x, y, w, h int) {
	x1 := clamp(x, 0, ScreenWidth)
	y1 := clamp(y, 0, ScreenHeight)
	x2 := clamp(x+w, x1, ScreenWidth)
	y2 := clamp(y+h, y1, ScreenHeight)
	c.gfx.ClipX1, c.gfx.ClipY1 = x1, y1
	c.gfx.ClipX2, c.gfx.ClipY2 = x2, y2
}

// ResetClip restores the full-screen clip rectangle.
func (c *Console) ResetClip() {
	c.gfx.restoreClip()
}

// Pal remaps draw colour c0 to c1.
func (c *Console) Pal(c0, c1 Colour) {
	c.gfx.PaletteMap[c0&0x0F] = c1 & 0x0F
}

// ResetPal restores the identity palette. Transparency is reset along
// with it.
func (c *Console) ResetPal() {
	c.gfx.restorePalette()
	c.gfx.restoreTransparency()
}

// Palt marks colour col as transparent or opaque for sprite drawing.
func (c *Console) Palt(col Colour, transparent bool) {
	c.gfx.Transparent[col&0x0F] = transparent
}

// ResetPalt makes colour 0 the only transparent colour.
func (c *Console) ResetPalt() {
	c.gfx.restoreTransparency()
}

// Fillp sets the 4x4 dither pattern. Set bits draw the background colour.
func (c *Console) Fillp(pattern uint16) {
	c.gfx.Pattern = pattern
}

// ResetFillp clears the dither pattern.
func (c *Console) ResetFillp() {
	c.Fillp(0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
