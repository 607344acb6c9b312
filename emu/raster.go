package emu

// ditherBit reports whether the fill pattern selects the background
// colour at (x, y). Bit 15 covers the top-left pixel of each 4x4 cell.
func ditherBit(pattern uint16, x, y int) bool {
	return pattern>>((3-(x&3))+(3-(y&3))*4)&1 != 0
}

// penColours returns the palette-mapped foreground and background.
func (g *GraphicsState) penColours() (Colour, Colour) {
	return g.PaletteMap[g.FG&0x0F], g.PaletteMap[g.BG&0x0F]
}

// plot draws one screen-space pixel with the current pen and pattern.
func (c *Console) plot(x, y int) {
	g := &c.gfx
	if !g.inClip(x, y) {
		return
	}
	fg, bg := g.penColours()
	col := fg
	if ditherBit(g.Pattern, x, y) {
		col = bg
	}
	c.fb.pix[y*ScreenWidth+x] = col
}

// hline draws the inclusive screen-space span x0..x1 on row y.
func (c *Console) hline(x0, x1, y int) {
	g := &c.gfx
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x1++
	if y < g.ClipY1 || y >= g.ClipY2 {
		return
	}
	x0 = clamp(x0, g.ClipX1, g.ClipX2)
	x1 = clamp(x1, g.ClipX1, g.ClipX2)

	fg, bg := g.penColours()
	row := c.fb.pix[y*ScreenWidth : (y+1)*ScreenWidth]
	switch g.Pattern {
	case 0:
		for x := x0; x < x1; x++ {
			row[x] = fg
		}
	case 0xFFFF:
		for x := x0; x < x1; x++ {
			row[x] = bg
		}
	default:
		for x := x0; x < x1; x++ {
			if ditherBit(g.Pattern, x, y) {
				row[x] = bg
			} else {
				row[x] = fg
			}
		}
	}
}

// vline draws the inclusive screen-space span y0..y1 in column x.
func (c *Console) vline(y0, y1, x int) {
	g := &c.gfx
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y1++
	if x < g.ClipX1 || x >= g.ClipX2 {
		return
	}
	y0 = clamp(y0, g.ClipY1, g.ClipY2)
	y1 = clamp(y1, g.ClipY1, g.ClipY2)

	fg, bg := g.penColours()
	for y := y0; y < y1; y++ {
		col := fg
		if ditherBit(g.Pattern, x, y) {
			col = bg
		}
		c.fb.pix[y*ScreenWidth+x] = col
	}
}

// Cls fills the screen with colour col and homes the text cursor.
func (c *Console) Cls(col Colour) {
	c.fb.fill(c.gfx.PaletteMap[col&0x0F])
	c.gfx.TextX = 0
	c.gfx.TextY = 0
}

// PGet returns the screen pixel at (x, y) after the camera offset.
// Points off the screen read 0.
func (c *Console) PGet(x, y int) Colour {
	x, y = c.applyCamera(x, y)
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return 0
	}
	return c.fb.pix[y*ScreenWidth+x]
}

// PSet draws a single pixel in colour col.
func (c *Console) PSet(x, y int, col uint8) {
	c.Color(col)
	x, y = c.applyCamera(x, y)
	c.plot(x, y)
}

// Rect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1), both inclusive.
func (c *Console) Rect(x0, y0, x1, y1 int, col uint8) {
	x0, y0 = c.applyCamera(x0, y0)
	x1, y1 = c.applyCamera(x1, y1)
	c.Color(col)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	c.hline(x0, x1, y0)
	c.hline(x0, x1, y1)
	c.vline(y0, y1, x0)
	c.vline(y0, y1, x1)
}

// RectFill fills the rectangle with corners (x0, y0) and (x1, y1), both
// inclusive. The low nibble of col is the primary colour and the high
// nibble the colour drawn where the fill pattern is set.
func (c *Console) RectFill(x0, y0, x1, y1 int, col uint8) {
	g := &c.gfx
	x0, y0 = c.applyCamera(x0, y0)
	x1, y1 = c.applyCamera(x1, y1)
	c.Color(col)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0 = max(x0, g.ClipX1)
	y0 = max(y0, g.ClipY1)
	x1 = min(x1, g.ClipX2-1)
	y1 = min(y1, g.ClipY2-1)

	p1 := g.PaletteMap[col&0x0F]
	p2 := g.PaletteMap[col>>4]
	for y := y0; y <= y1; y++ {
		row := y * ScreenWidth
		for x := x0; x <= x1; x++ {
			if ditherBit(g.Pattern, x, y) {
				c.fb.pix[row+x] = p2
			} else {
				c.fb.pix[row+x] = p1
			}
		}
	}
}

// Circ draws a circle outline of radius r centred on (x, y). A negative
// radius draws nothing.
func (c *Console) Circ(xm, ym, r int, col uint8) {
	xm, ym = c.applyCamera(xm, ym)
	c.Color(col)
	if r < 0 {
		return
	}
	x, y, err := -r, 0, 2-2*r
	for {
		c.plot(xm-x, ym+y)
		c.plot(xm-y, ym-x)
		c.plot(xm+x, ym-y)
		c.plot(xm+y, ym+x)
		e := err
		if e > x {
			x++
			err += x*2 + 1
		}
		if e <= y {
			y++
			err += y*2 + 1
		}
		if x >= 0 {
			break
		}
	}
}

// CircFill draws a filled circle of radius r centred on (x, y).
func (c *Console) CircFill(xm, ym, r int, col uint8) {
	xm, ym = c.applyCamera(xm, ym)
	c.Color(col)
	switch {
	case r < 0:
	case r == 0:
		c.plot(xm, ym)
	case r == 1:
		c.plot(xm, ym-1)
		c.hline(xm-1, xm+1, ym)
		c.plot(xm, ym+1)
	default:
		x, y, err := -r, 0, 2-2*r
		for {
			c.hline(xm-x, xm+x, ym+y)
			c.hline(xm-x, xm+x, ym-y)
			e := err
			if e > x {
				x++
				err += x*2 + 1
			}
			if e <= y {
				y++
				err += y*2 + 1
			}
			if x >= 0 {
				break
			}
		}
	}
}

// Line draws a line from (x0, y0) to (x1, y1), both endpoints included.
func (c *Console) Line(x0, y0, x1, y1 int, col uint8) {
	x0, y0 = c.applyCamera(x0, y0)
	x1, y1 = c.applyCamera(x1, y1)
	c.Color(col)

	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
