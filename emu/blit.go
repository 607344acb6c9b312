package emu

// clipAxis trims a span of n pixels starting at dst to [min, max) and
// returns the adjusted destination, source and length. On a flipped axis
// the source is read backwards from src+n-1, so a leading trim leaves
// src alone and a trailing trim moves it forward.
func clipAxis(dst, src, n, min, max int, flip bool) (int, int, int) {
	if dst < min {
		cut := min - dst
		n -= cut
		dst = min
		if !flip {
			src += cut
		}
	}
	if dst+n > max {
		cut := dst + n - max
		n -= cut
		if flip {
			src += cut
		}
	}
	if n < 0 {
		n = 0
	}
	return dst, src, n
}

// blit copies a w x h block of sheet pixels at (sx, sy) to the screen at
// (dx, dy). Transparent source colours are skipped and the rest go
// through the palette map. Source coordinates wrap at 128.
func (c *Console) blit(sheet *SpriteSheet, dx, dy, sx, sy, w, h int, flipX, flipY bool) {
	g := &c.gfx
	if w <= 0 || h <= 0 || !g.visible(dx, dy, w, h) {
		return
	}

	dx, sx, w = clipAxis(dx, sx, w, g.ClipX1, g.ClipX2, flipX)
	dy, sy, h = clipAxis(dy, sy, h, g.ClipY1, g.ClipY2, flipY)

	pix := c.fb.pix
	for y := 0; y < h; y++ {
		srcY := sy + y
		if flipY {
			srcY = sy + h - 1 - y
		}
		row := (dy + y) * ScreenWidth
		for x := 0; x < w; x++ {
			srcX := sx + x
			if flipX {
				srcX = sx + w - 1 - x
			}
			col := sheet.at(srcX, srcY)
			if g.Transparent[col&0x0F] {
				continue
			}
			pix[row+dx+x] = g.PaletteMap[col&0x0F]
		}
	}
}

// stretchBlit scales an sw x sh block of sheet pixels at (sx, sy) over a
// dw x dh screen rectangle at (dx, dy) using 16.16 fixed-point steps.
// Clipping advances the sampling position in fixed point so clipped and
// unclipped draws sample identically. Flipping mirrors the sample
// position inside the source rectangle.
func (c *Console) stretchBlit(sheet *SpriteSheet, sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool) {
	g := &c.gfx
	if dw <= 0 || dh <= 0 || sw <= 0 || sh <= 0 {
		return
	}
	if !g.visible(dx, dy, dw, dh) {
		return
	}

	stepX := (sw << 16) / dw
	stepY := (sh << 16) / dh
	var offX, offY int

	if dx < g.ClipX1 {
		cut := g.ClipX1 - dx
		dx = g.ClipX1
		dw -= cut
		offX += cut * stepX
	}
	if dx+dw > g.ClipX2 {
		dw -= dx + dw - g.ClipX2
	}
	if dy < g.ClipY1 {
		cut := g.ClipY1 - dy
		dy = g.ClipY1
		dh -= cut
		offY += cut * stepY
	}
	if dy+dh > g.ClipY2 {
		dh -= dy + dh - g.ClipY2
	}
	if dw <= 0 || dh <= 0 {
		return
	}

	pix := c.fb.pix
	for y := 0; y < dh; y++ {
		ry := (offY + y*stepY) >> 16
		if flipY {
			ry = sh - 1 - ry
		}
		row := (dy + y) * ScreenWidth
		for x := 0; x < dw; x++ {
			rx := (offX + x*stepX) >> 16
			if flipX {
				rx = sw - 1 - rx
			}
			col := sheet.at(sx+rx, sy+ry)
			if g.Transparent[col&0x0F] {
				continue
			}
			pix[row+dx+x] = g.PaletteMap[col&0x0F]
		}
	}
}
