package emu

// Print draws s at (x, y) in colour col using the font sheet. Font
// pixels of colour 7 take the print colour and colour 0 is transparent
// while the text is drawn. Printable bytes 0x20-0x7F advance 4 pixels,
// wide glyphs 0x80-0x99 advance 8 and '\n' starts a new line. Other
// bytes are skipped. The text cursor ends at the start of the line below
// the last one printed.
func (c *Console) Print(s string, x, y int, col uint8) {
	x, y = c.applyCamera(x, y)
	c.Color(col)

	g := &c.gfx
	oldInk := g.PaletteMap[fontInkColour]
	oldTransparent := g.Transparent[0]
	g.PaletteMap[fontInkColour] = col & 0x0F
	g.Transparent[0] = true

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 0x20 && ch < 0x80:
			idx := int(ch - 0x20)
			c.blit(&c.font, x, y,
				(idx%glyphsPerRow)*glyphCellW, (idx/glyphsPerRow)*glyphCellH,
				glyphCellW, 5, false, false)
			x += glyphCellW
		case ch >= 0x80 && ch <= 0x99:
			idx := int(ch - 0x80)
			c.blit(&c.font, x, y,
				(idx%wideGlyphsRow)*wideCellW, (idx/wideGlyphsRow)*glyphCellH+wideAtlasY,
				wideCellW, 5, false, false)
			x += wideCellW
		case ch == '\n':
			x = 0
			y += glyphCellH
		}
	}

	g.TextX = 0
	g.TextY = y + glyphCellH
	g.PaletteMap[fontInkColour] = oldInk
	g.Transparent[0] = oldTransparent
	g.FG = col & 0x0F
}

// PrintCursor prints s at the text cursor in the current pen colour.
func (c *Console) PrintCursor(s string) {
	c.Print(s, c.gfx.TextX, c.gfx.TextY, c.gfx.FG)
}
