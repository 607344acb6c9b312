package emu

// Built-in 3x5 glyphs for 0x20-0x7F. Each row is three bits, 4 = left
// column. Lower case letters reuse the upper case shapes.
var defaultGlyphs = [96][5]uint8{
	{0, 0, 0, 0, 0}, // space
	{2, 2, 2, 0, 2}, // !
	{5, 5, 0, 0, 0}, // "
	{5, 7, 5, 7, 5}, // #
	{7, 6, 7, 3, 7}, // $
	{5, 1, 2, 4, 5}, // %
	{2, 5, 2, 5, 3}, // &
	{2, 2, 0, 0, 0}, // '
	{1, 2, 2, 2, 1}, // (
	{4, 2, 2, 2, 4}, // )
	{5, 2, 7, 2, 5}, // *
	{0, 2, 7, 2, 0}, // +
	{0, 0, 0, 2, 4}, // ,
	{0, 0, 7, 0, 0}, // -
	{0, 0, 0, 0, 2}, // .
	{1, 1, 2, 4, 4}, // /
	{7, 5, 5, 5, 7}, // 0
	{6, 2, 2, 2, 7}, // 1
	{7, 1, 7, 4, 7}, // 2
	{7, 1, 3, 1, 7}, // 3
	{5, 5, 7, 1, 1}, // 4
	{7, 4, 7, 1, 7}, // 5
	{4, 4, 7, 5, 7}, // 6
	{7, 1, 1, 1, 1}, // 7
	{7, 5, 7, 5, 7}, // 8
	{7, 5, 7, 1, 1}, // 9
	{0, 2, 0, 2, 0}, // :
	{0, 2, 0, 2, 4}, // ;
	{1, 2, 4, 2, 1}, // <
	{0, 7, 0, 7, 0}, // =
	{4, 2, 1, 2, 4}, // >
	{7, 1, 3, 0, 2}, // ?
	{2, 5, 5, 4, 3}, // @
	{7, 5, 7, 5, 5}, // A
	{7, 5, 6, 5, 7}, // B
	{3, 4, 4, 4, 3}, // C
	{6, 5, 5, 5, 6}, // D
	{7, 4, 6, 4, 7}, // E
	{7, 4, 6, 4, 4}, // F
	{3, 4, 5, 5, 7}, // G
	{5, 5, 7, 5, 5}, // H
	{7, 2, 2, 2, 7}, // I
	{7, 2, 2, 2, 6}, // J
	{5, 5, 6, 5, 5}, // K
	{4, 4, 4, 4, 7}, // L
	{7, 7, 5, 5, 5}, // M
	{6, 5, 5, 5, 5}, // N
	{3, 5, 5, 5, 6}, // O
	{7, 5, 7, 4, 4}, // P
	{2, 5, 5, 6, 3}, // Q
	{7, 5, 6, 5, 5}, // R
	{3, 4, 7, 1, 6}, // S
	{7, 2, 2, 2, 2}, // T
	{5, 5, 5, 5, 3}, // U
	{5, 5, 5, 7, 2}, // V
	{5, 5, 5, 7, 7}, // W
	{5, 5, 2, 5, 5}, // X
	{5, 5, 7, 1, 7}, // Y
	{7, 1, 2, 4, 7}, // Z
	{6, 4, 4, 4, 6}, // [
	{4, 4, 2, 1, 1}, // backslash
	{3, 1, 1, 1, 3}, // ]
	{2, 5, 0, 0, 0}, // ^
	{0, 0, 0, 0, 7}, // _
	{4, 2, 0, 0, 0}, // `
	// 0x61-0x7A are filled from 0x41-0x5A in init.
	{}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {},
	{}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {}, {},
	{3, 2, 6, 2, 3}, // {
	{2, 2, 2, 2, 2}, // |
	{6, 2, 3, 2, 6}, // }
	{0, 4, 7, 1, 0}, // ~
	{7, 7, 7, 7, 7}, // block
}

func init() {
	for ch := 'a'; ch <= 'z'; ch++ {
		defaultGlyphs[ch-0x20] = defaultGlyphs[ch-'a'+'A'-0x20]
	}
}

const (
	glyphCellW   = 4
	glyphCellH   = 6
	glyphsPerRow = 32

	wideCellW     = 8
	wideGlyphsRow = 16
	wideAtlasY    = 18
	fontInkColour = 7
)

// rasterDefaultFont draws the built-in glyphs into the font sheet in the
// atlas layout Print expects.
func (s *SpriteSheet) rasterDefaultFont() {
	for i, rows := range defaultGlyphs {
		ox := (i % glyphsPerRow) * glyphCellW
		oy := (i / glyphsPerRow) * glyphCellH
		for y, bits := range rows {
			for x := 0; x < 3; x++ {
				if bits&(4>>x) != 0 {
					s.pix[(oy+y)*sheetSize+ox+x] = fontInkColour
				}
			}
		}
	}
}
