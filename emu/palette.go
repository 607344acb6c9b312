package emu

import (
	"image"
	"image/color"
)

// DisplayPalette is the RGB colour of each of the 16 palette indices.
var DisplayPalette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0x1D, 0x2B, 0x53, 0xFF},
	{0x7E, 0x25, 0x53, 0xFF},
	{0x00, 0x87, 0x51, 0xFF},
	{0xAB, 0x52, 0x36, 0xFF},
	{0x5F, 0x57, 0x4F, 0xFF},
	{0xC2, 0xC3, 0xC7, 0xFF},
	{0xFF, 0xF1, 0xE8, 0xFF},
	{0xFF, 0x00, 0x4D, 0xFF},
	{0xFF, 0xA3, 0x00, 0xFF},
	{0xFF, 0xEC, 0x27, 0xFF},
	{0x00, 0xE4, 0x36, 0xFF},
	{0x29, 0xAD, 0xFF, 0xFF},
	{0x83, 0x76, 0x9C, 0xFF},
	{0xFF, 0x77, 0xA8, 0xFF},
	{0xFF, 0xCC, 0xAA, 0xFF},
}

// RenderRGBA converts the screen to RGBA through the display palette.
// dst must be at least ScreenWidth x ScreenHeight. The guard regions are
// checked first; see Buffer.
func (c *Console) RenderRGBA(dst *image.RGBA) {
	pix, w, h := c.Buffer()
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			rgb := DisplayPalette[pix[y*w+x]&0x0F]
			o := x * 4
			row[o] = rgb.R
			row[o+1] = rgb.G
			row[o+2] = rgb.B
			row[o+3] = rgb.A
		}
	}
}
