package emu

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Screenshot encodes the screen as a PNG, scaled up by an integer factor
// with nearest-neighbour sampling. A scale below 1 is treated as 1.
func (c *Console) Screenshot(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	c.RenderRGBA(src)

	var img image.Image = src
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, ScreenWidth*scale, ScreenHeight*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		img = dst
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return nil
}
