package emu

import "fmt"

// Colour is a palette index. Only the low 4 bits are meaningful.
type Colour = uint8

const (
	ScreenWidth  = 128
	ScreenHeight = 128

	screenPixels = ScreenWidth * ScreenHeight
	guardSize    = ScreenWidth * 64
)

// Framebuffer is the 128x128 back buffer. It shares one allocation with
// two guard regions, one on each side, pre-filled with a repeating
// 0..255 pattern. A guard that no longer matches its pattern means some
// write escaped the pixel extent.
type Framebuffer struct {
	store   []Colour
	pix     []Colour
	guardLo []Colour
	guardHi []Colour
}

func newFramebuffer() *Framebuffer {
	store := make([]Colour, guardSize+screenPixels+guardSize)
	fb := &Framebuffer{
		store:   store,
		guardLo: store[:guardSize:guardSize],
		pix:     store[guardSize : guardSize+screenPixels : guardSize+screenPixels],
		guardHi: store[guardSize+screenPixels:],
	}
	fb.initGuards()
	return fb
}

func (fb *Framebuffer) initGuards() {
	for i := range fb.guardLo {
		fb.guardLo[i] = uint8(i)
		fb.guardHi[i] = uint8(i)
	}
}

// GuardError reports the first guard byte found corrupted.
type GuardError struct {
	Guard  string // "low" or "high"
	Offset int    // offset inside the guard region
	Got    uint8
	Want   uint8
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("framebuffer %s guard corrupted at offset %d: got 0x%02X, want 0x%02X",
		e.Guard, e.Offset, e.Got, e.Want)
}

// CheckGuards verifies both guard regions still hold their pattern.
func (fb *Framebuffer) CheckGuards() error {
	for i := range fb.guardLo {
		want := uint8(i)
		if fb.guardLo[i] != want {
			return &GuardError{Guard: "low", Offset: i, Got: fb.guardLo[i], Want: want}
		}
		if fb.guardHi[i] != want {
			return &GuardError{Guard: "high", Offset: i, Got: fb.guardHi[i], Want: want}
		}
	}
	return nil
}

// fill sets every pixel to c.
func (fb *Framebuffer) fill(c Colour) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}
