// Package ebiten provides an Ebiten-specific wrapper for the emulator.
package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/log"
	"github.com/user-none/empico/adapter"
	"github.com/user-none/empico/emu"
)

// Emulator wraps emu.Emulator with Ebiten-specific functionality
type Emulator struct {
	*emu.Emulator

	offscreen *ebiten.Image           // Offscreen buffer for native resolution rendering
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation

	// Placement of the last drawn frame, used to map the cursor back
	// to console pixels.
	scale            float64
	offsetX, offsetY float64
}

// NewEmulator creates a new emulator instance with Ebiten rendering.
func NewEmulator(cartData []byte, region emu.Region, logger *log.Logger) (*Emulator, error) {
	base, err := adapter.NewEmulator(cartData, region, logger)
	if err != nil {
		return nil, err
	}

	return &Emulator{
		Emulator: base,
		scale:    1,
	}, nil
}

// Layout implements ebiten.Game.
func (e *Emulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// DrawCachedFramebuffer renders pre-cached pixel data to the screen.
// The emulation goroutine writes pixels to a shared framebuffer and the
// Ebiten Draw() thread renders them.
func (e *Emulator) DrawCachedFramebuffer(screen *ebiten.Image, pixels []byte, stride, activeHeight int) {
	if activeHeight == 0 || stride == 0 {
		return
	}

	requiredLen := stride * activeHeight
	if len(pixels) < requiredLen {
		return
	}

	if e.offscreen == nil || e.offscreen.Bounds().Dy() != activeHeight {
		e.offscreen = ebiten.NewImage(emu.ScreenWidth, activeHeight)
	}

	e.offscreen.WritePixels(pixels[:requiredLen])

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	e.scale, e.offsetX, e.offsetY = fit(screenW, screenH, emu.ScreenWidth, activeHeight)

	e.drawOpts = ebiten.DrawImageOptions{}
	e.drawOpts.GeoM.Scale(e.scale, e.scale)
	e.drawOpts.GeoM.Translate(e.offsetX, e.offsetY)
	e.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(e.offscreen, &e.drawOpts)
}

// CursorToConsole maps a window cursor position to console pixels using
// the placement of the last drawn frame. Positions outside the picture
// map to coordinates outside 0..127.
func (e *Emulator) CursorToConsole(x, y int) (int, int) {
	return toConsole(x, y, e.scale, e.offsetX, e.offsetY)
}

// fit scales a native picture to the largest size that fits the screen
// while preserving the aspect ratio, centred.
func fit(screenW, screenH, nativeW, nativeH int) (scale, offsetX, offsetY float64) {
	scaleX := float64(screenW) / float64(nativeW)
	scaleY := float64(screenH) / float64(nativeH)
	scale = min(scaleX, scaleY)

	offsetX = (float64(screenW) - float64(nativeW)*scale) / 2
	offsetY = (float64(screenH) - float64(nativeH)*scale) / 2
	return scale, offsetX, offsetY
}

func toConsole(x, y int, scale, offsetX, offsetY float64) (int, int) {
	if scale <= 0 {
		return -1, -1
	}
	cx := math.Floor((float64(x) - offsetX) / scale)
	cy := math.Floor((float64(y) - offsetY) / scale)
	return int(cx), int(cy)
}
