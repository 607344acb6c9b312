// Package viewer implements the built-in cartridge browser.
//
// The browser shows the cartridge label on start, then lets the user
// scroll around the map, switch to the sprite sheet and overlay sprite
// flags. The cell or sprite under the mouse pointer is shown in the
// status bar.
package viewer

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/user-none/empico/cart"
	"github.com/user-none/empico/emu"
)

// Mode is the active view.
type Mode int

const (
	ModeLabel Mode = iota
	ModeMap
	ModeSheet
)

func (m Mode) String() string {
	switch m {
	case ModeLabel:
		return "label"
	case ModeMap:
		return "map"
	case ModeSheet:
		return "sheet"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	cellSize   = 8
	mapCellsX  = 128
	mapCellsY  = 64
	scrollStep = cellSize

	maxCameraX = mapCellsX*cellSize - emu.ScreenWidth
	maxCameraY = mapCellsY*cellSize - emu.ScreenHeight

	statusHeight = 7
	statusY      = emu.ScreenHeight - statusHeight

	colourStatusBG = 1
	colourText     = 7
	colourFlagBase = 8
)

// Viewer is an emu.Program that browses a cartridge.
type Viewer struct {
	cart   *cart.Cart
	logger *log.Logger

	mode        Mode
	showFlags   bool
	cameraX     int
	cameraY     int
	hoverX      int
	hoverY      int
	hoverActive bool

	loadErr error
}

var _ emu.Program = (*Viewer)(nil)

// New creates a viewer for c. A nil cartridge browses an empty console.
func New(c *cart.Cart, logger *log.Logger) *Viewer {
	if logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		logger = log.NewWithConfig(cfg)
	}
	return &Viewer{
		cart:   c,
		logger: logger,
		mode:   ModeMap,
	}
}

// Mode returns the active view.
func (v *Viewer) Mode() Mode {
	return v.mode
}

// ShowFlags reports whether the flag overlay is on.
func (v *Viewer) ShowFlags() bool {
	return v.showFlags
}

// Camera returns the map scroll position in pixels.
func (v *Viewer) Camera() (int, int) {
	return v.cameraX, v.cameraY
}

// LoadError returns the error from loading the cartridge, if any.
func (v *Viewer) LoadError() error {
	return v.loadErr
}

// Init loads the cartridge into the console and shows its label.
func (v *Viewer) Init(c *emu.Console) {
	if v.cart == nil {
		return
	}

	if err := v.cart.Apply(c); err != nil {
		// Partially decoded data stays loaded, the browser still shows it.
		v.loadErr = err
		v.logger.Error("Loading cartridge failed", log.Err(err))
	}

	if !v.cart.HasLabel() {
		return
	}
	if err := v.cart.DrawLabel(c); err != nil {
		v.logger.Warn("Drawing cartridge label failed", log.Err(err))
		return
	}
	v.mode = ModeLabel
	v.logger.Debug("Showing cartridge label", log.String("title", v.cart.Title))
}

// Update handles the buttons and tracks the mouse pointer.
func (v *Viewer) Update(c *emu.Console) {
	if c.BtnP(emu.ButtonPause, 0) {
		v.reset()
		return
	}

	if v.mode == ModeLabel {
		if c.BtnPMask() != 0 {
			v.mode = ModeMap
		}
		return
	}

	if c.BtnP(emu.ButtonO, 0) {
		if v.mode == ModeMap {
			v.mode = ModeSheet
		} else {
			v.mode = ModeMap
		}
	}
	if c.BtnP(emu.ButtonX, 0) {
		v.showFlags = !v.showFlags
	}

	if v.mode == ModeMap {
		if c.BtnP(emu.ButtonLeft, 0) {
			v.cameraX -= scrollStep
		}
		if c.BtnP(emu.ButtonRight, 0) {
			v.cameraX += scrollStep
		}
		if c.BtnP(emu.ButtonUp, 0) {
			v.cameraY -= scrollStep
		}
		if c.BtnP(emu.ButtonDown, 0) {
			v.cameraY += scrollStep
		}
		v.cameraX = min(max(v.cameraX, 0), maxCameraX)
		v.cameraY = min(max(v.cameraY, 0), maxCameraY)
	}

	mx, my := c.Stat(emu.StatMouseX), c.Stat(emu.StatMouseY)
	v.hoverActive = mx >= 0 && mx < emu.ScreenWidth && my >= 0 && my < statusY
	if !v.hoverActive {
		return
	}
	if v.mode == ModeMap {
		v.hoverX = (v.cameraX + mx) / cellSize
		v.hoverY = (v.cameraY + my) / cellSize
	} else {
		v.hoverX = mx / cellSize
		v.hoverY = my / cellSize
	}
}

func (v *Viewer) reset() {
	v.mode = ModeMap
	v.showFlags = false
	v.cameraX = 0
	v.cameraY = 0
}

// Hover returns the cell (map view) or sprite tile (sheet view) under
// the mouse pointer and whether the pointer is over the view.
func (v *Viewer) Hover() (int, int, bool) {
	return v.hoverX, v.hoverY, v.hoverActive
}

// Draw renders the active view.
func (v *Viewer) Draw(c *emu.Console) {
	c.Restore()

	switch v.mode {
	case ModeLabel:
		// The label was written straight to the screen in Init.
		if v.cart != nil && v.cart.Title != "" {
			v.drawStatus(c, v.cart.Title)
		}
		return
	case ModeMap:
		v.drawMap(c)
	case ModeSheet:
		v.drawSheet(c)
	}

	v.drawStatus(c, v.statusText(c))
}

func (v *Viewer) drawMap(c *emu.Console) {
	c.Cls(0)
	c.Camera(v.cameraX, v.cameraY)
	c.Map(0, 0, 0, 0, mapCellsX, mapCellsY, 0)

	firstX, firstY := v.cameraX/cellSize, v.cameraY/cellSize
	if v.showFlags {
		for y := firstY; y < firstY+emu.ScreenHeight/cellSize; y++ {
			for x := firstX; x < firstX+emu.ScreenWidth/cellSize; x++ {
				cell := c.MGet(x, y)
				if cell == 0 {
					continue
				}
				if col, ok := flagColour(c.FGet(int(cell))); ok {
					c.Rect(x*cellSize, y*cellSize, x*cellSize+cellSize-1, y*cellSize+cellSize-1, col)
				}
			}
		}
	}
	c.ResetCamera()
}

func (v *Viewer) drawSheet(c *emu.Console) {
	c.Cls(0)
	c.SprRegion(0, 0, 0, 16, 16, false, false)

	if v.showFlags {
		for n := 0; n < 256; n++ {
			if col, ok := flagColour(c.FGet(n)); ok {
				x, y := (n%16)*cellSize, (n/16)*cellSize
				c.PSet(x+cellSize-1, y, col)
			}
		}
	}
}

// flagColour picks the overlay colour for a sprite's flags: red for
// flag 0 through pink for flag 7, by lowest set bit.
func flagColour(flags uint8) (uint8, bool) {
	for bit := 0; bit < 8; bit++ {
		if flags>>bit&1 != 0 {
			return uint8(colourFlagBase + bit), true
		}
	}
	return 0, false
}

func (v *Viewer) statusText(c *emu.Console) string {
	if !v.hoverActive {
		if v.mode == ModeMap {
			return fmt.Sprintf("map %d,%d", v.cameraX/cellSize, v.cameraY/cellSize)
		}
		return "sprites"
	}
	if v.mode == ModeMap {
		cell := c.MGet(v.hoverX, v.hoverY)
		return fmt.Sprintf("%d,%d #%d f%02x", v.hoverX, v.hoverY, cell, c.FGet(int(cell)))
	}
	n := v.hoverY*16 + v.hoverX
	return fmt.Sprintf("spr %d f%02x", n, c.FGet(n))
}

func (v *Viewer) drawStatus(c *emu.Console, text string) {
	c.RectFill(0, statusY, emu.ScreenWidth-1, emu.ScreenHeight-1, colourStatusBG)
	c.Print(text, 1, statusY+1, colourText)
}
