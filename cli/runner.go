// Package cli provides a command-line runner for the emulator.
// It handles input polling and runs the emulator in a window without the full UI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"
	emucore "github.com/user-none/eblitui/api"
	emubridge "github.com/user-none/empico/bridge/ebiten"
	"github.com/user-none/empico/ui"
)

// Audio queue thresholds in bytes for frame pacing.
const (
	adtMinBuffer = 9600
	adtMaxBuffer = 19200
)

const screenshotScale = 4

// Button bits beyond the directions, matching the adapter's button IDs.
const (
	bitO     = 4
	bitX     = 5
	bitPause = 7
)

// Runner wraps an emulator for command-line mode.
// The emulator runs on a dedicated goroutine paced by the audio queue.
// The Ebiten thread handles input polling and rendering from the shared framebuffer.
type Runner struct {
	emulator    *emubridge.Emulator
	audioPlayer *ui.AudioPlayer
	logger      *log.Logger

	emuControl        *ui.EmuControl
	sharedInput       *ui.SharedInput
	sharedFramebuffer *ui.SharedFramebuffer
	emuDone           chan struct{}

	screenshotDir string
	screenshotReq atomic.Bool
	focusPaused   bool
}

// NewRunner creates a new Runner wrapping the given emulator and starts
// emulation. Audio initialization failure is non-fatal; the runner then
// paces frames on the clock alone.
func NewRunner(e *emubridge.Emulator, screenshotDir string, logger *log.Logger) *Runner {
	player, err := ui.NewAudioPlayer(1.0)
	if err != nil {
		logger.Warn("Audio initialization failed", log.Err(err))
	}

	r := &Runner{
		emulator:          e,
		audioPlayer:       player,
		logger:            logger,
		emuControl:        ui.NewEmuControl(),
		sharedInput:       &ui.SharedInput{},
		sharedFramebuffer: ui.NewSharedFramebuffer(),
		emuDone:           make(chan struct{}),
		screenshotDir:     screenshotDir,
	}

	go r.emulationLoop()

	return r
}

// Close stops emulation and releases audio.
func (r *Runner) Close() {
	if r.emuControl != nil {
		r.emuControl.Stop()
		<-r.emuDone
	}

	if r.audioPlayer != nil {
		r.audioPlayer.Close()
		r.audioPlayer = nil
	}
}

// WithPaused runs fn while the emulation goroutine is parked, for work
// that touches emulator state from another goroutine.
func (r *Runner) WithPaused(fn func()) {
	r.emuControl.WithPaused(fn)
}

func (r *Runner) emulationLoop() {
	defer close(r.emuDone)

	timing := r.emulator.GetTiming()
	frameTime := time.Duration(float64(time.Second) / float64(timing.FPS))
	lastFrameTime := time.Now()

	for {
		if !r.emuControl.CheckPause() {
			return
		}

		buttons, mouse := r.sharedInput.Read()
		r.emulator.SetInput(0, buttons)
		r.emulator.SetMouse(mouse.X, mouse.Y, mouse.Buttons, mouse.Wheel)

		r.emulator.RunFrame()

		if r.audioPlayer != nil {
			r.audioPlayer.QueueSamples(r.emulator.GetAudioSamples())
		}

		r.sharedFramebuffer.Update(
			r.emulator.GetFramebuffer(),
			r.emulator.GetFramebufferStride(),
			r.emulator.GetActiveHeight(),
		)

		if r.screenshotReq.Swap(false) {
			r.saveScreenshot()
		}

		elapsed := time.Since(lastFrameTime)
		sleepTime := frameTime - elapsed

		if r.audioPlayer != nil {
			bufferLevel := r.audioPlayer.GetBufferLevel()
			if bufferLevel < adtMinBuffer {
				sleepTime = time.Duration(float64(sleepTime) * 0.9)
			} else if bufferLevel > adtMaxBuffer {
				sleepTime = time.Duration(float64(sleepTime) * 1.1)
			}
		}

		if sleepTime > time.Millisecond {
			time.Sleep(sleepTime)
		}

		lastFrameTime = time.Now()
	}
}

// saveScreenshot runs on the emulation goroutine, between frames.
func (r *Runner) saveScreenshot() {
	name := fmt.Sprintf("empico-%s.png", time.Now().Format("20060102-150405.000"))
	path := filepath.Join(r.screenshotDir, name)

	f, err := os.Create(path)
	if err != nil {
		r.logger.Error("Creating screenshot file failed", log.String("path", path), log.Err(err))
		return
	}
	defer func() { _ = f.Close() }()

	if err := r.emulator.Console().Screenshot(f, screenshotScale); err != nil {
		r.logger.Error("Saving screenshot failed", log.String("path", path), log.Err(err))
		return
	}
	r.logger.Info("Screenshot saved", log.String("path", path))
}

// Update implements ebiten.Game. Emulation pauses while the window is
// not focused.
func (r *Runner) Update() error {
	if !ebiten.IsFocused() {
		if !r.focusPaused {
			r.emuControl.RequestPause()
			r.focusPaused = true
		}
		return nil
	}
	if r.focusPaused {
		if r.audioPlayer != nil {
			r.audioPlayer.Flush()
		}
		r.emuControl.RequestResume()
		r.focusPaused = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		r.screenshotReq.Store(true)
	}

	r.sharedInput.SetButtons(pollButtons())
	r.pollMouse()
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	pixels, stride, height := r.sharedFramebuffer.Read()
	if height == 0 {
		return
	}
	r.emulator.DrawCachedFramebuffer(screen, pixels, stride, height)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.emulator.Layout(outsideWidth, outsideHeight)
}

// pollButtons reads keyboard and gamepads into an emucore button mask.
func pollButtons() uint32 {
	// Keyboard: arrows or WASD to move, Z/C/N for O, X/V/M for X,
	// Enter or P for pause.
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	btnO := ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeyC) || ebiten.IsKeyPressed(ebiten.KeyN)
	btnX := ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeyV) || ebiten.IsKeyPressed(ebiten.KeyM)
	pause := ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyP)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		up = up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		down = down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)

		// A/Cross=O, B/Circle=X, Start=pause
		btnO = btnO || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		btnX = btnX || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		pause = pause || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight)

		const deadzone = 0.5
		axisX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		axisY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || axisX < -deadzone
		right = right || axisX > deadzone
		up = up || axisY < -deadzone
		down = down || axisY > deadzone
	}

	return buttonMask(up, down, left, right, btnO, btnX, pause)
}

func buttonMask(up, down, left, right, btnO, btnX, pause bool) uint32 {
	var mask uint32
	if up {
		mask |= 1 << emucore.ButtonUp
	}
	if down {
		mask |= 1 << emucore.ButtonDown
	}
	if left {
		mask |= 1 << emucore.ButtonLeft
	}
	if right {
		mask |= 1 << emucore.ButtonRight
	}
	if btnO {
		mask |= 1 << bitO
	}
	if btnX {
		mask |= 1 << bitX
	}
	if pause {
		mask |= 1 << bitPause
	}
	return mask
}

// pollMouse translates the cursor into console pixels.
func (r *Runner) pollMouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := r.emulator.CursorToConsole(cx, cy)

	var buttons int
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= 1
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= 2
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= 4
	}

	_, wheelY := ebiten.Wheel()
	wheel := 0
	if wheelY > 0 {
		wheel = 1
	} else if wheelY < 0 {
		wheel = -1
	}

	r.sharedInput.SetMouse(x, y, buttons, wheel)
}
