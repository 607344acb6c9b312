package ui

import "sync"

// EmuControl coordinates pausing and stopping the emulation goroutine
// from the Ebiten thread. Work that must not race the emulator, such as
// saving cart data or taking a screenshot, runs while paused.
type EmuControl struct {
	mu       sync.Mutex
	cond     *sync.Cond
	pauseReq bool
	paused   bool
	stopped  bool
}

// NewEmuControl creates a new emulation control.
func NewEmuControl() *EmuControl {
	ec := &EmuControl{}
	ec.cond = sync.NewCond(&ec.mu)
	return ec
}

// RequestPause asks the emulation goroutine to pause and blocks until it
// has parked between frames or exited.
func (ec *EmuControl) RequestPause() {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.pauseReq = true
	ec.cond.Broadcast()
	for !ec.paused && !ec.stopped {
		ec.cond.Wait()
	}
}

// RequestResume lets a paused emulation goroutine continue.
func (ec *EmuControl) RequestResume() {
	ec.mu.Lock()
	ec.pauseReq = false
	ec.cond.Broadcast()
	ec.mu.Unlock()
}

// CheckPause is called by the emulation goroutine between frames. It
// blocks while a pause is requested and returns false once the goroutine
// should exit.
func (ec *EmuControl) CheckPause() bool {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	for ec.pauseReq && !ec.stopped {
		if !ec.paused {
			ec.paused = true
			ec.cond.Broadcast()
		}
		ec.cond.Wait()
	}
	ec.paused = false
	return !ec.stopped
}

// Stop signals the emulation goroutine to exit and releases any pause.
func (ec *EmuControl) Stop() {
	ec.mu.Lock()
	ec.stopped = true
	ec.pauseReq = false
	ec.cond.Broadcast()
	ec.mu.Unlock()
}

// IsPaused returns true if the emulation goroutine is parked.
func (ec *EmuControl) IsPaused() bool {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.paused
}

// WithPaused runs fn with the emulation goroutine parked and resumes it
// afterwards unless it was already paused.
func (ec *EmuControl) WithPaused(fn func()) {
	ec.mu.Lock()
	wasPaused := ec.pauseReq
	ec.mu.Unlock()

	ec.RequestPause()
	fn()
	if !wasPaused {
		ec.RequestResume()
	}
}
