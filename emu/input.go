package emu

// Button bits of an input mask.
const (
	ButtonLeft = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonO
	ButtonX
	ButtonPause
)

// MaxPlayers is the number of input slots.
const MaxPlayers = 4

const (
	repeatDelay  = 16
	repeatPeriod = 4
)

// InputState tracks one player's buttons across frames. The repeat
// counter reloads to 16 on any new press, counts down once per sample
// and wraps to 4 on reaching 0; a held button reports a repeat press
// whenever the counter is 1.
type InputState struct {
	previous uint8
	current  uint8
	repeat   uint8
}

func (s *InputState) set(mask uint8) {
	s.previous = s.current
	s.current = mask
	if s.justPressed() != 0 {
		s.repeat = repeatDelay
	}
	s.repeat--
	if s.repeat == 0 {
		s.repeat = repeatPeriod
	}
}

func (s *InputState) justPressed() uint8 {
	return ^s.previous & s.current
}

func (s *InputState) justReleased() uint8 {
	return s.previous &^ s.current
}

func (s *InputState) pressed(n int) bool {
	return s.current>>n&1 != 0
}

func (s *InputState) pressedRepeat(n int) bool {
	return s.justPressed()>>n&1 != 0 || (s.pressed(n) && s.repeat == 1)
}

// MouseState is the pointer position in screen pixels, the button mask
// and the accumulated wheel movement.
type MouseState struct {
	X, Y    int
	Buttons int
	Wheel   int
}

// SetInputState samples a new button mask for player. Out-of-range
// players are ignored.
func (c *Console) SetInputState(mask uint8, player int) {
	if player < 0 || player >= MaxPlayers {
		return
	}
	c.input[player].set(mask)
}

// SetMouseState replaces the pointer state reported by Stat.
func (c *Console) SetMouseState(ms MouseState) {
	c.mouse = ms
}

func (c *Console) player(p int) *InputState {
	if p < 0 || p >= MaxPlayers {
		return nil
	}
	return &c.input[p]
}

func validButton(n int) bool {
	return n >= 0 && n < 8
}

// Btn reports whether button n of player p is held.
func (c *Console) Btn(n, p int) bool {
	s := c.player(p)
	return s != nil && validButton(n) && s.pressed(n)
}

// BtnMask returns the held-button mask of player 0.
func (c *Console) BtnMask() uint8 {
	return c.input[0].current
}

// BtnP reports whether button n of player p was pressed this sample or
// is due an auto-repeat.
func (c *Console) BtnP(n, p int) bool {
	s := c.player(p)
	return s != nil && validButton(n) && s.pressedRepeat(n)
}

// BtnPMask returns the just-pressed mask of player 0. Auto-repeat is not
// included.
func (c *Console) BtnPMask() uint8 {
	return c.input[0].justPressed()
}

// JustReleased reports whether button n of player p was let go this
// sample.
func (c *Console) JustReleased(n, p int) bool {
	s := c.player(p)
	return s != nil && validButton(n) && s.justReleased()>>n&1 != 0
}

// Stat keys.
const (
	StatMouseX       = 32
	StatMouseY       = 33
	StatMouseButtons = 34
	StatMouseWheel   = 36
)

// Stat returns the system value for key. Unknown keys return 0.
func (c *Console) Stat(key int) int {
	switch key {
	case StatMouseX:
		return c.mouse.X
	case StatMouseY:
		return c.mouse.Y
	case StatMouseButtons:
		return c.mouse.Buttons
	case StatMouseWheel:
		return c.mouse.Wheel
	default:
		return 0
	}
}
