package emu

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/log"
)

// scriptProgram runs caller-supplied functions and counts the calls.
type scriptProgram struct {
	inits, updates, draws int
	update, draw          func(c *Console)
}

func (p *scriptProgram) Init(c *Console) { p.inits++ }

func (p *scriptProgram) Update(c *Console) {
	p.updates++
	if p.update != nil {
		p.update(c)
	}
}

func (p *scriptProgram) Draw(c *Console) {
	p.draws++
	if p.draw != nil {
		p.draw(c)
	}
}

// createTestEmulator creates an Emulator running prog for a cartridge
// identified by crc.
func createTestEmulator(t *testing.T, prog Program, crc uint32) *Emulator {
	t.Helper()
	return createTestEmulatorWithLogger(t, prog, crc, log.NewTestLogger(t))
}

func createTestEmulatorWithLogger(t *testing.T, prog Program, crc uint32, logger *log.Logger) *Emulator {
	t.Helper()
	if prog == nil {
		prog = &scriptProgram{}
	}
	e, err := NewEmulator(prog, crc, RegionNTSC, WithLogger(logger))
	if err != nil {
		t.Fatalf("NewEmulator failed: %v", err)
	}
	return e
}

func TestSerializeSize(t *testing.T) {
	if got := SerializeSize(); got != stateHeaderSize+36706 {
		t.Errorf("SerializeSize: got %d, want %d", got, stateHeaderSize+36706)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	e := createTestEmulator(t, nil, 0x1234)
	c := e.Console()

	fillSheet(c)
	c.MSet(7, 3, 99)
	c.FSet(9, 0xA5)
	c.Poke(MemScratchAddr+10, 0x42)
	c.DSet(3, 0xCAFEF00D)
	c.Cls(2)
	c.CircFill(64, 64, 20, 11)
	c.Camera(-3, 4)
	c.Clip(1, 2, 100, 110)
	c.Pal(4, 5)
	c.Palt(6, true)
	c.Fillp(0xA5A5)
	c.Print("SAVE", 0, 0, 9)
	c.SetInputState(1<<ButtonO, 1)
	c.SetMouseState(MouseState{X: -1, Y: 77, Buttons: 2, Wheel: -5})

	state, err := e.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	restored := createTestEmulator(t, nil, 0x1234)
	if err := restored.Deserialize(state); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	r := restored.Console()

	if r.State() != c.State() {
		t.Errorf("graphics state: got %+v, want %+v", r.State(), c.State())
	}
	if r.sprites != c.sprites {
		t.Error("sprite sheet differs")
	}
	if r.font != c.font {
		t.Error("font sheet differs")
	}
	if r.mapSheet.upper != c.mapSheet.upper {
		t.Error("map differs")
	}
	if !bytes.Equal(r.fb.pix, c.fb.pix) {
		t.Error("screen differs")
	}
	if r.scratch != c.scratch {
		t.Error("scratch differs")
	}
	if r.DGet(3) != 0xCAFEF00D || !r.cartData.Dirty() {
		t.Error("cart data not restored")
	}
	if r.input != c.input || r.mouse != c.mouse {
		t.Error("input state differs")
	}
	if err := r.CheckIntegrity(); err != nil {
		t.Errorf("guards after restore: %v", err)
	}

	again, err := restored.Serialize()
	if err != nil {
		t.Fatalf("second Serialize failed: %v", err)
	}
	if !bytes.Equal(state, again) {
		t.Error("re-serialized state differs")
	}
}

func TestDeserialize_SkipsInit(t *testing.T) {
	e := createTestEmulator(t, nil, 1)
	state, err := e.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	prog := &scriptProgram{}
	restored := createTestEmulator(t, prog, 1)
	if err := restored.Deserialize(state); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	restored.RunFrame()
	if prog.inits != 0 {
		t.Errorf("Init called %d times after restore", prog.inits)
	}
}

func TestVerifyState_WrongCart(t *testing.T) {
	state, err := createTestEmulator(t, nil, 1).Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := createTestEmulator(t, nil, 2).VerifyState(state); err == nil {
		t.Error("expected error for different cartridge")
	}
}

func TestVerifyState_Corrupted(t *testing.T) {
	e := createTestEmulator(t, nil, 1)
	state, err := e.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	state[stateHeaderSize+100] ^= 0xFF
	if err := e.VerifyState(state); err == nil {
		t.Error("expected error for corrupted data")
	}
}

func TestVerifyState_BadMagicAndShort(t *testing.T) {
	e := createTestEmulator(t, nil, 1)
	state, err := e.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := e.VerifyState(state[:100]); err == nil {
		t.Error("expected error for short state")
	}
	state[0] = 'X'
	if err := e.VerifyState(state); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestConsoleDeserialize_ClampsClip(t *testing.T) {
	c := makeTestConsole(t)
	buf := make([]byte, ConsoleSerializeSize)
	if err := c.Serialize(buf); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Graphics state starts after the stores; clip x2 is the fifth int.
	off := ConsoleSerializeSize - gfxSerializeSize - MaxPlayers*3 - 16
	clipX2 := off + 4 + 4*4
	putInt32(buf[clipX2:], 5000)

	if err := c.Deserialize(buf); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got := c.State().ClipX2; got != 128 {
		t.Errorf("clip x2: got %d, want 128", got)
	}
}
