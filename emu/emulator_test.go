package emu

import (
	"testing"

	"github.com/retroenv/retrogolib/log"
	emucore "github.com/user-none/eblitui/api"
)

func TestEmulator_RunFrameCallsProgram(t *testing.T) {
	prog := &scriptProgram{}
	e := createTestEmulator(t, prog, 0)

	e.RunFrame()
	e.RunFrame()

	if prog.inits != 1 || prog.updates != 2 || prog.draws != 2 {
		t.Errorf("calls: init=%d update=%d draw=%d, want 1/2/2", prog.inits, prog.updates, prog.draws)
	}
}

func TestEmulator_FramebufferRGBA(t *testing.T) {
	prog := &scriptProgram{draw: func(c *Console) {
		c.Cls(1)
		c.PSet(0, 0, 8)
	}}
	e := createTestEmulator(t, prog, 0)
	e.RunFrame()

	fb := e.GetFramebuffer()
	if len(fb) != ScreenWidth*ScreenHeight*4 {
		t.Fatalf("framebuffer length %d", len(fb))
	}
	if e.GetFramebufferStride() != ScreenWidth*4 {
		t.Errorf("stride: got %d", e.GetFramebufferStride())
	}
	if fb[0] != 0xFF || fb[1] != 0x00 || fb[2] != 0x4D || fb[3] != 0xFF {
		t.Errorf("pixel 0: got % X, want FF 00 4D FF", fb[0:4])
	}
	if fb[4] != 0x1D || fb[5] != 0x2B || fb[6] != 0x53 {
		t.Errorf("pixel 1: got % X, want 1D 2B 53", fb[4:7])
	}
	if e.GetActiveHeight() != ScreenHeight {
		t.Errorf("active height: got %d", e.GetActiveHeight())
	}
}

func TestEmulator_AudioFrame(t *testing.T) {
	e := createTestEmulator(t, nil, 0)
	e.RunFrame()

	samples := e.GetAudioSamples()
	if len(samples) != 1600 {
		t.Fatalf("got %d samples, want 1600", len(samples))
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d not silent: %d", i, s)
		}
	}
}

func TestEmulator_InputSampledPerFrame(t *testing.T) {
	var seen []bool
	prog := &scriptProgram{update: func(c *Console) {
		seen = append(seen, c.BtnP(ButtonO, 0))
	}}
	e := createTestEmulator(t, prog, 0)

	e.SetInput(0, 1<<emucore.ButtonLeft|1<<4)
	e.RunFrame()
	e.RunFrame()

	c := e.Console()
	if !c.Btn(ButtonLeft, 0) || !c.Btn(ButtonO, 0) {
		t.Error("buttons not mapped")
	}
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("BtnP per frame: got %v, want [true false]", seen)
	}

	e.SetInput(1, 1<<5|1<<7)
	e.RunFrame()
	if !c.Btn(ButtonX, 1) || !c.Btn(ButtonPause, 1) {
		t.Error("player 1 X/pause not mapped")
	}

	e.SetInput(9, 0xFFFF) // ignored
}

func TestEmulator_Mouse(t *testing.T) {
	var x, y int
	prog := &scriptProgram{update: func(c *Console) {
		x, y = c.Stat(StatMouseX), c.Stat(StatMouseY)
	}}
	e := createTestEmulator(t, prog, 0)
	e.SetMouse(30, 40, 1, 0)
	e.RunFrame()

	if x != 30 || y != 40 {
		t.Errorf("mouse: got (%d,%d), want (30,40)", x, y)
	}
}

func TestEmulator_FlushesCartDataEachFrame(t *testing.T) {
	prog := &scriptProgram{update: func(c *Console) {
		c.DSet(0, 7)
	}}
	e := createTestEmulator(t, prog, 0)
	e.RunFrame()

	if sram := e.GetSRAM(); sram[0] != 7 {
		t.Errorf("SRAM byte 0: got %d, want 7", sram[0])
	}
	if !e.HasSRAM() {
		t.Error("HasSRAM false")
	}
}

func TestEmulator_IntegrityOption(t *testing.T) {
	e := createTestEmulatorWithLogger(t, nil, 0, log.NewNop())
	e.SetOption(OptionIntegrityCheck, "true")
	e.Console().fb.guardLo[0] = 0xAA

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on corrupted guard")
		}
	}()
	e.RunFrame()
}

func TestEmulator_ReadMemory(t *testing.T) {
	e := createTestEmulator(t, nil, 0)
	e.Console().Poke(MemScratchAddr, 0x99)

	buf := make([]byte, 2)
	if n := e.ReadMemory(MemScratchAddr, buf); n != 2 || buf[0] != 0x99 {
		t.Errorf("read: n=%d buf=% X", n, buf)
	}

	buf = make([]byte, 4)
	if n := e.ReadMemory(0xFFFE, buf); n != 2 {
		t.Errorf("read across end: got %d bytes, want 2", n)
	}
}

func TestEmulator_MemoryRegions(t *testing.T) {
	e := createTestEmulator(t, nil, 0)

	regions := e.MemoryMap()
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}

	e.WriteRegion(emucore.MemorySystemRAM, []byte{5, 6})
	if got := e.Console().Peek(MemScratchAddr + 1); got != 6 {
		t.Errorf("system RAM write: got %d, want 6", got)
	}
	if got := e.ReadRegion(emucore.MemorySystemRAM); len(got) != MemScratchSize || got[0] != 5 {
		t.Errorf("system RAM read: len %d", len(got))
	}

	e.WriteRegion(emucore.MemorySaveRAM, []byte{9})
	if got := e.ReadRegion(emucore.MemorySaveRAM); len(got) != MemCartDataSize || got[0] != 9 {
		t.Errorf("save RAM read: len %d", len(got))
	}
	if e.ReadRegion(99) != nil {
		t.Error("unknown region returned data")
	}
}

func TestEmulator_Timing(t *testing.T) {
	e := createTestEmulator(t, nil, 0)
	e.SetRegion(RegionPAL)
	if e.GetRegion() != RegionPAL {
		t.Error("region not stored")
	}
	timing := e.GetTiming()
	if timing.FPS != 60 || timing.Scanlines != 128 {
		t.Errorf("timing: got %+v", timing)
	}
}
