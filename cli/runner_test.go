package cli

import (
	"testing"

	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/empico/emu"
)

func TestButtonMask_MatchesEmulatorMapping(t *testing.T) {
	mask := buttonMask(true, false, true, false, true, true, true)

	want := uint32(1<<emucore.ButtonUp | 1<<emucore.ButtonLeft | 1<<4 | 1<<5 | 1<<7)
	if mask != want {
		t.Fatalf("mask: got %#x, want %#x", mask, want)
	}

	e, err := emu.NewEmulator(nopProgram{}, 0, emu.RegionNTSC)
	if err != nil {
		t.Fatalf("NewEmulator failed: %v", err)
	}
	e.SetInput(0, mask)
	e.RunFrame()

	c := e.Console()
	for _, b := range []int{emu.ButtonUp, emu.ButtonLeft, emu.ButtonO, emu.ButtonX, emu.ButtonPause} {
		if !c.Btn(b, 0) {
			t.Errorf("button %d not pressed", b)
		}
	}
	if c.Btn(emu.ButtonDown, 0) || c.Btn(emu.ButtonRight, 0) {
		t.Error("unpressed direction reported")
	}
}

type nopProgram struct{}

func (nopProgram) Init(*emu.Console)   {}
func (nopProgram) Update(*emu.Console) {}
func (nopProgram) Draw(*emu.Console)   {}
