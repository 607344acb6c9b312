package emu

import (
	"errors"
	"testing"
)

func TestLoadHex_Linear(t *testing.T) {
	c := makeTestConsole(t)
	n, err := c.LoadHex(MemScratchAddr, "0a 1B\nff\r\n", false)
	if err != nil {
		t.Fatalf("LoadHex failed: %v", err)
	}
	if n != 3 {
		t.Errorf("wrote %d bytes, want 3", n)
	}
	for i, want := range []uint8{0x0A, 0x1B, 0xFF} {
		if got := c.Peek(MemScratchAddr + uint16(i)); got != want {
			t.Errorf("byte %d: got 0x%02X, want 0x%02X", i, got, want)
		}
	}
}

func TestLoadHex_SwapPutsFirstDigitLeft(t *testing.T) {
	c := makeTestConsole(t)
	if _, err := c.LoadHex(MemGfxAddr, "12", true); err != nil {
		t.Fatalf("LoadHex failed: %v", err)
	}
	if c.SGet(0, 0) != 1 || c.SGet(1, 0) != 2 {
		t.Errorf("pixels: got %d,%d want 1,2", c.SGet(0, 0), c.SGet(1, 0))
	}
	if got := c.Peek(MemGfxAddr); got != 0x21 {
		t.Errorf("peek: got 0x%02X, want 0x21", got)
	}
}

func TestLoadHex_BadDigits(t *testing.T) {
	c := makeTestConsole(t)
	c.Poke(MemScratchAddr, 0x77)

	n, err := c.LoadHex(MemScratchAddr, "zz10", false)
	if !errors.Is(err, ErrBadHex) {
		t.Fatalf("expected ErrBadHex, got %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d bytes, want 2", n)
	}
	if got := c.Peek(MemScratchAddr); got != 0 {
		t.Errorf("bad pair: got 0x%02X, want 0", got)
	}
	if got := c.Peek(MemScratchAddr + 1); got != 0x10 {
		t.Errorf("good pair: got 0x%02X, want 0x10", got)
	}
}

func TestLoadHex_OddTrailingDigit(t *testing.T) {
	c := makeTestConsole(t)
	n, err := c.LoadHex(MemScratchAddr, "123", false)
	if !errors.Is(err, ErrBadHex) {
		t.Errorf("expected ErrBadHex, got %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d bytes, want 2", n)
	}
	if got := c.Peek(MemScratchAddr + 1); got != 0x30 {
		t.Errorf("trailing byte: got 0x%02X, want 0x30", got)
	}
}

func TestLoadSprites(t *testing.T) {
	c := makeTestConsole(t)
	if err := c.LoadSprites("1f\n23", "03 80"); err != nil {
		t.Fatalf("LoadSprites failed: %v", err)
	}

	want := []Colour{1, 0xF, 2, 3}
	for x, w := range want {
		if got := c.SGet(x, 0); got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
	if c.FGet(0) != 0x03 || c.FGet(1) != 0x80 {
		t.Errorf("flags: got 0x%02X 0x%02X", c.FGet(0), c.FGet(1))
	}
}

func TestLoadSprites_WrapsError(t *testing.T) {
	c := makeTestConsole(t)
	err := c.LoadSprites("", "xx")
	if !errors.Is(err, ErrBadHex) {
		t.Errorf("expected ErrBadHex, got %v", err)
	}
}

func TestLoadMap(t *testing.T) {
	c := makeTestConsole(t)
	if err := c.LoadMap("0502"); err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	if c.MGet(0, 0) != 5 || c.MGet(1, 0) != 2 {
		t.Errorf("cells: got %d,%d want 5,2", c.MGet(0, 0), c.MGet(1, 0))
	}
}

func TestLoadFont(t *testing.T) {
	c := makeTestConsole(t)
	if err := c.LoadFont("70"); err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if got := c.Peek(MemFontAddr); got != 0x07 {
		t.Errorf("font byte: got 0x%02X, want 0x07", got)
	}
}
