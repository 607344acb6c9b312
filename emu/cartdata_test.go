package emu

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/log"
)

func TestDGetDSet(t *testing.T) {
	c := makeTestConsole(t)
	c.DSet(1, 0xDEADBEEF)

	if got := c.Peek4(MemCartDataAddr + 4); got != 0xDEADBEEF {
		t.Errorf("peek4: got 0x%08X", got)
	}
	if got := c.DGet(1); got != 0xDEADBEEF {
		t.Errorf("DGet(1): got 0x%08X", got)
	}
	// 65*4 wraps to offset 4.
	if got := c.DGet(65); got != 0xDEADBEEF {
		t.Errorf("DGet(65): got 0x%08X", got)
	}
}

func TestFlushCartData(t *testing.T) {
	target := &recordingTarget{}
	c, err := NewConsole(WithLogger(log.NewTestLogger(t)), WithSaveTarget(target))
	if err != nil {
		t.Fatalf("NewConsole failed: %v", err)
	}

	if err := c.FlushCartData(); err != nil {
		t.Fatalf("clean flush: %v", err)
	}
	if len(target.saves) != 0 {
		t.Fatal("clean flush reached the save target")
	}

	c.DSet(0, 42)
	if c.CartData()[0] != 0 {
		t.Error("uncommitted write visible in CartData")
	}
	if err := c.FlushCartData(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if len(target.saves) != 1 || target.saves[0][0] != 42 {
		t.Fatalf("saves: %v", target.saves)
	}
	if c.CartData()[0] != 42 {
		t.Error("committed write missing from CartData")
	}
}

func TestSetCartData(t *testing.T) {
	c := makeTestConsole(t)
	c.SetCartData([]byte{1, 2, 3})

	if got := c.Peek(MemCartDataAddr + 2); got != 3 {
		t.Errorf("peek: got %d, want 3", got)
	}
	want := make([]byte, MemCartDataSize)
	copy(want, []byte{1, 2, 3})
	if !bytes.Equal(c.CartData(), want) {
		t.Error("CartData does not match loaded data")
	}
	if c.cartData.Dirty() {
		t.Error("loaded data marked dirty")
	}
}
