package main

import (
	libretro "github.com/user-none/eblitui/libretro"
	"github.com/user-none/empico/adapter"
)

func init() {
	libretro.RegisterFactory(&adapter.Factory{}, []libretro.RetropadMapping{
		{RetroID: libretro.JoypadB, BitID: 4},     // O
		{RetroID: libretro.JoypadA, BitID: 5},     // X
		{RetroID: libretro.JoypadY, BitID: 4},     // O
		{RetroID: libretro.JoypadX, BitID: 5},     // X
		{RetroID: libretro.JoypadStart, BitID: 7}, // Pause
	})
}

func main() {}
