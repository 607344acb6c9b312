//go:build !libretro && !ios

package main

import (
	"flag"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/user-none/eblitui/standalone"
	"github.com/user-none/empico/adapter"
	"github.com/user-none/empico/config"
	"github.com/user-none/empico/emu"
)

func main() {
	cartPath := flag.String("cart", "", "path to .p8 cartridge (opens UI if not provided)")
	regionFlag := flag.String("region", "auto", "region: auto, ntsc, or pal")
	integrity := flag.Bool("integrity", false, "check the framebuffer guard areas every frame")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := config.CreateLogger(*debug, false)
	factory := &adapter.Factory{Logger: logger}

	if *cartPath != "" {
		options := map[string]string{
			emu.OptionIntegrityCheck: "false",
		}
		if *integrity {
			options[emu.OptionIntegrityCheck] = "true"
		}
		if err := standalone.RunDirect(factory, *cartPath, *regionFlag, options); err != nil {
			logger.Fatal("Running cartridge failed", log.String("cart", *cartPath), log.Err(err))
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		logger.Error("Frontend failed", log.Err(err))
		os.Exit(1)
	}
}
