package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/log"
	emubridge "github.com/user-none/empico/bridge/ebiten"
	"github.com/user-none/empico/cli"
	"github.com/user-none/empico/config"
	"github.com/user-none/empico/emu"
)

func main() {
	opts, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			logger.Error(err.Error())
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	cartData, err := os.ReadFile(opts.Cart)
	if err != nil {
		logger.Fatal("Failed to load cartridge", log.Err(err))
	}

	region, err := config.ResolveRegion(opts.Region, cartData)
	if err != nil {
		logger.Fatal("Invalid region", log.Err(err))
	}

	e, err := emubridge.NewEmulator(cartData, region, logger)
	if err != nil {
		logger.Fatal("Failed to initialize emulator", log.Err(err))
	}
	if !opts.NoIntegrity {
		e.SetOption(emu.OptionIntegrityCheck, "true")
	}

	// Cart data persists next to the cartridge.
	savePath := strings.TrimSuffix(opts.Cart, filepath.Ext(opts.Cart)) + ".srm"
	if data, err := os.ReadFile(savePath); err == nil {
		e.SetSRAM(data)
		logger.Debug("Loaded cart data", log.String("path", savePath))
	}

	ebiten.SetWindowSize(emu.ScreenWidth*opts.Scale, emu.ScreenHeight*opts.Scale)
	ebiten.SetWindowTitle(emu.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(emu.ScreenWidth, emu.ScreenHeight, -1, -1)
	ebiten.SetTPS(emu.FrameRate)

	runner := cli.NewRunner(e, opts.ScreenshotDir, logger)
	defer runner.Close()
	defer e.Close()

	defer func() {
		var data []byte
		runner.WithPaused(func() { data = e.GetSRAM() })
		if err := os.WriteFile(savePath, data, 0644); err != nil {
			logger.Error("Failed to save cart data", log.String("path", savePath), log.Err(err))
		}
	}()

	if err := ebiten.RunGame(runner); err != nil {
		logger.Fatal("Game loop failed", log.Err(err))
	}
}
