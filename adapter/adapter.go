package adapter

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/retroenv/retrogolib/log"
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/empico/cart"
	"github.com/user-none/empico/emu"
	"github.com/user-none/empico/viewer"
)

// Compile-time interface check.
var _ emucore.CoreFactory = (*Factory)(nil)

// Factory implements emucore.CoreFactory for the fantasy console.
type Factory struct {
	// Logger is handed to every emulator created. Nil logs errors only.
	Logger *log.Logger
}

// SystemInfo returns system metadata for UI configuration.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:            emu.Name,
		ConsoleName:     "PICO-8",
		Extensions:      []string{".p8"},
		ScreenWidth:     emu.ScreenWidth,
		MaxScreenHeight: emu.ScreenHeight,
		AspectRatio:     1.0,
		SampleRate:      emu.SampleRate,
		Buttons: []emucore.Button{
			{Name: "O", ID: 4, DefaultKey: "Z", DefaultPad: "A"},
			{Name: "X", ID: 5, DefaultKey: "X", DefaultPad: "B"},
			{Name: "Pause", ID: 7, DefaultKey: "Enter", DefaultPad: "Start"},
		},
		Players: emu.MaxPlayers,
		CoreOptions: []emucore.CoreOption{
			{
				Key:         emu.OptionIntegrityCheck,
				Label:       "Framebuffer Integrity Check",
				Description: "Verify the framebuffer guard areas before every frame",
				Type:        emucore.CoreOptionBool,
				Default:     "false",
				Category:    emucore.CoreOptionCategoryCore,
			},
		},
		DataDirName:   emu.Name,
		CoreName:      emu.Name,
		CoreVersion:   emu.Version,
		SerializeSize: emu.SerializeSize(),
	}
}

// CreateEmulator creates a new emulator instance running the cartridge
// browser over the given cartridge.
func (f *Factory) CreateEmulator(rom []byte, region emucore.Region) (emucore.Emulator, error) {
	e, err := NewEmulator(rom, region, f.Logger)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// DetectRegion returns the console's only timing. The bool return is
// false since no cartridge database is consulted.
func (f *Factory) DetectRegion(rom []byte) (emucore.Region, bool) {
	return emu.DetectRegion(rom), false
}

// NewEmulator parses a text cartridge and creates an emulator that
// browses it. The cartridge CRC32 ties save states to the cartridge.
func NewEmulator(rom []byte, region emu.Region, logger *log.Logger) (*emu.Emulator, error) {
	c, err := cart.Parse(bytes.NewReader(rom))
	if err != nil {
		return nil, fmt.Errorf("parsing cartridge: %w", err)
	}

	var opts []emu.Option
	if logger != nil {
		opts = append(opts, emu.WithLogger(logger))
		logger.Debug("Cartridge parsed",
			log.String("title", c.Title),
			log.Int("version", c.Version),
			log.Int("sections", len(c.SectionNames())))
	}

	e, err := emu.NewEmulator(viewer.New(c, logger), crc32.ChecksumIEEE(rom), region, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating emulator: %w", err)
	}
	return e, nil
}
