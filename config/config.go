// Package config handles command line options and logger setup.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/user-none/empico/emu"
)

// Options of the direct runner.
type Options struct {
	Cart          string // cartridge file to load
	Region        string // auto, ntsc or pal
	Scale         int    // initial window scale
	ScreenshotDir string // where F12 screenshots are written
	Debug         bool
	Quiet         bool
	NoIntegrity   bool // skip the per-frame framebuffer guard check
}

const (
	defaultScale = 4
	maxScale     = 16
)

// ParseFlags parses the command line arguments, without the program
// name, into Options.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("empico", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if opts.Cart == "" && len(rest) > 0 {
		opts.Cart = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("unexpected argument %s, pass the cartridge as last argument", rest[0]),
		}
	}
	if opts.Cart == "" {
		return opts, &UsageError{flags: flags, msg: "no cartridge given"}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.Cart, "cart", "", "path to the .p8 cartridge")
	flags.StringVar(&opts.Region, "region", "auto", "region: auto, ntsc, or pal")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "initial window scale")
	flags.StringVar(&opts.ScreenshotDir, "screenshots", ".", "directory for F12 screenshots")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "only log errors")
	flags.BoolVar(&opts.NoIntegrity, "nointegrity", false, "skip the framebuffer guard check every frame")
}

func normalizeOptions(opts *Options) error {
	opts.Region = strings.ToLower(opts.Region)
	switch opts.Region {
	case "auto", "ntsc", "pal":
	default:
		return fmt.Errorf("invalid region: %s (use auto, ntsc, or pal)", opts.Region)
	}

	if opts.Scale < 1 || opts.Scale > maxScale {
		return fmt.Errorf("invalid scale %d: must be between 1 and %d", opts.Scale, maxScale)
	}
	return nil
}

// ResolveRegion maps the region option to an emulator region, detecting
// it from the cartridge for "auto".
func ResolveRegion(name string, cartData []byte) (emu.Region, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return emu.DetectRegion(cartData), nil
	case "ntsc":
		return emu.RegionNTSC, nil
	case "pal":
		return emu.RegionPAL, nil
	default:
		return emu.DefaultRegion(), fmt.Errorf("invalid region: %s", name)
	}
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and flag defaults to stderr.
func (e *UsageError) ShowUsage() {
	w := os.Stderr
	fmt.Fprintf(w, "usage: empico [options] <cartridge.p8>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	fmt.Fprintln(w)
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
