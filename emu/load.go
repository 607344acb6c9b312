package emu

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// ErrBadHex is returned when a bulk-load payload contains characters
// that are not hex digits. The offending digits decode as 0.
var ErrBadHex = errors.New("invalid hex digit in payload")

func hexValue(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

// LoadHex decodes a hex payload and pokes it into the address space
// starting at addr. Whitespace and control characters between byte
// pairs are skipped. With swap set, the first digit of each pair is the
// low nibble, which is how pixel data is written left pixel first.
// It returns the number of bytes written.
func (c *Console) LoadHex(addr uint16, payload string, swap bool) (int, error) {
	written := 0
	bad := 0
	for i := 0; i < len(payload); i++ {
		if payload[i] <= ' ' {
			continue
		}
		first := payload[i]
		var second byte
		if i+1 < len(payload) {
			i++
			second = payload[i]
		}
		hi, okHi := hexValue(first)
		lo, okLo := hexValue(second)
		if !okHi {
			bad++
		}
		if !okLo {
			bad++
		}
		if swap {
			hi, lo = lo, hi
		}
		c.Poke(addr, hi<<4|lo)
		addr++
		written++
	}

	if bad > 0 {
		c.logger.Warn("Payload contains invalid hex digits",
			log.Int("count", bad),
			log.Int("bytes", written))
		return written, fmt.Errorf("%w: %d digits", ErrBadHex, bad)
	}
	return written, nil
}

// LoadSprites loads sprite sheet pixels and sprite flags from hex
// payloads. Either payload may be empty.
func (c *Console) LoadSprites(gfx, flags string) error {
	if _, err := c.LoadHex(MemGfxAddr, gfx, true); err != nil {
		return fmt.Errorf("loading sprite sheet: %w", err)
	}
	if _, err := c.LoadHex(MemGfxFlagsAddr, flags, false); err != nil {
		return fmt.Errorf("loading sprite flags: %w", err)
	}
	return nil
}

// LoadFont loads the font sheet from a hex payload.
func (c *Console) LoadFont(gfx string) error {
	if _, err := c.LoadHex(MemFontAddr, gfx, true); err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	return nil
}

// LoadMap loads map rows 0..31 from a hex payload. Rows 32..63 are the
// lower half of the sprite sheet and arrive through LoadSprites.
func (c *Console) LoadMap(data string) error {
	if _, err := c.LoadHex(MemMapAddr, data, false); err != nil {
		return fmt.Errorf("loading map: %w", err)
	}
	return nil
}
