// Package cart parses text cartridges and loads them into a console.
package cart

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/user-none/empico/emu"
)

// Header is the first line of every text cartridge.
const Header = "pico-8 cartridge"

// Section names.
const (
	SectionCode  = "lua"
	SectionGfx   = "gfx"
	SectionFlags = "gff"
	SectionMap   = "map"
	SectionFont  = "font"
	SectionLabel = "label"
)

var (
	// ErrNoHeader is returned when the input does not start with the
	// cartridge header line.
	ErrNoHeader = errors.New("missing cartridge header")
	// ErrDuplicateSection is returned when a section appears twice.
	ErrDuplicateSection = errors.New("duplicate section")
)

// Cart is a parsed text cartridge. Section bodies are kept verbatim,
// one string per section with lines joined by '\n'.
type Cart struct {
	Version  int
	Title    string
	Sections map[string]string
	order    []string
}

// Parse reads a text cartridge.
func Parse(r io.Reader) (*Cart, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading cartridge: %w", err)
		}
		return nil, ErrNoHeader
	}
	if !strings.HasPrefix(strings.TrimSpace(sc.Text()), Header) {
		return nil, ErrNoHeader
	}

	c := &Cart{Sections: make(map[string]string)}
	var (
		current string
		body    []string
		line    = 1
	)
	flush := func() {
		if current != "" {
			c.Sections[current] = strings.Join(body, "\n")
		}
	}

	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")

		if name, ok := sectionName(text); ok {
			flush()
			if _, seen := c.Sections[name]; seen {
				return nil, fmt.Errorf("%w %q at line %d", ErrDuplicateSection, name, line)
			}
			c.Sections[name] = ""
			c.order = append(c.order, name)
			current = name
			body = body[:0]
			continue
		}

		if current == "" {
			if v, ok := strings.CutPrefix(text, "version "); ok {
				n, err := strconv.Atoi(strings.TrimSpace(v))
				if err != nil {
					return nil, fmt.Errorf("parsing version at line %d: %w", line, err)
				}
				c.Version = n
			}
			continue
		}
		body = append(body, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading cartridge: %w", err)
	}
	flush()

	c.Title = titleFromCode(c.Sections[SectionCode])
	return c, nil
}

// sectionName recognises a "__name__" marker line.
func sectionName(line string) (string, bool) {
	if len(line) < 5 || !strings.HasPrefix(line, "__") || !strings.HasSuffix(line, "__") {
		return "", false
	}
	name := line[2 : len(line)-2]
	for _, ch := range name {
		if (ch < 'a' || ch > 'z') && (ch < '0' || ch > '9') {
			return "", false
		}
	}
	return name, true
}

// titleFromCode returns the first line of code if it is a comment.
func titleFromCode(code string) string {
	first, _, _ := strings.Cut(code, "\n")
	if t, ok := strings.CutPrefix(strings.TrimSpace(first), "--"); ok {
		return strings.TrimSpace(t)
	}
	return ""
}

// SectionNames returns the sections in the order they appeared.
func (c *Cart) SectionNames() []string {
	return c.order
}

// Section returns the body of a section and whether it was present.
func (c *Cart) Section(name string) (string, bool) {
	s, ok := c.Sections[name]
	return s, ok
}

// Apply loads the cartridge's sprite sheet, flags, map and font into
// the console. Missing sections leave the console's contents alone.
func (c *Cart) Apply(con *emu.Console) error {
	gfx, hasGfx := c.Section(SectionGfx)
	flags, hasFlags := c.Section(SectionFlags)
	if hasGfx || hasFlags {
		if err := con.LoadSprites(gfx, flags); err != nil {
			return err
		}
	}
	if m, ok := c.Section(SectionMap); ok {
		if err := con.LoadMap(m); err != nil {
			return err
		}
	}
	if f, ok := c.Section(SectionFont); ok {
		if err := con.LoadFont(f); err != nil {
			return err
		}
	}
	return nil
}

// HasLabel reports whether the cartridge carries a label image.
func (c *Cart) HasLabel() bool {
	s, ok := c.Section(SectionLabel)
	return ok && strings.TrimSpace(s) != ""
}

// DrawLabel writes the label image straight to the console screen, one
// character per pixel and one line per screen row. Label colours above
// 15 fold onto the base palette.
func (c *Cart) DrawLabel(con *emu.Console) error {
	label, _ := c.Section(SectionLabel)
	lines := strings.Split(label, "\n")
	rows := min(len(lines), emu.ScreenHeight)

	screen := make(emu.Nibbles, rows*emu.ScreenWidth/2)
	for y, line := range lines[:rows] {
		line = strings.TrimSpace(line)
		if len(line) > emu.ScreenWidth {
			line = line[:emu.ScreenWidth]
		}
		for x := 0; x < len(line); x++ {
			v, err := strconv.ParseUint(line[x:x+1], 32, 8)
			if err != nil {
				return fmt.Errorf("parsing label: invalid pixel %q at row %d", line[x], y)
			}
			screen.Set(y*emu.ScreenWidth+x, uint8(v))
		}
	}

	for i, b := range screen {
		con.Poke(uint16(emu.MemScreenAddr+i), b)
	}
	return nil
}
