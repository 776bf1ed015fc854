// Package weathericon maps weather condition labels to 8x12 icon glyphs and
// the color pair used to draw them.
//
// See the examples for how to use this package.
package weathericon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"periph.io/x/devices/v3/weathericon/image1bit"
)

const (
	GlyphRows = 8  // Glyph height in cells
	GlyphCols = 12 // Glyph width in cells
)

// Glyph is a fixed 8x12 bitmap. Cells are 0 (background) or 1 (foreground).
type Glyph [GlyphRows][GlyphCols]uint8

// Valid reports whether every cell is 0 or 1.
func (g Glyph) Valid() bool {
	for _, row := range g {
		for _, c := range row {
			if c > 1 {
				return false
			}
		}
	}
	return true
}

// String renders the glyph as rows of '#' (foreground) and '.' (background).
func (g Glyph) String() string {
	var b strings.Builder
	b.Grow(GlyphRows * (GlyphCols + 1))
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// String returns the color in #RRGGBB form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ColorPair is the primary/secondary color assignment for a glyph.
type ColorPair struct {
	Primary   RGB
	Secondary RGB
}

// Icon is a glyph together with the colors it is drawn in.
type Icon struct {
	Name   string // Shape name, e.g. "sunny"
	Glyph  Glyph
	Colors ColorPair
}

// AccentRow is the first glyph row whose foreground cells are drawn in the
// secondary color: rain drops, the lower sun rays, the lightning tip and the
// last fog bank. Rows above it use the primary color.
const AccentRow = 6

// ColorAt returns the color of cell (x, y) and whether it is foreground.
// Background cells report ok == false and have no color.
func (i Icon) ColorAt(x, y int) (c RGB, ok bool) {
	if x < 0 || x >= GlyphCols || y < 0 || y >= GlyphRows || i.Glyph[y][x] == 0 {
		return RGB{}, false
	}
	if y >= AccentRow {
		return i.Colors.Secondary, true
	}
	return i.Colors.Primary, true
}

// Image returns a GlyphCols x GlyphRows rendering of the icon.
// Background cells are transparent black, so they stay dark on a display
// and leave the destination untouched under draw.Over.
func (i Icon) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, GlyphCols, GlyphRows))
	for y := 0; y < GlyphRows; y++ {
		for x := 0; x < GlyphCols; x++ {
			if c, ok := i.ColorAt(x, y); ok {
				img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
			}
		}
	}
	return img
}

// Mask returns the foreground cells as a 1-bit mask: opaque where the glyph
// is set, transparent elsewhere. Use it with draw.DrawMask to paint the
// glyph shape in a color of the caller's choosing.
func (i Icon) Mask() *image1bit.Bicolor {
	m := image1bit.NewBicolor(image.Rect(0, 0, GlyphCols, GlyphRows),
		color.Transparent, color.Opaque)
	for y, row := range i.Glyph {
		for x, c := range row {
			if c != 0 {
				m.SetBit(x, y, image1bit.On)
			}
		}
	}
	return m
}

// Entry associates a case-sensitive condition label with an icon.
type Entry struct {
	Label string
	Icon  Icon
}

// ErrNotFound is returned when a label matches no table entry.
var ErrNotFound = errors.New("weathericon: condition not found")

// NotFoundError describes a label that matched no table entry.
// It satisfies errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Label      string // The rejected label
	Suggestion string // Closest table label, empty if none is close
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("weathericon: no icon for condition %q (did you mean %q?)", e.Label, e.Suggestion)
	}
	return fmt.Sprintf("weathericon: no icon for condition %q", e.Label)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Table is an ordered, read-only list of condition entries.
// A Table is safe for concurrent use.
type Table struct {
	entries []Entry
}

// NewTable builds a table from entries, in order.
// Labels must be non-empty and every glyph cell must be 0 or 1.
// Duplicate labels are allowed; the first one wins.
func NewTable(entries ...Entry) (*Table, error) {
	for i, e := range entries {
		if e.Label == "" {
			return nil, fmt.Errorf("weathericon: entry %d: empty label", i)
		}
		if !e.Icon.Glyph.Valid() {
			return nil, fmt.Errorf("weathericon: entry %d (%q): glyph cells must be 0 or 1", i, e.Label)
		}
	}
	t := &Table{entries: make([]Entry, len(entries))}
	copy(t.entries, entries)
	return t, nil
}

func mustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the compiled-in condition table.
func Default() *Table {
	return defaultTable
}

// Resolve resolves label against the compiled-in table.
func Resolve(label string) (Icon, error) {
	return defaultTable.Resolve(label)
}

// Resolve returns the icon of the first entry whose label equals label
// exactly (case-sensitive). Entries are scanned in table order, so for
// duplicate labels the first one wins.
//
// If nothing matches, Resolve returns a *NotFoundError. It never falls back
// to a default icon; that policy belongs to the caller.
func (t *Table) Resolve(label string) (Icon, error) {
	if icon, ok := t.Lookup(label); ok {
		return icon, nil
	}
	return Icon{}, &NotFoundError{Label: label, Suggestion: t.Suggest(label)}
}

// Lookup is like Resolve but reports a miss with ok == false.
func (t *Table) Lookup(label string) (icon Icon, ok bool) {
	for _, e := range t.entries {
		if e.Label == label {
			return e.Icon, true
		}
	}
	return Icon{}, false
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Labels returns the entry labels in table order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Icons returns the distinct icons in order of first appearance.
func (t *Table) Icons() []Icon {
	var out []Icon
	seen := make(map[Icon]bool)
	for _, e := range t.entries {
		if seen[e.Icon] {
			continue
		}
		seen[e.Icon] = true
		out = append(out, e.Icon)
	}
	return out
}
