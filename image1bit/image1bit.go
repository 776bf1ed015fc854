// Package image1bit provides a packed 1-bit image with a two-colour palette.
//
// Each byte holds 8 horizontal pixels, most significant bit first.
// This package provides the Bit color type and the Bicolor image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit color: On or Off.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to opaque black or white.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as the grayscale conversions in image/color.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit by thresholding luma at 50%.
var BitModel = color.ModelFunc(toBit)

// Bicolor is a 1-bit image rendered through a two-entry palette.
// Palette[0] is drawn for Off pixels, Palette[1] for On pixels.
type Bicolor struct {
	Pix     []byte          // Pixel data (8 pixels per byte, MSB first)
	Stride  int             // Bytes per row
	Rect    image.Rectangle // Image bounds
	Palette color.Palette   // Exactly two entries: off, on
}

// NewBicolor creates a new Bicolor image with the specified bounds.
// off and on are the colors drawn for 0 and 1 bits respectively.
func NewBicolor(r image.Rectangle, off, on color.Color) *Bicolor {
	w, h := r.Dx(), r.Dy()
	p := color.Palette{off, on}
	if w <= 0 || h <= 0 {
		return &Bicolor{Rect: r, Palette: p}
	}

	stride := (w + 7) / 8
	return &Bicolor{
		Pix:     make([]byte, stride*h),
		Stride:  stride,
		Rect:    r,
		Palette: p,
	}
}

// ColorModel returns the palette, so that Set snaps to the nearest entry.
func (p *Bicolor) ColorModel() color.Model {
	return p.Palette
}

// Bounds returns the image bounds.
func (p *Bicolor) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the palette color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Bicolor) At(x, y int) color.Color {
	return p.Palette[p.ColorIndexAt(x, y)]
}

// ColorIndexAt returns the palette index (0 or 1) of the pixel at (x, y).
// It implements the image.PalettedImage interface.
func (p *Bicolor) ColorIndexAt(x, y int) uint8 {
	if p.BitAt(x, y) {
		return 1
	}
	return 0
}

// BitAt returns the bit of the pixel at (x, y).
func (p *Bicolor) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, shift := p.pixOffset(x, y)
	return p.Pix[offset]&(1<<shift) != 0
}

// Set sets the pixel at (x, y) to the palette entry nearest to c.
func (p *Bicolor) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	if b, ok := c.(Bit); ok {
		p.SetBit(x, y, b)
		return
	}
	p.SetBit(x, y, p.Palette.Index(c) == 1)
}

// SetBit sets the bit of the pixel at (x, y).
// This is faster than Set() as it doesn't consult the palette.
func (p *Bicolor) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, shift := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= 1 << shift
	} else {
		p.Pix[offset] &^= 1 << shift
	}
}

// pixOffset returns the byte offset and bit shift for the pixel at (x, y).
// The leftmost pixel of each byte is bit 7.
func (p *Bicolor) pixOffset(x, y int) (offset int, shift uint) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	shift = uint(7 - dx%8)
	return
}
