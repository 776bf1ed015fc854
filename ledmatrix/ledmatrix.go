// Package ledmatrix drives a WS2812 RGB LED matrix from an SPI MOSI line.
//
// Each WS2812 data bit is clocked out as three SPI bits at 2.5MHz, which
// reproduces the 1.25µs NRZ timing without a dedicated peripheral.
//
// See the examples for how to use this package.
package ledmatrix

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	maxSide   = 64  // Max width or height in pixels
	maxPixels = 256 // Keeps a frame under the 4096 byte spidev default

	// 3 SPI bits per WS2812 bit.
	spiFreq = 2500 * physic.KiloHertz

	// Encoded bytes per pixel: 3 channels x 8 bits x 3 SPI bits.
	bytesPerPixel = 9

	// MOSI must stay low ≥280µs to latch: 700 bits at 2.5MHz.
	latchBytes = 88
)

var errHalted = errors.New("ledmatrix: halted")

// Opts is the configuration for the LED matrix.
type Opts struct {
	// Matrix dimensions in pixels
	W int // Width (default: 12)
	H int // Height (default: 8)

	// Wiring
	Serpentine bool // Odd rows run right-to-left
	Rotated    bool // 180° rotation

	// Brightness scales every channel by Brightness/255. The zero value
	// selects full brightness; use SetBrightness(0) to dim the matrix to off.
	Brightness byte
}

// Dev is the device handle for the LED matrix.
type Dev struct {
	c spi.Conn

	// Geometry
	rect       image.Rectangle
	serpentine bool
	rotated    bool

	brightness byte

	// Pixel buffers
	frame *image.RGBA // Current logical frame, unscaled
	tx    []byte      // Encoded frame plus latch
	sent  []byte      // Last frame put on the wire

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new LED matrix on the MOSI line of an SPI port.
//
// The port is configured for 2.5MHz, Mode0, 8-bit transfers. Only MOSI is
// used; leave SCLK and CS unconnected.
//
// opts can be nil to use defaults (12x8 matrix, progressive wiring).
// The matrix is blanked before NewSPI returns.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 12, H: 8}
	}

	if opts.W <= 0 || opts.W > maxSide {
		return nil, errors.New("ledmatrix: width must be between 1 and 64")
	}
	if opts.H <= 0 || opts.H > maxSide {
		return nil, errors.New("ledmatrix: height must be between 1 and 64")
	}
	if opts.W*opts.H > maxPixels {
		return nil, errors.New("ledmatrix: at most 256 pixels are supported")
	}

	c, err := p.Connect(spiFreq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ledmatrix: %w", err)
	}

	brightness := opts.Brightness
	if brightness == 0 {
		brightness = 255
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		c:          c,
		rect:       rect,
		serpentine: opts.Serpentine,
		rotated:    opts.Rotated,
		brightness: brightness,
		frame:      image.NewRGBA(rect),
		tx:         make([]byte, opts.W*opts.H*bytesPerPixel+latchBytes),
	}

	if err := d.render(); err != nil {
		return nil, err
	}
	return d, nil
}

// ColorModel returns the color model of the matrix.
func (d *Dev) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the image bounds of the matrix.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes a raw frame to the matrix.
// pixels holds row-major R, G, B triples: exactly W*H*3 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != d.rect.Dx()*d.rect.Dy()*3 {
		return 0, errors.New("ledmatrix: invalid buffer size")
	}
	for i, j := 0, 0; i < len(pixels); i, j = i+3, j+4 {
		d.frame.Pix[j] = pixels[i]
		d.frame.Pix[j+1] = pixels[i+1]
		d.frame.Pix[j+2] = pixels[i+2]
		d.frame.Pix[j+3] = 0xFF
	}
	if err := d.render(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the matrix.
// The dst rectangle specifies the destination region on the matrix.
// The src image is positioned at src point sp within the destination.
//
// The SPI transfer is skipped when the resulting frame is unchanged.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	// Clip to matrix bounds, keeping src aligned
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	dst = clipped

	// Fast path: full-size RGBA source with the same layout
	if srcImg, ok := src.(*image.RGBA); ok &&
		dst == d.rect && sp == srcImg.Rect.Min &&
		srcImg.Rect.Size() == d.rect.Size() && srcImg.Stride == d.frame.Stride {
		copy(d.frame.Pix, srcImg.Pix)
	} else {
		draw.Draw(d.frame, dst, src, sp, draw.Src)
	}

	return d.render()
}

// Clear turns every pixel off.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	clear(d.frame.Pix)
	return d.render()
}

// SetBrightness sets the global brightness and refreshes the matrix.
//
// Unlike Opts.Brightness, 0 is not a default: it turns every pixel off while
// keeping the frame, so a later SetBrightness restores the picture.
func (d *Dev) SetBrightness(brightness byte) error {
	if d.halted {
		return errHalted
	}
	d.brightness = brightness
	return d.render()
}

// Halt turns every pixel off.
// After calling Halt, the matrix will not accept further drawing
// until a new device is created.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	clear(d.frame.Pix)
	err := d.render()
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ledmatrix.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// render encodes the frame and sends it if it differs from the last one sent.
func (d *Dev) render() error {
	w, h := d.rect.Dx(), d.rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := d.frame.PixOffset(x, y)
			dst := d.chainIndex(x, y) * bytesPerPixel
			// WS2812 expects green, red, blue.
			encodeByte(d.tx[dst:], scale(d.frame.Pix[src+1], d.brightness))
			encodeByte(d.tx[dst+3:], scale(d.frame.Pix[src], d.brightness))
			encodeByte(d.tx[dst+6:], scale(d.frame.Pix[src+2], d.brightness))
		}
	}

	if d.sent != nil && bytes.Equal(d.tx, d.sent) {
		return nil
	}
	if err := d.c.Tx(d.tx, nil); err != nil {
		return fmt.Errorf("ledmatrix: failed to send frame: %w", err)
	}
	if d.sent == nil {
		d.sent = make([]byte, len(d.tx))
	}
	copy(d.sent, d.tx)
	return nil
}

// chainIndex returns the position of pixel (x, y) along the LED chain.
func (d *Dev) chainIndex(x, y int) int {
	w, h := d.rect.Dx(), d.rect.Dy()
	if d.rotated {
		x = w - 1 - x
		y = h - 1 - y
	}
	if d.serpentine && y%2 == 1 {
		x = w - 1 - x
	}
	return y*w + x
}

// encodeByte writes v into dst[0:3], MSB first, as SPI symbols:
// 0 → 100, 1 → 110.
func encodeByte(dst []byte, v byte) {
	var acc uint32
	for i := 7; i >= 0; i-- {
		if v&(1<<uint(i)) != 0 {
			acc = acc<<3 | 0b110
		} else {
			acc = acc<<3 | 0b100
		}
	}
	dst[0] = byte(acc >> 16)
	dst[1] = byte(acc >> 8)
	dst[2] = byte(acc)
}

// scale returns v*brightness/255, rounded.
func scale(v, brightness byte) byte {
	return byte((uint16(v)*uint16(brightness) + 127) / 255)
}
