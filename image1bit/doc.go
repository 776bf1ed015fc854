// Package image1bit provides a packed 1-bit image with a two-colour palette,
// used to hand weather glyphs to colour displays.
//
// Pixels are packed horizontally, 8 per byte. The most significant bit is
// the leftmost pixel. Rows are padded to a whole byte.
//
// Memory layout example for a 12-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7   8 9 10 11
//	Bits:   0 0 1 0 0 1 1 0   0 1 0  0  (pad 0 0 0 0)
//	Bytes:  0x26              0x40
//
// Bit 0 draws Palette[0] ("off") and bit 1 draws Palette[1] ("on").
//
// Example usage:
//
//	// 12x8 image, off pixels dark blue, on pixels yellow
//	img := image1bit.NewBicolor(image.Rect(0, 0, 12, 8),
//		color.RGBA{0, 0, 64, 255}, color.RGBA{255, 255, 0, 255})
//
//	img.SetBit(3, 2, image1bit.On)
//	println(img.BitAt(3, 2)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
package image1bit
