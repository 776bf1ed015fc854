// Package weathericon maps weather condition labels to 8x12 icon glyphs for
// small RGB LED matrices.
//
// Each icon is a fixed 8-row by 12-column bitmap plus a primary and a
// secondary color. The compiled-in table covers five shapes, each reachable
// through two synonym labels:
//
//	Sunny, Clear           → sunny
//	Rain, Showers          → rain
//	Thunderstorm, Storm    → lightning
//	Fog, Mist              → fog
//	Cloudy, Overcast       → cloudy
//
// # Resolution
//
// Labels match exactly and case-sensitively. The table is scanned in order
// and the first matching entry wins:
//
//	icon, err := weathericon.Resolve("Showers")
//	if err != nil {
//		// err wraps weathericon.ErrNotFound
//	}
//
// A label that matches nothing yields a *NotFoundError. The package never
// substitutes a default icon; callers decide what to show instead. The error
// carries the closest known label, if any, so the miss can be logged usefully:
//
//	_, err := weathericon.Resolve("sunny")
//	var nf *weathericon.NotFoundError
//	if errors.As(err, &nf) {
//		log.Printf("unknown condition %q, did you mean %q?", nf.Label, nf.Suggestion)
//	}
//
// # Drawing
//
// Background cells are never lit. Icon.Image draws foreground cells in the
// primary color, except on rows AccentRow and below, which take the secondary
// color (rain drops under a white cloud, for example). Background cells are
// transparent black. The image can be drawn onto any periph.io
// display.Drawer, such as the ledmatrix package:
//
//	dev, _ := ledmatrix.NewSPI(port, &ledmatrix.Opts{W: 12, H: 8})
//	defer dev.Halt()
//
//	icon, _ := weathericon.Resolve("Rain")
//	dev.Draw(dev.Bounds(), icon.Image(), image.Point{})
//
// To paint the glyph shape in a single color, use Icon.Mask with
// draw.DrawMask.
//
// # Custom tables
//
// NewTable builds a table from arbitrary entries with the same matching
// rules. Default returns the compiled-in table that the package-level
// Resolve uses. Tables never change after construction and are safe for
// concurrent use.
package weathericon
