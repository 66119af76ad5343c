package core

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is the face used for every message on the panel.
var Font = &tinyfont.TomThumb

// fontAscent is the height of a capital above the baseline.
const fontAscent = 5

var textColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

var _ drivers.Displayer = (*Framebuffer)(nil)

// Size implements drivers.Displayer.
func (fb *Framebuffer) Size() (x, y int16) {
	return int16(fb.width), int16(fb.height)
}

// SetPixel implements drivers.Displayer. Any colour but black lights the
// pixel.
func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	fb.Set(int(x), int(y), c.R|c.G|c.B != 0)
}

// Display implements drivers.Displayer. A bare buffer has no panel to push
// to, so it never fails.
func (fb *Framebuffer) Display() error {
	return nil
}

// Text draws s in Font with (x, y) at the top-left of the first capital.
// Glyphs that extend beyond the buffer are clipped.
func (fb *Framebuffer) Text(x, y int, s string) {
	tinyfont.WriteLine(fb, Font, int16(x), int16(y+fontAscent), s, textColor)
}

// LineHeight returns the vertical advance of one line of Font.
func LineHeight() int {
	return int(Font.GetYAdvance())
}
