package sim

import (
	"image/color"
	"math"

	"github.com/vovakirdan/joystick-maze/internal/core"
)

// Pixels converts a framebuffer to RGBA bytes, row-major, one colour for lit
// pixels and one for dark ones.
func Pixels(fb *core.Framebuffer, on, off color.RGBA) []byte {
	w, h := fb.Width(), fb.Height()
	pix := make([]byte, 4*w*h)

	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := off
			if fb.Get(x, y) {
				c = on
			}
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return pix
}

// AxisToRaw maps an analogue stick position in [-1, 1] to a raw sensor
// reading in 0..rawMax. Out-of-range positions are clamped.
func AxisToRaw(v float64, rawMax int) int {
	v = math.Max(-1, math.Min(1, v))
	return int(math.Round((v + 1) / 2 * float64(rawMax)))
}
