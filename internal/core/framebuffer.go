package core

import (
	"strings"
)

// Framebuffer is a monochrome pixel buffer. Each pixel is either lit or dark.
// Simulated displays draw into it and the firmware copies it to the panel, so
// both paths render the exact same pixels.
type Framebuffer struct {
	width  int
	height int
	pixels [][]bool
}

// NewFramebuffer creates a new dark buffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
	}
	fb.allocate()
	return fb
}

// allocate creates the underlying pixel storage.
func (fb *Framebuffer) allocate() {
	fb.pixels = make([][]bool, fb.height)
	for y := range fb.pixels {
		fb.pixels[y] = make([]bool, fb.width)
	}
}

// Width returns the buffer width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the buffer height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.Fill(false)
}

// Fill sets every pixel to on.
func (fb *Framebuffer) Fill(on bool) {
	for y := range fb.pixels {
		for x := range fb.pixels[y] {
			fb.pixels[y][x] = on
		}
	}
}

// Set changes a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, on bool) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y][x] = on
}

// Get returns whether the pixel at (x, y) is lit.
// Out-of-bounds coordinates read as dark.
func (fb *Framebuffer) Get(x, y int) bool {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return false
	}
	return fb.pixels[y][x]
}

// FillRect fills a w x h area whose top-left corner is (x, y).
// The area is clipped to the buffer.
func (fb *Framebuffer) FillRect(x, y, w, h int, on bool) {
	x0, y0 := Clamp(x, 0, fb.width), Clamp(y, 0, fb.height)
	x1, y1 := Clamp(x+w, 0, fb.width), Clamp(y+h, 0, fb.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fb.pixels[py][px] = on
		}
	}
}

// Lit returns the number of lit pixels.
func (fb *Framebuffer) Lit() int {
	n := 0
	for y := range fb.pixels {
		for _, on := range fb.pixels[y] {
			if on {
				n++
			}
		}
	}
	return n
}

// CopyFrom overwrites the buffer with src. Buffers of different size are
// copied over their common top-left area.
func (fb *Framebuffer) CopyFrom(src *Framebuffer) {
	w := min(fb.width, src.width)
	h := min(fb.height, src.height)
	for y := 0; y < h; y++ {
		copy(fb.pixels[y][:w], src.pixels[y][:w])
	}
}

// Clone returns an independent copy of the buffer.
func (fb *Framebuffer) Clone() *Framebuffer {
	c := NewFramebuffer(fb.width, fb.height)
	c.CopyFrom(fb)
	return c
}

// String converts the buffer to '#' (lit) and '.' (dark) rows joined with
// newlines. Used for screenshots and test diagnostics.
func (fb *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow(fb.width*fb.height + fb.height)

	for y := 0; y < fb.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fb.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a '#'/'.' string.
func (fb *Framebuffer) Row(y int) string {
	if y < 0 || y >= fb.height {
		return strings.Repeat(".", fb.width)
	}
	b := make([]byte, fb.width)
	for x, on := range fb.pixels[y] {
		if on {
			b[x] = '#'
		} else {
			b[x] = '.'
		}
	}
	return string(b)
}
