package core

import "image/color"

// Tint is the phosphor colour a simulated monochrome panel lights up with.
type Tint string

// Panel tints that match common small OLED modules.
const (
	TintWhite Tint = "white"
	TintBlue  Tint = "blue"
	TintAmber Tint = "amber"
	TintGreen Tint = "green"
)

// Tints lists the supported tints in display order.
func Tints() []Tint {
	return []Tint{TintWhite, TintBlue, TintAmber, TintGreen}
}

// ParseTint returns the tint named s, or TintWhite and false if unknown.
func ParseTint(s string) (Tint, bool) {
	for _, t := range Tints() {
		if string(t) == s {
			return t, true
		}
	}
	return TintWhite, false
}

// RGBA returns the lit-pixel colour for the tint.
func (t Tint) RGBA() color.RGBA {
	switch t {
	case TintBlue:
		return color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	case TintAmber:
		return color.RGBA{R: 0xff, G: 0xb0, B: 0x00, A: 0xff}
	case TintGreen:
		return color.RGBA{R: 0x33, G: 0xff, B: 0x66, A: 0xff}
	default:
		return color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	}
}

// ANSI returns the 256-colour terminal code closest to the tint.
func (t Tint) ANSI() string {
	switch t {
	case TintBlue:
		return "81"
	case TintAmber:
		return "214"
	case TintGreen:
		return "83"
	default:
		return "255"
	}
}
