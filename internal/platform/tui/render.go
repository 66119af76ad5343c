package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
)

// Half-block glyphs: each terminal cell shows two stacked display pixels.
const (
	cellEmpty  = ' '
	cellTop    = '▀'
	cellBottom = '▄'
	cellFull   = '█'
)

// RenderFrame converts a framebuffer to rows of half-block characters.
// An odd final pixel row is paired with a dark row.
func RenderFrame(fb *core.Framebuffer) string {
	var sb strings.Builder
	rows := (fb.Height() + 1) / 2
	sb.Grow(rows * (fb.Width()*3 + 1))

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		top, bottom := row*2, row*2+1
		for x := 0; x < fb.Width(); x++ {
			sb.WriteRune(halfBlock(fb.Get(x, top), fb.Get(x, bottom)))
		}
	}
	return sb.String()
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return cellFull
	case top:
		return cellTop
	case bottom:
		return cellBottom
	default:
		return cellEmpty
	}
}

// panelStyle returns the bezel style for a tint.
func panelStyle(tint core.Tint) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(tint.ANSI())).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	toneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// MinTerminalSize returns the smallest terminal that shows the whole panel,
// its bezel, the status line and the short help.
func MinTerminalSize(cfg config.Config) (w, h int) {
	return cfg.Display.Width + 2, (cfg.Display.Height+1)/2 + 2 + 2
}

// CheckSize reports an error when a w x h terminal is too small for cfg.
func CheckSize(w, h int, cfg config.Config) error {
	minW, minH := MinTerminalSize(cfg)
	if w < minW || h < minH {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d for a %dx%d panel",
			w, h, minW, minH, cfg.Display.Width, cfg.Display.Height)
	}
	return nil
}
