// Package tui runs the maze on a simulated board inside the terminal.
// The loop driver owns the game on its own goroutine; this package only
// feeds key presses to the virtual joystick and paints flushed frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/joystick-maze/internal/core"
)

// statusInterval is how often the buzzer indicator is refreshed.
const statusInterval = 50 * time.Millisecond

// TickMsg triggers a status refresh.
type TickMsg time.Time

// frameMsg carries a flushed frame from the driver goroutine.
type frameMsg struct {
	fb *core.Framebuffer
}

// doneMsg reports that the driver stopped.
type doneMsg struct {
	err error
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
