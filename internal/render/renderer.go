// Package render draws the maze onto a display and plays buzzer feedback.
package render

import (
	"fmt"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
	"github.com/vovakirdan/joystick-maze/internal/maze"
)

// Tone is a single buzzer note.
type Tone struct {
	Hz       int
	Duty     int
	Duration time.Duration
}

// Options holds the fixed look and sound of the game.
type Options struct {
	BallSize int

	Blocked      Tone
	WinNotes     []int // Hz, played in ascending order as listed
	NoteDuration time.Duration
	NoteGap      time.Duration
	Duty         int

	FinishLines    []Line
	FinishDuration time.Duration
}

// Line is a text line of the finish screen.
type Line struct {
	Text string
	X, Y int
}

// Renderer turns game state into pixels and outcomes into sound.
type Renderer struct {
	display hw.Display
	tone    hw.Tone
	clock   hw.Clock
	opts    Options
}

// New creates a renderer over the given devices.
func New(display hw.Display, tone hw.Tone, clock hw.Clock, opts Options) *Renderer {
	return &Renderer{
		display: display,
		tone:    tone,
		clock:   clock,
		opts:    opts,
	}
}

// Render clears the frame, fills every wall, the goal square and a
// ball-sized square centred on the ball, then flushes to the panel.
func (r *Renderer) Render(s *maze.State) error {
	r.display.Clear()

	for _, w := range s.Walls() {
		r.fill(w)
	}
	r.fill(s.GoalRect())
	r.fill(core.CenteredSquare(s.Ball(), r.opts.BallSize))

	if err := r.display.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}

func (r *Renderer) fill(rect core.Rect) {
	r.display.FillRect(rect.X, rect.Y, rect.W, rect.H, true)
}

// OnBlocked sounds the short collision tone.
func (r *Renderer) OnBlocked() error {
	if err := r.play(r.opts.Blocked); err != nil {
		return fmt.Errorf("render: blocked tone: %w", err)
	}
	return nil
}

// OnWon plays the ascending win notes and then holds the finish screen for
// the configured duration.
func (r *Renderer) OnWon() error {
	for _, hz := range r.opts.WinNotes {
		note := Tone{Hz: hz, Duty: r.opts.Duty, Duration: r.opts.NoteDuration}
		if err := r.play(note); err != nil {
			return fmt.Errorf("render: win note %dHz: %w", hz, err)
		}
		r.clock.Sleep(r.opts.NoteGap)
	}

	r.display.Clear()
	for _, l := range r.opts.FinishLines {
		r.display.Text(l.X, l.Y, l.Text)
	}
	if err := r.display.Flush(); err != nil {
		return fmt.Errorf("render: finish screen: %w", err)
	}
	r.clock.Sleep(r.opts.FinishDuration)
	return nil
}

// play sounds t and silences the buzzer afterwards.
func (r *Renderer) play(t Tone) error {
	if err := r.tone.SetFrequency(t.Hz); err != nil {
		return err
	}
	if err := r.tone.SetDuty(t.Duty); err != nil {
		return err
	}
	r.clock.Sleep(t.Duration)
	return r.tone.SetDuty(0)
}
