// Package hwtest provides scripted and recording fakes for the hw interfaces.
// The fakes never block: FakeClock advances virtual time instead of sleeping,
// so whole playthroughs run in microseconds.
package hwtest

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
)

// Log is a shared, ordered record of device calls. Devices that share a Log
// let tests assert the cross-device order of one frame.
type Log struct {
	entries []string
}

// Add appends a formatted entry.
func (l *Log) Add(format string, args ...any) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the recorded calls.
func (l *Log) Entries() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.entries...)
}

// Reset forgets all recorded calls.
func (l *Log) Reset() {
	if l != nil {
		l.entries = l.entries[:0]
	}
}

// Index returns the position of the first entry with the given prefix, or -1.
func (l *Log) Index(prefix string) int {
	if l == nil {
		return -1
	}
	for i, e := range l.entries {
		if strings.HasPrefix(e, prefix) {
			return i
		}
	}
	return -1
}

// Count returns how many entries start with prefix.
func (l *Log) Count(prefix string) int {
	if l == nil {
		return 0
	}
	n := 0
	for _, e := range l.entries {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}

// Sample is one scripted joystick reading.
type Sample struct {
	X, Y    int
	Pressed bool
	Err     error // Returned by ReadX instead of X when set
}

// Stick is a scripted joystick. Reads walk through Script one sample per
// ReadX/ReadY pair; once the script runs out the last sample repeats, or Rest
// is returned if the script is empty.
type Stick struct {
	Script []Sample
	Rest   Sample
	Log    *Log

	pos   int
	reads int
}

// NewStick returns a stick resting at (rest, rest) that plays script.
func NewStick(rest int, script ...Sample) *Stick {
	return &Stick{Script: script, Rest: Sample{X: rest, Y: rest}}
}

func (s *Stick) current() Sample {
	switch {
	case len(s.Script) == 0:
		return s.Rest
	case s.pos < len(s.Script):
		return s.Script[s.pos]
	default:
		return s.Script[len(s.Script)-1]
	}
}

// ReadX returns the X reading of the current sample.
func (s *Stick) ReadX() (int, error) {
	c := s.current()
	s.Log.Add("read x")
	if c.Err != nil {
		s.pos++
		return 0, c.Err
	}
	return c.X, nil
}

// ReadY returns the Y reading and advances to the next sample.
func (s *Stick) ReadY() (int, error) {
	c := s.current()
	s.Log.Add("read y")
	s.pos++
	s.reads++
	return c.Y, nil
}

// Pressed reports the button state of the sample about to be read.
func (s *Stick) Pressed() (bool, error) {
	c := s.current()
	s.Log.Add("button")
	return c.Pressed, nil
}

// Reads returns the number of completed X/Y sample pairs.
func (s *Stick) Reads() int {
	return s.reads
}

// Display records drawing into a framebuffer and counts flushes.
type Display struct {
	Frame    *core.Framebuffer // What the panel would show after the last Flush
	Texts    []string          // Every string drawn with Text, in order
	Flushes  int
	FlushErr error
	Log      *Log

	back *core.Framebuffer
}

// NewDisplay creates a recording display of the given size.
func NewDisplay(width, height int) *Display {
	return &Display{
		Frame: core.NewFramebuffer(width, height),
		back:  core.NewFramebuffer(width, height),
	}
}

// Clear darkens the back buffer.
func (d *Display) Clear() {
	d.Log.Add("clear")
	d.back.Clear()
}

// FillRect draws into the back buffer.
func (d *Display) FillRect(x, y, w, h int, on bool) {
	d.Log.Add("fill %d,%d %dx%d", x, y, w, h)
	d.back.FillRect(x, y, w, h, on)
}

// Text draws into the back buffer and records s.
func (d *Display) Text(x, y int, s string) {
	d.Log.Add("text %s", s)
	d.Texts = append(d.Texts, s)
	d.back.Text(x, y, s)
}

// Flush publishes the back buffer to Frame, or fails with FlushErr.
func (d *Display) Flush() error {
	d.Log.Add("flush")
	if d.FlushErr != nil {
		return fmt.Errorf("%w: %w", hw.ErrDisplayBus, d.FlushErr)
	}
	d.Flushes++
	d.Frame.CopyFrom(d.back)
	return nil
}

// Note is one audible stretch of the buzzer.
type Note struct {
	Hz   int
	Duty int
}

// Buzzer records frequency and duty changes.
type Buzzer struct {
	Hz    int
	Duty  int
	Notes []Note // Appended every time the duty goes from 0 to non-zero
	Err   error
	Log   *Log
}

// SetFrequency records the new frequency.
func (b *Buzzer) SetFrequency(hz int) error {
	b.Log.Add("freq %d", hz)
	if b.Err != nil {
		return fmt.Errorf("%w: %w", hw.ErrToneSink, b.Err)
	}
	b.Hz = hz
	return nil
}

// SetDuty records the duty level and notes each tone start.
func (b *Buzzer) SetDuty(level int) error {
	b.Log.Add("duty %d", level)
	if b.Err != nil {
		return fmt.Errorf("%w: %w", hw.ErrToneSink, b.Err)
	}
	if b.Duty == 0 && level != 0 {
		b.Notes = append(b.Notes, Note{Hz: b.Hz, Duty: level})
	}
	b.Duty = level
	return nil
}

// Clock advances virtual time on Sleep.
type Clock struct {
	Now    time.Duration
	Sleeps []time.Duration
	Log    *Log
}

// Sleep adds d to the virtual time without blocking.
func (c *Clock) Sleep(d time.Duration) {
	c.Log.Add("sleep %s", d)
	c.Now += d
	c.Sleeps = append(c.Sleeps, d)
}

var (
	_ hw.AxisReader = (*Stick)(nil)
	_ hw.Button     = (*Stick)(nil)
	_ hw.Display    = (*Display)(nil)
	_ hw.Tone       = (*Buzzer)(nil)
	_ hw.Clock      = (*Clock)(nil)
)
