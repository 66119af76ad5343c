// Package sim provides software stand-ins for the board peripherals so the
// maze can run on a desktop. The loop driver runs on its own goroutine and
// the frontend reads and writes these devices from its UI goroutine; every
// device here is safe for that split.
package sim

import (
	"sync"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
)

// DefaultHold is how long a single key press keeps the virtual stick
// deflected. Terminals report key repeats but never key releases.
const DefaultHold = 120 * time.Millisecond

type axis struct {
	raw   int
	until time.Time // Zero means latched
}

// Stick is a virtual joystick with a push button.
// Key presses deflect an axis for a hold period and then spring back to the
// centre; SetRaw latches readings from an analogue source instead.
type Stick struct {
	mu     sync.Mutex
	center int
	rawMax int
	hold   time.Duration
	now    func() time.Time

	x, y   axis
	button axis // raw 1 means pressed
}

// NewStick creates a centred stick for a sensor whose readings span
// 0..rawMax.
func NewStick(rawMax int, hold time.Duration) *Stick {
	center := (rawMax + 1) / 2
	return &Stick{
		center: center,
		rawMax: rawMax,
		hold:   hold,
		now:    time.Now,
		x:      axis{raw: center},
		y:      axis{raw: center},
	}
}

// Push applies a movement or button action for one hold period.
// Other actions are ignored.
func (s *Stick) Push(a core.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until := s.now().Add(s.hold)
	if a == core.ActionButton {
		s.button = axis{raw: 1, until: until}
		return
	}

	d := a.Deflection()
	if d.X != 0 {
		s.x = axis{raw: s.deflect(d.X), until: until}
	}
	if d.Y != 0 {
		s.y = axis{raw: s.deflect(d.Y), until: until}
	}
}

// SetRaw latches both axes and the button until the next SetRaw or Release.
func (s *Stick) SetRaw(x, y int, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.x = axis{raw: core.Clamp(x, 0, s.rawMax)}
	s.y = axis{raw: core.Clamp(y, 0, s.rawMax)}
	s.button = axis{}
	if pressed {
		s.button.raw = 1
	}
}

// Release centres the stick and lets go of the button.
func (s *Stick) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.x = axis{raw: s.center}
	s.y = axis{raw: s.center}
	s.button = axis{}
}

// Center returns the raw reading of the stick at rest.
func (s *Stick) Center() int {
	return s.center
}

// ReadX implements hw.AxisReader.
func (s *Stick) ReadX() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(&s.x, s.center), nil
}

// ReadY implements hw.AxisReader.
func (s *Stick) ReadY() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(&s.y, s.center), nil
}

// Pressed implements hw.Button.
func (s *Stick) Pressed() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(&s.button, 0) == 1, nil
}

// deflect maps a unit direction to a full-scale raw reading.
func (s *Stick) deflect(dir int) int {
	return core.Clamp(s.center+dir*s.center, 0, s.rawMax)
}

// read returns the axis value, springing back to rest once its hold expires.
func (s *Stick) read(a *axis, rest int) int {
	if !a.until.IsZero() && !s.now().Before(a.until) {
		*a = axis{raw: rest}
	}
	return a.raw
}

var (
	_ hw.AxisReader = (*Stick)(nil)
	_ hw.Button     = (*Stick)(nil)
)
