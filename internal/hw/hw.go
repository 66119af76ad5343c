// Package hw defines the narrow boundary between the maze core and the board.
// Every peripheral the game touches is reached through one of these
// interfaces, so the firmware, the simulators and the tests plug in their own
// devices without the core knowing which one it drives.
package hw

import (
	"errors"
	"time"
)

// Boundary failures. Device adapters wrap their native errors with one of
// these so callers can branch with errors.Is.
var (
	ErrSensorDisconnected = errors.New("hw: joystick sensor disconnected")
	ErrSampleRange        = errors.New("hw: joystick sample out of range")
	ErrDisplayBus         = errors.New("hw: display bus failure")
	ErrToneSink           = errors.New("hw: tone output failure")
)

// AxisReader samples the two joystick axes in the sensor's native range
// (0-4095 for a 12-bit ADC).
type AxisReader interface {
	ReadX() (int, error)
	ReadY() (int, error)
}

// Button is implemented by axis sources that also carry the stick's push
// button. It is optional.
type Button interface {
	Pressed() (bool, error)
}

// Display is a monochrome pixel sink. Drawing calls only touch the local
// frame buffer; Flush pushes it to the panel and is the only call that can
// fail.
type Display interface {
	Clear()
	FillRect(x, y, w, h int, on bool)
	Text(x, y int, s string)
	Flush() error
}

// Tone drives the buzzer. A duty of 0 is silence.
type Tone interface {
	SetFrequency(hz int) error
	SetDuty(level int) error
}

// Clock is the blocking delay primitive.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the real wall clock.
type SystemClock struct{}

// Sleep blocks the caller for d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
