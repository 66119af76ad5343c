//go:build tinygo && rp2040

// Package pico binds the hw interfaces to a Raspberry Pi Pico with a two-axis
// analogue joystick, an SSD1306 OLED on I2C0 and a piezo buzzer on a PWM pin.
package pico

import (
	"fmt"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
)

// Pin assignments of the reference board.
const (
	PinX      = machine.GP26
	PinY      = machine.GP27
	PinButton = machine.GP15
	PinSDA    = machine.GP4
	PinSCL    = machine.GP5
	PinBuzzer = machine.GP16
)

// Stick reads the joystick through the 12-bit ADC.
type Stick struct {
	x, y   machine.ADC
	button machine.Pin
}

// NewStick configures the ADC inputs and the push button.
func NewStick() (*Stick, error) {
	machine.InitADC()
	s := &Stick{
		x:      machine.ADC{Pin: PinX},
		y:      machine.ADC{Pin: PinY},
		button: PinButton,
	}
	if err := s.x.Configure(machine.ADCConfig{}); err != nil {
		return nil, fmt.Errorf("%w: x axis: %w", hw.ErrSensorDisconnected, err)
	}
	if err := s.y.Configure(machine.ADCConfig{}); err != nil {
		return nil, fmt.Errorf("%w: y axis: %w", hw.ErrSensorDisconnected, err)
	}
	s.button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return s, nil
}

// ReadX implements hw.AxisReader. TinyGo scales ADC readings to 16 bits;
// the shift restores the converter's native 0-4095 range.
func (s *Stick) ReadX() (int, error) {
	return int(s.x.Get() >> 4), nil
}

// ReadY implements hw.AxisReader.
func (s *Stick) ReadY() (int, error) {
	return int(s.y.Get() >> 4), nil
}

// Pressed implements hw.Button. The button pulls the pin low.
func (s *Stick) Pressed() (bool, error) {
	return !s.button.Get(), nil
}

var lit = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Display draws into a local framebuffer and pushes it to the OLED on Flush.
type Display struct {
	dev ssd1306.Device
	fb  *core.Framebuffer
}

// NewDisplay configures I2C0 and the panel.
func NewDisplay(width, height int) (*Display, error) {
	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{SCL: PinSCL, SDA: PinSDA, Frequency: 400 * machine.KHz}); err != nil {
		return nil, fmt.Errorf("%w: i2c: %w", hw.ErrDisplayBus, err)
	}

	d := &Display{
		dev: ssd1306.NewI2C(bus),
		fb:  core.NewFramebuffer(width, height),
	}
	d.dev.Configure(ssd1306.Config{
		Width:   int16(width),
		Height:  int16(height),
		Address: ssd1306.Address_128_32,
	})
	d.dev.ClearDisplay()
	return d, nil
}

// Clear implements hw.Display.
func (d *Display) Clear() {
	d.fb.Clear()
}

// FillRect implements hw.Display.
func (d *Display) FillRect(x, y, w, h int, on bool) {
	d.fb.FillRect(x, y, w, h, on)
}

// Text implements hw.Display.
func (d *Display) Text(x, y int, s string) {
	d.fb.Text(x, y, s)
}

// Flush implements hw.Display.
func (d *Display) Flush() error {
	d.dev.ClearBuffer()
	for y := 0; y < d.fb.Height(); y++ {
		for x := 0; x < d.fb.Width(); x++ {
			if d.fb.Get(x, y) {
				d.dev.SetPixel(int16(x), int16(y), lit)
			}
		}
	}
	if err := d.dev.Display(); err != nil {
		return fmt.Errorf("%w: %w", hw.ErrDisplayBus, err)
	}
	return nil
}

// pwmGroup is the method set of an rp2040 PWM slice.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	SetPeriod(period uint64) error
	Top() uint32
}

// Buzzer drives a piezo from one PWM channel. Duty levels are 10-bit.
type Buzzer struct {
	pwm  pwmGroup
	ch   uint8
	duty int
}

// NewBuzzer claims the PWM slice that owns PinBuzzer.
func NewBuzzer() (*Buzzer, error) {
	var pwm pwmGroup = machine.PWM0 // GP16 is slice 0, channel A
	if err := pwm.Configure(machine.PWMConfig{Period: 1e9 / 1000}); err != nil {
		return nil, fmt.Errorf("%w: %w", hw.ErrToneSink, err)
	}
	ch, err := pwm.Channel(PinBuzzer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hw.ErrToneSink, err)
	}
	pwm.Set(ch, 0)
	return &Buzzer{pwm: pwm, ch: ch}, nil
}

// SetFrequency implements hw.Tone.
func (b *Buzzer) SetFrequency(hz int) error {
	if hz <= 0 {
		return fmt.Errorf("%w: frequency %d", hw.ErrToneSink, hz)
	}
	if err := b.pwm.SetPeriod(uint64(1e9 / hz)); err != nil {
		return fmt.Errorf("%w: %w", hw.ErrToneSink, err)
	}
	// The period change rescales Top; keep the duty ratio.
	return b.SetDuty(b.duty)
}

// SetDuty implements hw.Tone.
func (b *Buzzer) SetDuty(level int) error {
	if level < 0 {
		return fmt.Errorf("%w: duty %d", hw.ErrToneSink, level)
	}
	b.duty = level
	b.pwm.Set(b.ch, b.pwm.Top()*uint32(min(level, dutyFull))/dutyFull)
	return nil
}

const dutyFull = 1024

var (
	_ hw.AxisReader = (*Stick)(nil)
	_ hw.Button     = (*Stick)(nil)
	_ hw.Display    = (*Display)(nil)
	_ hw.Tone       = (*Buzzer)(nil)
)
