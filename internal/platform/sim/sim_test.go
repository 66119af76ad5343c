package sim

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
)

// fakeNow is a manually advanced time source.
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func newTestStick() (*Stick, *fakeNow) {
	clock := &fakeNow{t: time.Unix(0, 0)}
	s := NewStick(4095, 100*time.Millisecond)
	s.now = clock.now
	return s, clock
}

func read(t *testing.T, s *Stick) (int, int) {
	t.Helper()
	x, err := s.ReadX()
	if err != nil {
		t.Fatalf("ReadX error: %v", err)
	}
	y, err := s.ReadY()
	if err != nil {
		t.Fatalf("ReadY error: %v", err)
	}
	return x, y
}

func TestStickRestsAtCenter(t *testing.T) {
	s, _ := newTestStick()

	if x, y := read(t, s); x != 2048 || y != 2048 {
		t.Errorf("rest = (%d,%d), expected (2048,2048)", x, y)
	}
	if s.Center() != 2048 {
		t.Errorf("Center() = %d, expected 2048", s.Center())
	}
}

func TestStickPush(t *testing.T) {
	tests := []struct {
		action core.Action
		x, y   int
	}{
		{core.ActionLeft, 0, 2048},
		{core.ActionRight, 4095, 2048},
		{core.ActionUp, 2048, 0},
		{core.ActionDown, 2048, 4095},
		{core.ActionQuit, 2048, 2048},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			s, _ := newTestStick()
			s.Push(tc.action)

			if x, y := read(t, s); x != tc.x || y != tc.y {
				t.Errorf("after %s = (%d,%d), expected (%d,%d)", tc.action, x, y, tc.x, tc.y)
			}
		})
	}
}

func TestStickHoldDecay(t *testing.T) {
	s, clock := newTestStick()
	s.Push(core.ActionRight)

	clock.t = clock.t.Add(99 * time.Millisecond)
	if x, _ := read(t, s); x != 4095 {
		t.Errorf("stick released early, x = %d", x)
	}

	clock.t = clock.t.Add(time.Millisecond)
	if x, _ := read(t, s); x != 2048 {
		t.Errorf("stick should spring back after the hold, x = %d", x)
	}
}

func TestStickAxesIndependent(t *testing.T) {
	s, clock := newTestStick()
	s.Push(core.ActionRight)
	clock.t = clock.t.Add(50 * time.Millisecond)
	s.Push(core.ActionDown)

	if x, y := read(t, s); x != 4095 || y != 4095 {
		t.Fatalf("diagonal = (%d,%d), expected (4095,4095)", x, y)
	}

	// X expires first
	clock.t = clock.t.Add(60 * time.Millisecond)
	if x, y := read(t, s); x != 2048 || y != 4095 {
		t.Errorf("after X hold = (%d,%d), expected (2048,4095)", x, y)
	}
}

func TestStickButton(t *testing.T) {
	s, clock := newTestStick()
	s.Push(core.ActionButton)

	if pressed, _ := s.Pressed(); !pressed {
		t.Error("button should read pressed during the hold")
	}
	clock.t = clock.t.Add(time.Second)
	if pressed, _ := s.Pressed(); pressed {
		t.Error("button should release after the hold")
	}
}

func TestStickSetRawLatches(t *testing.T) {
	s, clock := newTestStick()
	s.SetRaw(5000, -20, true)

	clock.t = clock.t.Add(time.Hour)
	if x, y := read(t, s); x != 4095 || y != 0 {
		t.Errorf("SetRaw should clamp and latch, got (%d,%d)", x, y)
	}
	if pressed, _ := s.Pressed(); !pressed {
		t.Error("latched button should stay pressed")
	}

	s.Release()
	if x, y := read(t, s); x != 2048 || y != 2048 {
		t.Errorf("Release should centre, got (%d,%d)", x, y)
	}
	if pressed, _ := s.Pressed(); pressed {
		t.Error("Release should let go of the button")
	}
}

func TestPanelFlush(t *testing.T) {
	p := NewPanel(16, 8)

	var got *core.Framebuffer
	p.OnFlush(func(fb *core.Framebuffer) { got = fb })

	p.FillRect(1, 1, 2, 2, true)
	if p.Snapshot().Lit() != 0 {
		t.Error("drawing must not show before Flush")
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	if p.Snapshot().Lit() != 4 {
		t.Errorf("snapshot lit = %d, expected 4", p.Snapshot().Lit())
	}
	if got == nil || got.Lit() != 4 {
		t.Fatal("OnFlush should receive the frame")
	}
	if p.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", p.Frames())
	}

	// The callback copy is private
	p.Clear()
	p.Text(0, 0, "A")
	if got.Lit() != 4 {
		t.Error("flushed copy changed after further drawing")
	}
}

func TestBuzzer(t *testing.T) {
	b := &Buzzer{}

	if err := b.SetFrequency(440); err != nil {
		t.Fatalf("SetFrequency error: %v", err)
	}
	if err := b.SetDuty(512); err != nil {
		t.Fatalf("SetDuty error: %v", err)
	}
	if !b.Sounding() || b.Frequency() != 440 || b.Duty() != 512 {
		t.Errorf("buzzer = %d Hz duty %d, expected 440 Hz duty 512", b.Frequency(), b.Duty())
	}

	if err := b.SetDuty(0); err != nil || b.Sounding() {
		t.Error("duty 0 should silence the buzzer")
	}
	if err := b.SetFrequency(0); !errors.Is(err, hw.ErrToneSink) {
		t.Errorf("expected ErrToneSink, got %v", err)
	}
}

func TestClockWakesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	NewClock(ctx).Sleep(time.Minute)
	if time.Since(start) > time.Second {
		t.Error("Sleep should return once ctx is done")
	}
}

func TestSessionRunsUntilCancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Calibration.Settle = 0
	cfg.Calibration.Samples = 1
	cfg.Calibration.Interval = 0
	cfg.Loop.FrameInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSession(cfg, DefaultHold, nil)
	s.Stick.SetRaw(4095, 2048, false)
	done := s.Start(ctx)

	deadline := time.After(5 * time.Second)
	for s.Panel.Frames() < 5 {
		select {
		case err := <-done:
			t.Fatalf("session stopped early: %v", err)
		case <-deadline:
			t.Fatal("session produced no frames")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("cancelled session returned %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after cancel")
	}

	// Held right from (5,5): the ball left the start
	if s.Panel.Snapshot().Get(5, 5) {
		t.Error("ball should have moved off the start square")
	}
}

func TestSessionStopsCleanlyAtDeadline(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Calibration.Settle = 0
	cfg.Calibration.Samples = 1
	cfg.Calibration.Interval = 0
	cfg.Loop.FrameInterval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := NewSession(cfg, DefaultHold, nil).Start(ctx)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("session past its deadline returned %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop at the deadline")
	}
}

func TestSquareWave(t *testing.T) {
	b := &Buzzer{}
	w := NewSquareWave(b, 8000)

	buf := make([]byte, 4*8+3)
	n, err := w.Read(buf)
	if err != nil || n != 32 {
		t.Fatalf("Read() = %d, %v; expected 32 whole-frame bytes", n, err)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0 {
			t.Fatal("silent buzzer should produce zero samples")
		}
	}

	b.SetFrequency(1000)
	b.SetDuty(512)
	buf = make([]byte, 4*8) // one 1 kHz period at 8 kHz
	w.Read(buf)

	high, low := 0, 0
	for i := 0; i < len(buf); i += 4 {
		left := int16(binary.LittleEndian.Uint16(buf[i:]))
		right := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if left != right {
			t.Fatalf("frame %d: channels differ (%d, %d)", i/4, left, right)
		}
		if left > 0 {
			high++
		} else if left < 0 {
			low++
		}
	}
	if high != 4 || low != 4 {
		t.Errorf("half duty over one period gave %d high and %d low frames, expected 4 and 4", high, low)
	}
}

func TestPixels(t *testing.T) {
	fb := core.NewFramebuffer(2, 1)
	fb.Set(1, 0, true)

	on := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	off := color.RGBA{A: 255}
	want := []byte{0, 0, 0, 255, 1, 2, 3, 255}

	if got := Pixels(fb, on, off); !bytes.Equal(got, want) {
		t.Errorf("Pixels() = %v, expected %v", got, want)
	}
}

func TestAxisToRaw(t *testing.T) {
	tests := []struct {
		v        float64
		expected int
	}{
		{-1, 0},
		{0, 2048},
		{1, 4095},
		{-3, 0},
		{2, 4095},
		{-0.5, 1024},
	}

	for _, tc := range tests {
		if got := AxisToRaw(tc.v, 4095); got != tc.expected {
			t.Errorf("AxisToRaw(%v) = %d, expected %d", tc.v, got, tc.expected)
		}
	}
}
