package sim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
)

// Panel is a simulated monochrome display. The driver draws into a back
// buffer; Flush publishes a copy that the UI can read at any time.
type Panel struct {
	back *core.Framebuffer

	mu      sync.Mutex
	front   *core.Framebuffer
	frames  uint64
	onFlush func(*core.Framebuffer)
}

// NewPanel creates a dark panel of the given resolution.
func NewPanel(w, h int) *Panel {
	return &Panel{
		back:  core.NewFramebuffer(w, h),
		front: core.NewFramebuffer(w, h),
	}
}

// OnFlush registers fn to receive a private copy of every flushed frame.
// It runs on the driver goroutine.
func (p *Panel) OnFlush(fn func(*core.Framebuffer)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFlush = fn
}

// Clear implements hw.Display.
func (p *Panel) Clear() {
	p.back.Clear()
}

// FillRect implements hw.Display.
func (p *Panel) FillRect(x, y, w, h int, on bool) {
	p.back.FillRect(x, y, w, h, on)
}

// Text implements hw.Display.
func (p *Panel) Text(x, y int, s string) {
	p.back.Text(x, y, s)
}

// Flush implements hw.Display.
func (p *Panel) Flush() error {
	p.mu.Lock()
	p.front.CopyFrom(p.back)
	p.frames++
	fn := p.onFlush
	p.mu.Unlock()

	if fn != nil {
		fn(p.back.Clone())
	}
	return nil
}

// Snapshot returns a copy of the last flushed frame.
func (p *Panel) Snapshot() *core.Framebuffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.front.Clone()
}

// Frames returns how many times the panel has been flushed.
func (p *Panel) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Buzzer records the tone the driver asks for. Audio frontends read it from
// their own goroutine to synthesise the sound.
type Buzzer struct {
	hz   atomic.Int64
	duty atomic.Int64
}

// SetFrequency implements hw.Tone.
func (b *Buzzer) SetFrequency(hz int) error {
	if hz <= 0 {
		return fmt.Errorf("%w: frequency %d", hw.ErrToneSink, hz)
	}
	b.hz.Store(int64(hz))
	return nil
}

// SetDuty implements hw.Tone.
func (b *Buzzer) SetDuty(level int) error {
	if level < 0 {
		return fmt.Errorf("%w: duty %d", hw.ErrToneSink, level)
	}
	b.duty.Store(int64(level))
	return nil
}

// Frequency returns the last frequency set, in Hz.
func (b *Buzzer) Frequency() int {
	return int(b.hz.Load())
}

// Duty returns the current duty level; 0 is silence.
func (b *Buzzer) Duty() int {
	return int(b.duty.Load())
}

// Sounding reports whether the buzzer is on.
func (b *Buzzer) Sounding() bool {
	return b.duty.Load() > 0
}

// Clock sleeps on the wall clock but wakes early once ctx is done, so a
// quitting frontend never waits out a finish screen.
type Clock struct {
	ctx context.Context
}

// NewClock creates a clock bound to ctx.
func NewClock(ctx context.Context) Clock {
	return Clock{ctx: ctx}
}

// Sleep implements hw.Clock.
func (c Clock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-c.ctx.Done():
	}
}

var (
	_ hw.Display = (*Panel)(nil)
	_ hw.Tone    = (*Buzzer)(nil)
	_ hw.Clock   = Clock{}
)
