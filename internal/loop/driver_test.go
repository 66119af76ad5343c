package loop

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
	"github.com/vovakirdan/joystick-maze/internal/hw/hwtest"
	"github.com/vovakirdan/joystick-maze/internal/maze"
)

const (
	rest  = 2048
	right = 4095
	left  = 0
)

// openConfig is the default config without walls, so tests place exactly
// the walls they need.
func openConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Game.Border = false
	cfg.Game.Walls = nil
	return cfg
}

type rig struct {
	stick   *hwtest.Stick
	display *hwtest.Display
	buzzer  *hwtest.Buzzer
	clock   *hwtest.Clock
	log     *hwtest.Log
}

func newRig(cfg config.Config, script ...hwtest.Sample) rig {
	log := &hwtest.Log{}
	stick := hwtest.NewStick(rest, script...)
	stick.Log = log
	display := hwtest.NewDisplay(cfg.Display.Width, cfg.Display.Height)
	display.Log = log
	return rig{
		stick:   stick,
		display: display,
		buzzer:  &hwtest.Buzzer{Log: log},
		clock:   &hwtest.Clock{Log: log},
		log:     log,
	}
}

func (r rig) devices() Devices {
	return Devices{Input: r.stick, Display: r.display, Tone: r.buzzer, Clock: r.clock}
}

func TestStepBlockedScenario(t *testing.T) {
	cfg := openConfig()
	cfg.Game.Walls = []core.Rect{core.NewRect(7, 5, 2, 20)}
	r := newRig(cfg, hwtest.Sample{X: right, Y: rest})
	d := New(cfg, r.devices())

	f, err := d.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if f.Delta != core.V(2, 0) {
		t.Errorf("Delta = %v, expected (2,0)", f.Delta)
	}
	if f.Outcome != maze.OutcomeBlocked {
		t.Fatalf("Outcome = %v, expected blocked", f.Outcome)
	}
	if d.State().Ball() != core.V(5, 5) {
		t.Errorf("ball = %v, expected (5,5)", d.State().Ball())
	}

	want := []string{
		"button", "read x", "read y",
		"freq 1000", "duty 512", "sleep 100ms", "duty 0",
		"clear", "fill 7,5 2x20", "fill 117,52 6x6", "fill 3,3 4x4", "flush",
		"sleep 50ms",
	}
	if got := r.log.Entries(); !slices.Equal(got, want) {
		t.Errorf("frame calls = %v\nexpected      %v", got, want)
	}
}

func TestStepZeroDeltaIsMove(t *testing.T) {
	cfg := openConfig()
	r := newRig(cfg)
	d := New(cfg, r.devices())

	for i := 0; i < 3; i++ {
		f, err := d.Step()
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if f.Outcome != maze.OutcomeMoved || !f.Delta.IsZero() {
			t.Errorf("frame %d: outcome %v delta %v, expected moved (0,0)", i, f.Outcome, f.Delta)
		}
	}
	if d.State().Ball() != core.V(5, 5) {
		t.Errorf("ball = %v, expected (5,5)", d.State().Ball())
	}
	if r.log.Count("duty") != 0 {
		t.Error("free moves should not sound the buzzer")
	}
	if r.display.Flushes != 3 {
		t.Errorf("expected one flush per frame, got %d", r.display.Flushes)
	}
}

func TestStepWinSequenceAndReset(t *testing.T) {
	cfg := openConfig()
	cfg.Game.Start = core.V(110, 55)
	r := newRig(cfg, hwtest.Sample{X: right, Y: rest})
	d := New(cfg, r.devices())

	// 110 -> 112 -> 114 -> 116, and |116-120| < 6 wins on the third frame
	var outcomes []maze.Outcome
	for i := 0; i < 3; i++ {
		f, err := d.Step()
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		outcomes = append(outcomes, f.Outcome)
	}

	want := []maze.Outcome{maze.OutcomeMoved, maze.OutcomeMoved, maze.OutcomeWon}
	if !slices.Equal(outcomes, want) {
		t.Fatalf("outcomes = %v, expected %v", outcomes, want)
	}
	if d.State().Ball() != core.V(110, 55) {
		t.Errorf("ball after win = %v, expected start (110,55)", d.State().Ball())
	}
	if d.State().Phase() != maze.PhasePlaying {
		t.Errorf("phase after win = %v, expected playing", d.State().Phase())
	}
	if len(r.buzzer.Notes) != 4 {
		t.Errorf("expected the 4-note win tune, got %v", r.buzzer.Notes)
	}
	if !slices.Contains(r.display.Texts, "FINISH!") {
		t.Errorf("finish message not shown, texts = %v", r.display.Texts)
	}

	// The frame after the win renders the ball back at the start
	if !r.display.Frame.Get(110, 55) {
		t.Error("final frame should show the ball at the start position")
	}
	if snap := d.State().Snapshot(); snap.Wins != 1 {
		t.Errorf("Wins = %d, expected 1", snap.Wins)
	}
}

func TestStepOrdering(t *testing.T) {
	cfg := openConfig()
	cfg.Game.Start = core.V(116, 55) // inside the win tolerance
	cfg.Game.Walls = []core.Rect{core.NewRect(117, 50, 2, 10)}
	r := newRig(cfg, hwtest.Sample{X: right, Y: rest})
	d := New(cfg, r.devices())

	// Blocked by the post but still within the win tolerance, so both the
	// blocked tone and the win tune play, in that order, before the render.
	f, err := d.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if f.Outcome != maze.OutcomeWon {
		t.Fatalf("Outcome = %v, expected won", f.Outcome)
	}

	readY := r.log.Index("read y")
	blocked := r.log.Index("freq 1000")
	win := r.log.Index("freq 440")
	finish := r.log.Index("text FINISH!")
	entries := r.log.Entries()
	lastClear := -1
	for i, e := range entries {
		if e == "clear" {
			lastClear = i
		}
	}
	pace := len(entries) - 1

	order := []int{readY, blocked, win, finish, lastClear, pace}
	if !slices.IsSorted(order) || slices.Contains(order, -1) {
		t.Errorf("stage order = %v (sample, blocked, win, finish, render, pace)\n%v", order, entries)
	}
	if entries[pace] != "sleep 50ms" {
		t.Errorf("frame should end with pacing, got %q", entries[pace])
	}
}

func TestStepManualReset(t *testing.T) {
	cfg := openConfig()
	r := newRig(cfg,
		hwtest.Sample{X: right, Y: rest},
		hwtest.Sample{X: right, Y: rest},
		hwtest.Sample{X: rest, Y: rest, Pressed: true},
		hwtest.Sample{X: rest, Y: rest, Pressed: true},
	)
	d := New(cfg, r.devices())

	for i := 0; i < 2; i++ {
		if _, err := d.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
	}
	if d.State().Ball() != core.V(9, 5) {
		t.Fatalf("ball = %v, expected (9,5)", d.State().Ball())
	}

	f, err := d.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if !f.ManualReset {
		t.Error("pressing the button should reset")
	}
	if d.State().Ball() != core.V(5, 5) {
		t.Errorf("ball = %v, expected start (5,5)", d.State().Ball())
	}

	// Holding the button does not reset again
	f, err = d.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if f.ManualReset {
		t.Error("a held button should only reset once")
	}
}

func TestStepSampleOutOfRange(t *testing.T) {
	cfg := openConfig()
	r := newRig(cfg, hwtest.Sample{X: 5000, Y: rest})
	d := New(cfg, r.devices())

	_, err := d.Step()
	if !errors.Is(err, hw.ErrSampleRange) {
		t.Fatalf("expected ErrSampleRange, got %v", err)
	}
	if d.State().Ball() != core.V(5, 5) {
		t.Error("a bad sample must not move the ball")
	}
	if r.display.Flushes != 0 {
		t.Error("a failed frame should not render")
	}
}

func TestStepSensorError(t *testing.T) {
	cfg := openConfig()
	r := newRig(cfg, hwtest.Sample{Err: hw.ErrSensorDisconnected})
	d := New(cfg, r.devices())

	if _, err := d.Step(); !errors.Is(err, hw.ErrSensorDisconnected) {
		t.Fatalf("expected ErrSensorDisconnected, got %v", err)
	}
}

func TestCalibrateRecentres(t *testing.T) {
	cfg := openConfig()
	cfg.Input.CenterFromCalibration = true
	r := newRig(cfg)
	r.stick.Rest = hwtest.Sample{X: 2248, Y: 1948}
	d := New(cfg, r.devices())

	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}
	if cal := d.Calibration(); cal.XCenter != 2248 || cal.YCenter != 1948 {
		t.Errorf("Calibration() = %+v", cal)
	}
	m := d.Mapper()
	if m.X.Low != 1200 || m.X.High != 3200 || m.Y.Low != 900 || m.Y.High != 2900 {
		t.Errorf("recentred thresholds = %+v", m)
	}
	// settle 2s + 10 x 100ms
	if r.clock.Now != 3*time.Second {
		t.Errorf("calibration took %s, expected 3s", r.clock.Now)
	}
}

func TestCalibrateKeepsFixedThresholds(t *testing.T) {
	cfg := openConfig()
	r := newRig(cfg)
	r.stick.Rest = hwtest.Sample{X: 2248, Y: 1948}
	d := New(cfg, r.devices())

	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}
	if m := d.Mapper(); m.X != (maze.Thresholds{Low: 1000, High: 3000}) || m.Y != m.X {
		t.Errorf("thresholds changed without center_from_calibration: %+v", m)
	}
}

// stopClock cancels a context once virtual time passes limit.
type stopClock struct {
	*hwtest.Clock
	limit  time.Duration
	cancel context.CancelFunc
}

func (c stopClock) Sleep(d time.Duration) {
	c.Clock.Sleep(d)
	if c.Now >= c.limit {
		c.cancel()
	}
}

func TestRunUntilCancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newRig(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3s of calibration plus 20 frames of 50ms
	clock := stopClock{Clock: r.clock, limit: 4 * time.Second, cancel: cancel}
	dev := r.devices()
	dev.Clock = clock
	d := New(cfg, dev, WithRunID("test-run"))

	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if got := r.display.Flushes; got != 21 {
		t.Errorf("expected calibration screen + 20 frames, got %d flushes", got)
	}
	if d.RunID() != "test-run" {
		t.Errorf("RunID() = %q", d.RunID())
	}
}

func TestRunReturnsDeviceFault(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newRig(cfg)
	d := New(cfg, r.devices())

	r.display.FlushErr = errors.New("bus stuck")
	err := d.Run(context.Background())
	if !errors.Is(err, hw.ErrDisplayBus) {
		t.Fatalf("Run() = %v, expected display bus error", err)
	}
}

func TestRunFullPlaythrough(t *testing.T) {
	cfg := config.DefaultConfig()

	// Right along the top corridor, then down the right-hand column.
	var script []hwtest.Sample
	for i := 0; i < 10; i++ {
		script = append(script, hwtest.Sample{X: rest, Y: rest}) // calibration
	}
	for i := 0; i < 57; i++ {
		script = append(script, hwtest.Sample{X: right, Y: rest})
	}
	for i := 0; i < 30; i++ {
		script = append(script, hwtest.Sample{X: rest, Y: right})
	}
	r := newRig(cfg, script...)
	d := New(cfg, r.devices())

	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}

	won := -1
	for i := 0; i < 87; i++ {
		f, err := d.Step()
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if f.Outcome == maze.OutcomeWon {
			won = f.Index
			break
		}
	}
	if won < 0 {
		t.Fatalf("never reached the goal, ball at %v", d.State().Ball())
	}
	if d.State().Ball() != cfg.Game.Start {
		t.Errorf("ball after win = %v, expected start", d.State().Ball())
	}
	for _, e := range r.log.Entries() {
		if e == "freq 1000" {
			t.Fatal("the scripted route should never touch a wall")
		}
	}
}

func TestRunStaysInsideWalls(t *testing.T) {
	cfg := config.DefaultConfig()
	walls := cfg.Walls()

	var script []hwtest.Sample
	values := []int{left, rest, right}
	for i := 0; i < 3000; i++ {
		script = append(script, hwtest.Sample{X: values[(i*7)%3], Y: values[(i*5/3)%3]})
	}
	r := newRig(cfg, script...)
	d := New(cfg, r.devices())

	for i := 0; i < len(script); i++ {
		if _, err := d.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if maze.Intersects(d.State().Ball(), walls) {
			t.Fatalf("frame %d left the ball inside a wall at %v", i, d.State().Ball())
		}
	}
}
