// Package loop runs the maze frame loop: sample, map, move, feedback, win
// check, render, pace. It owns the game state for the lifetime of the
// process and talks to the board only through the hw interfaces.
package loop

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/hw"
	"github.com/vovakirdan/joystick-maze/internal/maze"
	"github.com/vovakirdan/joystick-maze/internal/render"
)

// Devices groups the peripherals the loop drives.
type Devices struct {
	Input   hw.AxisReader // May also implement hw.Button
	Display hw.Display
	Tone    hw.Tone
	Clock   hw.Clock
}

// Frame reports what one Step did.
type Frame struct {
	Index       int
	Sample      maze.AxisSample
	Delta       core.Vec2
	Outcome     maze.Outcome
	ManualReset bool // The reset button was pressed this frame
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithRunID overrides the generated run ID attached to every log line.
func WithRunID(id string) Option {
	return func(d *Driver) {
		d.runID = id
	}
}

// Driver ties the core and the devices into the frame loop.
type Driver struct {
	cfg      config.Config
	dev      Devices
	button   hw.Button
	state    *maze.State
	mapper   maze.Mapper
	renderer *render.Renderer
	logger   Logger
	runID    string

	calibration maze.Calibration
	frames      int
	buttonHeld  bool
}

// New creates a driver with the ball at the configured start.
func New(cfg config.Config, dev Devices, opts ...Option) *Driver {
	d := &Driver{
		cfg:    cfg,
		dev:    dev,
		state:  maze.NewState(cfg.Level()),
		mapper: maze.NewMapper(cfg.Thresholds(), cfg.Game.Step),
		logger: nopLogger{},
	}
	if b, ok := dev.Input.(hw.Button); ok {
		d.button = b
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.runID == "" {
		d.runID = uuid.NewString()
	}
	d.logger = runLogger{next: d.logger, runID: d.runID}
	d.renderer = render.New(dev.Display, dev.Tone, dev.Clock, RenderOptions(cfg))
	return d
}

// RenderOptions converts the feedback section of cfg into renderer options.
func RenderOptions(cfg config.Config) render.Options {
	fb := cfg.Feedback
	lines := make([]render.Line, 0, len(fb.Finish.Lines))
	for _, l := range fb.Finish.Lines {
		lines = append(lines, render.Line{Text: l.Text, X: l.X, Y: l.Y})
	}
	return render.Options{
		BallSize: cfg.Game.BallSize,
		Blocked: render.Tone{
			Hz:       fb.Blocked.Frequency,
			Duty:     fb.Blocked.Duty,
			Duration: fb.Blocked.Duration,
		},
		WinNotes:       fb.WinNotes,
		NoteDuration:   fb.NoteDuration,
		NoteGap:        fb.NoteGap,
		Duty:           fb.Duty,
		FinishLines:    lines,
		FinishDuration: fb.Finish.Duration,
	}
}

// Calibrate waits for the stick to settle, samples the rest position and,
// when configured, recentres the thresholds on it.
func (d *Driver) Calibrate() error {
	c := d.cfg.Calibration
	d.logger.Info("hold the joystick centred", "settle", c.Settle)

	d.dev.Display.Clear()
	d.dev.Display.Text(4, 4, "Calibrating...")
	if err := d.dev.Display.Flush(); err != nil {
		return fmt.Errorf("loop: calibration screen: %w", err)
	}
	d.dev.Clock.Sleep(c.Settle)

	cal, err := maze.Calibrate(d.dev.Input, d.dev.Clock, c.Samples, c.Interval)
	if err != nil {
		return fmt.Errorf("loop: %w", err)
	}
	d.calibration = cal
	d.logger.Info("calibration complete", "x_center", cal.XCenter, "y_center", cal.YCenter)

	if d.cfg.Input.CenterFromCalibration {
		d.mapper = d.mapper.Recentered(cal, d.cfg.NominalCenter())
		d.logger.Info("thresholds recentred",
			"x_low", d.mapper.X.Low, "x_high", d.mapper.X.High,
			"y_low", d.mapper.Y.Low, "y_high", d.mapper.Y.High,
		)
	}
	return nil
}

// Step runs exactly one frame. Input sampling precedes the move, the move
// precedes the win check and the win check precedes the render.
func (d *Driver) Step() (Frame, error) {
	f := Frame{Index: d.frames}
	d.frames++

	if d.button != nil {
		pressed, err := d.button.Pressed()
		if err != nil {
			return f, fmt.Errorf("loop: read button: %w", err)
		}
		if pressed && !d.buttonHeld {
			d.state.Reset()
			f.ManualReset = true
			d.logger.Info("reset button pressed", "frame", f.Index)
		}
		d.buttonHeld = pressed
	}

	sample, err := maze.ReadSample(d.dev.Input)
	if err != nil {
		return f, fmt.Errorf("loop: read sample: %w", err)
	}
	if err := d.checkRange(sample); err != nil {
		return f, err
	}
	f.Sample = sample
	f.Delta = d.mapper.Map(sample)
	f.Outcome = d.state.AttemptMove(f.Delta)

	if f.Outcome == maze.OutcomeBlocked {
		d.logger.Debug("move blocked", "frame", f.Index, "ball", d.state.Ball(), "delta", f.Delta)
		if err := d.renderer.OnBlocked(); err != nil {
			return f, fmt.Errorf("loop: %w", err)
		}
	}

	if d.state.CheckWin() {
		f.Outcome = maze.OutcomeWon
		snap := d.state.Snapshot()
		d.logger.Info("goal reached",
			"frame", f.Index,
			"ball", d.state.Ball(),
			"moves", snap.Moves,
			"blocks", snap.Blocks,
			"wins", snap.Wins,
		)
		if err := d.renderer.OnWon(); err != nil {
			return f, fmt.Errorf("loop: %w", err)
		}
		d.state.Reset()
	}

	if err := d.renderer.Render(d.state); err != nil {
		return f, fmt.Errorf("loop: %w", err)
	}

	d.dev.Clock.Sleep(d.cfg.Loop.FrameInterval)
	return f, nil
}

func (d *Driver) checkRange(s maze.AxisSample) error {
	rawMax := d.cfg.Input.RawMax
	if s.X < 0 || s.X > rawMax || s.Y < 0 || s.Y > rawMax {
		return fmt.Errorf("loop: sample (%d,%d) outside 0..%d: %w", s.X, s.Y, rawMax, hw.ErrSampleRange)
	}
	return nil
}

// Run calibrates once and then steps until ctx is cancelled or a device
// fails. On the board ctx is never cancelled, so Run only returns on a
// hardware fault.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.Calibrate(); err != nil {
		d.logger.Error("calibration failed", "error", err)
		return err
	}

	d.logger.Info("maze started", "start", d.state.Start(), "walls", d.state.World().Len())
	for {
		if err := ctx.Err(); err != nil {
			d.logger.Info("maze stopped", "frames", d.frames)
			return err
		}
		if _, err := d.Step(); err != nil {
			d.logger.Error("frame failed", "frame", d.frames-1, "error", err)
			return err
		}
	}
}

// State returns the game state owned by the driver.
func (d *Driver) State() *maze.State {
	return d.state
}

// Calibration returns the rest position measured by Calibrate.
func (d *Driver) Calibration() maze.Calibration {
	return d.calibration
}

// Mapper returns the threshold mapper in use.
func (d *Driver) Mapper() maze.Mapper {
	return d.mapper
}

// RunID returns the ID attached to this driver's log lines.
func (d *Driver) RunID() string {
	return d.runID
}
