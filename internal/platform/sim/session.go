package sim

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/loop"
)

// Session is one simulated board: the devices plus the driver running on
// them.
type Session struct {
	Stick  *Stick
	Panel  *Panel
	Buzzer *Buzzer

	cfg    config.Config
	logger *log.Logger
}

// NewSession creates the simulated devices for cfg. hold is how long a key
// press keeps the stick deflected.
func NewSession(cfg config.Config, hold time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		Stick:  NewStick(cfg.Input.RawMax, hold),
		Panel:  NewPanel(cfg.Display.Width, cfg.Display.Height),
		Buzzer: &Buzzer{},
		cfg:    cfg,
		logger: logger,
	}
}

// Start runs the driver on its own goroutine until ctx is done or a device
// fails. The returned channel yields exactly one value: nil once ctx is
// cancelled or its deadline passes, the device error otherwise.
func (s *Session) Start(ctx context.Context) <-chan error {
	d := loop.New(s.cfg, loop.Devices{
		Input:   s.Stick,
		Display: s.Panel,
		Tone:    s.Buzzer,
		Clock:   NewClock(ctx),
	}, loop.WithLogger(s.logger))

	s.logger.Info("simulator started", "run", d.RunID(),
		"display", s.cfg.Display, "frame_interval", s.cfg.Loop.FrameInterval)

	done := make(chan error, 1)
	go func() {
		err := d.Run(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			err = nil
		}
		done <- err
	}()
	return done
}
