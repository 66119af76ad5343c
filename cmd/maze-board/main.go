//go:build tinygo && rp2040

// maze-board is the Pico firmware: the maze loop on the real joystick, OLED
// and buzzer. Build with:
//
//	tinygo flash -target pico ./cmd/maze-board
package main

import (
	"context"
	"machine"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/hw"
	"github.com/vovakirdan/joystick-maze/internal/hw/pico"
	"github.com/vovakirdan/joystick-maze/internal/loop"
)

const maxBackoff = 30 * time.Second

func main() {
	logger := loop.NewLogfmtLogger(machine.Serial, false)
	cfg := config.DefaultConfig()

	dev, err := setup(cfg)
	for attempt := 0; err != nil; attempt++ {
		logger.Error("board setup failed", "error", err, "attempt", attempt)
		time.Sleep(backoff(attempt))
		dev, err = setup(cfg)
	}

	// Run only returns on a device fault; start over with fresh state.
	for attempt := 0; ; attempt++ {
		err := loop.New(cfg, dev, loop.WithLogger(logger)).Run(context.Background())
		logger.Error("maze stopped", "error", err, "attempt", attempt)
		time.Sleep(backoff(attempt))
	}
}

func setup(cfg config.Config) (loop.Devices, error) {
	stick, err := pico.NewStick()
	if err != nil {
		return loop.Devices{}, err
	}
	display, err := pico.NewDisplay(cfg.Display.Width, cfg.Display.Height)
	if err != nil {
		return loop.Devices{}, err
	}
	buzzer, err := pico.NewBuzzer()
	if err != nil {
		return loop.Devices{}, err
	}
	return loop.Devices{
		Input:   stick,
		Display: display,
		Tone:    buzzer,
		Clock:   hw.SystemClock{},
	}, nil
}

func backoff(attempt int) time.Duration {
	d := time.Second << min(attempt, 5)
	return min(d, maxBackoff)
}
