package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joystick-maze/internal/core"
	_ "github.com/vovakirdan/joystick-maze/internal/platform/tui"
	_ "github.com/vovakirdan/joystick-maze/internal/platform/window"
	"github.com/vovakirdan/joystick-maze/internal/registry"
)

var (
	flagTint  string
	flagScale int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the maze on a simulated board",
	Long: `Calibrate the virtual joystick, then steer the ball from the top-left
corner to the goal square without touching a wall.

Controls:
  Arrows/WASD  - Push the stick
  R/Enter      - Reset button (ball back to start)
  Q/Esc        - Quit

The window frontend also reads the left stick and the bottom face button
of a connected gamepad.

Sensitivity options:
  soft   - Small rest band, the stick reacts early
  normal - Medium rest band
  stiff  - Wide rest band, the stick must be pushed far
  fixed  - Use the thresholds from the config as they are

Examples:
  maze play
  maze play window --scale 8 --tint green
  maze play tui --sensitivity stiff
  maze play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	def := core.DefaultConfig()
	playCmd.Flags().StringVar(&flagTint, "tint", string(def.Tint), "Panel colour: white, blue, amber, green")
	playCmd.Flags().IntVar(&flagScale, "scale", def.Scale, "Window pixels per display pixel")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Silence the buzzer")
}

func runPlay(cmd *cobra.Command, args []string) error {
	frontendID := "tui"
	if len(args) == 1 {
		frontendID = args[0]
	}
	if !registry.Exists(frontendID) {
		return fmt.Errorf("unknown frontend %q, run 'maze list' to see available frontends", frontendID)
	}

	tint, ok := core.ParseTint(flagTint)
	if !ok {
		return fmt.Errorf("unknown tint %q", flagTint)
	}
	rt := core.RuntimeConfig{Scale: flagScale, Tint: tint, Mute: flagMute}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Log lines would tear the terminal UI apart
	var fallback io.Writer = os.Stderr
	if frontendID == "tui" {
		fallback = io.Discard
	}
	logger, closer, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closer.Close()

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontendID, "sensitivity", flagSensitivity,
		"threshold_low", cfg.Input.ThresholdLow, "threshold_high", cfg.Input.ThresholdHigh)
	if err := frontend.Run(ctx, cfg, rt, logger); err != nil {
		logger.Error("frontend stopped", "error", err)
		return fmt.Errorf("%s: %w", frontend.Title(), err)
	}
	logger.Info("bye")
	return nil
}
