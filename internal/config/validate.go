package config

import (
	"fmt"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/maze"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs comprehensive validation of a configuration.
// Checks:
//   - Display, sizes, step and timings are positive
//   - Thresholds are ordered and inside the raw range
//   - Start is inside the display, clear of walls and not already winning
//   - Goal is inside the display
//   - Win feedback has notes and a finish message
func Validate(cfg Config) error {
	checks := []func(Config) error{
		validateDisplay,
		validateInput,
		validateCalibration,
		validateGame,
		validateLayout,
		validateFeedback,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateDisplay(cfg Config) error {
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_DISPLAY",
			Message: fmt.Sprintf("display size %dx%d must be positive", cfg.Display.Width, cfg.Display.Height),
		}
	}
	return nil
}

func validateInput(cfg Config) error {
	in := cfg.Input
	if in.RawMax <= 0 {
		return ValidationError{
			Code:    "INVALID_RAW_RANGE",
			Message: fmt.Sprintf("raw_max %d must be positive", in.RawMax),
		}
	}
	if in.ThresholdLow >= in.ThresholdHigh {
		return ValidationError{
			Code:    "INVALID_THRESHOLDS",
			Message: fmt.Sprintf("threshold_low %d must be below threshold_high %d", in.ThresholdLow, in.ThresholdHigh),
		}
	}
	if in.ThresholdLow < 0 || in.ThresholdHigh > in.RawMax {
		return ValidationError{
			Code:    "INVALID_THRESHOLDS",
			Message: fmt.Sprintf("thresholds %d..%d must lie inside 0..%d", in.ThresholdLow, in.ThresholdHigh, in.RawMax),
		}
	}
	if in.Deadzone < 0 {
		return ValidationError{
			Code:    "INVALID_DEADZONE",
			Message: fmt.Sprintf("deadzone %d must not be negative", in.Deadzone),
		}
	}
	return nil
}

func validateCalibration(cfg Config) error {
	c := cfg.Calibration
	if c.Samples <= 0 || c.Interval < 0 || c.Settle < 0 {
		return ValidationError{
			Code:    "INVALID_CALIBRATION",
			Message: fmt.Sprintf("calibration needs samples > 0 and non-negative delays, got %d samples", c.Samples),
		}
	}
	if cfg.Loop.FrameInterval < 0 {
		return ValidationError{
			Code:    "INVALID_FRAME_INTERVAL",
			Message: fmt.Sprintf("frame_interval %s must not be negative", cfg.Loop.FrameInterval),
		}
	}
	return nil
}

func validateGame(cfg Config) error {
	g := cfg.Game
	if g.BallSize <= 0 || g.GoalSize <= 0 || g.Step <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZES",
			Message: fmt.Sprintf("ball_size %d, goal_size %d and step %d must be positive", g.BallSize, g.GoalSize, g.Step),
		}
	}
	if g.Border && g.WallThickness <= 0 {
		return ValidationError{
			Code:    "INVALID_WALL_THICKNESS",
			Message: fmt.Sprintf("wall_thickness %d must be positive when border is enabled", g.WallThickness),
		}
	}
	for i, w := range g.Walls {
		if w.W < 0 || w.H < 0 {
			return ValidationError{
				Code:    "INVALID_WALL",
				Message: fmt.Sprintf("wall %d has negative size %dx%d", i, w.W, w.H),
			}
		}
	}
	return nil
}

func validateLayout(cfg Config) error {
	bounds := core.NewRect(0, 0, cfg.Display.Width, cfg.Display.Height)
	if !bounds.Contains(cfg.Game.Start.X, cfg.Game.Start.Y) {
		return ValidationError{
			Code:    "START_OFFSCREEN",
			Message: fmt.Sprintf("start %v is outside the %dx%d display", cfg.Game.Start, cfg.Display.Width, cfg.Display.Height),
		}
	}
	if !bounds.Contains(cfg.Game.Goal.X, cfg.Game.Goal.Y) {
		return ValidationError{
			Code:    "GOAL_OFFSCREEN",
			Message: fmt.Sprintf("goal %v is outside the %dx%d display", cfg.Game.Goal, cfg.Display.Width, cfg.Display.Height),
		}
	}
	if maze.Intersects(cfg.Game.Start, cfg.Walls()) {
		return ValidationError{
			Code:    "START_IN_WALL",
			Message: fmt.Sprintf("start %v lies inside a wall", cfg.Game.Start),
		}
	}
	if maze.WithinGoal(cfg.Game.Start, cfg.Game.Goal, cfg.Game.GoalSize) {
		return ValidationError{
			Code:    "START_AT_GOAL",
			Message: fmt.Sprintf("start %v already satisfies the win test for goal %v", cfg.Game.Start, cfg.Game.Goal),
		}
	}
	return nil
}

func validateFeedback(cfg Config) error {
	f := cfg.Feedback
	if len(f.WinNotes) == 0 {
		return ValidationError{
			Code:    "NO_WIN_NOTES",
			Message: "win_notes must list at least one frequency",
		}
	}
	for _, hz := range append([]int{f.Blocked.Frequency}, f.WinNotes...) {
		if hz <= 0 {
			return ValidationError{
				Code:    "INVALID_FREQUENCY",
				Message: fmt.Sprintf("tone frequency %d must be positive", hz),
			}
		}
	}
	if f.Duty < 0 || f.Blocked.Duty < 0 {
		return ValidationError{
			Code:    "INVALID_DUTY",
			Message: "duty levels must not be negative",
		}
	}
	return nil
}
