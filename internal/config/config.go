// Package config provides YAML-based configuration loading, sensitivity
// presets and validation for the maze.
package config

import (
	"time"

	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/maze"
)

// Config contains every tunable of one playthrough. It is read once at
// startup and never changes while the loop runs.
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Input       InputConfig       `yaml:"input"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Game        GameConfig        `yaml:"game"`
	Feedback    FeedbackConfig    `yaml:"feedback"`
	Loop        LoopConfig        `yaml:"loop"`
}

// DisplayConfig defines the panel resolution.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig defines the joystick thresholds.
type InputConfig struct {
	ThresholdLow  int `yaml:"threshold_low"`
	ThresholdHigh int `yaml:"threshold_high"`
	Deadzone      int `yaml:"deadzone"` // Half-width of the rest band used by presets
	RawMax        int `yaml:"raw_max"`  // Largest valid raw reading

	// CenterFromCalibration shifts both thresholds by the measured rest
	// offset. Off by default: raw readings are compared to the fixed
	// thresholds exactly as configured.
	CenterFromCalibration bool `yaml:"center_from_calibration"`
}

// CalibrationConfig defines the startup rest-position sampling.
type CalibrationConfig struct {
	Settle   time.Duration `yaml:"settle"` // Wait before the first sample
	Samples  int           `yaml:"samples"`
	Interval time.Duration `yaml:"interval"`
}

// GameConfig defines the maze layout and ball movement.
type GameConfig struct {
	BallSize      int         `yaml:"ball_size"`
	WallThickness int         `yaml:"wall_thickness"`
	Border        bool        `yaml:"border"` // Prepend a frame of wall_thickness around the display
	Step          int         `yaml:"step"`
	Start         core.Vec2   `yaml:"start"`
	Goal          core.Vec2   `yaml:"goal"`
	GoalSize      int         `yaml:"goal_size"`
	Walls         []core.Rect `yaml:"walls"`
}

// ToneConfig defines a single buzzer tone.
type ToneConfig struct {
	Frequency int           `yaml:"frequency"`
	Duty      int           `yaml:"duty"`
	Duration  time.Duration `yaml:"duration"`
}

// TextLine is a string drawn at a fixed pixel position.
type TextLine struct {
	Text string `yaml:"text"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// FinishConfig defines the win screen.
type FinishConfig struct {
	Lines    []TextLine    `yaml:"lines"`
	Duration time.Duration `yaml:"duration"`
}

// FeedbackConfig defines buzzer and win-screen feedback.
type FeedbackConfig struct {
	Blocked      ToneConfig    `yaml:"blocked"`
	WinNotes     []int         `yaml:"win_notes"` // Hz, played in order
	NoteDuration time.Duration `yaml:"note_duration"`
	NoteGap      time.Duration `yaml:"note_gap"`
	Duty         int           `yaml:"duty"`
	Finish       FinishConfig  `yaml:"finish"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// Walls returns the full ordered wall set: the border frame first when
// enabled, then the configured walls.
func (c Config) Walls() []core.Rect {
	var walls []core.Rect
	if c.Game.Border {
		walls = append(walls, maze.BorderWalls(c.Display.Width, c.Display.Height, c.Game.WallThickness)...)
	}
	return append(walls, c.Game.Walls...)
}

// Thresholds returns the configured joystick thresholds.
func (c Config) Thresholds() maze.Thresholds {
	return maze.Thresholds{Low: c.Input.ThresholdLow, High: c.Input.ThresholdHigh}
}

// NominalCenter returns the raw reading of a perfectly centred stick.
func (c Config) NominalCenter() int {
	return (c.Input.RawMax + 1) / 2
}

// Level builds the maze description the game state is created from.
func (c Config) Level() maze.Level {
	return maze.Level{
		Walls:    c.Walls(),
		Start:    c.Game.Start,
		Goal:     c.Game.Goal,
		GoalSize: c.Game.GoalSize,
	}
}
