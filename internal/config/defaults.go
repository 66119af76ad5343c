package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/core"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultConfig returns the built-in maze configuration: a 128x64 panel, a
// 12-bit joystick and the stock three-corridor maze.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:  128,
			Height: 64,
		},
		Input: InputConfig{
			ThresholdLow:  1000,
			ThresholdHigh: 3000,
			Deadzone:      500,
			RawMax:        4095,
		},
		Calibration: CalibrationConfig{
			Settle:   2 * time.Second,
			Samples:  10,
			Interval: 100 * time.Millisecond,
		},
		Game: GameConfig{
			BallSize:      4,
			WallThickness: 2,
			Border:        true,
			Step:          2,
			Start:         core.V(5, 5),
			Goal:          core.V(120, 55),
			GoalSize:      6,
			Walls: []core.Rect{
				core.NewRect(20, 10, 88, 2),
				core.NewRect(20, 30, 88, 2),
				core.NewRect(20, 50, 88, 2),
				core.NewRect(40, 10, 2, 20),
				core.NewRect(60, 10, 2, 20),
				core.NewRect(80, 10, 2, 20),
				core.NewRect(40, 30, 2, 20),
				core.NewRect(60, 30, 2, 20),
				core.NewRect(80, 30, 2, 20),
				core.NewRect(40, 50, 2, 10),
				core.NewRect(60, 50, 2, 10),
				core.NewRect(80, 50, 2, 10),
			},
		},
		Feedback: FeedbackConfig{
			Blocked: ToneConfig{
				Frequency: 1000,
				Duty:      512,
				Duration:  100 * time.Millisecond,
			},
			WinNotes:     []int{440, 554, 659, 880},
			NoteDuration: 100 * time.Millisecond,
			NoteGap:      50 * time.Millisecond,
			Duty:         512,
			Finish: FinishConfig{
				Lines: []TextLine{
					{Text: "FINISH!", X: 40, Y: 25},
					{Text: "Press Reset", X: 30, Y: 40},
				},
				Duration: 2 * time.Second,
			},
		},
		Loop: LoopConfig{
			FrameInterval: 50 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
