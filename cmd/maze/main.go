// maze is the desktop host for the joystick maze. It runs the same game loop
// as the board firmware on a simulated joystick, panel and buzzer.
//
// Usage:
//
//	maze list                 - List available frontends
//	maze play [frontend]      - Play on a simulated board (default: tui)
//	maze config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>         - Maze config YAML (default: search path)
//	--sensitivity <preset>  - Joystick preset: soft, normal, stiff, fixed
//	--log-file <path>       - Write logs to a file
//	--log-level <level>     - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/joystick-maze/internal/config"
)

var (
	// Global flags
	flagConfig      string
	flagSensitivity string
	flagLogFile     string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Joystick Maze - steer a ball through a maze with an analogue stick",
	Long: `Joystick Maze runs the maze game from the board firmware on a
simulated joystick, display and buzzer.

Available commands:
  list     - Show all available frontends
  play     - Play on a simulated board
  config   - Print the effective configuration

Examples:
  maze list
  maze play
  maze play window --tint amber
  maze play tui --sensitivity soft --log-file maze.log
  maze config --config ./my-maze.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSensitivity, "sensitivity", "", "Joystick preset: soft, normal, stiff, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the maze config and applies the sensitivity flag.
func loadConfig() (config.Config, error) {
	preset, err := config.ParseSensitivity(flagSensitivity)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	config.ApplySensitivity(&cfg, preset)
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config after %s preset: %w", preset, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback. The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           level,
	})
	return logger, closer, nil
}
