package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joystick-maze/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective maze configuration",
	Long: `Prints the configuration play would use, after the search path and the
sensitivity preset are applied. Redirect it to a file to start a custom maze.

Search order:
  --config <path>
  ~/.maze/config.yaml
  ./configs/maze.yaml
  built-in default

Examples:
  maze config > my-maze.yaml
  maze config --sensitivity soft
  maze config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
