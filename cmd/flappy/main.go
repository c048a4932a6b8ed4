// flappy is a side-scrolling arcade game for the terminal.
//
// Usage:
//
//	flappy play      - Play interactively
//	flappy simulate  - Run a headless round and print the result
//	flappy config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "TUI Flappy - Fly between the pipes in your terminal",
	Long: `TUI Flappy is a side-scrolling arcade game played in the terminal.
The bird falls under gravity; flap to pass through the gaps between pipes.
Every pipe pair cleared scores one point.

Available commands:
  play      - Play interactively
  simulate  - Run a headless round on a virtual clock
  config    - Print the effective configuration

Examples:
  flappy play
  flappy play --config ./my-flappy.yaml --seed 42
  flappy simulate --autopilot --frames 3600
  flappy config > ~/.arcade/configs/flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to the --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}
