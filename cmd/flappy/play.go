package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Click  - Flap
  Enter/S/R         - Start or restart
  Q/Ctrl+C          - Quit

Logs never go to the terminal while playing; use --log-file to keep them.

With the default config the terminal needs at least 20 rows (460px of
play area at 25px per row, plus the help footer). On shorter terminals
the tallest pipes are drawn without a bottom piece.

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = physics.frame_rate from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs without a file are dropped
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	logger.Debug("starting", "cols", rt.ScreenW, "rows", rt.ScreenH, "seed", rt.Seed)
	if err := tui.Run(cfg, rt, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
