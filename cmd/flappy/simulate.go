package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/headless"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagWidth     float64
	flagHeight    float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless round",
	Long: `Play one round without a terminal, on a virtual clock that advances
one frame per step. Without --autopilot nobody flaps and the bird falls to
the floor.

Examples:
  flappy simulate
  flappy simulate --autopilot --frames 36000 --seed 7
  flappy simulate --width 800 --height 600 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Flap automatically")
	simulateCmd.Flags().Float64Var(&flagWidth, "width", 640, "Viewport width in pixels")
	simulateCmd.Flags().Float64Var(&flagHeight, "height", 600, "Viewport height in pixels")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if flagFrames <= 0 || flagWidth <= 0 || flagHeight <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --frames, --width and --height must be positive")
		os.Exit(1)
	}

	res := headless.Run(cfg, headless.Options{
		Frames:    flagFrames,
		Seed:      flagSeed,
		Width:     flagWidth,
		Height:    flagHeight,
		Autopilot: flagAutopilot,
		Logger:    logger,
	})

	fmt.Println("Simulation result")
	fmt.Println("─────────────────")
	fmt.Printf("  Phase:     %s\n", res.Phase)
	fmt.Printf("  Score:     %d\n", res.Score)
	fmt.Printf("  Ticks:     %d\n", res.Ticks)
	fmt.Printf("  Time:      %s\n", res.Elapsed)
	fmt.Printf("  Flaps:     %d\n", res.Jumps)
	if res.Collision.Hit() {
		fmt.Printf("  Ended by:  %s\n", res.Collision.Kind)
	}
}
