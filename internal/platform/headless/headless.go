// Package headless runs rounds without a terminal, on the virtual
// scheduler and an in-memory scene. It backs the simulate command.
package headless

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/scene"
	"github.com/vovakirdan/tui-flappy/internal/sched"
)

// Options controls a headless run.
type Options struct {
	Frames    int     // Upper bound on frames to simulate
	Seed      int64   // Obstacle height seed
	Width     float64 // Viewport width in pixels
	Height    float64 // Viewport height in pixels
	Autopilot bool    // Flap automatically
	Logger    *log.Logger
}

// Result summarizes a headless run.
type Result struct {
	Phase     flappy.Phase
	Score     int
	Ticks     int
	Elapsed   time.Duration // Virtual time simulated
	Collision flappy.Collision
	Jumps     int
}

// Run plays a single round until game over or until opts.Frames frames
// have passed.
func Run(cfg config.FlappyConfig, opts Options) Result {
	sc := scene.New(cfg, opts.Width, opts.Height)
	clock := sched.NewVirtual(cfg.FrameDuration())
	game := flappy.New(cfg, sc, clock,
		flappy.WithSeed(opts.Seed),
		flappy.WithLogger(opts.Logger),
	)

	var pilot *flappy.Autopilot
	if opts.Autopilot {
		pilot = flappy.NewAutopilot(cfg)
	}

	jumps := 0
	game.Start()
	for i := 0; i < opts.Frames && game.Phase() == flappy.PhaseRunning; i++ {
		if pilot != nil && pilot.ShouldJump(game.Snapshot(), opts.Height) {
			game.Jump()
			jumps++
		}
		clock.Step()
	}

	s := game.Snapshot()
	return Result{
		Phase:     s.Phase,
		Score:     s.Score,
		Ticks:     s.Ticks,
		Elapsed:   clock.Now(),
		Collision: s.Collision,
		Jumps:     jumps,
	}
}
