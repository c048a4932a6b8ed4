package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Autopilot decides when to flap so the bird stays in the next gap.
// It flaps whenever the bird's bottom sinks below a line Margin pixels
// above the lower pipe.
type Autopilot struct {
	cfg    config.FlappyConfig
	Margin float64
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.FlappyConfig) *Autopilot {
	return &Autopilot{cfg: cfg, Margin: 40}
}

// ShouldJump reports whether the bird should flap this frame.
func (a *Autopilot) ShouldJump(s Snapshot, viewportH float64) bool {
	if s.Phase != PhaseRunning {
		return false
	}

	// Aim for the middle of the screen until a pipe is ahead
	gapBottom := viewportH/2 + a.cfg.Obstacles.Gap/2
	for _, o := range s.Obstacles {
		if o.X+a.cfg.Obstacles.PipeWidth > a.cfg.Player.X {
			gapBottom = o.Top.Height + a.cfg.Obstacles.Gap
			break
		}
	}

	return s.Body.Y+a.cfg.Player.Height > gapBottom-a.Margin
}
