// Package config provides YAML-based game configuration loading for the
// flappy simulation and its front-ends.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Display   FlappyDisplay   `yaml:"display"`
}

// FlappyPhysics defines the vertical motion of the bird.
// Velocities are in pixels per frame.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	StartY      float64 `yaml:"start_y"`      // Position at the start of a round
	FrameRate   int     `yaml:"frame_rate"`   // Frames per second of the animation loop
}

// FlappyObstacles defines how pipe pairs are spawned and moved.
type FlappyObstacles struct {
	SpawnInterval  time.Duration `yaml:"spawn_interval"`   // Wall-clock period between spawns
	Speed          float64       `yaml:"speed"`            // Pixels moved left per frame
	Gap            float64       `yaml:"gap"`              // Vertical opening between pieces
	MinTopHeight   int           `yaml:"min_top_height"`   // Smallest top piece
	TopHeightRange int           `yaml:"top_height_range"` // Top piece is in [min, min+range)
	PipeWidth      float64       `yaml:"pipe_width"`       // Rendered width of a piece
	ScoreLineX     float64       `yaml:"score_line_x"`     // Right edge must pass this to score
}

// FlappyPlayer defines the bird's box. Only Y moves.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyDisplay maps pixels onto terminal cells. The terminal's play
// rows times CellHeight is the viewport height; below MinViewportHeight
// the tallest top pipes leave no room for a bottom pipe and pairs are
// drawn without one.
type FlappyDisplay struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// FrameDuration returns the duration of one animation frame.
func (c FlappyConfig) FrameDuration() time.Duration {
	if c.Physics.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Physics.FrameRate)
}

// MinViewportHeight returns the smallest viewport height in pixels in
// which every spawned pair has a bottom piece.
func (c FlappyConfig) MinViewportHeight() float64 {
	return float64(c.Obstacles.MinTopHeight+c.Obstacles.TopHeightRange) + c.Obstacles.Gap
}

// Validate checks that the configuration can drive a game.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Physics.FrameRate > 0, "physics.frame_rate"},
		{c.Physics.StartY >= 0, "physics.start_y"},
		{c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval"},
		{c.Obstacles.Speed > 0, "obstacles.speed"},
		{c.Obstacles.Gap > 0, "obstacles.gap"},
		{c.Obstacles.MinTopHeight >= 0, "obstacles.min_top_height"},
		{c.Obstacles.TopHeightRange > 0, "obstacles.top_height_range"},
		{c.Obstacles.PipeWidth > 0, "obstacles.pipe_width"},
		{c.Player.Width > 0, "player.width"},
		{c.Player.Height > 0, "player.height"},
		{c.Display.CellWidth > 0, "display.cell_width"},
		{c.Display.CellHeight > 0, "display.cell_height"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %w: %s out of range", ErrInvalidConfig, chk.field)
		}
	}
	return nil
}
