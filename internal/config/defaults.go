package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpImpulse: -8,
			StartY:      200,
			FrameRate:   60,
		},
		Obstacles: FlappyObstacles{
			SpawnInterval:  1500 * time.Millisecond,
			Speed:          2,
			Gap:            180,
			MinTopHeight:   120,
			TopHeightRange: 160,
			PipeWidth:      60,
			ScoreLineX:     60,
		},
		Player: FlappyPlayer{
			X:      50,
			Width:  34,
			Height: 24,
		},
		Display: FlappyDisplay{
			CellWidth:  8,
			CellHeight: 25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
