package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestDetectCollision(t *testing.T) {
	bird := func(y float64) core.RectF { return core.NewRectF(50, y, 34, 24) }

	tests := []struct {
		name     string
		y        float64
		pieces   []core.RectF
		expected Collision
	}{
		{
			name:     "clear sky",
			y:        200,
			pieces:   []core.RectF{core.NewRectF(300, 0, 60, 200)},
			expected: Collision{Kind: CollisionNone, Index: -1},
		},
		{
			name:     "touching the floor",
			y:        576,
			expected: Collision{Kind: CollisionFloor, Index: -1},
		},
		{
			name:     "just above the floor",
			y:        575.5,
			expected: Collision{Kind: CollisionNone, Index: -1},
		},
		{
			name: "floor wins over pipes",
			y:    590,
			pieces: []core.RectF{
				core.NewRectF(40, 400, 60, 200),
			},
			expected: Collision{Kind: CollisionFloor, Index: -1},
		},
		{
			name: "first overlapping piece is reported",
			y:    100,
			pieces: []core.RectF{
				core.NewRectF(400, 0, 60, 200),
				core.NewRectF(60, 0, 60, 150),
				core.NewRectF(40, 0, 60, 120),
			},
			expected: Collision{Kind: CollisionPipe, Index: 1},
		},
		{
			name: "touching a pipe edge is not a hit",
			y:    200,
			pieces: []core.RectF{
				core.NewRectF(84, 0, 60, 300),
				core.NewRectF(50, 0, 60, 200),
			},
			expected: Collision{Kind: CollisionNone, Index: -1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectCollision(tc.y, bird(tc.y), 600, tc.pieces)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expected.Kind != CollisionNone, got.Hit())
		})
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "floor", CollisionFloor.String())
	assert.Equal(t, "pipe", CollisionPipe.String())
	assert.Equal(t, "top", PieceTop.String())
	assert.Equal(t, "bottom", PieceBottom.String())
	assert.Equal(t, "game over", PhaseGameOver.String())
}
