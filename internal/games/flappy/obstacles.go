package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the source of obstacle heights. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a gate made of a top and a bottom piece sharing one X.
type Obstacle struct {
	Top    Piece
	Bottom Piece
	X      float64 // Left edge of both pieces
	Scored bool    // Whether this pair already counted towards the score
}

// ObstacleManager handles spawning, movement, scoring and removal of pipe pairs.
type ObstacleManager struct {
	cfg       config.FlappyObstacles
	rng       Rand
	obstacles []Obstacle
	nextID    PieceID
}

// NewObstacleManager creates a manager drawing heights from rng.
func NewObstacleManager(cfg config.FlappyObstacles, rng Rand) *ObstacleManager {
	return &ObstacleManager{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Spawn adds a new pair at the right edge of the viewport.
// The top piece is in [MinTopHeight, MinTopHeight+TopHeightRange) and the
// bottom piece fills the rest of the viewport below the gap.
func (m *ObstacleManager) Spawn(d Display) Obstacle {
	width, height := d.Viewport()
	topH := float64(m.rng.Intn(m.cfg.TopHeightRange) + m.cfg.MinTopHeight)

	o := Obstacle{
		Top:    Piece{ID: m.allocID(), Kind: PieceTop, Height: topH},
		Bottom: Piece{ID: m.allocID(), Kind: PieceBottom, Height: height - topH - m.cfg.Gap},
		X:      width,
	}
	d.PlacePiece(o.Top, o.X)
	d.PlacePiece(o.Bottom, o.X)

	m.obstacles = append(m.obstacles, o)
	return o
}

func (m *ObstacleManager) allocID() PieceID {
	m.nextID++
	return m.nextID
}

// Advance moves every pair left by one frame's worth and returns how many
// pairs crossed the score line this frame. Pairs whose right edge left the
// screen are removed from the display and dropped.
//
// The width comes from the display on every frame. A piece reported with
// zero width is not on screen and never scores.
func (m *ObstacleManager) Advance(d Display) int {
	scored := 0
	kept := m.obstacles[:0]

	for _, o := range m.obstacles {
		o.X -= m.cfg.Speed
		d.MovePiece(o.Top.ID, o.X)
		d.MovePiece(o.Bottom.ID, o.X)

		width := d.PieceBounds(o.Top.ID).W
		right := o.X + width

		if !o.Scored && width > 0 && right < m.cfg.ScoreLineX {
			o.Scored = true
			scored++
		}

		if right < 0 {
			d.RemovePiece(o.Top.ID)
			d.RemovePiece(o.Bottom.ID)
			continue
		}
		kept = append(kept, o)
	}

	// Drop stale tail entries so removed pairs can be collected
	for i := len(kept); i < len(m.obstacles); i++ {
		m.obstacles[i] = Obstacle{}
	}
	m.obstacles = kept
	return scored
}

// Clear removes every pair from the display and the collection.
func (m *ObstacleManager) Clear(d Display) {
	for _, o := range m.obstacles {
		d.RemovePiece(o.Top.ID)
		d.RemovePiece(o.Bottom.ID)
	}
	m.obstacles = m.obstacles[:0]
}

// Len returns the number of live pairs.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// Obstacles returns a copy of the live pairs, oldest first.
func (m *ObstacleManager) Obstacles() []Obstacle {
	out := make([]Obstacle, len(m.obstacles))
	copy(out, m.obstacles)
	return out
}

// Bounds returns the display boxes of all live pieces, top before bottom,
// oldest pair first.
func (m *ObstacleManager) Bounds(d Display) []core.RectF {
	out := make([]core.RectF, 0, 2*len(m.obstacles))
	for _, o := range m.obstacles {
		out = append(out, d.PieceBounds(o.Top.ID), d.PieceBounds(o.Bottom.ID))
	}
	return out
}
