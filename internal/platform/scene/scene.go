// Package scene keeps the pixel-space layout of the play area: the
// viewport, the bird's box and every pipe piece. It implements
// flappy.Display and is what the terminal front-end draws from.
package scene

import (
	"sort"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// PlacedPiece is a piece together with its current position.
type PlacedPiece struct {
	flappy.Piece
	X float64
}

// Scene is an in-memory flappy.Display.
type Scene struct {
	width     float64
	height    float64
	player    config.FlappyPlayer
	pipeWidth float64
	entityY   float64
	pieces    map[flappy.PieceID]*PlacedPiece
	score     int
	phase     flappy.Phase
	final     int
}

// New creates a scene of the given viewport size using the player box
// and pipe width from cfg.
func New(cfg config.FlappyConfig, width, height float64) *Scene {
	return &Scene{
		width:     width,
		height:    height,
		player:    cfg.Player,
		pipeWidth: cfg.Obstacles.PipeWidth,
		entityY:   cfg.Physics.StartY,
		pieces:    make(map[flappy.PieceID]*PlacedPiece),
		phase:     flappy.PhaseIdle,
	}
}

// Resize changes the viewport. Existing pieces keep their heights; only
// pipes spawned afterwards use the new size.
func (s *Scene) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Viewport implements flappy.Display.
func (s *Scene) Viewport() (width, height float64) {
	return s.width, s.height
}

// EntityBounds implements flappy.Display.
func (s *Scene) EntityBounds() core.RectF {
	return core.NewRectF(s.player.X, s.entityY, s.player.Width, s.player.Height)
}

// PieceBounds implements flappy.Display.
func (s *Scene) PieceBounds(id flappy.PieceID) core.RectF {
	p, ok := s.pieces[id]
	if !ok {
		return core.RectF{}
	}
	return s.bounds(p)
}

func (s *Scene) bounds(p *PlacedPiece) core.RectF {
	if p.Kind == flappy.PieceTop {
		return core.NewRectF(p.X, 0, s.pipeWidth, p.Height)
	}
	return core.NewRectF(p.X, s.height-p.Height, s.pipeWidth, p.Height)
}

// SetEntityY implements flappy.Display.
func (s *Scene) SetEntityY(y float64) {
	s.entityY = y
}

// PlacePiece implements flappy.Display.
func (s *Scene) PlacePiece(p flappy.Piece, x float64) {
	s.pieces[p.ID] = &PlacedPiece{Piece: p, X: x}
}

// MovePiece implements flappy.Display. Unknown pieces are ignored.
func (s *Scene) MovePiece(id flappy.PieceID, x float64) {
	if p, ok := s.pieces[id]; ok {
		p.X = x
	}
}

// RemovePiece implements flappy.Display.
func (s *Scene) RemovePiece(id flappy.PieceID) {
	delete(s.pieces, id)
}

// SetScore implements flappy.Display.
func (s *Scene) SetScore(score int) {
	s.score = score
}

// SetPhase implements flappy.Display.
func (s *Scene) SetPhase(phase flappy.Phase, score int) {
	s.phase = phase
	if phase == flappy.PhaseGameOver {
		s.final = score
	}
}

// EntityY returns the last written bird position.
func (s *Scene) EntityY() float64 {
	return s.entityY
}

// Score returns the displayed score.
func (s *Scene) Score() int {
	return s.score
}

// Phase returns the visible screen and the final score of the last round.
func (s *Scene) Phase() (flappy.Phase, int) {
	return s.phase, s.final
}

// PieceCount returns the number of pieces on display.
func (s *Scene) PieceCount() int {
	return len(s.pieces)
}

// Pieces returns every piece with its bounding box, in creation order.
func (s *Scene) Pieces() []PieceBox {
	out := make([]PieceBox, 0, len(s.pieces))
	for _, p := range s.pieces {
		out = append(out, PieceBox{PlacedPiece: *p, Bounds: s.bounds(p)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// PieceBox is a placed piece with its bounding box.
type PieceBox struct {
	PlacedPiece
	Bounds core.RectF
}
