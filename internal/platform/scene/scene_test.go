package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestSceneLayout(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := New(cfg, 640, 600)

	w, h := s.Viewport()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 600.0, h)

	s.SetEntityY(120)
	assert.Equal(t, core.NewRectF(50, 120, 34, 24), s.EntityBounds())

	s.PlacePiece(flappy.Piece{ID: 1, Kind: flappy.PieceTop, Height: 200}, 640)
	s.PlacePiece(flappy.Piece{ID: 2, Kind: flappy.PieceBottom, Height: 220}, 640)
	assert.Equal(t, core.NewRectF(640, 0, 60, 200), s.PieceBounds(1))
	assert.Equal(t, core.NewRectF(640, 380, 60, 220), s.PieceBounds(2))

	s.MovePiece(1, 300)
	s.MovePiece(2, 300)
	assert.Equal(t, 300.0, s.PieceBounds(1).X)

	pieces := s.Pieces()
	require.Len(t, pieces, 2)
	assert.Equal(t, flappy.PieceID(1), pieces[0].ID)
	assert.Equal(t, flappy.PieceBottom, pieces[1].Kind)
}

func TestSceneUnknownPieceHasZeroBox(t *testing.T) {
	s := New(config.DefaultFlappyConfig(), 640, 600)

	assert.Equal(t, core.RectF{}, s.PieceBounds(42))
	s.MovePiece(42, 10) // ignored
	assert.Zero(t, s.PieceCount())

	s.PlacePiece(flappy.Piece{ID: 7, Kind: flappy.PieceTop, Height: 150}, 100)
	s.RemovePiece(7)
	assert.Equal(t, core.RectF{}, s.PieceBounds(7))
}

func TestScenePhaseAndScore(t *testing.T) {
	s := New(config.DefaultFlappyConfig(), 640, 600)

	phase, _ := s.Phase()
	assert.Equal(t, flappy.PhaseIdle, phase)

	s.SetScore(3)
	s.SetPhase(flappy.PhaseGameOver, 3)
	phase, final := s.Phase()
	assert.Equal(t, flappy.PhaseGameOver, phase)
	assert.Equal(t, 3, final)
	assert.Equal(t, 3, s.Score())

	// Entering a round keeps the last final score around
	s.SetPhase(flappy.PhaseRunning, 0)
	phase, final = s.Phase()
	assert.Equal(t, flappy.PhaseRunning, phase)
	assert.Equal(t, 3, final)
}

func TestSceneResizeKeepsPieceHeights(t *testing.T) {
	s := New(config.DefaultFlappyConfig(), 640, 600)
	s.PlacePiece(flappy.Piece{ID: 1, Kind: flappy.PieceBottom, Height: 220}, 640)

	s.Resize(800, 500)
	b := s.PieceBounds(1)
	assert.Equal(t, 220.0, b.H)
	assert.Equal(t, 280.0, b.Y, "bottom pieces stay anchored to the floor")
}
