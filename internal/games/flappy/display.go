package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// PieceID identifies one pipe piece on the display.
type PieceID uint64

// PieceKind tells whether a piece hangs from the top or stands on the floor.
type PieceKind int

const (
	PieceTop PieceKind = iota
	PieceBottom
)

// String returns a human-readable name for the kind.
func (k PieceKind) String() string {
	if k == PieceTop {
		return "top"
	}
	return "bottom"
}

// Piece is one half of an obstacle pair.
type Piece struct {
	ID     PieceID
	Kind   PieceKind
	Height float64
}

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first start
	PhaseRunning               // Frame loop and spawn timer active
	PhaseGameOver              // Loop stopped, final score shown
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Display is the rendering layer the simulation reads geometry from and
// writes positions to. All values are in pixels with the origin at the
// top-left corner of the play area.
type Display interface {
	// Viewport returns the size of the play area.
	Viewport() (width, height float64)

	// EntityBounds returns the bird's current bounding box.
	EntityBounds() core.RectF

	// PieceBounds returns a piece's current bounding box.
	// Pieces the display does not know about report a zero box.
	PieceBounds(id PieceID) core.RectF

	SetEntityY(y float64)
	PlacePiece(p Piece, x float64)
	MovePiece(id PieceID, x float64)
	RemovePiece(id PieceID)

	SetScore(score int)

	// SetPhase switches the visible screen. score is the final score
	// when phase is PhaseGameOver.
	SetPhase(phase Phase, score int)
}
