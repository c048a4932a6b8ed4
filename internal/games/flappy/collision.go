package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// CollisionKind describes what ended a round.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionFloor
	CollisionPipe
)

// String returns a human-readable name for the kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionFloor:
		return "floor"
	case CollisionPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// Collision is the result of a collision check.
type Collision struct {
	Kind  CollisionKind
	Index int // Index into the checked pieces for CollisionPipe, -1 otherwise
}

// Hit reports whether anything was hit.
func (c Collision) Hit() bool {
	return c.Kind != CollisionNone
}

// DetectCollision checks the bird against the floor, then against each
// piece in order. The first hit wins and the remaining pieces are not
// checked.
func DetectCollision(entityY float64, entity core.RectF, viewportH float64, pieces []core.RectF) Collision {
	if entityY+entity.H >= viewportH {
		return Collision{Kind: CollisionFloor, Index: -1}
	}
	for i, p := range pieces {
		if entity.Intersects(p) {
			return Collision{Kind: CollisionPipe, Index: i}
		}
	}
	return Collision{Kind: CollisionNone, Index: -1}
}
