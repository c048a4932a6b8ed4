package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fixedRand always returns the same value, modulo n.
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

// recordingRand remembers the bounds it was asked for.
type recordingRand struct {
	value int
	asked []int
}

func (r *recordingRand) Intn(n int) int {
	r.asked = append(r.asked, n)
	return r.value
}

type fakePiece struct {
	piece Piece
	x     float64
}

// fakeDisplay lays pieces out with a fixed width, like a real renderer.
type fakeDisplay struct {
	width, height float64
	pieceWidth    float64
	pieces        map[PieceID]*fakePiece
	removed       []PieceID
}

func newFakeDisplay(pieceWidth float64) *fakeDisplay {
	return &fakeDisplay{width: 640, height: 600, pieceWidth: pieceWidth, pieces: make(map[PieceID]*fakePiece)}
}

func (d *fakeDisplay) Viewport() (float64, float64) { return d.width, d.height }
func (d *fakeDisplay) EntityBounds() core.RectF      { return core.NewRectF(50, 200, 34, 24) }
func (d *fakeDisplay) SetEntityY(float64)            {}
func (d *fakeDisplay) SetScore(int)                  {}
func (d *fakeDisplay) SetPhase(Phase, int)           {}

func (d *fakeDisplay) PieceBounds(id PieceID) core.RectF {
	p, ok := d.pieces[id]
	if !ok {
		return core.RectF{}
	}
	if p.piece.Kind == PieceTop {
		return core.NewRectF(p.x, 0, d.pieceWidth, p.piece.Height)
	}
	return core.NewRectF(p.x, d.height-p.piece.Height, d.pieceWidth, p.piece.Height)
}

func (d *fakeDisplay) PlacePiece(p Piece, x float64) {
	d.pieces[p.ID] = &fakePiece{piece: p, x: x}
}

func (d *fakeDisplay) MovePiece(id PieceID, x float64) {
	if p, ok := d.pieces[id]; ok {
		p.x = x
	}
}

func (d *fakeDisplay) RemovePiece(id PieceID) {
	delete(d.pieces, id)
	d.removed = append(d.removed, id)
}

func TestSpawnHeights(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	d := newFakeDisplay(60)
	rng := &recordingRand{value: 80}
	m := NewObstacleManager(cfg, rng)

	o := m.Spawn(d)

	assert.Equal(t, []int{160}, rng.asked)
	assert.Equal(t, 200.0, o.Top.Height)
	assert.Equal(t, 220.0, o.Bottom.Height, "600 - 200 - 180")
	assert.Equal(t, 640.0, o.X)
	assert.False(t, o.Scored)
	assert.NotEqual(t, o.Top.ID, o.Bottom.ID)
	assert.Len(t, d.pieces, 2)
	assert.Equal(t, 640.0, d.PieceBounds(o.Bottom.ID).X)
}

func TestSpawnHeightRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	d := newFakeDisplay(60)

	low := NewObstacleManager(cfg, fixedRand(0)).Spawn(d)
	high := NewObstacleManager(cfg, fixedRand(159)).Spawn(d)

	assert.Equal(t, 120.0, low.Top.Height)
	assert.Equal(t, 279.0, high.Top.Height)
	for _, o := range []Obstacle{low, high} {
		assert.Equal(t, cfg.Gap, 600-o.Top.Height-o.Bottom.Height)
	}
}

func TestAdvanceMovesPairs(t *testing.T) {
	d := newFakeDisplay(60)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))
	o := m.Spawn(d)

	m.Advance(d)
	m.Advance(d)

	got := m.Obstacles()
	require.Len(t, got, 1)
	assert.Equal(t, 636.0, got[0].X)
	assert.Equal(t, 636.0, d.PieceBounds(o.Top.ID).X)
	assert.Equal(t, 636.0, d.PieceBounds(o.Bottom.ID).X)
}

func TestAdvanceScoresOncePerPair(t *testing.T) {
	d := newFakeDisplay(60)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))
	m.Spawn(d)

	total := 0
	scoredAt := -1
	for i := 1; i <= 340; i++ {
		n := m.Advance(d)
		if n > 0 && scoredAt < 0 {
			scoredAt = i
		}
		total += n
	}

	assert.Equal(t, 1, total)
	// X + 60 < 60 first holds at X = 640 - 2*321 = -2
	assert.Equal(t, 321, scoredAt)
	require.Equal(t, 1, m.Len())
	assert.True(t, m.Obstacles()[0].Scored)
}

func TestAdvanceRemovesPairsOffScreen(t *testing.T) {
	d := newFakeDisplay(60)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))
	o := m.Spawn(d)

	// X + 60 < 0 first holds at X = 640 - 2*351 = -62
	for i := 0; i < 350; i++ {
		m.Advance(d)
	}
	assert.Equal(t, 1, m.Len())

	m.Advance(d)
	assert.Zero(t, m.Len())
	assert.Empty(t, d.pieces)
	assert.ElementsMatch(t, []PieceID{o.Top.ID, o.Bottom.ID}, d.removed)
}

func TestAdvanceZeroWidthNeverScores(t *testing.T) {
	d := newFakeDisplay(0)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))
	m.Spawn(d)

	total := 0
	for i := 0; i < 400; i++ {
		total += m.Advance(d)
	}

	assert.Zero(t, total)
	assert.Zero(t, m.Len(), "still pruned once X < 0")
}

func TestPairsStayPaired(t *testing.T) {
	d := newFakeDisplay(60)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))

	for i := 0; i < 1000; i++ {
		if i%90 == 0 {
			m.Spawn(d)
		}
		m.Advance(d)
		require.Equal(t, 2*m.Len(), len(d.pieces), "frame %d", i)
		require.Len(t, m.Bounds(d), 2*m.Len())
	}
}

func TestClearRemovesFromDisplay(t *testing.T) {
	d := newFakeDisplay(60)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))
	m.Spawn(d)
	m.Spawn(d)

	m.Clear(d)
	assert.Zero(t, m.Len())
	assert.Empty(t, d.pieces)
	assert.Len(t, d.removed, 4)
}

func TestObstaclesReturnsCopy(t *testing.T) {
	d := newFakeDisplay(60)
	m := NewObstacleManager(config.DefaultFlappyConfig().Obstacles, fixedRand(80))
	m.Spawn(d)

	got := m.Obstacles()
	got[0].X = -1000
	assert.Equal(t, 640.0, m.Obstacles()[0].X)
}
