// Package flappy implements a Flappy Bird-style simulation.
// The bird falls under gravity and must fly through gaps between pipe
// pairs that scroll in from the right. Rendering, input and timing are
// supplied by the caller through Display and core.Scheduler.
package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the game state machine: Idle -> Running -> GameOver -> Running.
//
// Every method must be called from the scheduler's goroutine. Game has no
// locks of its own.
type Game struct {
	cfg       config.FlappyConfig
	display   Display
	sched     core.Scheduler
	logger    *log.Logger
	onOver    func(score int)
	body      Body
	obstacles *ObstacleManager
	score     int
	phase     Phase
	ticks     int
	collision Collision
	frame     core.Handle // Pending frame request
	spawner   core.Handle // Spawn timer
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the source of obstacle heights.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.obstacles.rng = r
	}
}

// WithSeed seeds the default source of obstacle heights.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger used for phase changes and spawns.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// OnGameOver registers a callback run once per round with the final score.
func OnGameOver(fn func(score int)) Option {
	return func(g *Game) {
		g.onOver = fn
	}
}

// New creates a game in the idle phase. Nothing is scheduled until Start.
func New(cfg config.FlappyConfig, d Display, s core.Scheduler, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		display:   d,
		sched:     s,
		logger:    log.New(io.Discard),
		obstacles: NewObstacleManager(cfg.Obstacles, rand.New(rand.NewSource(time.Now().UnixNano()))),
		phase:     PhaseIdle,
		frame:     core.NopHandle,
		spawner:   core.NopHandle,
		collision: Collision{Kind: CollisionNone, Index: -1},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start begins a new round from any phase. Live obstacles are removed,
// the bird is put back at its start position and the spawn timer and
// frame loop are (re)started.
func (g *Game) Start() {
	// A round still in progress must not leave a second timer behind
	g.cancelLoop()

	g.body = Body{Y: g.cfg.Physics.StartY}
	g.score = 0
	g.ticks = 0
	g.collision = Collision{Kind: CollisionNone, Index: -1}
	g.obstacles.Clear(g.display)

	g.display.SetScore(g.score)
	g.display.SetEntityY(g.body.Y)
	g.phase = PhaseRunning
	g.display.SetPhase(g.phase, g.score)

	g.spawner = g.sched.Every(g.cfg.Obstacles.SpawnInterval, g.spawn)
	g.frame = g.sched.RequestFrame(g.Tick)

	g.logger.Debug("round started", "start_y", g.body.Y, "spawn_interval", g.cfg.Obstacles.SpawnInterval)
}

// Tick runs one frame: physics, obstacles, then collisions.
// It does nothing unless the game is running.
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	g.ticks++

	g.body = Integrate(g.body, g.cfg.Physics.Gravity)
	g.display.SetEntityY(g.body.Y)

	if passed := g.obstacles.Advance(g.display); passed > 0 {
		g.score += passed
		g.display.SetScore(g.score)
	}

	_, viewportH := g.display.Viewport()
	hit := DetectCollision(g.body.Y, g.display.EntityBounds(), viewportH, g.obstacles.Bounds(g.display))
	if hit.Hit() {
		g.collision = hit
		g.Terminate()
		return
	}

	// Keep a single frame chain even when Tick is called directly
	g.frame.Cancel()
	g.frame = g.sched.RequestFrame(g.Tick)
}

// spawn is the spawn timer callback.
func (g *Game) spawn() {
	if g.phase != PhaseRunning {
		return
	}
	o := g.obstacles.Spawn(g.display)
	g.logger.Debug("obstacle spawned", "top", o.Top.Height, "bottom", o.Bottom.Height, "x", o.X)
}

// Jump sets the bird's velocity to the jump impulse, replacing whatever
// velocity it had. It does nothing unless the game is running.
func (g *Game) Jump() {
	if g.phase != PhaseRunning {
		return
	}
	g.body.Velocity = g.cfg.Physics.JumpImpulse
}

// Terminate ends the round: the frame loop and spawn timer are cancelled
// and the final score is shown. Only the first call per round has effect.
func (g *Game) Terminate() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseGameOver
	g.cancelLoop()
	g.display.SetPhase(g.phase, g.score)

	g.logger.Info("game over", "score", g.score, "ticks", g.ticks, "cause", g.collision.Kind)

	if g.onOver != nil {
		g.onOver(g.score)
	}
}

func (g *Game) cancelLoop() {
	g.frame.Cancel()
	g.spawner.Cancel()
	g.frame = core.NopHandle
	g.spawner = core.NopHandle
}

// HandleAction routes an input signal. Start only applies outside a
// running round, as the start and restart buttons are only shown then.
// It reports whether the action changed anything.
func (g *Game) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionJump:
		if g.phase == PhaseRunning {
			g.Jump()
			return true
		}
	case core.ActionStart:
		if g.phase != PhaseRunning {
			g.Start()
			return true
		}
	}
	return false
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Phase     Phase
	Body      Body
	Score     int
	Ticks     int
	Obstacles []Obstacle
	Collision Collision // What ended the last round, if anything
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:     g.phase,
		Body:      g.body,
		Score:     g.score,
		Ticks:     g.ticks,
		Obstacles: g.obstacles.Obstacles(),
		Collision: g.collision,
	}
}
