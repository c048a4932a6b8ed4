package tui

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/scene"
)

// footerRows is the number of terminal rows below the play area.
const footerRows = 1

// Model is the Bubble Tea model for the game screen.
type Model struct {
	game     *flappy.Game
	scene    *scene.Scene
	sched    *teaScheduler
	screen   *core.Screen
	cells    config.FlappyDisplay
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for a terminal of rt.ScreenW x rt.ScreenH cells.
func NewModel(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Physics.FrameRate
	}

	rows := max(rt.ScreenH-footerRows, 1)
	screen := core.NewScreen(rt.ScreenW, rows)
	sc := scene.New(cfg,
		float64(rt.ScreenW)*cfg.Display.CellWidth,
		float64(rows)*cfg.Display.CellHeight)
	s := newTeaScheduler(rt.TickRate)

	game := flappy.New(cfg, sc, s,
		flappy.WithSeed(rt.Seed),
		flappy.WithLogger(logger),
		flappy.OnGameOver(func(score int) {
			logger.Info("round finished", "score", score)
		}),
	)

	h := help.New()
	h.Width = rt.ScreenW

	warnIfShort(logger, cfg, rows)

	return Model{
		game:   game,
		scene:  sc,
		sched:  s,
		screen: screen,
		cells:  cfg.Display,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tui-flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a := m.keys.Action(msg)
		if a == core.ActionQuit {
			m.quitting = true
			m.game.Terminate()
			return m, tea.Quit
		}
		m.game.HandleAction(a)

	case tea.MouseMsg:
		m.game.HandleAction(MouseAction(msg, m.screen.Height()))

	case tea.WindowSizeMsg:
		m = m.handleResize(msg)

	default:
		m.sched.handle(msg)
	}

	return m, m.sched.drain()
}

// handleResize fits the play area to the terminal, keeping one footer row.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	rows := max(msg.Height-footerRows, 1)
	m.screen.Resize(msg.Width, rows)
	m.scene.Resize(
		float64(msg.Width)*m.cells.CellWidth,
		float64(rows)*m.cells.CellHeight)
	m.help.Width = msg.Width
	m.logger.Debug("resize", "cols", msg.Width, "rows", rows)
	warnIfShort(m.logger, m.game.Config(), rows)
	return m
}

// warnIfShort logs when the play area is too short for every pipe pair
// to have a bottom piece. It reports whether it warned.
func warnIfShort(logger *log.Logger, cfg config.FlappyConfig, rows int) bool {
	height := float64(rows) * cfg.Display.CellHeight
	if height >= cfg.MinViewportHeight() {
		return false
	}
	logger.Warn("terminal too short, some pipes will have no bottom piece",
		"height", height, "min_height", cfg.MinViewportHeight(),
		"min_rows", int(math.Ceil(cfg.MinViewportHeight()/cfg.Display.CellHeight))+footerRows)
	return true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.scene, m.cells)
	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Run starts the Bubble Tea program for one game session.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
