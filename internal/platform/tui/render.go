package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/scene"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	BirdChar      = '●'
	BeakChar      = '▶'
)

// colorStyles maps cell roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPipeCap: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBird:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBeak:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// DrawScene draws the visible screen of sc into dst. The running game is
// drawn cell by cell; the start and game over screens replace it.
func DrawScene(dst *core.Screen, sc *scene.Scene, cells config.FlappyDisplay) {
	dst.Clear()

	phase, final := sc.Phase()
	switch phase {
	case flappy.PhaseIdle:
		drawCenteredMessage(dst, "TUI FLAPPY", "Press Enter to start", core.ColorTitle)
		return
	case flappy.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d  |  Enter to restart", final), core.ColorAlert)
		return
	}

	for _, p := range sc.Pieces() {
		drawPiece(dst, p, cells)
	}

	bird := sc.EntityBounds().Cells(cells.CellWidth, cells.CellHeight)
	dst.DrawRect(bird, BirdChar, core.ColorBird)
	dst.SetColored(bird.Right()-1, bird.Y, BeakChar, core.ColorBeak)

	dst.DrawTextCentered(0, fmt.Sprintf(" Score: %d ", sc.Score()), core.ColorHUD)
}

// drawPiece renders one pipe piece with a cap on its gap side.
func drawPiece(dst *core.Screen, p scene.PieceBox, cells config.FlappyDisplay) {
	r := p.Bounds.Cells(cells.CellWidth, cells.CellHeight)
	if r.W == 0 || r.H == 0 {
		return
	}
	dst.DrawRect(r, PipeChar, core.ColorPipe)
	if p.Kind == flappy.PieceTop {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorPipeCap)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorPipeCap)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-titleW)/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-subtitleW)/2, box.Y+3, subtitle)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
