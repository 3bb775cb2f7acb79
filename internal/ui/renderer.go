package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/abertram/Invisiboga/internal/game"
	"github.com/abertram/Invisiboga/internal/gamedata"
	"github.com/abertram/Invisiboga/internal/world"
)

// BoardTop is the first screen row of the board; the rows above hold the status line and banner.
const BoardTop = 2

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas   Canvas
	viewport Viewport
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, viewport Viewport) *Renderer {
	return &Renderer{canvas: canvas, viewport: viewport}
}

// Viewport returns the cell to board mapping.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Render draws the board, the pawns and the overlay.
func (r *Renderer) Render(s *game.Session, o *Overlay) {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	r.renderStatus(s)
	r.renderBanner(o)

	// The board only shows while the marker is tracked.
	if s.Tracking() {
		r.renderField(s.Field())
		if s.Mode() >= game.ModeRunning {
			r.renderPawns(s)
		}
	}

	if text, ok := o.Toast(); ok {
		r.text(0, height-2, text, tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
	r.text(0, height-1, legend(o), tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.canvas.Show()
}

func (r *Renderer) renderStatus(s *game.Session) {
	marker := "lost"
	if s.Tracking() {
		marker = "tracked"
	}
	status := fmt.Sprintf("Invisiboga  %s  marker: %s  spaces: %d/%d",
		s.Mode(), marker, s.Field().Len(), s.Field().Capacity())
	r.text(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

func (r *Renderer) renderBanner(o *Overlay) {
	name, kind, color, ok := o.ActivePlayer()
	if !ok {
		return
	}
	r.text(0, 1, fmt.Sprintf("Turn: %s (%s)", name, kind), tcell.StyleDefault.Foreground(color).Bold(true))
}

func (r *Renderer) renderField(f *world.Field) {
	for _, sp := range f.Spaces() {
		col, row := r.viewport.Cell(sp.Position)
		r.cell(col, row, sp.Type.Rune(), spaceStyle(sp.Type))
	}
}

func (r *Renderer) renderPawns(s *game.Session) {
	drawn := make(map[[2]int]bool)
	for i, p := range s.Players() {
		col, row := r.viewport.Cell(p.Pawn.Position)
		key := [2]int{col, row}
		if drawn[key] {
			// Pawns sharing a space.
			r.cell(col, row, '+', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
			continue
		}
		drawn[key] = true

		style := tcell.StyleDefault.Foreground(gamedata.ParseHexColorOr(p.Color, tcell.ColorWhite)).Bold(true)
		if i == s.ActiveIndex() {
			style = style.Underline(true)
		}
		r.cell(col, row, rune('1'+i), style)
	}
}

// spaceStyle returns the appropriate style for a space type.
func spaceStyle(t world.SpaceType) tcell.Style {
	switch t {
	case world.SpaceStart:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case world.SpaceSpecial:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case world.SpaceTarget:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	case world.SpaceNormal:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// legend lists the keys that do something right now.
func legend(o *Overlay) string {
	keys := []string{"[m] marker"}
	if o.ControlVisible(game.ControlNext) {
		keys = append(keys, "[n] next")
	}
	if o.ControlVisible(game.ControlRoll) {
		keys = append(keys, "[r] roll")
	}
	if o.ControlVisible(game.ControlRestart) {
		keys = append(keys, "[R] restart")
	}
	keys = append(keys, "[q] quit")
	return strings.Join(keys, "  ")
}

func (r *Renderer) cell(col, row int, ch rune, style tcell.Style) {
	width, height := r.canvas.Size()
	if col < 0 || row < BoardTop || col >= width || row >= height-2 {
		return
	}
	r.canvas.SetContent(col, row, ch, style)
}

// text writes a single line, cut at the right edge.
func (r *Renderer) text(x, y int, msg string, style tcell.Style) {
	width, _ := r.canvas.Size()
	for _, ch := range msg {
		if x >= width {
			return
		}
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
