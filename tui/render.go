package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"snake-heuristic/game"
	"snake-heuristic/game/types"
	"snake-heuristic/session"
)

var (
	rgbBody      = tcell.NewRGBColor(46, 204, 113)
	rgbHead      = tcell.NewRGBColor(255, 255, 0)
	rgbDead      = tcell.NewRGBColor(120, 120, 120)
	rgbFood      = tcell.NewRGBColor(231, 76, 60)
	rgbSuperFood = tcell.NewRGBColor(241, 196, 15)
	rgbAntiFood  = tcell.NewRGBColor(155, 89, 182)
	rgbObstacle  = tcell.NewRGBColor(127, 140, 141)
	rgbPlan      = tcell.NewRGBColor(52, 152, 219)
	rgbBorder    = tcell.NewRGBColor(180, 180, 180)
)

// Each board cell is two terminal columns wide so the board looks square.
const cellWidth = 2

// Glyph is what a board cell looks like on the terminal.
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

func headGlyph(dir types.Direction) rune {
	switch dir {
	case types.Up:
		return '▲'
	case types.Down:
		return '▼'
	case types.Left:
		return '◀'
	default:
		return '▶'
	}
}

// GlyphFor returns the glyph of a non-snake cell; ok is false for Empty.
func GlyphFor(state types.CellState) (Glyph, bool) {
	switch state {
	case types.Food:
		return Glyph{'●', rgbFood}, true
	case types.SuperFood:
		return Glyph{'★', rgbSuperFood}, true
	case types.AntiFood:
		return Glyph{'✖', rgbAntiFood}, true
	case types.Obstacle:
		return Glyph{'▓', rgbObstacle}, true
	default:
		return Glyph{}, false
	}
}

type Renderer struct {
	screen  tcell.Screen
	originX int
	originY int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, originX: 1, originY: 1}
}

// cellAt returns the left terminal column and row of a board cell.
func (r *Renderer) cellAt(p types.Position) (int, int) {
	return r.originX + p.Column*cellWidth, r.originY + p.Row
}

func (r *Renderer) put(x, y int, ch rune, fg tcell.Color) {
	r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(fg))
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) Draw(s *session.Session) {
	g := s.Game()
	r.screen.Clear()

	r.drawBorder(g)
	r.drawItems(g)
	if s.Autoplay() && s.Phase() == session.Playing {
		r.drawPlan(g, s.Decision().Path)
	}
	r.drawSnake(g, s.Revealed())
	r.drawHUD(s)
	r.drawOverlay(s)

	r.screen.Show()
}

func (r *Renderer) drawBorder(g *game.Game) {
	left, top := r.originX-1, r.originY-1
	right := r.originX + g.Columns()*cellWidth
	bottom := r.originY + g.Rows()

	for x := left + 1; x < right; x++ {
		r.put(x, top, '─', rgbBorder)
		r.put(x, bottom, '─', rgbBorder)
	}
	for y := top + 1; y < bottom; y++ {
		r.put(left, y, '│', rgbBorder)
		r.put(right, y, '│', rgbBorder)
	}
	r.put(left, top, '┌', rgbBorder)
	r.put(right, top, '┐', rgbBorder)
	r.put(left, bottom, '└', rgbBorder)
	r.put(right, bottom, '┘', rgbBorder)
}

func (r *Renderer) drawItems(g *game.Game) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			p := types.Position{Row: row, Column: col}
			glyph, ok := GlyphFor(g.Cell(p))
			if !ok {
				continue
			}
			x, y := r.cellAt(p)
			r.put(x, y, glyph.Rune, glyph.Color)
		}
	}
}

func (r *Renderer) drawPlan(g *game.Game, path []types.Position) {
	for _, p := range path {
		if g.Cell(p) != types.Empty {
			continue
		}
		x, y := r.cellAt(p)
		r.put(x, y, '·', rgbPlan)
	}
}

func (r *Renderer) drawSnake(g *game.Game, dead int) {
	body := g.Body()
	for i, p := range body {
		x, y := r.cellAt(p)
		color := rgbBody
		ch := '█'
		if i == 0 && dead == 0 {
			color, ch = rgbHead, headGlyph(g.Direction())
		}
		if i < dead {
			color = rgbDead
		}
		r.put(x, y, ch, color)
		if ch == '█' {
			r.put(x+1, y, ch, color)
		}
	}
}

func (r *Renderer) drawHUD(s *session.Session) {
	g := s.Game()
	y := r.originY + g.Rows() + 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.text(r.originX, y, fmt.Sprintf("Score %d  Length %d  Obstacles %d", g.Score(), g.Length(), g.ObstacleCount()), style)
	r.text(r.originX, y+1, fmt.Sprintf("[h] autoplay %s  [m] sound %s  [esc] pause  [q] quit", onOff(s.Autoplay()), onOff(s.SoundsOn())), style)

	tracker := s.Stats()
	r.text(r.originX, y+2, fmt.Sprintf("Games %d  Best %d  Avg %.2f", tracker.GamesPlayed(), tracker.MaxScore(), tracker.AverageScore()), style.Foreground(tcell.ColorGray))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (r *Renderer) centered(g *game.Game, msg string) {
	width := g.Columns() * cellWidth
	x := r.originX + (width-len([]rune(msg)))/2
	y := r.originY + g.Rows()/2
	r.text(max(x, 0), y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

func (r *Renderer) drawOverlay(s *session.Session) {
	g := s.Game()
	switch s.Phase() {
	case session.Idle:
		r.centered(g, "PRESS ANY KEY TO START")
	case session.Countdown:
		r.centered(g, strconv.Itoa(s.Countdown()))
	case session.Dying:
		if s.Revealed() >= g.Length() {
			r.centered(g, fmt.Sprintf("GAME OVER - SCORE %d", g.Score()))
		}
	case session.Playing:
		if s.Paused() {
			r.centered(g, "PAUSED")
		}
	}
}
