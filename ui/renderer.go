package ui

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-heuristic/game"
	"snake-heuristic/game/types"
	"snake-heuristic/session"
)

const (
	maxScores     = 200 // Maximum number of scores to show in graph
	borderPadding = 10
)

var (
	bodyColor      = rl.NewColor(46, 204, 113, 255)
	headColor      = rl.NewColor(88, 232, 150, 255)
	deadColor      = rl.NewColor(120, 120, 120, 255)
	foodColor      = rl.NewColor(231, 76, 60, 255)
	superFoodColor = rl.NewColor(241, 196, 15, 255)
	antiFoodColor  = rl.NewColor(155, 89, 182, 255)
	obstacleColor  = rl.NewColor(52, 73, 94, 255)
	planColor      = rl.NewColor(52, 152, 219, 160)
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32

	ShowPlan bool // draw the solver's planned path while autoplay is on
}

func NewRenderer() *Renderer {
	r := &Renderer{ShowPlan: true}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// stats panel takes a seventh of the window
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func (r *Renderer) layoutGrid(g *game.Game) {
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.gameHeight - borderPadding*2

	cellW := availableWidth / int32(g.Columns())
	cellH := availableHeight / int32(g.Rows())
	r.cellSize = max(1, min(cellW, cellH))

	r.totalGridWidth = r.cellSize * int32(g.Columns())
	r.totalGridHeight = r.cellSize * int32(g.Rows())

	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

// cellOrigin returns the top-left pixel of a board cell.
func (r *Renderer) cellOrigin(p types.Position) (int32, int32) {
	return r.offsetX + int32(p.Column)*r.cellSize, r.offsetY + int32(p.Row)*r.cellSize
}

func (r *Renderer) Draw(s *session.Session) {
	r.UpdateDimensions()
	g := s.Game()
	r.layoutGrid(g)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/45, r.statsPanel/15)
	lineHeight := min(r.screenHeight/35, r.statsPanel/12)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			x, y := r.cellOrigin(types.Position{Row: row, Column: col})
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Black)
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Color{R: 30, G: 30, B: 30, A: 255})
		}
	}

	r.drawItems(g)
	if r.ShowPlan && s.Autoplay() && s.Phase() == session.Playing {
		r.drawPlan(s.Decision().Path)
	}
	r.drawSnake(g, s.Revealed())
	r.drawOverlay(s, fontSize*2)
	r.drawStatsPanel(s, fontSize, lineHeight)

	rl.EndDrawing()
}

func cellColor(state types.CellState) (rl.Color, bool) {
	switch state {
	case types.Food:
		return foodColor, true
	case types.SuperFood:
		return superFoodColor, true
	case types.AntiFood:
		return antiFoodColor, true
	case types.Obstacle:
		return obstacleColor, true
	default:
		return rl.Color{}, false
	}
}

func (r *Renderer) drawItems(g *game.Game) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			p := types.Position{Row: row, Column: col}
			color, ok := cellColor(g.Cell(p))
			if !ok {
				continue
			}
			x, y := r.cellOrigin(p)
			rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
		}
	}
}

func (r *Renderer) drawPlan(path []types.Position) {
	radius := float32(r.cellSize) / 6
	for _, p := range path {
		x, y := r.cellOrigin(p)
		rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, radius, planColor)
	}
}

// drawSnake draws the body head first; the first dead segments are greyed
// out as the death animation reveals them.
func (r *Renderer) drawSnake(g *game.Game, dead int) {
	body := g.Body()
	for i := len(body) - 1; i >= 0; i-- {
		x, y := r.cellOrigin(body[i])
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		if i < dead {
			color = deadColor
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
	if len(body) > 0 && dead == 0 {
		r.drawHead(body[0], g.Direction())
	}
}

func (r *Renderer) drawHead(head types.Position, dir types.Direction) {
	x, y := r.cellOrigin(head)
	fx, fy, c, half := float32(x), float32(y), float32(r.cellSize), float32(r.cellSize)/2

	var a, b, tip rl.Vector2
	switch dir {
	case types.Right:
		tip, a, b = rl.Vector2{X: fx + c, Y: fy + half}, rl.Vector2{X: fx + half, Y: fy}, rl.Vector2{X: fx + half, Y: fy + c}
	case types.Left:
		tip, a, b = rl.Vector2{X: fx, Y: fy + half}, rl.Vector2{X: fx + half, Y: fy + c}, rl.Vector2{X: fx + half, Y: fy}
	case types.Down:
		tip, a, b = rl.Vector2{X: fx + half, Y: fy + c}, rl.Vector2{X: fx + c, Y: fy + half}, rl.Vector2{X: fx, Y: fy + half}
	default:
		tip, a, b = rl.Vector2{X: fx + half, Y: fy}, rl.Vector2{X: fx, Y: fy + half}, rl.Vector2{X: fx + c, Y: fy + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(tip, a, b, rl.Yellow)
}

func (r *Renderer) drawCentered(text string, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawRectangle(r.offsetX, r.offsetY+r.totalGridHeight/2-fontSize, r.totalGridWidth, fontSize*2, rl.Fade(rl.Black, 0.7))
	rl.DrawText(text, r.offsetX+(r.totalGridWidth-width)/2, r.offsetY+r.totalGridHeight/2-fontSize/2, fontSize, color)
}

func (r *Renderer) drawOverlay(s *session.Session, fontSize int32) {
	switch s.Phase() {
	case session.Idle:
		r.drawCentered("PRESS ANY KEY TO START", fontSize, rl.White)
	case session.Countdown:
		r.drawCentered(strconv.Itoa(s.Countdown()), fontSize*2, rl.White)
	case session.Dying:
		if s.Revealed() >= s.Game().Length() {
			r.drawCentered(fmt.Sprintf("GAME OVER - SCORE %d", s.Game().Score()), fontSize, rl.Red)
		}
	case session.Playing:
		if s.Paused() {
			r.drawCentered("PAUSED", fontSize, rl.White)
		}
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (r *Renderer) drawStatsPanel(s *session.Session, fontSize, lineHeight int32) {
	g := s.Game()
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", g.Score()),
		fmt.Sprintf("Length: %d", g.Length()),
		fmt.Sprintf("Obstacles: %d", g.ObstacleCount()),
		fmt.Sprintf("Ticks: %d", g.Ticks()),
		"",
		fmt.Sprintf("Autoplay [H]: %s", onOff(s.Autoplay())),
		fmt.Sprintf("Sound [M]: %s", onOff(s.SoundsOn())),
		"Pause [Esc]",
	}
	if s.Autoplay() {
		lines = append(lines, fmt.Sprintf("Plan: %s", s.Decision().Strategy))
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	tracker := s.Stats()
	statsY += lineHeight / 2
	rl.DrawText("Session:", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", tracker.GamesPlayed()), statsX+5, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Best: %d", tracker.MaxScore()), statsX+5, statsY, fontSize, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.2f", tracker.AverageScore()), statsX+5, statsY, fontSize, rl.LightGray)

	r.drawPerformanceGraph(s, statsX, fontSize)
}

// drawPerformanceGraph plots the scores of the most recent games.
func (r *Renderer) drawPerformanceGraph(s *session.Session, graphX, fontSize int32) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Performance", graphX, graphY-fontSize-5, fontSize, rl.White)

	games := s.Stats().Games()
	if len(games) > maxScores {
		games = games[len(games)-maxScores:]
	}
	if len(games) < 2 {
		return
	}

	maxScore := 1
	for _, rec := range games {
		maxScore = max(maxScore, rec.Score)
	}
	point := func(i, score int) (int32, int32) {
		x := graphX + int32(float32(r.graphWidth)*float32(i)/float32(maxScores))
		y := graphY + graphHeight - int32(float32(graphHeight)*float32(max(score, 0))/float32(maxScore))
		return x, y
	}
	for j := 1; j < len(games); j++ {
		x1, y1 := point(j-1, games[j-1].Score)
		x2, y2 := point(j, games[j].Score)
		rl.DrawLine(x1, y1, x2, y2, bodyColor)
	}

	avg := s.Stats().AverageScore()
	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(max(avg, 0))/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, superFoodColor)
	}
}
