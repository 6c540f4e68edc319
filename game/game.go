package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-heuristic/game/entity"
	"snake-heuristic/game/manager"
	"snake-heuristic/game/types"
)

// CueSink receives fire-and-forget audio cues. Implementations must not block
// and must swallow their own playback failures.
type CueSink interface {
	PlayEat()
	PlayGameOver()
}

type nopCues struct{}

func (nopCues) PlayEat()      {}
func (nopCues) PlayGameOver() {}

// Outcome describes what a single Advance did.
type Outcome struct {
	Head       types.Position  // cell the head moved to (or tried to)
	Hit        types.CellState // classification of Head before the move
	ScoreDelta int
	GameOver   bool
}

// Game is one snake session: board, body, pending turns, score. It is not
// safe for concurrent use; a single driving loop owns it.
type Game struct {
	id   string
	seed uint64
	rng  *rand.Rand

	state      *manager.StateManager
	collisions *manager.CollisionManager
	food       *manager.FoodManager
	obstacles  *manager.ObstacleManager

	dir      types.Direction
	pending  entity.DirectionQueue
	score    int
	ticks    int
	gameOver bool
	cause    types.CellState
	soundsOn bool
	cues     CueSink
}

// NewGame builds a board, lays a three-segment snake heading right in the
// middle row at columns 1..3 and places the first food. cues may be nil.
func NewGame(cfg Config, cues CueSink) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cues == nil {
		cues = nopCues{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	state := manager.NewStateManager(types.Grid{Rows: cfg.Rows, Columns: cfg.Columns})
	g := &Game{
		id:         uuid.New().String(),
		seed:       seed,
		rng:        rng,
		state:      state,
		collisions: manager.NewCollisionManager(state),
		food:       manager.NewFoodManager(state, rng),
		obstacles:  manager.NewObstacleManager(state, rng),
		dir:        types.Right,
		soundsOn:   cfg.SoundsOn,
		cues:       cues,
	}

	g.addSnake()
	g.food.GenerateFood()

	return g, nil
}

func (g *Game) addSnake() {
	row := g.state.Grid().Rows / 2
	body := make([]types.Position, 0, types.InitialLength)
	for c := 1; c <= types.InitialLength; c++ {
		body = append(body, types.Position{Row: row, Column: c})
	}
	g.state.SpawnSnake(body...)
}

func (g *Game) ID() string { return g.id }
func (g *Game) Seed() uint64 { return g.seed }
func (g *Game) Rows() int { return g.state.Grid().Rows }
func (g *Game) Columns() int { return g.state.Grid().Columns }
func (g *Game) Grid() types.Grid { return g.state.Grid() }
func (g *Game) Score() int { return g.score }
func (g *Game) GameOver() bool { return g.gameOver }
func (g *Game) Direction() types.Direction { return g.dir }
func (g *Game) Ticks() int { return g.ticks }
func (g *Game) SoundsEnabled() bool { return g.soundsOn }

// DeathCause returns the cell state that ended the game, or Empty while
// playing.
func (g *Game) DeathCause() types.CellState {
	return g.cause
}

// Cell returns the classification stored for pos, Outside when off the board.
func (g *Game) Cell(pos types.Position) types.CellState {
	return g.state.Cell(pos)
}

func (g *Game) Head() types.Position {
	return g.state.Snake().GetHead()
}

func (g *Game) Tail() types.Position {
	return g.state.Snake().GetTail()
}

// Body returns the snake positions ordered head to tail.
func (g *Game) Body() []types.Position {
	return g.state.Snake().HeadFirst()
}

func (g *Game) Length() int {
	return g.state.Snake().Len()
}

// FoodPosition returns the current food cell, if any.
func (g *Game) FoodPosition() (types.Position, bool) {
	pos, _, ok := g.state.FoodPosition()
	return pos, ok
}

func (g *Game) ObstacleCount() int {
	return g.state.Count(types.Obstacle)
}

func (g *Game) GrowthCredit() int {
	return g.state.Snake().GrowthCredit()
}

func (g *Game) PendingDirections() int {
	return g.pending.Len()
}

func (g *Game) SetSoundsEnabled(on bool) {
	g.soundsOn = on
}

// RequestDirectionChange queues dir for a later tick. At most two turns are
// buffered, and a turn equal or opposite to the last queued (or current)
// direction is dropped.
func (g *Game) RequestDirectionChange(dir types.Direction) bool {
	return g.pending.Offer(dir, g.dir)
}

// PeekCollision classifies what the head would hit at pos: Outside off the
// board, Empty for a tail that vacates this tick, otherwise the stored state.
func (g *Game) PeekCollision(pos types.Position) types.CellState {
	return g.collisions.Peek(pos)
}

// Advance runs one tick. Once the game is over it does nothing.
func (g *Game) Advance() Outcome {
	if g.gameOver {
		return Outcome{Hit: g.cause, GameOver: true}
	}
	g.ticks++

	if dir, ok := g.pending.Pop(); ok {
		g.dir = dir
	}

	newHead := g.Head().Translate(g.dir)
	hit := g.collisions.Peek(newHead)
	out := Outcome{Head: newHead, Hit: hit}

	if hit.IsFatal() || (hit == types.AntiFood && g.score == types.FatalAntiFoodScore) {
		g.die(hit)
		out.GameOver = true
		return out
	}

	snake := g.state.Snake()
	switch hit {
	case types.Empty:
		if !snake.ConsumeGrowth() {
			g.state.PopTail()
		}
		g.state.PushHead(newHead)
		return out

	case types.Food:
		g.state.PushHead(newHead)
		out.ScoreDelta = 1

	case types.SuperFood:
		// one segment now, one owed as growth credit
		g.state.PushHead(newHead)
		snake.Grow(1)
		out.ScoreDelta = 2

	case types.AntiFood:
		for range 2 {
			if _, ok := g.state.PopTail(); !ok {
				break
			}
		}
		g.state.PushHead(newHead)
		out.ScoreDelta = -1
	}

	g.score += out.ScoreDelta
	if g.soundsOn {
		g.cues.PlayEat()
	}
	g.food.GenerateFood()
	g.obstacles.Rebalance(g.score)

	return out
}

func (g *Game) die(cause types.CellState) {
	g.gameOver = true
	g.cause = cause
	if g.soundsOn {
		g.cues.PlayGameOver()
	}
}
