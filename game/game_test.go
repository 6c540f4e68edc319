package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snake-heuristic/game/manager"
	"snake-heuristic/game/types"
)

// dumpBoard renders the grid top to bottom: H head, s body, F/S/A food
// variants, # obstacle.
func dumpBoard(g *Game) string {
	head := g.Head()
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			pos := types.Position{Row: r, Column: c}
			switch g.Cell(pos) {
			case types.SnakeBody:
				if pos == head {
					b.WriteByte('H')
				} else {
					b.WriteByte('s')
				}
			case types.Food:
				b.WriteByte('F')
			case types.SuperFood:
				b.WriteByte('S')
			case types.AntiFood:
				b.WriteByte('A')
			case types.Obstacle:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

type countingCues struct {
	eat, gameOver int
}

func (c *countingCues) PlayEat()      { c.eat++ }
func (c *countingCues) PlayGameOver() { c.gameOver++ }

func newTestGame(t *testing.T, rows, cols int) *Game {
	t.Helper()
	g, err := NewGame(Config{Rows: rows, Columns: cols, Seed: 42}, nil)
	require.NoError(t, err)
	return g
}

// clearFood empties every food cell on the board.
func clearFood(g *Game) {
	for {
		pos, _, ok := g.state.FoodPosition()
		if !ok {
			return
		}
		g.state.Place(pos, types.Empty)
	}
}

// putFood replaces the board's food with a single cell of the given variant.
func putFood(t *testing.T, g *Game, pos types.Position, variant types.CellState) {
	t.Helper()
	clearFood(g)
	require.True(t, g.state.Place(pos, variant), "cannot place %v at %+v", variant, pos)
}

// layoutSnake swaps the board for an empty one holding the given snake.
func layoutSnake(g *Game, dir types.Direction, tailToHead ...types.Position) {
	state := manager.NewStateManager(g.state.Grid())
	state.SpawnSnake(tailToHead...)
	g.state = state
	g.collisions = manager.NewCollisionManager(state)
	g.food = manager.NewFoodManager(state, g.rng)
	g.obstacles = manager.NewObstacleManager(state, g.rng)
	g.dir = dir
}

func pos(r, c int) types.Position {
	return types.Position{Row: r, Column: c}
}

func TestNewGame_InitialLayout(t *testing.T) {
	g := newTestGame(t, 20, 20)
	t.Logf("\n%s", dumpBoard(g))

	require.Equal(t, []types.Position{pos(10, 3), pos(10, 2), pos(10, 1)}, g.Body())
	require.Equal(t, pos(10, 3), g.Head())
	require.Equal(t, pos(10, 1), g.Tail())
	require.Equal(t, types.Right, g.Direction())
	require.Equal(t, 0, g.Score())
	require.False(t, g.GameOver())
	require.Equal(t, 0, g.ObstacleCount())
	require.NotEmpty(t, g.ID())

	food, ok := g.FoodPosition()
	require.True(t, ok)
	require.True(t, g.Cell(food).IsFood())
}

func TestNewGame_RejectsBadDimensions(t *testing.T) {
	_, err := NewGame(Config{Rows: 0, Columns: 10}, nil)
	require.True(t, errors.Is(err, ErrInvalidDimensions))

	_, err = NewGame(Config{Rows: 10, Columns: -1}, nil)
	require.True(t, errors.Is(err, ErrInvalidDimensions))

	_, err = NewGame(Config{Rows: 1, Columns: 3}, nil)
	require.True(t, errors.Is(err, ErrBoardTooSmall))

	_, err = NewGame(Config{Rows: 1, Columns: 4}, nil)
	require.NoError(t, err)
}

func TestAdvance_EatsFoodAfterTwoTicks(t *testing.T) {
	g := newTestGame(t, 20, 20)
	putFood(t, g, pos(10, 5), types.Food)

	out := g.Advance()
	require.Equal(t, types.Empty, out.Hit)
	require.Equal(t, pos(10, 4), g.Head())
	require.Equal(t, 3, g.Length())

	out = g.Advance()
	t.Logf("\n%s", dumpBoard(g))
	require.Equal(t, types.Food, out.Hit)
	require.Equal(t, 1, out.ScoreDelta)
	require.Equal(t, pos(10, 5), g.Head())
	require.Equal(t, 1, g.Score())
	require.Equal(t, 4, g.Length())

	food, ok := g.FoodPosition()
	require.True(t, ok)
	require.NotEqual(t, pos(10, 5), food)
}

func TestRequestDirectionChange_RejectsReversal(t *testing.T) {
	g := newTestGame(t, 20, 20)
	clearFood(g)

	require.False(t, g.RequestDirectionChange(types.Left))
	require.False(t, g.RequestDirectionChange(types.Left))
	require.Equal(t, 0, g.PendingDirections())

	g.Advance()
	require.Equal(t, types.Right, g.Direction())
	require.Equal(t, pos(10, 4), g.Head())
}

func TestRequestDirectionChange_SameOrOppositeIsIdempotent(t *testing.T) {
	g := newTestGame(t, 20, 20)

	require.False(t, g.RequestDirectionChange(types.Right))
	require.True(t, g.RequestDirectionChange(types.Up))
	require.Equal(t, 1, g.PendingDirections())

	// compared against the last queued direction, not the current one
	require.False(t, g.RequestDirectionChange(types.Up))
	require.False(t, g.RequestDirectionChange(types.Down))
	require.Equal(t, 1, g.PendingDirections())
}

func TestRequestDirectionChange_QueueHoldsTwo(t *testing.T) {
	g := newTestGame(t, 20, 20)
	clearFood(g)

	require.True(t, g.RequestDirectionChange(types.Up))
	require.True(t, g.RequestDirectionChange(types.Left))
	require.False(t, g.RequestDirectionChange(types.Down))
	require.Equal(t, 2, g.PendingDirections())

	g.Advance()
	require.Equal(t, types.Up, g.Direction())
	require.Equal(t, pos(9, 3), g.Head())

	g.Advance()
	require.Equal(t, types.Left, g.Direction())
	require.Equal(t, pos(9, 2), g.Head())
	require.Equal(t, 0, g.PendingDirections())
}

func TestAdvance_AntiFoodAtMinusTwoIsFatal(t *testing.T) {
	cues := &countingCues{}
	g, err := NewGame(Config{Rows: 20, Columns: 20, Seed: 7, SoundsOn: true}, cues)
	require.NoError(t, err)
	g.score = -2
	putFood(t, g, pos(10, 4), types.AntiFood)

	out := g.Advance()
	require.True(t, out.GameOver)
	require.True(t, g.GameOver())
	require.Equal(t, -2, g.Score())
	require.Equal(t, types.AntiFood, g.DeathCause())
	require.Equal(t, 3, g.Length())
	require.Equal(t, 1, cues.gameOver)
	require.Equal(t, 0, cues.eat)
}

func TestAdvance_AntiFoodShrinks(t *testing.T) {
	g := newTestGame(t, 20, 20)
	putFood(t, g, pos(10, 4), types.AntiFood)

	out := g.Advance()
	t.Logf("\n%s", dumpBoard(g))
	require.Equal(t, types.AntiFood, out.Hit)
	require.Equal(t, -1, g.Score())
	require.Equal(t, []types.Position{pos(10, 4), pos(10, 3)}, g.Body())
	require.NotEqual(t, types.SnakeBody, g.Cell(pos(10, 1)))
	require.NotEqual(t, types.SnakeBody, g.Cell(pos(10, 2)))
}

func TestAdvance_AntiFoodOnShortSnakeKeepsHead(t *testing.T) {
	g := newTestGame(t, 10, 10)
	layoutSnake(g, types.Right, pos(5, 5))
	require.True(t, g.state.Place(pos(5, 6), types.AntiFood))

	g.Advance()
	require.False(t, g.GameOver())
	require.Equal(t, []types.Position{pos(5, 6)}, g.Body())
	require.NotEqual(t, types.SnakeBody, g.Cell(pos(5, 5)))
	require.Equal(t, -1, g.Score())
}

func TestAdvance_SuperFoodGrowsByTwoOverTwoTicks(t *testing.T) {
	g := newTestGame(t, 20, 20)
	putFood(t, g, pos(10, 4), types.SuperFood)

	out := g.Advance()
	require.Equal(t, types.SuperFood, out.Hit)
	require.Equal(t, 2, g.Score())
	require.Equal(t, 4, g.Length())
	require.Equal(t, 1, g.GrowthCredit())

	// the next food must not sit in front of the head for this check
	clearFood(g)
	g.Advance()
	require.Equal(t, 5, g.Length())
	require.Equal(t, 0, g.GrowthCredit())
	require.Equal(t, pos(10, 1), g.Tail())

	g.Advance()
	require.Equal(t, 5, g.Length())
	require.Equal(t, pos(10, 2), g.Tail())
}

func TestPeekCollision(t *testing.T) {
	g := newTestGame(t, 20, 20)
	clearFood(g)

	require.Equal(t, types.Outside, g.PeekCollision(pos(-1, 0)))
	require.Equal(t, types.Outside, g.PeekCollision(pos(0, 20)))
	require.Equal(t, types.Empty, g.PeekCollision(g.Tail()))
	require.Equal(t, types.SnakeBody, g.PeekCollision(pos(10, 2)))
	require.Equal(t, types.Empty, g.PeekCollision(pos(0, 0)))

	g.state.Snake().Grow(1)
	require.Equal(t, types.SnakeBody, g.PeekCollision(g.Tail()))
}

func TestAdvance_MoveIntoOwnTail(t *testing.T) {
	g := newTestGame(t, 10, 10)
	// a 2x2 loop: tail (5,5) sits right above the head (6,5)
	layoutSnake(g, types.Left, pos(5, 5), pos(5, 6), pos(6, 6), pos(6, 5))
	require.True(t, g.RequestDirectionChange(types.Up))

	out := g.Advance()
	t.Logf("\n%s", dumpBoard(g))
	require.False(t, out.GameOver)
	require.Equal(t, types.Empty, out.Hit)
	require.Equal(t, []types.Position{pos(5, 5), pos(6, 5), pos(6, 6), pos(5, 6)}, g.Body())
}

func TestAdvance_FatalCollisions(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		g := newTestGame(t, 10, 10)
		layoutSnake(g, types.Up, pos(1, 0), pos(0, 0))
		out := g.Advance()
		require.True(t, out.GameOver)
		require.Equal(t, types.Outside, g.DeathCause())
	})

	t.Run("body", func(t *testing.T) {
		g := newTestGame(t, 10, 10)
		// head (6,5) turning up into (5,5), which is not the tail
		layoutSnake(g, types.Left, pos(4, 5), pos(5, 5), pos(5, 6), pos(6, 6), pos(6, 5))
		g.RequestDirectionChange(types.Up)
		out := g.Advance()
		require.True(t, out.GameOver)
		require.Equal(t, types.SnakeBody, g.DeathCause())
	})

	t.Run("obstacle", func(t *testing.T) {
		g := newTestGame(t, 10, 10)
		layoutSnake(g, types.Right, pos(5, 3), pos(5, 4))
		require.True(t, g.state.Place(pos(5, 5), types.Obstacle))
		out := g.Advance()
		require.True(t, out.GameOver)
		require.Equal(t, types.Obstacle, g.DeathCause())
	})
}

func TestAdvance_NoOpAfterGameOver(t *testing.T) {
	g := newTestGame(t, 10, 10)
	layoutSnake(g, types.Up, pos(1, 0), pos(0, 0))
	g.Advance()
	require.True(t, g.GameOver())

	body := g.Body()
	ticks := g.Ticks()
	out := g.Advance()
	require.True(t, out.GameOver)
	require.Equal(t, body, g.Body())
	require.Equal(t, ticks, g.Ticks())
}

func TestAdvance_ObstaclesFollowScore(t *testing.T) {
	g := newTestGame(t, 20, 20)
	g.score = 7
	putFood(t, g, pos(10, 4), types.Food)

	g.Advance()
	require.Equal(t, 8, g.Score())
	require.Equal(t, 2, g.ObstacleCount())

	head := g.Head()
	next := head.Translate(types.Right)
	// an obstacle may have landed in front of the head; steer around it
	if g.Cell(next) == types.Obstacle {
		g.RequestDirectionChange(types.Up)
		next = head.Translate(types.Up)
	}
	if g.Cell(next) == types.Obstacle {
		t.Skip("seeded obstacles box the head in")
	}
	putFood(t, g, next, types.AntiFood)
	g.Advance()
	t.Logf("\n%s", dumpBoard(g))
	require.Equal(t, 7, g.Score())
	require.Equal(t, 1, g.ObstacleCount())
}

func TestAdvance_CuesFollowSoundFlag(t *testing.T) {
	cues := &countingCues{}
	g, err := NewGame(Config{Rows: 20, Columns: 20, Seed: 3, SoundsOn: true}, cues)
	require.NoError(t, err)

	putFood(t, g, pos(10, 4), types.Food)
	g.Advance()
	require.Equal(t, 1, cues.eat)

	g.SetSoundsEnabled(false)
	putFood(t, g, pos(10, 5), types.Food)
	g.Advance()
	require.Equal(t, 1, cues.eat)
	require.False(t, g.SoundsEnabled())
}

func TestSameSeedSameSession(t *testing.T) {
	play := func() *Game {
		g, err := NewGame(Config{Rows: 12, Columns: 12, Seed: 99}, nil)
		require.NoError(t, err)
		turns := []types.Direction{types.Up, types.Left, types.Down, types.Right}
		for i := 0; i < 200 && !g.GameOver(); i++ {
			if i%3 == 0 {
				g.RequestDirectionChange(turns[(i/3)%len(turns)])
			}
			g.Advance()
		}
		return g
	}

	a, b := play(), play()
	require.Equal(t, a.Body(), b.Body())
	require.Equal(t, a.Score(), b.Score())
	require.Equal(t, a.Ticks(), b.Ticks())
	fa, _ := a.FoodPosition()
	fb, _ := b.FoodPosition()
	require.Equal(t, fa, fb)
}

// checkInvariants verifies the board/body lockstep and food/obstacle rules.
func checkInvariants(t *testing.T, g *Game, ate bool) {
	t.Helper()

	body := g.Body()
	require.NotEmpty(t, body)
	seen := make(map[types.Position]bool, len(body))
	for _, p := range body {
		require.True(t, g.Grid().Contains(p), "segment %+v off board", p)
		require.False(t, seen[p], "duplicate segment %+v\n%s", p, dumpBoard(g))
		seen[p] = true
	}

	snakeCells := g.state.Positions(types.SnakeBody)
	require.Len(t, snakeCells, len(body), "\n%s", dumpBoard(g))
	for _, p := range snakeCells {
		require.True(t, seen[p], "stray snake cell %+v", p)
	}

	foods := 0
	for _, v := range []types.CellState{types.Food, types.SuperFood, types.AntiFood} {
		foods += g.state.Count(v)
	}
	empty := g.state.Count(types.Empty)
	if empty > 0 || foods > 0 {
		require.Equal(t, 1, foods, "\n%s", dumpBoard(g))
	}

	if ate {
		target := manager.TargetCount(g.Score())
		if empty > 0 {
			require.Equal(t, target, g.ObstacleCount())
		} else {
			require.LessOrEqual(t, g.ObstacleCount(), target)
		}
	}
}

func TestAdvance_InvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for game := 0; game < 30; game++ {
		g, err := NewGame(Config{Rows: 8, Columns: 8, Seed: uint64(game + 1)}, nil)
		require.NoError(t, err)

		for tick := 0; tick < 500 && !g.GameOver(); tick++ {
			before := g.PendingDirections()
			dir := types.Directions[rng.Intn(4)]
			last := g.pending.Last(g.Direction())
			accepted := g.RequestDirectionChange(dir)
			if dir == last || dir == last.Opposite() {
				require.False(t, accepted)
				require.Equal(t, before, g.PendingDirections())
			}

			prevLen := g.Length()
			out := g.Advance()
			if out.GameOver {
				break
			}
			switch out.Hit {
			case types.Empty:
				require.Contains(t, []int{prevLen, prevLen + 1}, g.Length())
			case types.Food, types.SuperFood:
				require.Equal(t, prevLen+1, g.Length())
			case types.AntiFood:
				require.Equal(t, max(1, prevLen-1), g.Length())
			}
			checkInvariants(t, g, out.Hit.IsFood())
		}
	}
}
