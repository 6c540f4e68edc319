package manager

import (
	"snake-heuristic/game/entity"
	"snake-heuristic/game/types"
)

// StateManager owns the board. The snake body is the canonical state and the
// cell grid is a cache of it: every change to either goes through PushHead,
// PopTail or Place, which update both in the same call.
type StateManager struct {
	grid  types.Grid
	cells [][]types.CellState
	snake *entity.Snake
}

func NewStateManager(grid types.Grid) *StateManager {
	cells := make([][]types.CellState, grid.Rows)
	for r := range cells {
		cells[r] = make([]types.CellState, grid.Columns)
	}
	return &StateManager{
		grid:  grid,
		cells: cells,
		snake: entity.NewSnake(),
	}
}

func (sm *StateManager) Grid() types.Grid {
	return sm.grid
}

func (sm *StateManager) Snake() *entity.Snake {
	return sm.snake
}

// Cell returns the stored state of pos, or Outside when pos is off the board.
func (sm *StateManager) Cell(pos types.Position) types.CellState {
	if !sm.grid.Contains(pos) {
		return types.Outside
	}
	return sm.cells[pos.Row][pos.Column]
}

// SpawnSnake lays a snake on the board, tail first.
func (sm *StateManager) SpawnSnake(tailToHead ...types.Position) {
	for _, p := range tailToHead {
		sm.PushHead(p)
	}
}

// PushHead adds a new head segment and marks its cell. Whatever the cell held
// before (food, normally) is overwritten.
func (sm *StateManager) PushHead(pos types.Position) {
	sm.snake.Move(pos)
	sm.cells[pos.Row][pos.Column] = types.SnakeBody
}

// PopTail removes the tail segment and vacates its cell.
func (sm *StateManager) PopTail() (types.Position, bool) {
	tail, ok := sm.snake.RemoveTail()
	if !ok {
		return tail, false
	}
	sm.cells[tail.Row][tail.Column] = types.Empty
	return tail, true
}

// Place writes a non-snake state into a cell. Snake cells are only changed via
// PushHead/PopTail, so Place refuses to write SnakeBody or to overwrite a
// snake segment.
func (sm *StateManager) Place(pos types.Position, state types.CellState) bool {
	if !sm.grid.Contains(pos) || state == types.SnakeBody || state == types.Outside {
		return false
	}
	if sm.cells[pos.Row][pos.Column] == types.SnakeBody {
		return false
	}
	sm.cells[pos.Row][pos.Column] = state
	return true
}

// Positions lists every cell holding state, scanning row by row.
func (sm *StateManager) Positions(state types.CellState) []types.Position {
	var out []types.Position
	for r := 0; r < sm.grid.Rows; r++ {
		for c := 0; c < sm.grid.Columns; c++ {
			if sm.cells[r][c] == state {
				out = append(out, types.Position{Row: r, Column: c})
			}
		}
	}
	return out
}

// Count returns how many cells hold state.
func (sm *StateManager) Count(state types.CellState) int {
	n := 0
	for r := range sm.cells {
		for _, c := range sm.cells[r] {
			if c == state {
				n++
			}
		}
	}
	return n
}

// FoodPosition returns the first food cell of any variant.
func (sm *StateManager) FoodPosition() (types.Position, types.CellState, bool) {
	for r := 0; r < sm.grid.Rows; r++ {
		for c := 0; c < sm.grid.Columns; c++ {
			if s := sm.cells[r][c]; s.IsFood() {
				return types.Position{Row: r, Column: c}, s, true
			}
		}
	}
	return types.Position{}, types.Empty, false
}
