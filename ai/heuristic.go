package ai

import (
	"snake-heuristic/game/types"
)

// View is the read-only slice of the engine the solver needs. *game.Game
// satisfies it.
type View interface {
	Grid() types.Grid
	Head() types.Position
	Tail() types.Position
	Body() []types.Position
	Direction() types.Direction
	PeekCollision(pos types.Position) types.CellState
	FoodPosition() (types.Position, bool)
}

// Strategy names the branch of the heuristic that produced a cost.
type Strategy int

const (
	StrategyNone  Strategy = iota // no safe move; current direction kept
	StrategyFood                  // safe path to food with an escape to the tail afterwards
	StrategyTail                  // chasing the tail
	StrategyStuck                 // safe for one step, nothing known beyond
)

func (s Strategy) String() string {
	switch s {
	case StrategyFood:
		return "food"
	case StrategyTail:
		return "tail"
	case StrategyStuck:
		return "stuck"
	default:
		return "none"
	}
}

// Decision is the solver's choice for the coming tick.
type Decision struct {
	Direction types.Direction
	Cost      int
	Strategy  Strategy
	Path      []types.Position // planned route from the first step, if any
}

// HeuristicSolver picks moves that reach food only when the snake can still
// reach its own tail afterwards, falling back to chasing the tail.
type HeuristicSolver struct {
	view    View
	running bool
}

func NewHeuristicSolver(view View) *HeuristicSolver {
	return &HeuristicSolver{view: view}
}

func (h *HeuristicSolver) ToggleRunning() {
	h.running = !h.running
}

func (h *HeuristicSolver) IsRunning() bool {
	return h.running
}

// GetNextMove returns the direction to request for the next tick.
func (h *HeuristicSolver) GetNextMove() types.Direction {
	return h.Decide().Direction
}

// Decide scores every safe direction and returns the cheapest. Ties go to the
// earlier direction in types.Directions. With no safe direction the current
// one is returned unchanged.
func (h *HeuristicSolver) Decide() Decision {
	head := h.view.Head()
	best := Decision{Direction: h.view.Direction(), Strategy: StrategyNone}
	found := false

	for _, dir := range types.Directions {
		if !h.isSafeDirection(head, dir) {
			continue
		}
		cost, strategy, path := h.heuristic(head.Translate(dir))
		if !found || cost < best.Cost {
			best = Decision{Direction: dir, Cost: cost, Strategy: strategy, Path: path}
			found = true
		}
	}

	return best
}

func (h *HeuristicSolver) isSafeDirection(head types.Position, dir types.Direction) bool {
	return !h.view.PeekCollision(head.Translate(dir)).IsFatal()
}

// heuristic scores a candidate cell; lower is better.
func (h *HeuristicSolver) heuristic(cell types.Position) (int, Strategy, []types.Position) {
	grid := h.view.Grid()
	size := grid.Cells() * 2
	head := h.view.Head()
	tail := h.view.Tail()

	if !head.IsAdjacent(cell) {
		return 0, StrategyStuck, nil
	}

	body := h.view.Body()

	if food, ok := h.view.FoodPosition(); ok {
		if toFood := search(grid, cell, food, body); toFood != nil {
			afterMeal := shift(body, toFood, true)
			for _, next := range adjacencies(grid, food) {
				if contains(afterMeal, next) {
					continue
				}
				if search(grid, next, tail, afterMeal) != nil {
					return len(toFood), StrategyFood, toFood
				}
			}
		}
	}

	if toTail := search(grid, cell, tail, body); toTail != nil {
		return size - len(toTail), StrategyTail, toTail
	}

	return size * 2, StrategyStuck, nil
}
