package types

// Grid represents the board dimensions
type Grid struct {
	Rows    int
	Columns int
}

// Contains reports whether pos lies inside the board.
func (g Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows && pos.Column >= 0 && pos.Column < g.Columns
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Rows * g.Columns
}

// Position is a board cell addressed by row and column.
type Position struct {
	Row    int
	Column int
}

// Translate returns the neighbouring position one cell away in dir.
func (p Position) Translate(dir Direction) Position {
	switch dir {
	case Up:
		return Position{Row: p.Row - 1, Column: p.Column}
	case Down:
		return Position{Row: p.Row + 1, Column: p.Column}
	case Left:
		return Position{Row: p.Row, Column: p.Column - 1}
	case Right:
		return Position{Row: p.Row, Column: p.Column + 1}
	default:
		return p
	}
}

// IsAdjacent reports whether q is one of the four orthogonal neighbours of p.
func (p Position) IsAdjacent(q Position) bool {
	dr := abs(p.Row - q.Row)
	dc := abs(p.Column - q.Column)
	return dr+dc == 1
}

// Direction is one of the four cardinal directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in enumeration order. The solver breaks
// cost ties with this order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Rotation returns the clockwise rotation in degrees of a head sprite facing d,
// with Up as 0.
func (d Direction) Rotation() int {
	switch d {
	case Down:
		return 180
	case Left:
		return 270
	case Right:
		return 90
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// CellState classifies a board cell
type CellState int

const (
	Empty CellState = iota
	SnakeBody
	Food
	SuperFood
	AntiFood
	Obstacle
	// Outside is returned by boundary checks and never stored in the grid.
	Outside
)

// IsFood reports whether c is one of the three food variants.
func (c CellState) IsFood() bool {
	return c == Food || c == SuperFood || c == AntiFood
}

// IsFatal reports whether moving the head onto a cell of this state ends the game
// regardless of score.
func (c CellState) IsFatal() bool {
	return c == Outside || c == SnakeBody || c == Obstacle
}

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case SnakeBody:
		return "snake"
	case Food:
		return "food"
	case SuperFood:
		return "superfood"
	case AntiFood:
		return "antifood"
	case Obstacle:
		return "obstacle"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// Game constants
const (
	InitialLength      = 3    // Segments of a freshly spawned snake
	MaxPendingTurns    = 2    // Depth of the direction-change queue
	ScorePerObstacle   = 4    // One obstacle per this many points
	SuperFoodThreshold = 0.25 // Variant roll below this spawns SuperFood
	AntiFoodThreshold  = 0.50 // Variant roll below this (and above SuperFood) spawns AntiFood
	FatalAntiFoodScore = -2   // Eating AntiFood at this score ends the game
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
