package game

import (
	"errors"
	"fmt"

	"snake-heuristic/game/types"
)

var (
	ErrInvalidDimensions = errors.New("rows and columns must be positive")
	ErrBoardTooSmall     = errors.New("board cannot hold the starting snake")
)

// Config describes one game session.
type Config struct {
	Rows     int
	Columns  int
	SoundsOn bool
	// Seed drives every random choice of the session. Zero picks a
	// time-derived seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Rows:     20,
		Columns:  20,
		SoundsOn: true,
	}
}

// Validate checks that the board exists and fits the starting snake, which
// occupies columns 1 through types.InitialLength.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Rows, c.Columns)
	}
	if c.Columns < types.InitialLength+1 {
		return fmt.Errorf("%w: need at least %d columns, got %d", ErrBoardTooSmall, types.InitialLength+1, c.Columns)
	}
	return nil
}
