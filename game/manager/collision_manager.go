package manager

import (
	"snake-heuristic/game/types"
)

type CollisionManager struct {
	state *StateManager
}

func NewCollisionManager(state *StateManager) *CollisionManager {
	return &CollisionManager{
		state: state,
	}
}

// Peek classifies what a head moving onto pos would hit, without mutating
// anything.
func (cm *CollisionManager) Peek(pos types.Position) types.CellState {
	if cm.isWallCollision(pos) {
		return types.Outside
	}

	if cm.isVacatingTail(pos) {
		return types.Empty
	}

	return cm.state.Cell(pos)
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Position) bool {
	return !cm.state.Grid().Contains(pos)
}

// isVacatingTail reports whether pos is the tail cell and the tail will leave
// it on the coming tick. With growth credit pending the tail stays put.
func (cm *CollisionManager) isVacatingTail(pos types.Position) bool {
	snake := cm.state.Snake()
	if snake.Len() == 0 || snake.GrowthCredit() > 0 {
		return false
	}
	return pos == snake.GetTail()
}
