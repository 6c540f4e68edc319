package manager

import (
	"snake-heuristic/game/types"
)

// Rand is the subset of a seeded generator the managers draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type FoodManager struct {
	state *StateManager
	rng   Rand
}

func NewFoodManager(state *StateManager, rng Rand) *FoodManager {
	return &FoodManager{
		state: state,
		rng:   rng,
	}
}

// GenerateFood puts one food cell on a uniformly chosen empty cell and rolls
// its variant. It reports false when the board has no empty cell.
func (fm *FoodManager) GenerateFood() (types.Position, types.CellState, bool) {
	empty := fm.state.Positions(types.Empty)
	if len(empty) == 0 {
		return types.Position{}, types.Empty, false
	}

	pos := empty[fm.rng.Intn(len(empty))]
	variant := RollVariant(fm.rng.Float64())
	fm.state.Place(pos, variant)
	return pos, variant, true
}

// RollVariant maps a uniform [0,1) roll to a food variant.
func RollVariant(roll float64) types.CellState {
	switch {
	case roll < types.SuperFoodThreshold:
		return types.SuperFood
	case roll < types.AntiFoodThreshold:
		return types.AntiFood
	default:
		return types.Food
	}
}
