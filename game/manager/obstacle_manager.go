package manager

import (
	"snake-heuristic/game/types"
)

type ObstacleManager struct {
	state *StateManager
	rng   Rand
}

func NewObstacleManager(state *StateManager, rng Rand) *ObstacleManager {
	return &ObstacleManager{
		state: state,
		rng:   rng,
	}
}

// TargetCount is the number of obstacles a score calls for: one per
// types.ScorePerObstacle points, never negative.
func TargetCount(score int) int {
	return max(0, score/types.ScorePerObstacle)
}

// Rebalance adds or removes random obstacles until the board holds
// TargetCount(score) of them. New obstacles only go on empty cells; if the
// board runs out of empty cells it stops short of the target.
func (om *ObstacleManager) Rebalance(score int) (added, removed int) {
	target := TargetCount(score)
	empty := om.state.Positions(types.Empty)
	obstacles := om.state.Positions(types.Obstacle)

	for len(obstacles) < target && len(empty) > 0 {
		i := om.rng.Intn(len(empty))
		pos := empty[i]
		om.state.Place(pos, types.Obstacle)
		empty = removeAt(empty, i)
		obstacles = append(obstacles, pos)
		added++
	}

	for len(obstacles) > target {
		i := om.rng.Intn(len(obstacles))
		pos := obstacles[i]
		om.state.Place(pos, types.Empty)
		obstacles = removeAt(obstacles, i)
		empty = append(empty, pos)
		removed++
	}

	return added, removed
}

// removeAt swaps the last element into i and truncates
func removeAt(list []types.Position, i int) []types.Position {
	list[i] = list[len(list)-1]
	return list[:len(list)-1]
}
