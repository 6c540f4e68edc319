package ai

import (
	"snake-heuristic/game/types"
)

// search runs a breadth-first search from start to end over the board and
// returns the shortest path, start and end included, or nil when end cannot
// be reached.
//
// body is the snake ordered head to tail. The obstacle set is not fixed: when
// expanding a cell reached by a path of length L, the snake is assumed to have
// followed that path, so the obstacles are the path cells plus the first
// len(body)-L segments of body. Trailing segments vacate as the path deepens.
func search(grid types.Grid, start, end types.Position, body []types.Position) []types.Position {
	order := indexOf(body)
	paths := map[types.Position][]types.Position{start: {start}}
	queue := []types.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		path := paths[current]

		if current == end {
			return path
		}

		remaining := len(body) - len(path)
		for _, next := range adjacencies(grid, current) {
			if _, seen := paths[next]; seen {
				continue
			}
			if blocked(next, path, order, remaining) {
				continue
			}
			extended := make([]types.Position, len(path)+1)
			copy(extended, path)
			extended[len(path)] = next
			paths[next] = extended
			queue = append(queue, next)
		}
	}

	return nil
}

// blocked reports whether pos is in the shifted obstacle set: on the path
// itself, or within the first remaining segments of the body.
func blocked(pos types.Position, path []types.Position, order map[types.Position]int, remaining int) bool {
	if i, ok := order[pos]; ok && i < remaining {
		return true
	}
	for _, p := range path {
		if p == pos {
			return true
		}
	}
	return false
}

// shift returns the body after the snake has followed path from its head:
// the path becomes the front of the body (last path cell first) and the same
// number of segments drop off the tail. With collect set the snake keeps one
// extra segment, as it does after eating.
func shift(body, path []types.Position, collect bool) []types.Position {
	n := len(body)
	if collect {
		n++
	}
	out := make([]types.Position, 0, n)
	for i := len(path) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, path[i])
	}
	for _, p := range body {
		if len(out) == n {
			break
		}
		out = append(out, p)
	}
	return out
}

// adjacencies returns the in-bounds orthogonal neighbours of a, in the order
// left, down, right, up.
func adjacencies(grid types.Grid, a types.Position) []types.Position {
	candidates := [4]types.Position{
		{Row: a.Row, Column: a.Column - 1},
		{Row: a.Row + 1, Column: a.Column},
		{Row: a.Row, Column: a.Column + 1},
		{Row: a.Row - 1, Column: a.Column},
	}
	out := make([]types.Position, 0, 4)
	for _, p := range candidates {
		if grid.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

func indexOf(body []types.Position) map[types.Position]int {
	order := make(map[types.Position]int, len(body))
	for i, p := range body {
		if _, ok := order[p]; !ok {
			order[p] = i
		}
	}
	return order
}

func contains(list []types.Position, pos types.Position) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}
