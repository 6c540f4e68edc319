package entity

import (
	"snake-heuristic/game/types"
)

// DirectionQueue buffers at most types.MaxPendingTurns direction changes
// between ticks.
type DirectionQueue struct {
	items [types.MaxPendingTurns]types.Direction
	n     int
}

// Len returns the number of queued directions.
func (q *DirectionQueue) Len() int {
	return q.n
}

// Last returns the most recently queued direction, or current if the queue is
// empty.
func (q *DirectionQueue) Last(current types.Direction) types.Direction {
	if q.n == 0 {
		return current
	}
	return q.items[q.n-1]
}

// CanAccept reports whether dir would be queued: there must be room, and dir
// must be neither the last queued (or current) direction nor its opposite.
func (q *DirectionQueue) CanAccept(dir, current types.Direction) bool {
	if q.n == len(q.items) {
		return false
	}
	last := q.Last(current)
	return dir != last && dir != last.Opposite()
}

// Offer queues dir if CanAccept allows it and reports whether it did.
func (q *DirectionQueue) Offer(dir, current types.Direction) bool {
	if !q.CanAccept(dir, current) {
		return false
	}
	q.items[q.n] = dir
	q.n++
	return true
}

// Pop removes and returns the oldest queued direction.
func (q *DirectionQueue) Pop() (types.Direction, bool) {
	if q.n == 0 {
		return 0, false
	}
	dir := q.items[0]
	copy(q.items[:], q.items[1:q.n])
	q.n--
	return dir, true
}
