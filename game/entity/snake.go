package entity

import (
	"snake-heuristic/game/types"
)

// Snake holds the ordered body. Body is stored tail-first: Body[0] is the tail
// and Body[len(Body)-1] is the head, so moving appends and trimming reslices.
type Snake struct {
	Body   []types.Position
	growth int // pending segments owed from food, paid by skipping tail removal
}

// NewSnake builds a snake from tail to head.
func NewSnake(tailToHead ...types.Position) *Snake {
	body := make([]types.Position, len(tailToHead))
	copy(body, tailToHead)
	return &Snake{Body: body}
}

// Move appends a new head segment.
func (s *Snake) Move(newHead types.Position) {
	s.Body = append(s.Body, newHead)
}

// RemoveTail drops the tail segment and returns it. ok is false when the body
// is already empty.
func (s *Snake) RemoveTail() (types.Position, bool) {
	if len(s.Body) == 0 {
		return types.Position{}, false
	}
	tail := s.Body[0]
	s.Body = s.Body[1:]
	return tail, true
}

func (s *Snake) GetHead() types.Position {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Position {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether pos is occupied by any segment.
func (s *Snake) Contains(pos types.Position) bool {
	for _, p := range s.Body {
		if p == pos {
			return true
		}
	}
	return false
}

// HeadFirst returns a copy of the body ordered head to tail.
func (s *Snake) HeadFirst() []types.Position {
	out := make([]types.Position, len(s.Body))
	for i, p := range s.Body {
		out[len(s.Body)-1-i] = p
	}
	return out
}

// Grow adds n segments of growth credit.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.growth += n
	}
}

// GrowthCredit returns the number of tail removals still to be skipped.
func (s *Snake) GrowthCredit() int {
	return s.growth
}

// ConsumeGrowth spends one unit of growth credit. It returns false when no
// credit is pending, in which case the caller removes the tail as usual.
func (s *Snake) ConsumeGrowth() bool {
	if s.growth == 0 {
		return false
	}
	s.growth--
	return true
}
