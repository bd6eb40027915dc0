package entity

import (
	"iter"

	"snake-classic/game/types"
	"snake-classic/linkedlist"

	"github.com/kamstrup/intmap"
)

// Snake is a chain of cells stored head first in a linked list. It moves by
// pushing a new head at the front and popping the tail at the back, and
// grows by pushing copies of the tail at the back.
type Snake struct {
	Direction types.Direction

	heading  types.Direction // direction of the last move made
	body     *linkedlist.List[types.Point]
	occupied *intmap.Map[int64, int] // cell -> number of segments on it
}

// NewSnake lays out a snake of the given length with its head at the centre
// of the grid and the body trailing to the right. It starts heading left.
func NewSnake(grid types.Grid, length int) *Snake {
	s := &Snake{
		Direction: types.Left,
		heading:   types.Left,
		body:      linkedlist.New[types.Point](),
		occupied:  intmap.New[int64, int](length * 2),
	}
	head := grid.Center()
	for i := 0; i < length; i++ {
		s.pushBack(types.Point{X: head.X + i, Y: head.Y})
	}
	return s
}

func cellKey(p types.Point) int64 {
	return int64(p.X)<<32 | int64(uint32(p.Y))
}

func (s *Snake) mark(p types.Point) {
	n, _ := s.occupied.Get(cellKey(p))
	s.occupied.Put(cellKey(p), n+1)
}

func (s *Snake) unmark(p types.Point) {
	k := cellKey(p)
	n, ok := s.occupied.Get(k)
	if !ok {
		return
	}
	if n <= 1 {
		s.occupied.Del(k)
		return
	}
	s.occupied.Put(k, n-1)
}

func (s *Snake) pushBack(p types.Point) {
	s.body.PushBack(p)
	s.mark(p)
}

func (s *Snake) popBack() (types.Point, bool) {
	p, ok := s.body.PopBack()
	if ok {
		s.unmark(p)
	}
	return p, ok
}

func (s *Snake) Len() int {
	return s.body.Len()
}

func (s *Snake) Head() types.Point {
	return s.body.Front().Value
}

func (s *Snake) Tail() types.Point {
	return s.body.Back().Value
}

// Next is the cell the head would enter moving in the current direction.
func (s *Snake) Next() types.Point {
	return s.Head().Add(s.Direction.ToPoint())
}

// Contains reports whether any segment, head included, sits on p.
func (s *Snake) Contains(p types.Point) bool {
	_, ok := s.occupied.Get(cellKey(p))
	return ok
}

// BodyContains is Contains without the head.
func (s *Snake) BodyContains(p types.Point) bool {
	n, ok := s.occupied.Get(cellKey(p))
	if !ok {
		return false
	}
	if p == s.Head() {
		return n > 1
	}
	return true
}

// All iterates the segments head first.
func (s *Snake) All() iter.Seq[types.Point] {
	return s.body.All()
}

func (s *Snake) Segments() []types.Point {
	return s.body.Values()
}

// SetDirection turns the snake. Reversing straight into the neck is ignored;
// the check is against the last move made, so several turns queued between
// two moves cannot fold the head back either.
func (s *Snake) SetDirection(dir types.Direction) {
	if s.Len() > 1 && dir == s.heading.Opposite() {
		return
	}
	s.Direction = dir
}

// Step moves the head to next and drops the tail.
func (s *Snake) Step(next types.Point) {
	s.heading = s.Direction
	s.body.PushFront(next)
	s.mark(next)
	s.popBack()
}

// Grow appends n copies of the tail; they unfold as the snake moves on.
func (s *Snake) Grow(n int) {
	tail := s.Tail()
	for i := 0; i < n; i++ {
		s.pushBack(tail)
	}
}

// Reset points the snake left again without moving it.
func (s *Snake) Reset() {
	s.Direction = types.Left
	s.heading = types.Left
}

// Shrink pops the tail. It refuses once only the head is left.
func (s *Snake) Shrink() bool {
	if s.Len() <= 1 {
		return false
	}
	_, ok := s.popBack()
	return ok
}
