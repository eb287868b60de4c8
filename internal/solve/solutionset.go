package solve

import (
	"github.com/frankkopp/aggqueens/internal/assert"
	"github.com/frankkopp/aggqueens/internal/board"
)

// SolutionSet is a bounded, de-duplicated accumulator of Boards that all
// share the same population count (MaxQueens), per spec.md §3/§4.5.
// Capacity is a hard limit; exceeding it is a fatal condition (spec.md
// §7) rather than a silently dropped solution, since it documents an
// under-sized constant, not ordinary program behaviour.
type SolutionSet struct {
	Boards    []board.Board
	MaxQueens int
	capacity  int
}

// NewSolutionSet creates an empty set bounded by capacity.
func NewSolutionSet(capacity int) SolutionSet {
	return SolutionSet{capacity: capacity}
}

// Reset discards all prior entries and seeds the set with a single
// board at a new, strictly higher MaxQueens (spec.md §4.4 step 4).
func (s *SolutionSet) Reset(b board.Board, maxQueens int) {
	s.Boards = s.Boards[:0]
	s.Boards = append(s.Boards, b)
	s.MaxQueens = maxQueens
}

// Add appends b if no stored board already equals it (spec.md §4.4 step
// 4's "else" branch). Callers must only call Add when b.CountOccupied()
// == s.MaxQueens; Reset is used to raise MaxQueens instead.
func (s *SolutionSet) Add(b board.Board) {
	for i := range s.Boards {
		if s.Boards[i].Equals(&b) {
			return
		}
	}
	if len(s.Boards) >= s.capacity {
		assert.Fatal("solution set overflow: capacity %d exceeded", s.capacity)
		return
	}
	s.Boards = append(s.Boards, b)
}

// Len returns the number of stored solutions.
func (s *SolutionSet) Len() int {
	return len(s.Boards)
}
