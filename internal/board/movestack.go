package board

import (
	"fmt"
	"strings"

	"github.com/frankkopp/aggqueens/internal/assert"
)

// MoveStack is a bounded, slice-backed LIFO of Moves. Capacity is fixed
// at construction time (spec.md §4.2: "bounded in-place buffer ... avoids
// heap allocation [and] preserves cache locality"; derived from N here
// rather than the original's compile-time 2048, per spec.md §9).
//
// Overflow and underflow are fatal (spec.md §7), not a recoverable
// condition signalled by a sentinel return value. The applied stack
// never overflows in a correct search, since DFS depth is bounded by
// N² <= its capacity; the frontier stack is sized separately (see
// solve.FrontierCapacity) because its occupancy is not bounded by depth.
type MoveStack struct {
	data []Move
	top  int // index of the top element; -1 when empty
}

// NewMoveStack allocates a MoveStack with the given capacity.
func NewMoveStack(capacity int) MoveStack {
	if capacity < 1 {
		capacity = 1
	}
	return MoveStack{data: make([]Move, capacity), top: -1}
}

// Push adds m to the top of the stack. Fatal if the stack is full.
func (s *MoveStack) Push(m Move) {
	if s.top+1 == len(s.data) {
		assert.Fatal("move stack overflow: capacity %d exceeded\n%s", len(s.data), s.Dump())
		return
	}
	s.top++
	s.data[s.top] = m
}

// Pop removes and returns the top of the stack. Fatal if empty.
func (s *MoveStack) Pop() Move {
	if s.top < 0 {
		assert.Fatal("move stack underflow: pop on empty stack")
		return Move{}
	}
	m := s.data[s.top]
	s.top--
	return m
}

// Peek returns a copy of the top element without removing it. Fatal if
// empty.
func (s *MoveStack) Peek() Move {
	if s.top < 0 {
		assert.Fatal("move stack underflow: peek on empty stack")
		return Move{}
	}
	return s.data[s.top]
}

// PeekRef returns a pointer to the top element without removing it, or
// nil if the stack is empty. Used where the caller needs to mutate the
// top element in place (e.g. marking it applied) without a pop/push
// round trip.
func (s *MoveStack) PeekRef() *Move {
	if s.top < 0 {
		return nil
	}
	return &s.data[s.top]
}

// Clear discards all entries.
func (s *MoveStack) Clear() {
	s.top = -1
}

// Empty reports whether the stack holds no entries.
func (s *MoveStack) Empty() bool {
	return s.top < 0
}

// Count returns the number of entries currently on the stack.
func (s *MoveStack) Count() int {
	return s.top + 1
}

// Dump renders the stack's contents for fatal-error diagnostics, the Go
// analogue of original_source/src/stack.h's stack_dump.
func (s *MoveStack) Dump() string {
	var b strings.Builder
	for i := 0; i <= s.top; i++ {
		m := s.data[i]
		fmt.Fprintf(&b, "  [%d] row=%d col=%d depth=%d applied=%v\n", i, m.Row, m.Col, m.Depth, m.Applied)
	}
	return b.String()
}
