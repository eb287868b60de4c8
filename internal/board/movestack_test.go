package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveStackPushPopOrder(t *testing.T) {
	s := NewMoveStack(4)
	assert.True(t, s.Empty())
	s.Push(Move{Row: 0, Col: 0})
	s.Push(Move{Row: 1, Col: 1})
	assert.Equal(t, 2, s.Count())
	top := s.Pop()
	assert.Equal(t, 1, top.Row)
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.Empty())
}

func TestMoveStackPeekDoesNotRemove(t *testing.T) {
	s := NewMoveStack(4)
	s.Push(Move{Row: 2, Col: 2})
	p := s.Peek()
	assert.Equal(t, 2, p.Row)
	assert.Equal(t, 1, s.Count())
}

func TestMoveStackPeekRefMutatesInPlace(t *testing.T) {
	s := NewMoveStack(4)
	s.Push(Move{Row: 0, Col: 0})
	ref := s.PeekRef()
	ref.Applied = true
	assert.True(t, s.Peek().Applied)
}

func TestMoveStackPeekRefNilWhenEmpty(t *testing.T) {
	s := NewMoveStack(4)
	assert.Nil(t, s.PeekRef())
}

func TestMoveStackClear(t *testing.T) {
	s := NewMoveStack(4)
	s.Push(Move{Row: 0, Col: 0})
	s.Push(Move{Row: 1, Col: 1})
	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Count())
}

func TestMoveStackCapacityMatchesBoardSquares(t *testing.T) {
	n := 8
	s := NewMoveStack(n * n)
	for i := 0; i < n*n; i++ {
		s.Push(Move{Row: i / n, Col: i % n})
	}
	assert.Equal(t, n*n, s.Count())
}
