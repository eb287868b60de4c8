package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupySetUnsetIsIdentity(t *testing.T) {
	b := NewBoard(5, false)
	before := b.Clone()
	b.SetOccupied(2, 3)
	b.SetUnoccupied(2, 3)
	assert.True(t, b.Equals(&before))
}

func TestMoveApplyUndoIsIdentity(t *testing.T) {
	b := NewBoard(5, false)
	before := b.Clone()
	m := Move{Row: 1, Col: 1}
	m.Apply(&b, 1)
	assert.True(t, m.Applied)
	m.Undo(&b)
	assert.False(t, m.Applied)
	assert.True(t, b.Equals(&before))
}

func TestIsOccupied(t *testing.T) {
	b := NewBoard(4, false)
	assert.False(t, b.IsOccupied(0, 0))
	b.SetOccupied(0, 0)
	assert.True(t, b.IsOccupied(0, 0))
	assert.False(t, b.IsOccupied(0, 1))
}

func TestCountOccupied(t *testing.T) {
	b := NewBoard(6, false)
	assert.Equal(t, 0, b.CountOccupied())
	b.SetOccupied(0, 0)
	b.SetOccupied(3, 3)
	b.SetOccupied(5, 5)
	assert.Equal(t, 3, b.CountOccupied())
}

func TestEqualsReflexiveSymmetricTransitive(t *testing.T) {
	a := NewBoard(4, false)
	a.SetOccupied(1, 1)
	b := a.Clone()
	c := a.Clone()
	assert.True(t, a.Equals(&a))
	assert.True(t, a.Equals(&b))
	assert.True(t, b.Equals(&a))
	assert.True(t, b.Equals(&c))
	assert.True(t, a.Equals(&c))
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := NewBoard(4, false)
	b := a.Clone()
	b.SetOccupied(0, 0)
	assert.False(t, a.IsOccupied(0, 0))
	assert.True(t, b.IsOccupied(0, 0))
}

func TestCellCountAttacksOccupiedIsMinusOne(t *testing.T) {
	b := NewBoard(4, false)
	b.SetOccupied(0, 0)
	assert.Equal(t, -1, b.CellCountAttacks(0, 0))
}

func TestCellCountAttacksPlainRaysStopAtEdge(t *testing.T) {
	b := NewBoard(4, false)
	// Single queen at (0,0) attacks along its row, column and one
	// diagonal from every other cell that sees it directly.
	b.SetOccupied(0, 0)
	assert.Equal(t, 1, b.CellCountAttacks(0, 3)) // same row
	assert.Equal(t, 1, b.CellCountAttacks(3, 0)) // same column
	assert.Equal(t, 1, b.CellCountAttacks(3, 3)) // same diagonal
	assert.Equal(t, 0, b.CellCountAttacks(3, 1)) // unrelated cell
}

func TestCellCountAttacksBlockedByIntervening(t *testing.T) {
	b := NewBoard(5, false)
	b.SetOccupied(0, 0)
	b.SetOccupied(0, 2)
	// (0,4) sees (0,2) first on the row ray; (0,0) is blocked.
	assert.Equal(t, 1, b.CellCountAttacks(0, 4))
}

func TestCellCountAttacksWrapDedupesSameAttacker(t *testing.T) {
	b := NewBoard(5, true)
	b.SetOccupied(0, 2)
	// Exactly one other queen on row 0: both the leftward and the
	// rightward wrap sweep find it, but it must count once.
	assert.Equal(t, 1, b.CellCountAttacks(0, 4))
}

func TestCellCountAttacksWrapCountsTwoDistinctOnSameRing(t *testing.T) {
	b := NewBoard(6, true)
	b.SetOccupied(0, 1)
	b.SetOccupied(0, 4)
	// From (0,3): nearest queen going +col direction (wrapping) is
	// (0,4); nearest going -col direction is (0,1). Two distinct
	// attackers on the same row ring.
	assert.Equal(t, 2, b.CellCountAttacks(0, 3))
}

func TestMaxAttacksSingleQueenIsZero(t *testing.T) {
	b := NewBoard(4, false)
	b.SetOccupied(1, 1)
	assert.Equal(t, 0, b.MaxAttacks())
}

func TestAllHasSameAttacksSingletonTrue(t *testing.T) {
	b := NewBoard(4, false)
	b.SetOccupied(1, 1)
	assert.True(t, b.AllHasSameAttacks())
}

func TestSimulateMaxAttacksDoesNotMutateOriginal(t *testing.T) {
	b := NewBoard(4, false)
	b.SetOccupied(0, 0)
	before := b.Clone()
	_ = b.SimulateMaxAttacks(3, 3)
	assert.True(t, b.Equals(&before))
}

func TestIsAttackableMatchesLineCoverage(t *testing.T) {
	b := NewBoard(5, false)
	b.SetOccupied(2, 2)
	assert.True(t, b.IsAttackable(2, 4))  // same row
	assert.True(t, b.IsAttackable(0, 2))  // same column
	assert.True(t, b.IsAttackable(0, 0))  // same diagonal
	assert.False(t, b.IsAttackable(0, 1)) // unrelated cell
}

func TestNonWrapReflectionSymmetry(t *testing.T) {
	// cell_count_attacks is symmetric under reflection (r,c) <-> (N-1-r,N-1-c)
	// once the same reflection is applied to occupancy (spec.md §8).
	n := 5
	b := NewBoard(n, false)
	b.SetOccupied(0, 1)
	b.SetOccupied(3, 2)

	r := NewBoard(n, false)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if b.IsOccupied(i, j) {
				r.SetOccupied(n-1-i, n-1-j)
			}
		}
	}

	assert.Equal(t, b.CellCountAttacks(4, 4), r.CellCountAttacks(0, 0))
}
