package solve

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/aggqueens/internal/board"
	myLogging "github.com/frankkopp/aggqueens/internal/logging"
)

// Engine is a single depth-first walk over one rank's share of the
// frontier, mutating one Board in place via an explicit applied/undo
// stack instead of language recursion (spec.md §4.4, §9's "recursion as
// explicit stacks" design note).
type Engine struct {
	log *logging.Logger

	Board    board.Board
	K        int
	frontier board.MoveStack
	applied  board.MoveStack
	sols     SolutionSet
}

// NewEngine builds an engine for one rank: b is an empty board of the
// target size/wrap mode, k is the required attack count, initial is this
// rank's partitioned frontier slice (spec.md §4.3), and solutionCapacity
// bounds the local SolutionSet (spec.md §4.5).
func NewEngine(b board.Board, k int, initial []board.Move, solutionCapacity int) *Engine {
	e := &Engine{
		log:      myLogging.GetLog("solve"),
		Board:    b,
		K:        k,
		frontier: board.NewMoveStack(FrontierCapacity(b.Size)),
		applied:  board.NewMoveStack(b.Size * b.Size),
		sols:     NewSolutionSet(solutionCapacity),
	}
	for _, m := range initial {
		e.frontier.Push(m)
	}
	return e
}

// Solutions returns the engine's local SolutionSet after Run completes.
func (e *Engine) Solutions() *SolutionSet {
	return &e.sols
}

// Run executes the search loop to completion: pop, rewind, apply, check,
// expand, backtrack — spec.md §4.4's six-step contract, repeated until
// the frontier is exhausted.
func (e *Engine) Run() {
	for !e.frontier.Empty() {
		m := e.frontier.Pop()

		// Rewind the board to the exact parent configuration of m: pop
		// and undo every applied move at or past m's depth.
		for e.applied.Count() > 0 && e.applied.Peek().Depth >= m.Depth {
			undo := e.applied.Pop()
			undo.Undo(&e.Board)
		}

		// Apply m. e.applied.Count() now equals m.Depth, the invariant
		// that lets this single shared board stand in for a recursion
		// stack (spec.md §8).
		m.Apply(&e.Board, m.Depth)
		e.applied.Push(m)

		e.checkSolution()

		generated := e.expand(m)
		if generated == 0 {
			undo := e.applied.Pop()
			undo.Undo(&e.Board)
		}
	}
}

// checkSolution implements spec.md §4.4 step 4: a new, strictly larger
// population resets the local SolutionSet; an equal population appends
// if the board isn't already present.
func (e *Engine) checkSolution() {
	q := e.Board.CountOccupied()
	if q < e.sols.MaxQueens {
		return
	}
	if e.Board.MaxAttacks() != e.K || !e.Board.AllHasSameAttacks() {
		return
	}
	if q > e.sols.MaxQueens {
		e.log.Debugf("new max queens %d (was %d)", q, e.sols.MaxQueens)
		e.sols.Reset(e.Board.Clone(), q)
		return
	}
	e.sols.Add(e.Board.Clone())
}

// expand pushes a child move for every cell not on m's row or column
// (spec.md §4.4's pruning pre-filter, kept for exact traversal fidelity
// even though the subsequent attack checks subsume it), not already
// occupied, whose attack count is within budget both now and after a
// one-ply look-ahead. It returns the number of children pushed.
func (e *Engine) expand(m board.Move) int {
	n := e.Board.Size
	depth := e.applied.Count() + 1
	generated := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == m.Row || j == m.Col {
				continue
			}
			if e.Board.IsOccupied(i, j) {
				continue
			}
			a := e.Board.CellCountAttacks(i, j)
			if a == -1 || a > e.K {
				continue
			}
			if e.Board.SimulateMaxAttacks(i, j) > e.K {
				continue
			}
			e.frontier.Push(board.Move{Row: i, Col: j, Depth: depth, Applied: false})
			generated++
		}
	}
	return generated
}
