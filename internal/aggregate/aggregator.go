package aggregate

import "github.com/frankkopp/aggqueens/internal/board"

// Aggregator runs only on rank 0 at termination (spec.md §4.6).
type Aggregator struct{}

// Combine implements spec.md §4.6's algorithm exactly: compute the
// global maximum across all ranks, then walk ranks in increasing order
// appending each solution whose rank achieved that maximum, skipping
// any already present (by bitwise board equality). Ranks whose local
// maximum is strictly below the global one contribute nothing, since
// solutions are only retained at the maximum density.
func (Aggregator) Combine(results []RankResult) (globalMax int, solutions []board.Board) {
	for _, r := range results {
		if r.MaxQueens > globalMax {
			globalMax = r.MaxQueens
		}
	}
	for _, r := range results {
		if r.MaxQueens != globalMax {
			continue
		}
		for _, s := range r.Solutions {
			if !containsBoard(solutions, s) {
				solutions = append(solutions, s)
			}
		}
	}
	return globalMax, solutions
}

func containsBoard(boards []board.Board, b board.Board) bool {
	for i := range boards {
		if boards[i].Equals(&b) {
			return true
		}
	}
	return false
}
