// Package solve implements the per-rank depth-first search engine, the
// static work partitioner, and the bounded solution accumulator of
// spec.md §3/§4.3-§4.5.
//
// Grounded on spec.md §4.3-§4.4 and original_source/src/findAQ.c's
// prepareTaskStack/main-loop shape; the Engine's field layout follows
// frankkopp-FrankyGo/internal/search/search.go's convention of bundling
// mutable search state and a named logger into one struct.
package solve

import "github.com/frankkopp/aggqueens/internal/board"

// Frontier enumerates the initial moves of an AQ instance in row-major
// order. For a non-wrap board it exploits diagonal symmetry and
// enumerates only the upper-left triangle {(i,j): 0<=i<N, 0<=j<N-i}; a
// wrap-around board has no such automorphism (spec.md §3/§9) so the
// full N×N grid is enumerated instead.
func Frontier(n int, wrap bool) []board.Move {
	var moves []board.Move
	for i := 0; i < n; i++ {
		limit := n
		if !wrap {
			limit = n - i
		}
		for j := 0; j < limit; j++ {
			moves = append(moves, board.Move{Row: i, Col: j, Depth: 1, Applied: false})
		}
	}
	return moves
}

// Partition assigns frontier element i to rank i%ranks and returns only
// this rank's share, in the frontier's original order (spec.md §4.3).
// Round-robin-by-index spreads both high-degree central starts and
// low-degree corner starts evenly across ranks, a better static
// load-balancer than a contiguous split.
func Partition(frontier []board.Move, rank, ranks int) []board.Move {
	if ranks < 1 {
		ranks = 1
	}
	var mine []board.Move
	for i, m := range frontier {
		if i%ranks == rank {
			mine = append(mine, m)
		}
	}
	return mine
}

// minFrontierCapacity mirrors original_source/src/stack.h's AQ_STACK_SIZE
// (2048), the flat capacity the reference implementation gives every
// stack, including the frontier one, for boards up to 40x40.
const minFrontierCapacity = 2048

// FrontierCapacity sizes the per-rank frontier MoveStack. Unlike the
// applied stack, whose occupancy is pinned to the current depth (at most
// size*size, spec.md §8's `applied_stack.count() == depth` invariant),
// the frontier accumulates every unexpanded sibling across all live
// levels at once: its high-water mark scales with the branching factor
// at each ancestor, not with depth, so it can exceed size*size by a wide
// margin on weakly-pruned instances. The 64x multiplier gives that
// headroom while the flat floor keeps small boards at least as safe as
// the original's single fixed buffer.
func FrontierCapacity(size int) int {
	c := 64 * size * size
	if c < minFrontierCapacity {
		return minFrontierCapacity
	}
	return c
}
