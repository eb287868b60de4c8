// Package worker re-expresses spec.md §5's SPMD process group the
// idiomatic Go way: a rank is a goroutine, not an OS process. No Go
// library in the retrieved corpus binds MPI (see SPEC_FULL.md §3), so
// the "P independent single-threaded worker processes" requirement is
// translated to P goroutines coordinated with golang.org/x/sync, the
// same module frankkopp-FrankyGo/internal/search/search.go already
// depends on for its own concurrency bounding (a weighted semaphore
// guarding the running search).
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/aggqueens/internal/aggregate"
	"github.com/frankkopp/aggqueens/internal/assert"
)

// Group runs P logical ranks, concurrency-bounded to the host's CPU
// count so that a large -workers value doesn't oversubscribe the
// machine: the rank count (spec.md §6, P in [1,64]) and the actual
// number of goroutines runnable at once are independent concerns.
type Group struct {
	P int
}

// NewGroup clamps p to spec.md §6's [1,64] range.
func NewGroup(p int) Group {
	if p < 1 {
		p = 1
	}
	if p > 64 {
		p = 64
	}
	return Group{P: p}
}

// Run spawns one goroutine per rank via errgroup, bounds concurrently
// running ranks with a weighted semaphore, blocks exactly once at
// errgroup.Wait() (spec.md §5's "aggregation barrier after local search
// completes"), and returns results gathered in rank order. Each rank's
// result is round-tripped through the wire codec (internal/aggregate)
// so the message-passing boundary is real rather than a bare struct
// handoff. A transport failure on any rank is fatal (spec.md §7): there
// is no retry.
func (g Group) Run(ctx context.Context, solve func(rank int) aggregate.RankResult) []aggregate.RankResult {
	results := make([]aggregate.RankResult, g.P)
	concurrency := runtime.NumCPU()
	if concurrency < 1 {
		concurrency = 1
	}
	sem := semaphore.NewWeighted(int64(concurrency))
	eg, gctx := errgroup.WithContext(ctx)

	for rank := 0; rank < g.P; rank++ {
		rank := rank
		eg.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			local := solve(rank)
			wire, err := aggregate.Encode(local)
			if err != nil {
				return err
			}
			decoded, err := aggregate.Decode(wire)
			if err != nil {
				return err
			}
			results[rank] = decoded
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		assert.Fatal("worker group: aggregation transport failed: %v", err)
	}
	return results
}
