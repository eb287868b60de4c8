package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/aggqueens/internal/aggregate"
	aggBoard "github.com/frankkopp/aggqueens/internal/board"
	"github.com/frankkopp/aggqueens/internal/solve"
)

func solveRank(n, k int, wrap bool, ranks int, rank int) aggregate.RankResult {
	frontier := solve.Frontier(n, wrap)
	mine := solve.Partition(frontier, rank, ranks)
	e := solve.NewEngine(aggBoard.NewBoard(n, wrap), k, mine, 64)
	e.Run()
	sols := e.Solutions()
	return aggregate.RankResult{Rank: rank, MaxQueens: sols.MaxQueens, Solutions: sols.Boards}
}

func TestGroupRunGathersAllRanks(t *testing.T) {
	g := NewGroup(4)
	results := g.Run(context.Background(), func(rank int) aggregate.RankResult {
		return solveRank(5, 1, false, g.P, rank)
	})

	require.Len(t, results, 4)
	for rank, r := range results {
		assert.Equal(t, rank, r.Rank)
	}

	max, sols := aggregate.Aggregator{}.Combine(results)
	assert.Greater(t, max, 0)
	assert.NotEmpty(t, sols)
}

func TestNewGroupClampsWorkerCount(t *testing.T) {
	assert.Equal(t, 1, NewGroup(0).P)
	assert.Equal(t, 1, NewGroup(-5).P)
	assert.Equal(t, 64, NewGroup(1000).P)
	assert.Equal(t, 8, NewGroup(8).P)
}

func TestGroupRunSingleRankMatchesMultiRank(t *testing.T) {
	single := NewGroup(1).Run(context.Background(), func(rank int) aggregate.RankResult {
		return solveRank(5, 1, false, 1, rank)
	})
	multi := NewGroup(3).Run(context.Background(), func(rank int) aggregate.RankResult {
		return solveRank(5, 1, false, 3, rank)
	})

	singleMax, singleSols := aggregate.Aggregator{}.Combine(single)
	multiMax, multiSols := aggregate.Aggregator{}.Combine(multi)

	assert.Equal(t, singleMax, multiMax)
	assert.Equal(t, len(singleSols), len(multiSols))
}
