/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/pkg/profile"

	"github.com/frankkopp/aggqueens/internal/aggregate"
	"github.com/frankkopp/aggqueens/internal/assert"
	"github.com/frankkopp/aggqueens/internal/board"
	"github.com/frankkopp/aggqueens/internal/config"
	"github.com/frankkopp/aggqueens/internal/logging"
	"github.com/frankkopp/aggqueens/internal/render"
	"github.com/frankkopp/aggqueens/internal/solve"
	"github.com/frankkopp/aggqueens/internal/worker"
)

// minStackSize is the idiomatic analogue of spec.md §5's "stack size
// for the host thread must be expanded >= 64 MiB": Go grows goroutine
// stacks dynamically, so this raises the ceiling rather than
// pre-allocating.
const minStackSize = 64 << 20

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("aggqueens", flag.ContinueOnError)
	configFile := fs.String("config", "./config.toml", "path to configuration settings file")
	logLvl := fs.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	workers := fs.Int("workers", 4, "number of worker ranks P, 1<=P<=64")
	profileFlag := fs.Bool("profile", false, "enable CPU profiling for the duration of the search")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	positional := fs.Args()
	if len(positional) != 4 {
		fmt.Fprintln(os.Stderr, "usage: aggqueens [flags] N k l w")
		return 1
	}

	n, k, l, w, err := parseArgs(positional)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	debug.SetMaxStack(minStackSize)

	config.ConfFile = *configFile
	config.Setup()
	level := config.Settings.Log.Level
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "loglvl" {
			level = *logLvl
		}
	})
	logging.SetLevel(level)
	log := logging.GetLog("main")

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	wrap := w != 0
	printBoards := l != 0

	ranks := *workers
	if ranks < 1 {
		ranks = 1
	}
	if ranks > config.Settings.Solver.MaxRanks {
		ranks = config.Settings.Solver.MaxRanks
	}

	frontier := solve.Frontier(n, wrap)
	log.Infof("frontier size %d across %d ranks (N=%d k=%d wrap=%v)", len(frontier), ranks, n, k, wrap)

	group := worker.NewGroup(ranks)
	results := group.Run(context.Background(), func(rank int) aggregate.RankResult {
		mine := solve.Partition(frontier, rank, group.P)
		e := solve.NewEngine(board.NewBoard(n, wrap), k, mine, config.Settings.Solver.SolutionCapacity)
		e.Run()
		sols := e.Solutions()
		log.Debugf("rank %d: %d solutions at max %d", rank, sols.Len(), sols.MaxQueens)
		return aggregate.RankResult{Rank: rank, MaxQueens: sols.MaxQueens, Solutions: sols.Boards}
	})

	globalMax, solutions := aggregate.Aggregator{}.Combine(results)

	printer := render.NewPrinter()
	render.Summary(os.Stdout, printer, len(solutions), globalMax)
	if printBoards {
		for i := range solutions {
			fmt.Fprint(os.Stdout, render.Board(&solutions[i]))
		}
	}

	return 0
}

// parseArgs validates the four positional arguments per spec.md §6: N
// must be at least 2 (the original diagnostic text was simply wrong
// about its own threshold, see SPEC_FULL.md's Open Question notes), k
// must be non-negative, l and w are interpreted as booleans (zero vs
// non-zero).
func parseArgs(positional []string) (n, k, l, w int, err error) {
	vals := make([]int, 4)
	for i, s := range positional {
		v, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, 0, 0, 0, fmt.Errorf("argument %d (%q) is not an integer", i+1, s)
		}
		vals[i] = v
	}
	n, k, l, w = vals[0], vals[1], vals[2], vals[3]
	if n < 2 {
		return 0, 0, 0, 0, fmt.Errorf("N must be at least 2, got %d", n)
	}
	if k < 0 {
		return 0, 0, 0, 0, fmt.Errorf("k must be non-negative, got %d", k)
	}
	assert.Assert(n*n > 0, "board capacity overflow for N=%d", n)
	return n, k, l, w, nil
}
