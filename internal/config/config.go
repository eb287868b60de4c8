//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or set by command
// line options. Precedence is cmd line > config file > default.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/aggqueens/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Solver solverConfiguration
	Log    logConfiguration
}

// solverConfiguration holds the tunable capacities of the search engine.
// Defaults mirror spec.md's minimums (S_max >= 4096, ranks in [1,64]).
type solverConfiguration struct {
	// SolutionCapacity bounds the per-rank SolutionSet (spec.md §3, S_max).
	SolutionCapacity int
	// MaxRanks bounds the worker goroutine count (spec.md §6, P in [1,64]).
	MaxRanks int
}

// logConfiguration holds logging settings.
type logConfiguration struct {
	// Level is one of critical|error|warning|notice|info|debug.
	Level string
}

func init() {
	Settings.Solver.SolutionCapacity = 4096
	Settings.Solver.MaxRanks = 64
	Settings.Log.Level = "info"
}

// Setup reads the configuration file (if present) and applies defaults
// for anything it doesn't set. Safe to call more than once; only the
// first call has an effect.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	initialized = true
}

// String prints out the current configuration settings and values using
// reflection, the same diagnostic dump the teacher's config.conf.String
// produces for its own Search/Eval sections.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Solver Config:\n")
	v := reflect.ValueOf(&c.Solver).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-20s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	b.WriteString("\nLog Config:\n")
	v = reflect.ValueOf(&c.Log).Elem()
	t = v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		b.WriteString(fmt.Sprintf("%-2d: %-20s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
	}
	return b.String()
}
