/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging sets up the module-wide op/go-logging backend used by
// the solver and the command-line entry point. All diagnostics go to
// stderr, never stdout, since stdout is reserved for the result summary
// (spec.md §6).
package logging

import (
	"os"
	"sync"

	. "github.com/op/go-logging"
)

var (
	once  sync.Once
	level = INFO
)

// SetLevel overrides the backend level before the first call to GetLog.
// Calling it after logging has started has no effect, matching the
// teacher's "read once at startup" configuration style.
func SetLevel(name string) {
	if lvl, err := LogLevel(name); err == nil {
		level = lvl
	}
}

// GetLog returns a named logger backed by a single stderr formatter,
// initializing the shared backend on first use.
func GetLog(name string) *Logger {
	once.Do(func() {
		backend := NewLogBackend(os.Stderr, "", 0)
		format := MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		leveled := AddModuleLevel(NewBackendFormatter(backend, format))
		leveled.SetLevel(level, "")
		SetBackend(leveled)
	})
	return MustGetLogger(name)
}
