package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/aggqueens/internal/board"
)

func TestSummaryFormat(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, NewPrinter(), 3, 5)
	assert.Equal(t, "Number of solutions: 3\nMaximum number of queens: 5\n", buf.String())
}

func TestBoardMarksOccupiedCells(t *testing.T) {
	b := board.NewBoard(3, false)
	b.SetOccupied(0, 0)
	b.SetOccupied(1, 2)

	out := Board(&b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require := func(cond bool, msg string) {
		if !cond {
			t.Fatal(msg)
		}
	}
	require(len(lines) == 3+2, "expected header + divider + 3 rows")
	assert.Contains(t, lines[0], "0")
	assert.True(t, strings.HasPrefix(lines[1], "---") || strings.Contains(lines[1], "-"))
	assert.Contains(t, lines[2], "x")
	assert.Contains(t, lines[3], "x")
}

func TestBoardWidthScalesWithSize(t *testing.T) {
	b := board.NewBoard(12, true)
	out := Board(&b)
	assert.Contains(t, out, "11")
}
