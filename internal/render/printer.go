// Package render formats search results for stdout: the two-line
// summary and, when requested, per-solution board diagrams.
//
// Grounded on frankkopp-FrankyGo/internal/types/bitboard.go's
// StringBoard (strings.Builder over a fixed grid, one rune per cell)
// generalized from a fixed 8x8 board to AQ's N×N size, and on
// golang.org/x/text/message for locale-aware integer formatting of the
// summary counts, a library already present in the teacher's go.mod.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/aggqueens/internal/board"
)

// Summary writes spec.md §6's two summary lines to w.
func Summary(w io.Writer, p *message.Printer, solutionCount, maxQueens int) {
	p.Fprintf(w, "Number of solutions: %d\n", solutionCount)
	p.Fprintf(w, "Maximum number of queens: %d\n", maxQueens)
}

// NewPrinter returns an english-locale message printer. The printer
// groups digits, so a summary count of 1000 or more is printed with
// comma thousands separators.
func NewPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// Board renders one solution as spec.md §6 describes: a numbered
// column header, a dash divider, then one row per board row prefixed
// with its own index, `x` for occupied cells and `o` for empty ones.
// Column width is sized to the widest row/column index so headers and
// row prefixes line up for any N.
func Board(b *board.Board) string {
	n := b.Size
	width := len(strconv.Itoa(n - 1))
	if width < 1 {
		width = 1
	}
	cell := width
	if cell < 1 {
		cell = 1
	}

	var out strings.Builder

	out.WriteString(strings.Repeat(" ", width+2))
	for c := 0; c < n; c++ {
		fmt.Fprintf(&out, " %*d", cell, c)
	}
	out.WriteByte('\n')

	out.WriteString(strings.Repeat("-", width+2+n*(cell+1)))
	out.WriteByte('\n')

	for r := 0; r < n; r++ {
		fmt.Fprintf(&out, "%*d |", width, r)
		for c := 0; c < n; c++ {
			mark := "o"
			if b.IsOccupied(r, c) {
				mark = "x"
			}
			fmt.Fprintf(&out, " %*s", cell, mark)
		}
		out.WriteByte('\n')
	}

	return out.String()
}
