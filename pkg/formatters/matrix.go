package formatters

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/cio/pkg/repr"
)

// Fallback texts for shapes the matrix formatters cannot draw.
const (
	EmptyMatrix          = "[Empty Matrix]"
	DeterminantInvalid   = "Determinant undefined (invalid matrix)"
	DeterminantNotSquare = "Determinant undefined (non-square or too small matrix)"
)

const (
	cellGap                 = "  "
	singleLeft, singleRight = "⦅", "⦆"
	firstLeft, firstRight   = "⎛", "⎞"
	lastLeft, lastRight     = "⎝", "⎠"
	bar                     = "│"
)

// Matrix draws a sequence of sequences with bracket glyphs that depend on
// the row position. Text that does not parse as a grid is returned as is.
func Matrix(text string) string {
	grid, ok := repr.Grid(text)
	if !ok {
		return text
	}
	if len(grid) == 0 {
		return EmptyMatrix
	}

	n := len(grid)
	return drawGrid(grid, func(i int) (string, string) {
		switch {
		case n == 1:
			return singleLeft, singleRight
		case i == 0:
			return firstLeft, firstRight
		case i == n-1:
			return lastLeft, lastRight
		default:
			return bar, bar
		}
	})
}

// Determinant draws a square grid of at least two rows between vertical
// bars, or returns one of the fixed fallback texts.
func Determinant(text string) string {
	grid, ok := repr.Grid(text)
	if !ok {
		return DeterminantInvalid
	}
	if len(grid) < 2 {
		return DeterminantNotSquare
	}
	for _, row := range grid {
		if len(row) != len(grid) {
			return DeterminantNotSquare
		}
	}
	return drawGrid(grid, func(int) (string, string) { return bar, bar })
}

// drawGrid pads every column to its widest cell and wraps each row in the
// glyphs returned by edges. Short rows are padded with blank cells.
func drawGrid(grid [][]string, edges func(row int) (string, string)) string {
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range grid {
		for j, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i, row := range grid {
		left, right := edges(i)
		b.WriteString(left)
		b.WriteString(cellGap)
		for j := 0; j < cols; j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(cell)))
			if j < cols-1 {
				b.WriteString(cellGap)
			}
		}
		b.WriteString(cellGap)
		b.WriteString(right)
		b.WriteByte('\n')
	}
	return b.String()
}
