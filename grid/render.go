package grid

import (
	"strconv"
	"strings"
)

// Symbol returns the display character of the cell at (x, y), or an empty
// string when the point is off the board.
func (g *Grid) Symbol(x, y int) string {
	if !g.InBounds(x, y) {
		return ""
	}
	return g.cells[g.index(x, y)].Symbol()
}

// Rows returns the board as one string of symbols per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			sb.WriteString(g.cells[g.index(x, y)].Symbol())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String draws the board with column numbers on top and row numbers on the
// left, one space between cells.
//
//	  0 1 2
//	0 X X X
//	1 X - X
//	2 X X X
func (g *Grid) String() string {
	colWidth := len(strconv.Itoa(g.width - 1))
	rowWidth := len(strconv.Itoa(g.height - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", rowWidth+1))
	for x := 0; x < g.width; x++ {
		if x > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(padLeft(strconv.Itoa(x), colWidth))
	}
	sb.WriteByte('\n')

	for y := 0; y < g.height; y++ {
		sb.WriteString(padLeft(strconv.Itoa(y), rowWidth))
		sb.WriteByte(' ')
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(padLeft(g.cells[g.index(x, y)].Symbol(), colWidth))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
