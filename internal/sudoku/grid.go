package sudoku

import (
	"fmt"
	"log/slog"
	"strings"
)

var Log *slog.Logger = slog.Default()

const (
	// Size is the board edge length.
	Size = 9
	// CellCount is the total number of cells.
	CellCount = Size * Size
	// MinGivens is the smallest clue count any proper puzzle can have.
	MinGivens = 17
)

// Grid is a 9x9 board; 0 marks an empty cell, 1-9 are placed digits.
// It is a value type, so plain assignment copies it.
type Grid [Size][Size]uint8

// boxOf maps a cell to its 3x3 box index, 0-8 row-major.
func boxOf(r, c int) int {
	return r/3*3 + c/3
}

// Givens counts non-zero cells.
func (g *Grid) Givens() (n int) {
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return
}

// RowGivens counts non-zero cells in row r.
func (g *Grid) RowGivens(r int) (n int) {
	for c := range Size {
		if g[r][c] != 0 {
			n++
		}
	}
	return
}

// ColGivens counts non-zero cells in column c.
func (g *Grid) ColGivens(c int) (n int) {
	for r := range Size {
		if g[r][c] != 0 {
			n++
		}
	}
	return
}

// firstEmpty returns the lowest row-major empty cell.
func (g *Grid) firstEmpty() (int, int, bool) {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Consistent reports whether no row, column or box contains a duplicate
// digit. Empty cells are ignored, so a partial grid can be consistent.
func (g *Grid) Consistent() bool {
	var rows, cols, boxes [Size]uint16
	for r := range Size {
		for c := range Size {
			d := g[r][c]
			if d == 0 {
				continue
			}
			bit := uint16(1) << (d - 1)
			b := boxOf(r, c)
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[b]&bit != 0 {
				return false
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	return true
}

// Complete reports whether the grid is fully filled and consistent, i.e.
// every row, column and box holds each of 1-9 exactly once.
func (g *Grid) Complete() bool {
	return g.Givens() == CellCount && g.Consistent()
}

// Line renders the grid as 81 characters, '.' for empty cells.
func (g *Grid) Line() string {
	var b strings.Builder
	b.Grow(CellCount)
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
	}
	return b.String()
}

func (g *Grid) String() string {
	var b strings.Builder
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads a grid from an 81-character line; '0' and '.' both mean
// an empty cell.
func ParseGrid(line string) (*Grid, error) {
	if len(line) != CellCount {
		return nil, fmt.Errorf("grid line must be %d characters, got %d", CellCount, len(line))
	}
	var g Grid
	for i := range CellCount {
		switch ch := line[i]; {
		case ch == '.' || ch == '0':
			// empty
		case '1' <= ch && ch <= '9':
			g[i/Size][i%Size] = ch - '0'
		default:
			return nil, fmt.Errorf("invalid grid character %q at index %d", ch, i)
		}
	}
	return &g, nil
}
