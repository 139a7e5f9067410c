package sudoku

// tracker maintains one 9-bit mask per row, column and box; bit d-1 set
// means digit d is already placed in that unit. Placement legality is a
// three-mask OR away instead of a scan over 21 cells.
type tracker struct {
	rows  [Size]uint16
	cols  [Size]uint16
	boxes [Size]uint16
}

// newTracker builds masks from a grid snapshot in one O(81) pass. Caller
// guarantees the grid is consistent.
func newTracker(g *Grid) *tracker {
	t := &tracker{}
	for r := range Size {
		for c := range Size {
			if d := g[r][c]; d != 0 {
				t.place(r, c, d)
			}
		}
	}
	return t
}

func (t *tracker) canPlace(r, c int, d uint8) bool {
	bit := uint16(1) << (d - 1)
	return (t.rows[r]|t.cols[c]|t.boxes[boxOf(r, c)])&bit == 0
}

func (t *tracker) place(r, c int, d uint8) {
	bit := uint16(1) << (d - 1)
	t.rows[r] |= bit
	t.cols[c] |= bit
	t.boxes[boxOf(r, c)] |= bit
}

func (t *tracker) remove(r, c int, d uint8) {
	bit := uint16(1) << (d - 1)
	t.rows[r] &^= bit
	t.cols[c] &^= bit
	t.boxes[boxOf(r, c)] &^= bit
}

// candidates returns the set of digits legal at (r,c) as a 9-bit mask.
func (t *tracker) candidates(r, c int) uint16 {
	const all = 1<<Size - 1
	return all &^ (t.rows[r] | t.cols[c] | t.boxes[boxOf(r, c)])
}
