package sudoku

import (
	"math/bits"
	"time"
)

// attemptCeiling caps the complexity measurement so a pathological puzzle
// costs bounded time; anything that reaches the cap is simply "tier 5".
const attemptCeiling = 1_000_000

// Candidate digit lookup for a mask with exactly one bit set.
func soleDigit(mask uint16) uint8 {
	return uint8(bits.TrailingZeros16(mask)) + 1
}

// SolveLogically resolves the grid using only naked singles (a cell with
// exactly one candidate) and hidden singles (a digit with exactly one legal
// cell in some row, column or box). It returns the furthest grid reached
// and whether that grid is fully solved, i.e. whether the puzzle yields to
// pure deduction with no guessing.
//
// Each full pass places at least one digit or stops, so 81 iterations is a
// safe upper bound.
func SolveLogically(g *Grid) (*Grid, bool) {
	work := *g
	t := newTracker(&work)

	for range CellCount {
		placed := false

		// naked singles
		for r := range Size {
			for c := range Size {
				if work[r][c] != 0 {
					continue
				}
				cand := t.candidates(r, c)
				if bits.OnesCount16(cand) == 1 {
					d := soleDigit(cand)
					work[r][c] = d
					t.place(r, c, d)
					placed = true
				}
			}
		}

		// hidden singles, one unit kind at a time
		for d := uint8(1); d <= Size; d++ {
			bit := uint16(1) << (d - 1)
			for u := range Size {
				// row u
				if t.rows[u]&bit == 0 {
					if c, n := onlyColumnFor(&work, t, u, d); n == 1 {
						work[u][c] = d
						t.place(u, c, d)
						placed = true
					}
				}
				// column u
				if t.cols[u]&bit == 0 {
					if r, n := onlyRowFor(&work, t, u, d); n == 1 {
						work[r][u] = d
						t.place(r, u, d)
						placed = true
					}
				}
				// box u
				if t.boxes[u]&bit == 0 {
					if r, c, n := onlyBoxCellFor(&work, t, u, d); n == 1 {
						work[r][c] = d
						t.place(r, c, d)
						placed = true
					}
				}
			}
		}

		if !placed {
			break
		}
	}

	return &work, work.Givens() == CellCount
}

func onlyColumnFor(g *Grid, t *tracker, r int, d uint8) (col, n int) {
	for c := range Size {
		if g[r][c] == 0 && t.canPlace(r, c, d) {
			col = c
			n++
			if n > 1 {
				return
			}
		}
	}
	return
}

func onlyRowFor(g *Grid, t *tracker, c int, d uint8) (row, n int) {
	for r := range Size {
		if g[r][c] == 0 && t.canPlace(r, c, d) {
			row = r
			n++
			if n > 1 {
				return
			}
		}
	}
	return
}

func onlyBoxCellFor(g *Grid, t *tracker, box int, d uint8) (row, col, n int) {
	r0, c0 := box/3*3, box%3*3
	for dr := range 3 {
		for dc := range 3 {
			r, c := r0+dr, c0+dc
			if g[r][c] == 0 && t.canPlace(r, c, d) {
				row, col = r, c
				n++
				if n > 1 {
					return
				}
			}
		}
	}
	return
}

// MeasureComplexity counts candidate-placement attempts a backtracking
// solve needs over the grid, capped at attemptCeiling. The count is a proxy
// for how hard the puzzle is to search, independent of its clue count.
func MeasureComplexity(g *Grid) int {
	if !g.Consistent() {
		return 0
	}
	work := *g
	s := newSearch(&work, nil, time.Time{})
	s.ceiling = attemptCeiling
	s.fill()
	return s.attempts
}

// ComplexityTier maps an attempt count onto the 1-5 difficulty scale.
func ComplexityTier(attempts int) int {
	switch {
	case attempts < 100:
		return 1
	case attempts < 1_000:
		return 2
	case attempts < 10_000:
		return 3
	case attempts < 100_000:
		return 4
	default:
		return 5
	}
}
