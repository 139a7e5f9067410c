package sudoku

import "math/rand/v2"

// Equivalent propagation: solution-preserving symmetries applied to the
// accepted puzzle and its solution together. They add visual variety
// without touching difficulty or uniqueness: relabeling digits, swapping
// rows/columns inside one band/stack, swapping whole bands/stacks, and
// quarter rotations are all Latin-square automorphisms of the board.

func relabelDigits(grids []*Grid, rnd *rand.Rand) {
	var perm [Size + 1]uint8
	for d := uint8(1); d <= Size; d++ {
		perm[d] = d
	}
	rnd.Shuffle(Size, func(i, j int) {
		perm[i+1], perm[j+1] = perm[j+1], perm[i+1]
	})
	for _, g := range grids {
		for r := range Size {
			for c := range Size {
				g[r][c] = perm[g[r][c]]
			}
		}
	}
}

// swapRows exchanges two rows; callers keep them within one band.
func swapRows(grids []*Grid, r1, r2 int) {
	for _, g := range grids {
		g[r1], g[r2] = g[r2], g[r1]
	}
}

func swapCols(grids []*Grid, c1, c2 int) {
	for _, g := range grids {
		for r := range Size {
			g[r][c1], g[r][c2] = g[r][c2], g[r][c1]
		}
	}
}

// swapBands exchanges two horizontal bands of three rows.
func swapBands(grids []*Grid, b1, b2 int) {
	for i := range 3 {
		swapRows(grids, b1*3+i, b2*3+i)
	}
}

func swapStacks(grids []*Grid, s1, s2 int) {
	for i := range 3 {
		swapCols(grids, s1*3+i, s2*3+i)
	}
}

func rotate90(grids []*Grid) {
	for _, g := range grids {
		var out Grid
		for r := range Size {
			for c := range Size {
				out[c][Size-1-r] = g[r][c]
			}
		}
		*g = out
	}
}

// applyEquivalent runs a randomized sequence of the transforms above over
// the grid set. All grids receive identical transforms, which is what keeps
// a puzzle consistent with its solution and clue mask.
func applyEquivalent(rnd *rand.Rand, grids ...*Grid) {
	relabelDigits(grids, rnd)

	// one in-band row swap and one in-stack column swap per band/stack
	for band := range 3 {
		a, b := rnd.IntN(3), rnd.IntN(3)
		if a != b {
			swapRows(grids, band*3+a, band*3+b)
		}
	}
	for stack := range 3 {
		a, b := rnd.IntN(3), rnd.IntN(3)
		if a != b {
			swapCols(grids, stack*3+a, stack*3+b)
		}
	}

	if a, b := rnd.IntN(3), rnd.IntN(3); a != b {
		swapBands(grids, a, b)
	}
	if a, b := rnd.IntN(3), rnd.IntN(3); a != b {
		swapStacks(grids, a, b)
	}

	for range rnd.IntN(4) {
		rotate90(grids)
	}
}
