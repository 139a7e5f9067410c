package sudoku

import (
	"math/bits"
	"math/rand/v2"
	"time"
)

// traversalOrder picks which cells get offered for removal first. It shapes
// the clue clustering of the result, not its correctness.
type traversalOrder int

const (
	orderRandom traversalOrder = iota
	orderSerpentine
	orderJumping
	orderRowMajor
)

// profile is the difficulty tier translated into concrete digging targets.
type profile struct {
	tier          int
	minGivens     int
	maxGivens     int
	minLineGivens int // per-row and per-column clue floor
	order         traversalOrder
	strategic     int // extra targeted removals after the main pass
	minAttempts   int  // search-complexity floor enforced by the quality gate
	sparseLine    bool // hardest tier: demand a row or column with <=2 givens
	logicOnly     bool // easy tiers: must fall to naked+hidden singles alone
}

// profileFor maps difficulty 0-100 onto five tiers with boundaries at
// 20/40/60/80. The numeric bands are calibration values, not derived ones;
// only their ordering and monotonicity matter to callers.
func profileFor(difficulty int) profile {
	switch {
	case difficulty < 20:
		return profile{tier: 1, minGivens: 50, maxGivens: 60, minLineGivens: 5, order: orderRandom, logicOnly: true}
	case difficulty < 40:
		return profile{tier: 2, minGivens: 40, maxGivens: 49, minLineGivens: 4, order: orderRandom, logicOnly: true}
	case difficulty < 60:
		return profile{tier: 3, minGivens: 32, maxGivens: 39, minLineGivens: 3, order: orderSerpentine, strategic: 1}
	case difficulty < 80:
		return profile{tier: 4, minGivens: 27, maxGivens: 31, minLineGivens: 1, order: orderJumping, strategic: 3, minAttempts: 1_000}
	default:
		return profile{tier: 5, minGivens: 22, maxGivens: 27, minLineGivens: 0, order: orderRowMajor, strategic: 5, minAttempts: 10_000, sparseLine: true}
	}
}

// budget scales the per-attempt wall clock with the tier; harder tiers dig
// deeper and verify more.
func (p profile) budget() time.Duration {
	switch p.tier {
	case 1:
		return 2 * time.Second
	case 2:
		return 3 * time.Second
	case 3:
		return 6 * time.Second
	case 4:
		return 12 * time.Second
	default:
		return 25 * time.Second
	}
}

// substituteTimeout boxes a single substitute-completion attempt inside the
// uniqueness check.
const substituteTimeout = 250 * time.Millisecond

// traversal lists all 81 cell indices in the profile's removal order.
func traversal(order traversalOrder, rnd *rand.Rand) []int {
	cells := make([]int, 0, CellCount)
	switch order {
	case orderRandom:
		cells = rnd.Perm(CellCount)
	case orderSerpentine:
		for r := range Size {
			if r%2 == 0 {
				for c := range Size {
					cells = append(cells, r*Size+c)
				}
			} else {
				for c := Size - 1; c >= 0; c-- {
					cells = append(cells, r*Size+c)
				}
			}
		}
	case orderJumping:
		// checkerboard: one parity pass, then the complement
		for parity := range 2 {
			for i := range CellCount {
				if (i/Size+i%Size)%2 == parity {
					cells = append(cells, i)
				}
			}
		}
	default:
		for i := range CellCount {
			cells = append(cells, i)
		}
	}
	return cells
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

// removalKeepsUnique proves a removal safe by reduction to absurdity: the
// cell currently holds the solution digit, so the puzzle gains a second
// solution iff some other digit, forced into this exact cell, still admits
// a full completion. The grid is left exactly as it was found.
//
// A deadline breach mid-check answers "not safe" so the clue is kept.
func removalKeepsUnique(g *Grid, r, c int, deadline time.Time) bool {
	orig := g[r][c]
	g[r][c] = 0
	t := newTracker(g)
	defer func() { g[r][c] = orig }()

	for d := uint8(1); d <= Size; d++ {
		if d == orig || !t.canPlace(r, c, d) {
			continue
		}
		if pastDeadline(deadline) {
			return false
		}
		sub := time.Now().Add(substituteTimeout)
		if !deadline.IsZero() && deadline.Before(sub) {
			sub = deadline
		}
		g[r][c] = d
		alt := SolveOne(g, nil, sub)
		g[r][c] = 0
		if alt != nil {
			return false
		}
		// "no completion" only counts as proof if the search actually
		// finished; a timed-out attempt keeps the clue
		if pastDeadline(sub) {
			return false
		}
	}
	return true
}

// digHoles removes cells from a complete grid following the profile's
// traversal until the target given count is reached, the candidates are
// exhausted, or the deadline passes. Every removal is vetted by
// removalKeepsUnique; a cell that fails the check is never retried within
// the pass.
func digHoles(full *Grid, p profile, rnd *rand.Rand, deadline time.Time) Grid {
	g := *full
	target := p.minGivens
	if p.maxGivens > p.minGivens {
		target += rnd.IntN(p.maxGivens - p.minGivens + 1)
	}
	givens := CellCount

	var failed [CellCount]bool
	for _, i := range traversal(p.order, rnd) {
		if givens <= target || pastDeadline(deadline) {
			break
		}
		r, c := i/Size, i%Size
		if g[r][c] == 0 || failed[i] {
			continue
		}
		if p.minLineGivens > 0 &&
			(g.RowGivens(r)-1 < p.minLineGivens || g.ColGivens(c)-1 < p.minLineGivens) {
			continue
		}
		if removalKeepsUnique(&g, r, c, deadline) {
			g[r][c] = 0
			givens--
		} else {
			failed[i] = true
		}
	}

	if p.strategic > 0 {
		digStrategic(&g, p, deadline)
	}
	return g
}

// digStrategic intensifies difficulty with a few extra removals aimed at
// highly constrained cells: filled cells that, once emptied, would have at
// most three legal candidates.
func digStrategic(g *Grid, p profile, deadline time.Time) {
	removed := 0
	t := newTracker(g)
	for i := range CellCount {
		if removed >= p.strategic || pastDeadline(deadline) {
			return
		}
		r, c := i/Size, i%Size
		d := g[r][c]
		if d == 0 {
			continue
		}
		if p.minLineGivens > 0 &&
			(g.RowGivens(r)-1 < p.minLineGivens || g.ColGivens(c)-1 < p.minLineGivens) {
			continue
		}
		t.remove(r, c, d)
		constrained := bits.OnesCount16(t.candidates(r, c)) <= 3
		t.place(r, c, d)
		if !constrained {
			continue
		}
		if removalKeepsUnique(g, r, c, deadline) {
			t.remove(r, c, d)
			g[r][c] = 0
			removed++
		}
	}
}

// meetsQuality runs the per-tier acceptance gate over a dug puzzle: given
// count within band, a minimum search complexity for the harder tiers, and
// at least one very sparse row or column for the hardest one.
func meetsQuality(g *Grid, p profile) bool {
	givens := g.Givens()
	if givens < p.minGivens || givens > p.maxGivens {
		return false
	}
	if p.minAttempts > 0 {
		if MeasureComplexity(g) < p.minAttempts {
			return false
		}
	}
	if p.sparseLine {
		sparse := false
		for i := range Size {
			if g.RowGivens(i) <= 2 || g.ColGivens(i) <= 2 {
				sparse = true
				break
			}
		}
		if !sparse {
			return false
		}
	}
	if p.logicOnly {
		if _, solved := SolveLogically(g); !solved {
			return false
		}
	}
	return true
}
