package sudoku

import (
	"math/rand/v2"
	"time"
)

// search holds the mutable state of one backtracking run. The grid buffer
// is owned by the search; every placement is paired with an undo on every
// exit path, so the masks always match the grid when a call returns.
type search struct {
	grid     *Grid
	masks    *tracker
	rnd      *rand.Rand // nil means fixed 1-9 candidate order
	deadline time.Time
	attempts int
	ceiling  int // attempt cap, 0 = unlimited
}

func newSearch(g *Grid, rnd *rand.Rand, deadline time.Time) *search {
	return &search{
		grid:     g,
		masks:    newTracker(g),
		rnd:      rnd,
		deadline: deadline,
	}
}

// expired is checked on every recursion re-entry so pathological searches
// degrade to a clean "not found" instead of hanging.
func (s *search) expired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

func (s *search) capped() bool {
	return s.ceiling > 0 && s.attempts >= s.ceiling
}

// order yields candidate digits for one cell, shuffled when the search
// carries a random source.
func (s *search) order() [Size]uint8 {
	order := [Size]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if s.rnd != nil {
		s.rnd.Shuffle(Size, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

// fill completes the grid in place, depth first over the lowest row-major
// empty cell. Reports whether a completion was found; on false the grid is
// restored to its entry state.
func (s *search) fill() bool {
	if s.expired() || s.capped() {
		return false
	}
	r, c, ok := s.grid.firstEmpty()
	if !ok {
		return true
	}
	for _, d := range s.order() {
		s.attempts++
		if !s.masks.canPlace(r, c, d) {
			continue
		}
		s.grid[r][c] = d
		s.masks.place(r, c, d)
		if s.fill() {
			return true
		}
		s.grid[r][c] = 0
		s.masks.remove(r, c, d)
	}
	return false
}

// count finds up to max completions. Unlike fill it always undoes its
// placements, so the caller's grid is intact afterwards.
func (s *search) count(max int) (found int) {
	var dfs func() bool // true = stop searching
	dfs = func() bool {
		if s.expired() || s.capped() {
			return true
		}
		r, c, ok := s.grid.firstEmpty()
		if !ok {
			found++
			return found >= max
		}
		for _, d := range s.order() {
			s.attempts++
			if !s.masks.canPlace(r, c, d) {
				continue
			}
			s.grid[r][c] = d
			s.masks.place(r, c, d)
			stop := dfs()
			s.grid[r][c] = 0
			s.masks.remove(r, c, d)
			if stop {
				return true
			}
		}
		return false
	}
	dfs()
	return
}

// SolveOne returns the first completion of a partial grid, or nil if the
// grid is inconsistent or unsatisfiable. A nil rnd gives a deterministic
// fixed candidate order; a zero deadline disables the time check.
func SolveOne(g *Grid, rnd *rand.Rand, deadline time.Time) *Grid {
	if !g.Consistent() {
		return nil
	}
	work := *g
	if !newSearch(&work, rnd, deadline).fill() {
		return nil
	}
	return &work
}

// CountSolutions counts completions of a partial grid, aborting as soon as
// max are found. Callers testing uniqueness pass max=2 and compare the
// result against 1. An inconsistent grid has zero solutions. A deadline
// breach conservatively reports whatever was found so far.
func CountSolutions(g *Grid, max int, deadline time.Time) int {
	if max <= 0 || !g.Consistent() {
		return 0
	}
	work := *g
	return newSearch(&work, nil, deadline).count(max)
}
