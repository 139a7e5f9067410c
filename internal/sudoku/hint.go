package sudoku

import "math/bits"

// Hint is a single deductive step a player could take next.
type Hint struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Digit     uint8  `json:"digit"`
	Technique string `json:"technique"`
}

// FirstSingle scans for the next naked or hidden single on the grid.
// Naked singles are reported first since they are the easier find for a
// human. Returns false when neither technique applies, i.e. the position
// needs more than pure singles to advance.
func FirstSingle(g *Grid) (*Hint, bool) {
	t := newTracker(g)

	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				continue
			}
			cand := t.candidates(r, c)
			if bits.OnesCount16(cand) == 1 {
				return &Hint{
					Row:       r,
					Col:       c,
					Digit:     soleDigit(cand),
					Technique: "naked single",
				}, true
			}
		}
	}

	for d := uint8(1); d <= Size; d++ {
		bit := uint16(1) << (d - 1)
		for u := range Size {
			if t.rows[u]&bit == 0 {
				if c, n := onlyColumnFor(g, t, u, d); n == 1 {
					return &Hint{Row: u, Col: c, Digit: d, Technique: "hidden single"}, true
				}
			}
			if t.cols[u]&bit == 0 {
				if r, n := onlyRowFor(g, t, u, d); n == 1 {
					return &Hint{Row: r, Col: u, Digit: d, Technique: "hidden single"}, true
				}
			}
			if t.boxes[u]&bit == 0 {
				if r, c, n := onlyBoxCellFor(g, t, u, d); n == 1 {
					return &Hint{Row: r, Col: c, Digit: d, Technique: "hidden single"}, true
				}
			}
		}
	}

	return nil, false
}
