package sudoku

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

// Puzzle is the engine's output artifact: a playable grid with holes, the
// unique solution it came from, and the derived clue bookkeeping. It is a
// plain serializable value with no handles inside, created once and never
// mutated. Consumers derive their own play state from it.
type Puzzle struct {
	// ID encodes the difficulty and derived seed of the attempt that
	// produced the puzzle, so the exact grid can be regenerated.
	ID         string           `json:"id"`
	Grid       Grid             `json:"grid"`
	Solution   Grid             `json:"solution"`
	ClueMask   [Size][Size]bool `json:"clue_mask"`
	GivenCount int              `json:"given_count"`
	CreatedAt  time.Time        `json:"created_at"`
}

func newPuzzle(difficulty int, seed int64, grid, solution Grid) *Puzzle {
	p := &Puzzle{
		ID:         fmt.Sprintf("d%02d-%016x", difficulty, uint64(seed)),
		Grid:       grid,
		Solution:   solution,
		GivenCount: grid.Givens(),
		CreatedAt:  time.Now().UTC(),
	}
	for r := range Size {
		for c := range Size {
			p.ClueMask[r][c] = grid[r][c] != 0
		}
	}
	return p
}

// Bytes gob-encodes the puzzle for storage.
func (p Puzzle) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePuzzle restores a puzzle from its gob encoding.
func DecodePuzzle(b []byte) (*Puzzle, error) {
	var p Puzzle
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
