// Package session holds the mutable play state derived from a generated
// puzzle. The puzzle itself stays immutable; every move edits the player's
// entry grid only.
package session

import (
	"bytes"
	"encoding/gob"
	"errors"

	"github.com/shady2k/sudoku-server/internal/sudoku"
)

var (
	ErrOutOfBounds  = errors.New("cell position out of bounds")
	ErrClueCell     = errors.New("cell is a fixed clue")
	ErrInvalidDigit = errors.New("digit must be between 1 and 9")
	ErrFinished     = errors.New("game is already finished")
)

type State struct {
	Puzzle    sudoku.Puzzle
	Entries   sudoku.Grid // player grid, clues included
	Solved    bool
	Forfeited bool
}

func New(p *sudoku.Puzzle) *State {
	return &State{
		Puzzle:  *p,
		Entries: p.Grid,
	}
}

func DecodeState(b []byte) (*State, error) {
	var s State
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s State) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s State) Finished() bool {
	return s.Solved || s.Forfeited
}

func (s State) InBounds(r, c int) bool {
	return 0 <= r && r < sudoku.Size && 0 <= c && c < sudoku.Size
}

// SetCell writes a digit into an open cell and re-checks for completion.
func (s *State) SetCell(r, c int, d uint8) error {
	switch {
	case s.Finished():
		return ErrFinished
	case !s.InBounds(r, c):
		return ErrOutOfBounds
	case s.Puzzle.ClueMask[r][c]:
		return ErrClueCell
	case d < 1 || d > sudoku.Size:
		return ErrInvalidDigit
	}
	s.Entries[r][c] = d
	if s.Entries == s.Puzzle.Solution {
		s.Solved = true
	}
	return nil
}

// ClearCell erases a player entry.
func (s *State) ClearCell(r, c int) error {
	switch {
	case s.Finished():
		return ErrFinished
	case !s.InBounds(r, c):
		return ErrOutOfBounds
	case s.Puzzle.ClueMask[r][c]:
		return ErrClueCell
	}
	s.Entries[r][c] = 0
	return nil
}

// Forfeit reveals the solution and ends the game. Forfeiting a solved game
// is a no-op.
func (s *State) Forfeit() {
	if s.Solved {
		return
	}
	s.Entries = s.Puzzle.Solution
	s.Forfeited = true
}

// Hint surfaces the next single available from the current entries.
func (s State) Hint() (*sudoku.Hint, bool) {
	if s.Finished() {
		return nil, false
	}
	return sudoku.FirstSingle(&s.Entries)
}

// Conflicted reports whether the player's entries contradict each other.
// Entries may disagree with the solution without conflicting yet.
func (s State) Conflicted() bool {
	return !s.Entries.Consistent()
}
