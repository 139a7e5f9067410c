package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shady2k/sudoku-server/internal/session"
	"github.com/shady2k/sudoku-server/internal/sudoku"
)

const (
	testPuzzleLine   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	testSolutionLine = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func testState(t *testing.T) *session.State {
	t.Helper()
	grid, err := sudoku.ParseGrid(testPuzzleLine)
	require.NoError(t, err)
	solution, err := sudoku.ParseGrid(testSolutionLine)
	require.NoError(t, err)

	puzzle := &sudoku.Puzzle{
		ID:         "test",
		Grid:       *grid,
		Solution:   *solution,
		GivenCount: grid.Givens(),
	}
	for r := range sudoku.Size {
		for c := range sudoku.Size {
			puzzle.ClueMask[r][c] = grid[r][c] != 0
		}
	}
	return session.New(puzzle)
}

func TestRunCommand(t *testing.T) {
	t.Parallel()

	st := testState(t)

	require.NoError(t, runCommand(st, "s 0 2 4"))
	assert.Equal(t, uint8(4), st.Entries[0][2])

	require.NoError(t, runCommand(st, "e 0 2"))
	assert.Equal(t, uint8(0), st.Entries[0][2])

	assert.NoError(t, runCommand(st, "g"))

	assert.Error(t, runCommand(st, "s 0 2"), "wrong arity")
	assert.Error(t, runCommand(st, "x 1 2"), "unknown command")
	assert.Error(t, runCommand(st, "s a b c"), "non-numeric args")
	assert.Error(t, runCommand(st, "s 0 0 9"), "clue cell stays fixed")
	assert.ErrorIs(t, runCommand(st, "s 0 2 265"), session.ErrInvalidDigit, "digit past uint8 range")
	assert.ErrorIs(t, runCommand(st, "s 0 2 0"), session.ErrInvalidDigit)

	require.NoError(t, runCommand(st, "r"))
	assert.True(t, st.Forfeited)
	assert.Equal(t, st.Puzzle.Solution, st.Entries)
}
