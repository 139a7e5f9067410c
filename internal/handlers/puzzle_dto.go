package handlers

import (
	"fmt"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/shady2k/sudoku-server/internal/repository"
	"github.com/shady2k/sudoku-server/internal/session"
	"github.com/shady2k/sudoku-server/internal/sudoku"
)

func ParseGenerateParams(src map[string][]string) (sudoku.Params, error) {
	var params sudoku.Params
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&params, src)
	return params, err
}

type MoveDTO struct {
	Op    string `schema:"op,required"`
	Row   int    `schema:"row,required"`
	Col   int    `schema:"col,required"`
	Digit uint8  `schema:"digit"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	switch dto.Op {
	case "set":
		if dto.Digit == 0 {
			return dto, fmt.Errorf("set requires a digit between 1 and 9")
		}
	case "clear":
	default:
		return dto, fmt.Errorf("op must be either set or clear")
	}
	return dto, nil
}

type PuzzleSessionDTO struct {
	PuzzleSessionId string  `json:"puzzle_session_id"`
	PuzzleId        string  `json:"puzzle_id"`
	Difficulty      int     `json:"difficulty"`
	Clues           string  `json:"clues"`
	Entries         string  `json:"entries"`
	GivenCount      int     `json:"given_count"`
	Solved          bool    `json:"solved"`
	Forfeited       bool    `json:"forfeited"`
	Solution        *string `json:"solution,omitempty"`
	StartedAt       int64   `json:"started_at"`
	EndedAt         *int64  `json:"ended_at,omitempty"`
}

// NewPuzzleSessionDTO flattens a stored row and its decoded play state into
// the wire shape. The solution line is included only once the game is over.
func NewPuzzleSessionDTO(row *repository.PuzzleSession, st *session.State) *PuzzleSessionDTO {
	dto := &PuzzleSessionDTO{
		PuzzleSessionId: strconv.Itoa(row.PuzzleSessionId),
		PuzzleId:        st.Puzzle.ID,
		Difficulty:      row.Difficulty,
		Clues:           st.Puzzle.Grid.Line(),
		Entries:         st.Entries.Line(),
		GivenCount:      st.Puzzle.GivenCount,
		Solved:          st.Solved,
		Forfeited:       st.Forfeited,
		StartedAt:       row.StartedAt.Time.UnixMilli(),
	}
	if st.Finished() {
		line := st.Puzzle.Solution.Line()
		dto.Solution = &line
	}
	if endedAt := timestamptzMilli(row.EndedAt); endedAt != nil {
		dto.EndedAt = endedAt
	}
	return dto
}

func timestamptzMilli(ts pgtype.Timestamptz) *int64 {
	if !ts.Valid {
		return nil
	}
	ms := ts.Time.UnixMilli()
	return &ms
}
