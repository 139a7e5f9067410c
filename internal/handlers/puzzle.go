package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shady2k/sudoku-server/internal/config"
	"github.com/shady2k/sudoku-server/internal/middleware"
	"github.com/shady2k/sudoku-server/internal/repository"
	"github.com/shady2k/sudoku-server/internal/session"
	"github.com/shady2k/sudoku-server/internal/sudoku"
)

// generateTimeout caps a single request's generation work over and above
// the engine's own per-difficulty budgets.
const generateTimeout = 60 * time.Second

type PuzzleHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
}

func NewPuzzleHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
) *PuzzleHandler {
	return &PuzzleHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
	}
}

func (h PuzzleHandler) New(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGenerateParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	puzzle, err := sudoku.Generate(ctx, params)
	var invalid sudoku.InvalidDifficultyError
	if errors.As(err, &invalid) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to generate a puzzle", "error", err)
		return
	}

	st := session.New(puzzle)

	createParams := repository.CreatePuzzleSessionParams{
		Difficulty: int(params.Difficulty),
	}
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		playerId := int(claims.PlayerId)
		createParams.PlayerId = &playerId
	}

	row, err := h.repo.CreatePuzzleSession(r.Context(), st, createParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create puzzle session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleSessionDTO(row, st))
}

// loadSession resolves the path id into a stored row and its decoded play
// state, writing the error response itself when it returns nil.
func (h PuzzleHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.PuzzleSession, *session.State) {
	sessionId, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil
	}

	row, err := h.repo.FetchPuzzleSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil
	}

	st, err := session.DecodeState(row.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle_session.state", "error", err)
		return nil, nil
	}
	return row, st
}

func (h PuzzleHandler) saveSession(
	ctx context.Context, row *repository.PuzzleSession, st *session.State,
) (*repository.PuzzleSession, error) {
	blob, err := st.Bytes()
	if err != nil {
		return nil, err
	}
	params := repository.UpdatePuzzleSessionParams{
		Solved:    &st.Solved,
		Forfeited: &st.Forfeited,
		State:     &blob,
	}
	if st.Finished() && !row.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}
	return h.repo.UpdatePuzzleSession(ctx, row.PuzzleSessionId, params)
}

func (h PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	row, st := h.loadSession(w, r)
	if row == nil {
		return
	}
	sendJSONOrLog(w, h.logger, NewPuzzleSessionDTO(row, st))
}

func (h PuzzleHandler) Move(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	row, st := h.loadSession(w, r)
	if row == nil {
		return
	}

	switch dto.Op {
	case "set":
		err = st.SetCell(dto.Row, dto.Col, dto.Digit)
	case "clear":
		err = st.ClearCell(dto.Row, dto.Col)
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	updated, err := h.saveSession(r.Context(), row, st)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleSessionDTO(updated, st))
}

func (h PuzzleHandler) Hint(w http.ResponseWriter, r *http.Request) {
	row, st := h.loadSession(w, r)
	if row == nil {
		return
	}

	if st.Finished() {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(session.ErrFinished))
		return
	}

	hint, ok := st.Hint()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		sendMessageOrLog(w, h.logger, "no single-candidate hint available")
		return
	}

	sendJSONOrLog(w, h.logger, hint)
}

func (h PuzzleHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	row, st := h.loadSession(w, r)
	if row == nil {
		return
	}

	if st.Finished() {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(session.ErrFinished))
		return
	}

	st.Forfeit()

	updated, err := h.saveSession(r.Context(), row, st)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, NewPuzzleSessionDTO(updated, st))
}
