package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shady2k/sudoku-server/internal/repository"
)

type Records struct {
	logger *slog.Logger
	repo   *repository.Queries
}

func NewRecords(logger *slog.Logger, db *pgxpool.Pool) *Records {
	return &Records{
		logger: logger,
		repo:   repository.New(db),
	}
}

type recordsQueryDTO struct {
	Username   *string `schema:"username"`
	Difficulty *int    `schema:"difficulty"`
}

func (h Records) List(w http.ResponseWriter, r *http.Request) {
	var dto recordsQueryDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	records, err := h.repo.GetRecords(r.Context(), repository.RecordFilter{
		Username:   dto.Username,
		Difficulty: dto.Difficulty,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch records", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, records)
}
