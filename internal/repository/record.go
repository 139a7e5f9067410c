package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Record struct {
	PuzzleSessionId int     `json:"puzzle_session_id"`
	Username        *string `json:"username"`
	Difficulty      int     `json:"difficulty"`
	GivenCount      int     `json:"given_count"`
	PlaytimeMs      float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username   *string
	Difficulty *int
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = *f.Difficulty
	}
	return strings.Join(clauses, " AND "), args
}

// GetRecords lists completed solves ordered fastest first.
func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		puzzle_session_id,
		username,
		difficulty,
		given_count,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM puzzle_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		solved = true
		AND forfeited = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
