package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	builder := qb.Select(matchSelectColumns...).From("matches")
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status", string(filter.Status)))
	}

	query, args, err := builder.OrderBy("match_date ASC", "id ASC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	return insertMatch(ctx, r.db, m)
}

func insertMatch(ctx context.Context, q sqlx.QueryerContext, m match.Match) (match.Match, error) {
	if err := m.Validate(); err != nil {
		return match.Match{}, err
	}

	query, args, err := qb.InsertModel("matches", newMatchInsertModel(m), "RETURNING "+strings.Join(matchSelectColumns, ", "))
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match %s vs %s: %w", m.Team1Short, m.Team2Short, err)
	}

	return row.toDomain(), nil
}
