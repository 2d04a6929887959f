package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByMatch(ctx context.Context, matchID int64) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team ASC", "name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by match query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by match: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("id", playerIDs)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	ordered := orderByIDs(playerIDs, rows, func(row playerTableModel) int64 { return row.ID })
	out := make([]player.Player, 0, len(ordered))
	for _, row := range ordered {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	return insertPlayer(ctx, r.db, p)
}

func insertPlayer(ctx context.Context, q sqlx.QueryerContext, p player.Player) (player.Player, error) {
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	query, args, err := qb.InsertModel("players", newPlayerInsertModel(p), "RETURNING "+strings.Join(playerSelectColumns, ", "))
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player %s: %w", p.Name, err)
	}

	return row.toDomain(), nil
}
