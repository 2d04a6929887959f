package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team, members []team.Member) (team.Team, error) {
	if len(members) == 0 {
		return team.Team{}, fmt.Errorf("team members are required")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx for team create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertTeamSQL, insertTeamArgs, err := qb.InsertModel("teams", teamInsertModel{
		UserID:        t.UserID,
		MatchID:       t.MatchID,
		Name:          t.Name,
		CaptainID:     t.CaptainID,
		ViceCaptainID: t.ViceCaptainID,
		TotalCredits:  t.TotalCredits,
	}, "RETURNING "+strings.Join(teamSelectColumns, ", "))
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := tx.GetContext(ctx, &row, insertTeamSQL, insertTeamArgs...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	membersInsert := qb.InsertInto("team_players").Columns(teamPlayerInsertColumns...)
	for _, m := range members {
		membersInsert = membersInsert.Values(row.ID, m.PlayerID, m.IsCaptain, m.IsViceCaptain, m.Points)
	}
	membersSQL, membersArgs, err := membersInsert.ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, membersSQL, membersArgs...); err != nil {
		return team.Team{}, fmt.Errorf("insert team players team=%d: %w", row.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, fmt.Errorf("commit team create tx: %w", err)
	}

	return row.toDomain(), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListByUser(ctx context.Context, userID int64) ([]team.Team, error) {
	return r.list(ctx, "by user", qb.Eq("user_id", userID))
}

func (r *TeamRepository) ListByUserAndMatch(ctx context.Context, userID, matchID int64) ([]team.Team, error) {
	return r.list(ctx, "by user and match", qb.Eq("user_id", userID), qb.Eq("match_id", matchID))
}

func (r *TeamRepository) list(ctx context.Context, label string, conditions ...qb.Condition) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(conditions...).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams %s query: %w", label, err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams %s: %w", label, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID int64) ([]team.Member, error) {
	query, args, err := qb.Select("id", "team_id", "player_id", "is_captain", "is_vice_captain", "points").
		From("team_players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team players query: %w", err)
	}

	var rows []teamPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team players: %w", err)
	}

	out := make([]team.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("teams").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return count, nil
}
