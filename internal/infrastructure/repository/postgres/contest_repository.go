package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

const contestEntryUniqueConstraint = "contest_entries_contest_user_key"

type ContestRepository struct {
	db *sqlx.DB
}

func NewContestRepository(db *sqlx.DB) *ContestRepository {
	return &ContestRepository{db: db}
}

func (r *ContestRepository) List(ctx context.Context, filter contest.Filter) ([]contest.Contest, error) {
	builder := qb.Select(contestSelectColumns...).From("contests")
	if filter.MatchID > 0 {
		builder = builder.Where(qb.Eq("match_id", filter.MatchID))
	}

	query, args, err := builder.OrderBy("created_at DESC", "id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select contests query: %w", err)
	}

	var rows []contestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select contests: %w", err)
	}

	out := make([]contest.Contest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ContestRepository) GetByID(ctx context.Context, contestID int64) (contest.Contest, bool, error) {
	row, found, err := selectContest(ctx, r.db, contestID, false)
	if err != nil || !found {
		return contest.Contest{}, found, err
	}
	return row.toDomain(), true, nil
}

func (r *ContestRepository) Create(ctx context.Context, c contest.Contest) (contest.Contest, error) {
	return insertContest(ctx, r.db, c)
}

// Join locks the contest row so joins on one contest run one at a time. The
// unique (contest_id, user_id) constraint backs the duplicate check.
func (r *ContestRepository) Join(ctx context.Context, input contest.JoinInput) (contest.Entry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return contest.Entry{}, fmt.Errorf("begin tx for contest join: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	locked, found, err := selectContest(ctx, tx, input.ContestID, true)
	if err != nil {
		return contest.Entry{}, err
	}
	if !found {
		return contest.Entry{}, contest.ErrNotFound
	}

	joined, err := hasEntry(ctx, tx, input.ContestID, input.UserID)
	if err != nil {
		return contest.Entry{}, err
	}
	if joined {
		return contest.Entry{}, contest.ErrAlreadyJoined
	}
	if locked.CurrentParticipants >= locked.MaxParticipants {
		return contest.Entry{}, contest.ErrFull
	}

	incrementSQL, incrementArgs, err := qb.Update("contests").
		SetExpr("current_participants", "current_participants + 1").
		Where(
			qb.Eq("id", input.ContestID),
			qb.Expr("current_participants < max_participants"),
		).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return contest.Entry{}, fmt.Errorf("build increment participants query: %w", err)
	}

	var contestID int64
	if err := tx.GetContext(ctx, &contestID, incrementSQL, incrementArgs...); err != nil {
		if isNotFound(err) {
			return contest.Entry{}, contest.ErrFull
		}
		return contest.Entry{}, fmt.Errorf("increment participants contest=%d: %w", input.ContestID, err)
	}

	entrySQL, entryArgs, err := qb.InsertInto("contest_entries").
		Columns("contest_id", "user_id", "team_id", "joined_at").
		Values(input.ContestID, input.UserID, input.TeamID, input.JoinedAt).
		Suffix("ON CONFLICT (contest_id, user_id) DO NOTHING RETURNING " + strings.Join(contestEntryColumns, ", ")).
		ToSQL()
	if err != nil {
		return contest.Entry{}, fmt.Errorf("build insert contest entry query: %w", err)
	}

	var entry contestEntryTableModel
	if err := tx.GetContext(ctx, &entry, entrySQL, entryArgs...); err != nil {
		if isNotFound(err) || isUniqueViolation(err, contestEntryUniqueConstraint) {
			return contest.Entry{}, contest.ErrAlreadyJoined
		}
		return contest.Entry{}, fmt.Errorf("insert contest entry contest=%d user=%d: %w", input.ContestID, input.UserID, err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err, contestEntryUniqueConstraint) {
			return contest.Entry{}, contest.ErrAlreadyJoined
		}
		return contest.Entry{}, fmt.Errorf("commit contest join tx: %w", err)
	}

	return entry.toDomain(), nil
}

func (r *ContestRepository) HasEntry(ctx context.Context, contestID, userID int64) (bool, error) {
	return hasEntry(ctx, r.db, contestID, userID)
}

func (r *ContestRepository) CountEntriesByUser(ctx context.Context, userID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("contest_entries").
		Where(qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count contest entries query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count contest entries: %w", err)
	}
	return count, nil
}

func (r *ContestRepository) Leaderboard(ctx context.Context, contestID int64) ([]contest.Standing, error) {
	query, args, err := qb.Select(
		"ce.rank AS rank",
		"ce.user_id AS user_id",
		"u.name AS user_name",
		"t.name AS team_name",
		"ce.points AS points",
	).From("contest_entries ce LEFT JOIN users u ON u.id = ce.user_id LEFT JOIN teams t ON t.id = ce.team_id").
		Where(qb.Eq("ce.contest_id", contestID)).
		OrderBy("ce.points DESC", "ce.joined_at ASC", "ce.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build contest leaderboard query: %w", err)
	}

	var rows []contestStandingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select contest leaderboard: %w", err)
	}

	standings := make([]contest.Standing, 0, len(rows))
	for _, row := range rows {
		standings = append(standings, row.toDomain())
	}
	return contest.OrderStandings(standings), nil
}

func selectContest(ctx context.Context, q sqlx.QueryerContext, contestID int64, forUpdate bool) (contestTableModel, bool, error) {
	builder := qb.Select(contestSelectColumns...).From("contests").
		Where(qb.Eq("id", contestID)).
		Limit(1)
	if forUpdate {
		builder = builder.ForUpdate()
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return contestTableModel{}, false, fmt.Errorf("build select contest by id query: %w", err)
	}

	var row contestTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contestTableModel{}, false, nil
		}
		return contestTableModel{}, false, fmt.Errorf("select contest by id: %w", err)
	}
	return row, true, nil
}

func hasEntry(ctx context.Context, q sqlx.QueryerContext, contestID, userID int64) (bool, error) {
	query, args, err := qb.Select("1").From("contest_entries").
		Where(qb.Eq("contest_id", contestID), qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select contest entry query: %w", err)
	}

	var one int
	if err := sqlx.GetContext(ctx, q, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select contest entry: %w", err)
	}
	return true, nil
}

func insertContest(ctx context.Context, q sqlx.QueryerContext, c contest.Contest) (contest.Contest, error) {
	if err := c.Validate(); err != nil {
		return contest.Contest{}, err
	}

	query, args, err := qb.InsertModel("contests", newContestInsertModel(c), "RETURNING "+strings.Join(contestSelectColumns, ", "))
	if err != nil {
		return contest.Contest{}, fmt.Errorf("build insert contest query: %w", err)
	}

	var row contestTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		return contest.Contest{}, fmt.Errorf("insert contest %s: %w", c.Name, err)
	}
	return row.toDomain(), nil
}
