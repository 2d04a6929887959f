package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, input user.UpsertInput) (user.User, error) {
	if err := input.Validate(); err != nil {
		return user.User{}, err
	}

	upsertQuery := `
INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
VALUES (:open_id, :name, :email, :login_method, COALESCE(CAST(:role AS TEXT), 'user'), :last_signed_in)
ON CONFLICT (open_id)
DO UPDATE SET
    name = COALESCE(EXCLUDED.name, users.name),
    email = COALESCE(EXCLUDED.email, users.email),
    login_method = COALESCE(EXCLUDED.login_method, users.login_method),
    role = COALESCE(CAST(:role AS TEXT), users.role),
    last_signed_in = EXCLUDED.last_signed_in,
    updated_at = NOW()
RETURNING ` + strings.Join(userSelectColumns, ", ")

	lastSignedIn := input.LastSignedIn
	if lastSignedIn.IsZero() {
		lastSignedIn = time.Now().UTC()
	}

	query, args, err := sqlx.Named(upsertQuery, map[string]any{
		"open_id":        input.OpenID,
		"name":           nullString(input.Name),
		"email":          nullString(input.Email),
		"login_method":   nullString(input.LoginMethod),
		"role":           nullString(string(input.Role)),
		"last_signed_in": lastSignedIn,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("bind upsert user query: %w", err)
	}
	query = r.db.Rebind(query)

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return user.User{}, fmt.Errorf("upsert user open_id=%s: %w", input.OpenID, err)
	}

	return row.toDomain(), nil
}

func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(qb.Eq("open_id", openID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by open id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user by open id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(qb.Eq("id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) ListTopByPoints(ctx context.Context, limit int) ([]user.User, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		OrderBy("total_points DESC", "id ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select top users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
