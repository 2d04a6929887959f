package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type userTableModel struct {
	ID            int64          `db:"id"`
	OpenID        string         `db:"open_id"`
	Name          sql.NullString `db:"name"`
	Email         sql.NullString `db:"email"`
	LoginMethod   sql.NullString `db:"login_method"`
	Role          string         `db:"role"`
	Avatar        sql.NullString `db:"avatar"`
	TotalPoints   int            `db:"total_points"`
	MatchesPlayed int            `db:"matches_played"`
	ContestsWon   int            `db:"contests_won"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	LastSignedIn  time.Time      `db:"last_signed_in"`
}

var userSelectColumns = []string{
	"id",
	"open_id",
	"name",
	"email",
	"login_method",
	"role",
	"avatar",
	"total_points",
	"matches_played",
	"contests_won",
	"created_at",
	"updated_at",
	"last_signed_in",
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:            m.ID,
		OpenID:        m.OpenID,
		Name:          m.Name.String,
		Email:         m.Email.String,
		LoginMethod:   m.LoginMethod.String,
		Role:          user.Role(m.Role),
		Avatar:        m.Avatar.String,
		TotalPoints:   m.TotalPoints,
		MatchesPlayed: m.MatchesPlayed,
		ContestsWon:   m.ContestsWon,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		LastSignedIn:  m.LastSignedIn,
	}
}
