package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
)

type teamTableModel struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	MatchID       int64     `db:"match_id"`
	Name          string    `db:"name"`
	CaptainID     int64     `db:"captain_id"`
	ViceCaptainID int64     `db:"vice_captain_id"`
	TotalCredits  int       `db:"total_credits"`
	TotalPoints   int       `db:"total_points"`
	CreatedAt     time.Time `db:"created_at"`
}

type teamInsertModel struct {
	UserID        int64  `db:"user_id"`
	MatchID       int64  `db:"match_id"`
	Name          string `db:"name"`
	CaptainID     int64  `db:"captain_id"`
	ViceCaptainID int64  `db:"vice_captain_id"`
	TotalCredits  int    `db:"total_credits"`
}

type teamPlayerTableModel struct {
	ID            int64 `db:"id"`
	TeamID        int64 `db:"team_id"`
	PlayerID      int64 `db:"player_id"`
	IsCaptain     bool  `db:"is_captain"`
	IsViceCaptain bool  `db:"is_vice_captain"`
	Points        int   `db:"points"`
}

var teamSelectColumns = []string{
	"id",
	"user_id",
	"match_id",
	"name",
	"captain_id",
	"vice_captain_id",
	"total_credits",
	"total_points",
	"created_at",
}

var teamPlayerInsertColumns = []string{
	"team_id",
	"player_id",
	"is_captain",
	"is_vice_captain",
	"points",
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:            m.ID,
		UserID:        m.UserID,
		MatchID:       m.MatchID,
		Name:          m.Name,
		CaptainID:     m.CaptainID,
		ViceCaptainID: m.ViceCaptainID,
		TotalCredits:  m.TotalCredits,
		TotalPoints:   m.TotalPoints,
		CreatedAt:     m.CreatedAt,
	}
}

func (m teamPlayerTableModel) toDomain() team.Member {
	return team.Member{
		TeamID:        m.TeamID,
		PlayerID:      m.PlayerID,
		IsCaptain:     m.IsCaptain,
		IsViceCaptain: m.IsViceCaptain,
		Points:        m.Points,
	}
}
