package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
)

type matchTableModel struct {
	ID         int64          `db:"id"`
	Team1      string         `db:"team1"`
	Team1Short string         `db:"team1_short"`
	Team2      string         `db:"team2"`
	Team2Short string         `db:"team2_short"`
	Tournament string         `db:"tournament"`
	Venue      string         `db:"venue"`
	MatchDate  time.Time      `db:"match_date"`
	Status     string         `db:"status"`
	Team1Score sql.NullString `db:"team1_score"`
	Team2Score sql.NullString `db:"team2_score"`
	Result     sql.NullString `db:"result"`
	CreatedAt  time.Time      `db:"created_at"`
}

type matchInsertModel struct {
	Team1      string         `db:"team1"`
	Team1Short string         `db:"team1_short"`
	Team2      string         `db:"team2"`
	Team2Short string         `db:"team2_short"`
	Tournament string         `db:"tournament"`
	Venue      string         `db:"venue"`
	MatchDate  time.Time      `db:"match_date"`
	Status     string         `db:"status"`
	Team1Score sql.NullString `db:"team1_score"`
	Team2Score sql.NullString `db:"team2_score"`
	Result     sql.NullString `db:"result"`
}

var matchSelectColumns = []string{
	"id",
	"team1",
	"team1_short",
	"team2",
	"team2_short",
	"tournament",
	"venue",
	"match_date",
	"status",
	"team1_score",
	"team2_score",
	"result",
	"created_at",
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		Team1:      m.Team1,
		Team1Short: m.Team1Short,
		Team2:      m.Team2,
		Team2Short: m.Team2Short,
		Tournament: m.Tournament,
		Venue:      m.Venue,
		MatchDate:  m.MatchDate,
		Status:     match.Status(m.Status),
		Team1Score: m.Team1Score.String,
		Team2Score: m.Team2Score.String,
		Result:     m.Result.String,
		CreatedAt:  m.CreatedAt,
	}
}

func newMatchInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		Team1:      m.Team1,
		Team1Short: m.Team1Short,
		Team2:      m.Team2,
		Team2Short: m.Team2Short,
		Tournament: m.Tournament,
		Venue:      m.Venue,
		MatchDate:  m.MatchDate,
		Status:     string(m.Status),
		Team1Score: nullString(m.Team1Score),
		Team2Score: nullString(m.Team2Score),
		Result:     nullString(m.Result),
	}
}
