package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type playerTableModel struct {
	ID           int64          `db:"id"`
	MatchID      int64          `db:"match_id"`
	Name         string         `db:"name"`
	Team         string         `db:"team"`
	TeamShort    string         `db:"team_short"`
	Role         string         `db:"role"`
	Credits      int            `db:"credits"`
	ImageURL     sql.NullString `db:"image_url"`
	BattingStyle sql.NullString `db:"batting_style"`
	BowlingStyle sql.NullString `db:"bowling_style"`
	TotalPoints  int            `db:"total_points"`
	Runs         int            `db:"runs"`
	Balls        int            `db:"balls"`
	Fours        int            `db:"fours"`
	Sixes        int            `db:"sixes"`
	Wickets      int            `db:"wickets"`
	Maidens      int            `db:"maidens"`
	Catches      int            `db:"catches"`
	Stumpings    int            `db:"stumpings"`
	RunOuts      int            `db:"run_outs"`
	OversBowled  int            `db:"overs_bowled"`
	RunsConceded int            `db:"runs_conceded"`
	CreatedAt    time.Time      `db:"created_at"`
}

type playerInsertModel struct {
	MatchID      int64          `db:"match_id"`
	Name         string         `db:"name"`
	Team         string         `db:"team"`
	TeamShort    string         `db:"team_short"`
	Role         string         `db:"role"`
	Credits      int            `db:"credits"`
	ImageURL     sql.NullString `db:"image_url"`
	BattingStyle sql.NullString `db:"batting_style"`
	BowlingStyle sql.NullString `db:"bowling_style"`
	TotalPoints  int            `db:"total_points"`
}

var playerSelectColumns = []string{
	"id",
	"match_id",
	"name",
	"team",
	"team_short",
	"role",
	"credits",
	"image_url",
	"batting_style",
	"bowling_style",
	"total_points",
	"runs",
	"balls",
	"fours",
	"sixes",
	"wickets",
	"maidens",
	"catches",
	"stumpings",
	"run_outs",
	"overs_bowled",
	"runs_conceded",
	"created_at",
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		MatchID:      m.MatchID,
		Name:         m.Name,
		Team:         m.Team,
		TeamShort:    m.TeamShort,
		Role:         player.Role(m.Role),
		Credits:      m.Credits,
		ImageURL:     m.ImageURL.String,
		BattingStyle: m.BattingStyle.String,
		BowlingStyle: m.BowlingStyle.String,
		TotalPoints:  m.TotalPoints,
		Stats: player.Stats{
			Runs:         m.Runs,
			Balls:        m.Balls,
			Fours:        m.Fours,
			Sixes:        m.Sixes,
			Wickets:      m.Wickets,
			Maidens:      m.Maidens,
			Catches:      m.Catches,
			Stumpings:    m.Stumpings,
			RunOuts:      m.RunOuts,
			OversBowled:  m.OversBowled,
			RunsConceded: m.RunsConceded,
		},
	}
}

func newPlayerInsertModel(p player.Player) playerInsertModel {
	return playerInsertModel{
		MatchID:      p.MatchID,
		Name:         p.Name,
		Team:         p.Team,
		TeamShort:    p.TeamShort,
		Role:         string(p.Role),
		Credits:      p.Credits,
		ImageURL:     nullString(p.ImageURL),
		BattingStyle: nullString(p.BattingStyle),
		BowlingStyle: nullString(p.BowlingStyle),
		TotalPoints:  p.TotalPoints,
	}
}
