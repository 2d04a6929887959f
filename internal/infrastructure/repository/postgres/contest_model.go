package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
)

type contestTableModel struct {
	ID                  int64          `db:"id"`
	MatchID             int64          `db:"match_id"`
	Name                string         `db:"name"`
	Description         sql.NullString `db:"description"`
	MaxParticipants     int            `db:"max_participants"`
	CurrentParticipants int            `db:"current_participants"`
	EntryFee            int            `db:"entry_fee"`
	PrizeDescription    sql.NullString `db:"prize_description"`
	Status              string         `db:"status"`
	CreatedAt           time.Time      `db:"created_at"`
}

type contestInsertModel struct {
	MatchID             int64          `db:"match_id"`
	Name                string         `db:"name"`
	Description         sql.NullString `db:"description"`
	MaxParticipants     int            `db:"max_participants"`
	CurrentParticipants int            `db:"current_participants"`
	EntryFee            int            `db:"entry_fee"`
	PrizeDescription    sql.NullString `db:"prize_description"`
	Status              string         `db:"status"`
}

type contestEntryTableModel struct {
	ID        int64         `db:"id"`
	ContestID int64         `db:"contest_id"`
	UserID    int64         `db:"user_id"`
	TeamID    int64         `db:"team_id"`
	Rank      sql.NullInt64 `db:"rank"`
	Points    int           `db:"points"`
	JoinedAt  time.Time     `db:"joined_at"`
}

type contestStandingRow struct {
	Rank     sql.NullInt64  `db:"rank"`
	UserID   int64          `db:"user_id"`
	UserName sql.NullString `db:"user_name"`
	TeamName sql.NullString `db:"team_name"`
	Points   int            `db:"points"`
}

var contestSelectColumns = []string{
	"id",
	"match_id",
	"name",
	"description",
	"max_participants",
	"current_participants",
	"entry_fee",
	"prize_description",
	"status",
	"created_at",
}

var contestEntryColumns = []string{
	"id",
	"contest_id",
	"user_id",
	"team_id",
	"rank",
	"points",
	"joined_at",
}

func (m contestTableModel) toDomain() contest.Contest {
	return contest.Contest{
		ID:                  m.ID,
		MatchID:             m.MatchID,
		Name:                m.Name,
		Description:         m.Description.String,
		MaxParticipants:     m.MaxParticipants,
		CurrentParticipants: m.CurrentParticipants,
		EntryFee:            m.EntryFee,
		PrizeDescription:    m.PrizeDescription.String,
		Status:              contest.Status(m.Status),
		CreatedAt:           m.CreatedAt,
	}
}

func (m contestEntryTableModel) toDomain() contest.Entry {
	return contest.Entry{
		ID:        m.ID,
		ContestID: m.ContestID,
		UserID:    m.UserID,
		TeamID:    m.TeamID,
		Rank:      nullableInt(m.Rank),
		Points:    m.Points,
		JoinedAt:  m.JoinedAt,
	}
}

func (m contestStandingRow) toDomain() contest.Standing {
	return contest.Standing{
		Rank:     nullableInt(m.Rank),
		UserID:   m.UserID,
		UserName: m.UserName.String,
		TeamName: m.TeamName.String,
		Points:   m.Points,
	}
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func newContestInsertModel(c contest.Contest) contestInsertModel {
	return contestInsertModel{
		MatchID:             c.MatchID,
		Name:                c.Name,
		Description:         nullString(c.Description),
		MaxParticipants:     c.MaxParticipants,
		CurrentParticipants: c.CurrentParticipants,
		EntryFee:            c.EntryFee,
		PrizeDescription:    nullString(c.PrizeDescription),
		Status:              string(c.Status),
	}
}
