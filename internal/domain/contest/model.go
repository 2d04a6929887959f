package contest

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("contest not found")
	ErrFull          = errors.New("contest is full")
	ErrAlreadyJoined = errors.New("already joined this contest")
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// Contest is a bounded-capacity competition scoped to one match.
type Contest struct {
	ID                  int64
	MatchID             int64
	Name                string
	Description         string
	MaxParticipants     int
	CurrentParticipants int
	EntryFee            int
	PrizeDescription    string
	Status              Status
	CreatedAt           time.Time
}

func (c Contest) Validate() error {
	if c.MatchID <= 0 {
		return fmt.Errorf("contest match id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("contest name is required")
	}
	if c.MaxParticipants <= 0 {
		return fmt.Errorf("contest capacity must be greater than zero")
	}
	if c.CurrentParticipants < 0 || c.CurrentParticipants > c.MaxParticipants {
		return fmt.Errorf("contest participants out of range: %d/%d", c.CurrentParticipants, c.MaxParticipants)
	}
	switch c.Status {
	case StatusOpen, StatusLive, StatusCompleted:
	default:
		return fmt.Errorf("invalid contest status: %s", c.Status)
	}
	return nil
}

func (c Contest) IsFull() bool {
	return c.CurrentParticipants >= c.MaxParticipants
}

// Entry links a user's team to a contest. Rank stays nil until results are published.
type Entry struct {
	ID        int64
	ContestID int64
	UserID    int64
	TeamID    int64
	Rank      *int
	Points    int
	JoinedAt  time.Time
}

type JoinInput struct {
	ContestID int64
	UserID    int64
	TeamID    int64
	JoinedAt  time.Time
}

// Standing is one contest leaderboard row. Rank is the stored entry rank and
// stays nil until results are published; Position is the row's place in the
// points ordering.
type Standing struct {
	Rank     *int
	Position int
	UserID   int64
	UserName string
	TeamName string
	Points   int
}

// Filter narrows List results. Zero MatchID returns every contest.
type Filter struct {
	MatchID int64
}

const unknownName = "Unknown"

// OrderStandings numbers rows already ordered by points from 1 and fills
// missing user or team names. Stored ranks are left untouched.
func OrderStandings(rows []Standing) []Standing {
	out := make([]Standing, 0, len(rows))
	for i, row := range rows {
		row.Position = i + 1
		if strings.TrimSpace(row.UserName) == "" {
			row.UserName = unknownName
		}
		if strings.TrimSpace(row.TeamName) == "" {
			row.TeamName = unknownName
		}
		out = append(out, row)
	}
	return out
}
