package match

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// Match is a real-world fixture between two sides.
type Match struct {
	ID         int64
	Team1      string
	Team1Short string
	Team2      string
	Team2Short string
	Tournament string
	Venue      string
	MatchDate  time.Time
	Status     Status
	Team1Score string
	Team2Score string
	Result     string
	CreatedAt  time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Team1) == "" || strings.TrimSpace(m.Team2) == "" {
		return fmt.Errorf("match teams are required")
	}
	if strings.TrimSpace(m.Team1Short) == "" || strings.TrimSpace(m.Team2Short) == "" {
		return fmt.Errorf("match team short codes are required")
	}
	if strings.TrimSpace(m.Tournament) == "" {
		return fmt.Errorf("match tournament is required")
	}
	if strings.TrimSpace(m.Venue) == "" {
		return fmt.Errorf("match venue is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	switch m.Status {
	case StatusUpcoming, StatusLive, StatusCompleted:
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	return nil
}

// Filter narrows List results. An empty Status returns every match.
type Filter struct {
	Status Status
}
