package team

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

// Team is a user's fantasy roster for one match.
type Team struct {
	ID            int64
	UserID        int64
	MatchID       int64
	Name          string
	CaptainID     int64
	ViceCaptainID int64
	TotalCredits  int
	TotalPoints   int
	CreatedAt     time.Time
}

// Member is one roster slot.
type Member struct {
	TeamID        int64
	PlayerID      int64
	IsCaptain     bool
	IsViceCaptain bool
	Points        int
}

// RosterPlayer is a player joined with its roster flags.
type RosterPlayer struct {
	player.Player
	IsCaptain        bool
	IsViceCaptain    bool
	TeamPlayerPoints int
}

// WithPlayers is the aggregate returned by roster lookups.
type WithPlayers struct {
	Team
	Players []RosterPlayer
}

// BuildMembers turns an ordered roster into member rows flagged for the team's captain and vice-captain.
func BuildMembers(t Team, playerIDs []int64) []Member {
	out := make([]Member, 0, len(playerIDs))
	for _, id := range playerIDs {
		out = append(out, Member{
			TeamID:        t.ID,
			PlayerID:      id,
			IsCaptain:     id == t.CaptainID,
			IsViceCaptain: id == t.ViceCaptainID,
		})
	}
	return out
}
