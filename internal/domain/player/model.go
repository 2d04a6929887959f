package player

import "fmt"

// Role represents cricket player roles used in roster building.
type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all-rounder"
	RoleWicketKeeper Role = "wicket-keeper"
)

var AllRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

// Stats are cumulative performance counters maintained by the scoring process.
type Stats struct {
	Runs         int
	Balls        int
	Fours        int
	Sixes        int
	Wickets      int
	Maidens      int
	Catches      int
	Stumpings    int
	RunOuts      int
	OversBowled  int
	RunsConceded int
}

// Player is a selectable cricketer in one match.
type Player struct {
	ID           int64
	MatchID      int64
	Name         string
	Team         string
	TeamShort    string
	Role         Role
	Credits      int
	ImageURL     string
	BattingStyle string
	BowlingStyle string
	TotalPoints  int
	Stats        Stats
}

func (p Player) Validate() error {
	if p.MatchID <= 0 {
		return fmt.Errorf("player match id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Team == "" || p.TeamShort == "" {
		return fmt.Errorf("player team is required")
	}
	if _, ok := AllRoles[p.Role]; !ok {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.Credits <= 0 {
		return fmt.Errorf("player credits must be greater than zero")
	}

	return nil
}
