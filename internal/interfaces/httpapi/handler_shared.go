package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type createTeamRequest struct {
	MatchID       int64   `json:"matchId" validate:"gt=0"`
	Name          string  `json:"name" validate:"min=1,max=50"`
	CaptainID     int64   `json:"captainId" validate:"gt=0"`
	ViceCaptainID int64   `json:"viceCaptainId" validate:"gt=0"`
	PlayerIDs     []int64 `json:"playerIds" validate:"len=11,dive,gt=0"`
	TotalCredits  int     `json:"totalCredits" validate:"gte=0,max=100"`
}

type joinContestRequest struct {
	ContestID int64 `json:"contestId" validate:"gt=0"`
	TeamID    int64 `json:"teamId" validate:"gt=0"`
}

type submitContactRequest struct {
	Name    string `json:"name" validate:"min=1,max=255"`
	Email   string `json:"email" validate:"required,email,max=320"`
	Subject string `json:"subject" validate:"omitempty,max=500"`
	Message string `json:"message" validate:"min=1,max=5000"`
}

type globalLeaderboardQuery struct {
	Limit int `validate:"min=1,max=100"`
}

type userDTO struct {
	ID            int64     `json:"id"`
	OpenID        string    `json:"openId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LoginMethod   string    `json:"loginMethod"`
	Role          string    `json:"role"`
	Avatar        string    `json:"avatar,omitempty"`
	TotalPoints   int       `json:"totalPoints"`
	MatchesPlayed int       `json:"matchesPlayed"`
	ContestsWon   int       `json:"contestsWon"`
	CreatedAt     time.Time `json:"createdAt"`
	LastSignedIn  time.Time `json:"lastSignedIn"`
}

type matchDTO struct {
	ID         int64     `json:"id"`
	Team1      string    `json:"team1"`
	Team1Short string    `json:"team1Short"`
	Team2      string    `json:"team2"`
	Team2Short string    `json:"team2Short"`
	Tournament string    `json:"tournament"`
	Venue      string    `json:"venue"`
	MatchDate  time.Time `json:"matchDate"`
	Status     string    `json:"status"`
	Team1Score string    `json:"team1Score,omitempty"`
	Team2Score string    `json:"team2Score,omitempty"`
	Result     string    `json:"result,omitempty"`
}

type playerDTO struct {
	ID           int64  `json:"id"`
	MatchID      int64  `json:"matchId"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	TeamShort    string `json:"teamShort"`
	Role         string `json:"role"`
	Credits      int    `json:"credits"`
	ImageURL     string `json:"imageUrl,omitempty"`
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
	TotalPoints  int    `json:"totalPoints"`
	Runs         int    `json:"runs"`
	Balls        int    `json:"balls"`
	Fours        int    `json:"fours"`
	Sixes        int    `json:"sixes"`
	Wickets      int    `json:"wickets"`
	Maidens      int    `json:"maidens"`
	Catches      int    `json:"catches"`
	Stumpings    int    `json:"stumpings"`
	RunOuts      int    `json:"runOuts"`
	OversBowled  int    `json:"oversBowled"`
	RunsConceded int    `json:"runsConceded"`
}

type teamDTO struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	MatchID       int64     `json:"matchId"`
	Name          string    `json:"name"`
	CaptainID     int64     `json:"captainId"`
	ViceCaptainID int64     `json:"viceCaptainId"`
	TotalCredits  int       `json:"totalCredits"`
	TotalPoints   int       `json:"totalPoints"`
	CreatedAt     time.Time `json:"createdAt"`
}

type rosterPlayerDTO struct {
	playerDTO
	IsCaptain        bool `json:"isCaptain"`
	IsViceCaptain    bool `json:"isViceCaptain"`
	TeamPlayerPoints int  `json:"teamPlayerPoints"`
}

type teamWithPlayersDTO struct {
	teamDTO
	Players []rosterPlayerDTO `json:"players"`
}

type createdTeamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type contestDTO struct {
	ID                  int64     `json:"id"`
	MatchID             int64     `json:"matchId"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	EntryFee            int       `json:"entryFee"`
	PrizeDescription    string    `json:"prizeDescription,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Rank is null until the contest is scored.
type contestStandingDTO struct {
	Rank     *int   `json:"rank"`
	Position int    `json:"position"`
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	TeamName string `json:"teamName"`
	Points   int    `json:"points"`
}

type globalLeaderboardDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TotalPoints   int    `json:"totalPoints"`
	MatchesPlayed int    `json:"matchesPlayed"`
	ContestsWon   int    `json:"contestsWon"`
}

type userStatsDTO struct {
	TotalTeams    int `json:"totalTeams"`
	TotalContests int `json:"totalContests"`
	TotalPoints   int `json:"totalPoints"`
	ContestsWon   int `json:"contestsWon"`
}

type contactSubmittedDTO struct {
	ID      int64 `json:"id"`
	Success bool  `json:"success"`
}

type successDTO struct {
	Success bool `json:"success"`
}

type seedResultDTO struct {
	Seeded  bool   `json:"seeded"`
	Message string `json:"message"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:            u.ID,
		OpenID:        u.OpenID,
		Name:          u.Name,
		Email:         u.Email,
		LoginMethod:   u.LoginMethod,
		Role:          string(u.Role),
		Avatar:        u.Avatar,
		TotalPoints:   u.TotalPoints,
		MatchesPlayed: u.MatchesPlayed,
		ContestsWon:   u.ContestsWon,
		CreatedAt:     u.CreatedAt,
		LastSignedIn:  u.LastSignedIn,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		Team1:      m.Team1,
		Team1Short: m.Team1Short,
		Team2:      m.Team2,
		Team2Short: m.Team2Short,
		Tournament: m.Tournament,
		Venue:      m.Venue,
		MatchDate:  m.MatchDate,
		Status:     string(m.Status),
		Team1Score: m.Team1Score,
		Team2Score: m.Team2Score,
		Result:     m.Result,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		MatchID:      p.MatchID,
		Name:         p.Name,
		Team:         p.Team,
		TeamShort:    p.TeamShort,
		Role:         string(p.Role),
		Credits:      p.Credits,
		ImageURL:     p.ImageURL,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		TotalPoints:  p.TotalPoints,
		Runs:         p.Stats.Runs,
		Balls:        p.Stats.Balls,
		Fours:        p.Stats.Fours,
		Sixes:        p.Stats.Sixes,
		Wickets:      p.Stats.Wickets,
		Maidens:      p.Stats.Maidens,
		Catches:      p.Stats.Catches,
		Stumpings:    p.Stats.Stumpings,
		RunOuts:      p.Stats.RunOuts,
		OversBowled:  p.Stats.OversBowled,
		RunsConceded: p.Stats.RunsConceded,
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:            t.ID,
		UserID:        t.UserID,
		MatchID:       t.MatchID,
		Name:          t.Name,
		CaptainID:     t.CaptainID,
		ViceCaptainID: t.ViceCaptainID,
		TotalCredits:  t.TotalCredits,
		TotalPoints:   t.TotalPoints,
		CreatedAt:     t.CreatedAt,
	}
}

func teamWithPlayersToDTO(v team.WithPlayers) teamWithPlayersDTO {
	players := make([]rosterPlayerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, rosterPlayerDTO{
			playerDTO:        playerToDTO(p.Player),
			IsCaptain:        p.IsCaptain,
			IsViceCaptain:    p.IsViceCaptain,
			TeamPlayerPoints: p.TeamPlayerPoints,
		})
	}
	return teamWithPlayersDTO{teamDTO: teamToDTO(v.Team), Players: players}
}

func contestToDTO(c contest.Contest) contestDTO {
	return contestDTO{
		ID:                  c.ID,
		MatchID:             c.MatchID,
		Name:                c.Name,
		Description:         c.Description,
		MaxParticipants:     c.MaxParticipants,
		CurrentParticipants: c.CurrentParticipants,
		EntryFee:            c.EntryFee,
		PrizeDescription:    c.PrizeDescription,
		Status:              string(c.Status),
		CreatedAt:           c.CreatedAt,
	}
}

func standingToDTO(s contest.Standing) contestStandingDTO {
	return contestStandingDTO{
		Rank:     s.Rank,
		Position: s.Position,
		UserID:   s.UserID,
		UserName: s.UserName,
		TeamName: s.TeamName,
		Points:   s.Points,
	}
}

func leaderboardEntryToDTO(e usecase.LeaderboardEntry) globalLeaderboardDTO {
	return globalLeaderboardDTO{
		ID:            e.ID,
		Name:          e.Name,
		TotalPoints:   e.TotalPoints,
		MatchesPlayed: e.MatchesPlayed,
		ContestsWon:   e.ContestsWon,
	}
}

func statsToDTO(s user.Stats) userStatsDTO {
	return userStatsDTO{
		TotalTeams:    s.TotalTeams,
		TotalContests: s.TotalContests,
		TotalPoints:   s.TotalPoints,
		ContestsWon:   s.ContestsWon,
	}
}

func contactToDTO(m contact.Message) contactSubmittedDTO {
	return contactSubmittedDTO{ID: m.ID, Success: true}
}
