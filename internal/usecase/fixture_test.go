package usecase

import (
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// testFixture is a memory store seeded with the demo fixtures.
type testFixture struct {
	store    *memory.Store
	users    *memory.UserRepository
	matches  *memory.MatchRepository
	players  *memory.PlayerRepository
	teams    *memory.TeamRepository
	contests *memory.ContestRepository
	contacts *memory.ContactRepository

	teamService    *TeamService
	contestService *ContestService

	// first and second are the MI v CSK and RCB v KKR fixtures.
	first  match.Match
	second match.Match
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	s := memory.NewStore()
	fx := &testFixture{
		store:    s,
		users:    memory.NewUserRepository(s),
		matches:  memory.NewMatchRepository(s),
		players:  memory.NewPlayerRepository(s),
		teams:    memory.NewTeamRepository(s),
		contests: memory.NewContestRepository(s),
		contacts: memory.NewContactRepository(s),
	}

	seeded, err := memory.NewSeedRepository(s).Seed(t.Context(), SeedBundles())
	if err != nil || !seeded {
		t.Fatalf("seed fixture: seeded=%v err=%v", seeded, err)
	}

	all, err := fx.matches.List(t.Context(), match.Filter{})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	for _, m := range all {
		switch m.Team1Short {
		case "MI":
			fx.first = m
		case "RCB":
			fx.second = m
		}
	}
	if fx.first.ID == 0 || fx.second.ID == 0 {
		t.Fatalf("seeded fixtures missing: %+v", all)
	}

	logger := logging.NewNop()
	fx.teamService = NewTeamService(fx.matches, fx.players, fx.teams, store.Attached(), team.DefaultRules(), logger)
	fx.contestService = NewContestService(fx.contests, fx.teams, store.Attached(), logger)
	return fx
}

func (fx *testFixture) user(t *testing.T, openID, name string) user.User {
	t.Helper()

	u, err := fx.users.Upsert(t.Context(), user.UpsertInput{OpenID: openID, Name: name})
	if err != nil {
		t.Fatalf("upsert user %s: %v", openID, err)
	}
	return u
}

// squad returns the players of one side of a match keyed by name.
func (fx *testFixture) squad(t *testing.T, matchID int64, teamShort string) map[string]player.Player {
	t.Helper()

	all, err := fx.players.ListByMatch(t.Context(), matchID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	out := make(map[string]player.Player)
	for _, p := range all {
		if p.TeamShort == teamShort {
			out[p.Name] = p
		}
	}
	return out
}

func ids(players map[string]player.Player, names ...string) []int64 {
	out := make([]int64, 0, len(names))
	for _, name := range names {
		out = append(out, players[name].ID)
	}
	return out
}

var miEleven = []string{
	"Rohit Sharma",
	"Ishan Kishan",
	"Suryakumar Yadav",
	"Tilak Varma",
	"Hardik Pandya",
	"Tim David",
	"Jasprit Bumrah",
	"Piyush Chawla",
	"Akash Madhwal",
	"Gerald Coetzee",
	"Naman Dhir",
}

// validTeamInput builds an 11-player MI roster worth 94 credits.
func (fx *testFixture) validTeamInput(t *testing.T, userID int64, name string) CreateTeamInput {
	t.Helper()

	mi := fx.squad(t, fx.first.ID, "MI")
	return CreateTeamInput{
		UserID:        userID,
		MatchID:       fx.first.ID,
		Name:          name,
		CaptainID:     mi["Rohit Sharma"].ID,
		ViceCaptainID: mi["Jasprit Bumrah"].ID,
		PlayerIDs:     ids(mi, miEleven...),
		TotalCredits:  94,
	}
}

func (fx *testFixture) createTeam(t *testing.T, userID int64, name string) team.Team {
	t.Helper()

	created, err := fx.teamService.CreateTeam(t.Context(), fx.validTeamInput(t, userID, name))
	if err != nil {
		t.Fatalf("create team %s: %v", name, err)
	}
	return created
}
