package offline

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

func TestReadsDegradeToEmpty(t *testing.T) {
	ctx := t.Context()

	matches, err := MatchRepository{}.List(ctx, match.Filter{})
	if err != nil || matches == nil || len(matches) != 0 {
		t.Fatalf("expected empty match list, got %v err=%v", matches, err)
	}
	if _, found, err := (TeamRepository{}).GetByID(ctx, 1); found || err != nil {
		t.Fatalf("expected missing team without error, found=%v err=%v", found, err)
	}
	standings, err := ContestRepository{}.Leaderboard(ctx, 1)
	if err != nil || len(standings) != 0 {
		t.Fatalf("expected empty leaderboard, got %v err=%v", standings, err)
	}
	top, err := UserRepository{}.ListTopByPoints(ctx, 20)
	if err != nil || len(top) != 0 {
		t.Fatalf("expected empty global leaderboard, got %v err=%v", top, err)
	}
}

func TestWritesReportUnavailable(t *testing.T) {
	ctx := t.Context()

	cases := map[string]error{}
	_, cases["user upsert"] = UserRepository{}.Upsert(ctx, user.UpsertInput{OpenID: "x"})
	_, cases["team create"] = TeamRepository{}.Create(ctx, team.Team{}, nil)
	_, cases["contest join"] = ContestRepository{}.Join(ctx, contest.JoinInput{})
	_, cases["contact create"] = ContactRepository{}.Create(ctx, contact.Message{})
	_, cases["seed"] = SeedRepository{}.Seed(ctx, nil)

	for name, err := range cases {
		if !errors.Is(err, store.ErrUnavailable) {
			t.Fatalf("%s: expected store.ErrUnavailable, got %v", name, err)
		}
	}
}
