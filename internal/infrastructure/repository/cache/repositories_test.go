package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
)

type countingPlayerRepository struct {
	player.Repository
	getByIDsCalls int
}

func (r *countingPlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	r.getByIDsCalls++
	return r.Repository.GetByIDs(ctx, playerIDs)
}

func seedMatch(t *testing.T, store *memory.Store) (match.Match, []player.Player) {
	t.Helper()

	m, err := memory.NewMatchRepository(store).Create(t.Context(), match.Match{
		Team1: "Mumbai Indians", Team1Short: "MI",
		Team2: "Chennai Super Kings", Team2Short: "CSK",
		Tournament: "IPL 2026", Venue: "Wankhede Stadium, Mumbai",
		MatchDate: time.Date(2026, 3, 22, 19, 30, 0, 0, time.UTC),
		Status:    match.StatusUpcoming,
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	players := memory.NewPlayerRepository(store)
	var out []player.Player
	for _, name := range []string{"Rohit Sharma", "Jasprit Bumrah", "MS Dhoni"} {
		p, err := players.Create(t.Context(), player.Player{
			MatchID: m.ID, Name: name, Team: "Mumbai Indians", TeamShort: "MI",
			Role: player.RoleBatsman, Credits: 9,
		})
		if err != nil {
			t.Fatalf("create player: %v", err)
		}
		out = append(out, p)
	}
	return m, out
}

func TestPlayerRepository_GetByIDs_CachesBySetAndKeepsOrder(t *testing.T) {
	store := memory.NewStore()
	_, seeded := seedMatch(t, store)

	next := &countingPlayerRepository{Repository: memory.NewPlayerRepository(store)}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.GetByIDs(t.Context(), []int64{seeded[2].ID, seeded[0].ID})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	second, err := repo.GetByIDs(t.Context(), []int64{seeded[0].ID, seeded[2].ID})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}

	if next.getByIDsCalls != 1 {
		t.Fatalf("expected one underlying lookup for the same id set, got %d", next.getByIDsCalls)
	}
	if first[0].ID != seeded[2].ID || first[1].ID != seeded[0].ID {
		t.Fatalf("first result not in request order: %+v", first)
	}
	if second[0].ID != seeded[0].ID || second[1].ID != seeded[2].ID {
		t.Fatalf("second result not in request order: %+v", second)
	}
}

func TestPurge_DropsMatchReads(t *testing.T) {
	store := memory.NewStore()
	m, _ := seedMatch(t, store)

	cacheStore := basecache.NewStore(time.Minute)
	repo := NewMatchRepository(memory.NewMatchRepository(store), cacheStore)

	items, err := repo.List(t.Context(), match.Filter{})
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one match, got %d err=%v", len(items), err)
	}
	if _, found, _ := repo.GetByID(t.Context(), m.ID+1); found {
		t.Fatalf("unexpected match %d", m.ID+1)
	}

	if _, err := memory.NewMatchRepository(store).Create(t.Context(), match.Match{
		Team1: "Delhi Capitals", Team1Short: "DC",
		Team2: "Rajasthan Royals", Team2Short: "RR",
		Tournament: "IPL 2026", Venue: "Arun Jaitley Stadium, Delhi",
		MatchDate: time.Date(2026, 3, 24, 19, 30, 0, 0, time.UTC),
		Status:    match.StatusUpcoming,
	}); err != nil {
		t.Fatalf("create match behind the cache: %v", err)
	}

	items, _ = repo.List(t.Context(), match.Filter{})
	if len(items) != 1 {
		t.Fatalf("expected cached list before purge, got %d", len(items))
	}

	Purge(t.Context(), cacheStore)

	items, _ = repo.List(t.Context(), match.Filter{})
	if len(items) != 2 {
		t.Fatalf("expected fresh list after purge, got %d", len(items))
	}
	if _, found, _ := repo.GetByID(t.Context(), m.ID+1); !found {
		t.Fatalf("cached miss should be purged")
	}
}
