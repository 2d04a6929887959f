package match

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
}

// SeedBundle is one match with the players and contests created alongside it.
type SeedBundle struct {
	Match    Match
	Players  []player.Player
	Contests []contest.Contest
}

// Seeder writes demo data. Seed reports false without writing when any match exists.
type Seeder interface {
	Seed(ctx context.Context, bundles []SeedBundle) (bool, error)
}
