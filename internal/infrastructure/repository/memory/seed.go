package memory

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
)

type SeedRepository struct {
	store *Store
}

func NewSeedRepository(store *Store) *SeedRepository {
	return &SeedRepository{store: store}
}

func (r *SeedRepository) Seed(_ context.Context, bundles []match.SeedBundle) (bool, error) {
	for _, bundle := range bundles {
		if err := bundle.Match.Validate(); err != nil {
			return false, err
		}
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.matches) > 0 {
		return false, nil
	}

	for _, bundle := range bundles {
		created := s.insertMatchLocked(bundle.Match)
		for _, p := range bundle.Players {
			p.MatchID = created.ID
			s.insertPlayerLocked(p)
		}
		for _, c := range bundle.Contests {
			c.MatchID = created.ID
			s.insertContestLocked(c)
		}
	}
	return true, nil
}
