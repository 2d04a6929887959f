package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]match.Match, 0, len(s.matches))
	for _, m := range s.matches {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.Before(out[j].MatchDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[matchID]
	return m, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	if err := m.Validate(); err != nil {
		return match.Match{}, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertMatchLocked(m), nil
}
