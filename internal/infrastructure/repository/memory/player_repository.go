package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) ListByMatch(_ context.Context, matchID int64) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range s.players {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := s.players[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[p.MatchID]; !ok {
		return player.Player{}, fmt.Errorf("insert player %s: match %d does not exist", p.Name, p.MatchID)
	}
	return s.insertPlayerLocked(p), nil
}
