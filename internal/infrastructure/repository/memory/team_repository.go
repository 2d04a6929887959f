package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team, members []team.Member) (team.Team, error) {
	if len(members) == 0 {
		return team.Team{}, fmt.Errorf("team members are required")
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[t.MatchID]; !ok {
		return team.Team{}, fmt.Errorf("insert team: match %d does not exist", t.MatchID)
	}
	seen := make(map[int64]struct{}, len(members))
	for _, m := range members {
		if _, ok := s.players[m.PlayerID]; !ok {
			return team.Team{}, fmt.Errorf("insert team players: player %d does not exist", m.PlayerID)
		}
		if _, dup := seen[m.PlayerID]; dup {
			return team.Team{}, fmt.Errorf("insert team players: player %d listed twice", m.PlayerID)
		}
		seen[m.PlayerID] = struct{}{}
	}

	s.seq.team++
	t.ID = s.seq.team
	t.TotalPoints = 0
	t.CreatedAt = s.now().UTC()
	s.teams[t.ID] = t

	stored := make([]team.Member, 0, len(members))
	for _, m := range members {
		m.TeamID = t.ID
		stored = append(stored, m)
	}
	s.members[t.ID] = stored

	return t, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[teamID]
	return t, ok, nil
}

func (r *TeamRepository) ListByUser(_ context.Context, userID int64) ([]team.Team, error) {
	return r.list(func(t team.Team) bool { return t.UserID == userID }), nil
}

func (r *TeamRepository) ListByUserAndMatch(_ context.Context, userID, matchID int64) ([]team.Team, error) {
	return r.list(func(t team.Team) bool { return t.UserID == userID && t.MatchID == matchID }), nil
}

func (r *TeamRepository) list(keep func(team.Team) bool) []team.Team {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, t := range s.teams {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *TeamRepository) ListMembers(_ context.Context, teamID int64) ([]team.Member, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]team.Member(nil), s.members[teamID]...), nil
}

func (r *TeamRepository) CountByUser(_ context.Context, userID int64) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, t := range s.teams {
		if t.UserID == userID {
			count++
		}
	}
	return count, nil
}
