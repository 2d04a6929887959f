package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
)

type ContestRepository struct {
	store *Store
}

func NewContestRepository(store *Store) *ContestRepository {
	return &ContestRepository{store: store}
}

func (r *ContestRepository) List(_ context.Context, filter contest.Filter) ([]contest.Contest, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]contest.Contest, 0, len(s.contests))
	for _, c := range s.contests {
		if filter.MatchID > 0 && c.MatchID != filter.MatchID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ContestRepository) GetByID(_ context.Context, contestID int64) (contest.Contest, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.contests[contestID]
	return c, ok, nil
}

func (r *ContestRepository) Create(_ context.Context, c contest.Contest) (contest.Contest, error) {
	if err := c.Validate(); err != nil {
		return contest.Contest{}, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[c.MatchID]; !ok {
		return contest.Contest{}, fmt.Errorf("insert contest %s: match %d does not exist", c.Name, c.MatchID)
	}
	return s.insertContestLocked(c), nil
}

func (r *ContestRepository) Join(_ context.Context, input contest.JoinInput) (contest.Entry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contests[input.ContestID]
	if !ok {
		return contest.Entry{}, contest.ErrNotFound
	}
	key := entryKey{contestID: input.ContestID, userID: input.UserID}
	if _, joined := s.entryByUser[key]; joined {
		return contest.Entry{}, contest.ErrAlreadyJoined
	}
	if c.IsFull() {
		return contest.Entry{}, contest.ErrFull
	}
	if _, ok := s.teams[input.TeamID]; !ok {
		return contest.Entry{}, fmt.Errorf("insert contest entry: team %d does not exist", input.TeamID)
	}

	joinedAt := input.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = s.now().UTC()
	}

	s.seq.entry++
	entry := contest.Entry{
		ID:        s.seq.entry,
		ContestID: input.ContestID,
		UserID:    input.UserID,
		TeamID:    input.TeamID,
		JoinedAt:  joinedAt,
	}
	s.entries[entry.ID] = entry
	s.entryByUser[key] = entry.ID

	c.CurrentParticipants++
	s.contests[c.ID] = c

	return entry, nil
}

func (r *ContestRepository) HasEntry(_ context.Context, contestID, userID int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entryByUser[entryKey{contestID: contestID, userID: userID}]
	return ok, nil
}

func (r *ContestRepository) CountEntriesByUser(_ context.Context, userID int64) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, e := range s.entries {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *ContestRepository) Leaderboard(_ context.Context, contestID int64) ([]contest.Standing, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]contest.Entry, 0)
	for _, e := range s.entries {
		if e.ContestID == contestID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		if !entries[i].JoinedAt.Equal(entries[j].JoinedAt) {
			return entries[i].JoinedAt.Before(entries[j].JoinedAt)
		}
		return entries[i].ID < entries[j].ID
	})

	rows := make([]contest.Standing, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, contest.Standing{
			Rank:     e.Rank,
			UserID:   e.UserID,
			UserName: s.users[e.UserID].Name,
			TeamName: s.teams[e.TeamID].Name,
			Points:   e.Points,
		})
	}
	return contest.OrderStandings(rows), nil
}

// SetEntryPoints records the score of an entry. Scoring runs outside this
// service, so tests use it to shape leaderboards.
func (r *ContestRepository) SetEntryPoints(contestID, userID int64, points int) bool {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.entryByUser[entryKey{contestID: contestID, userID: userID}]
	if !ok {
		return false
	}
	e := s.entries[id]
	e.Points = points
	s.entries[id] = e
	return true
}

// SetEntryRank publishes the final rank of an entry.
func (r *ContestRepository) SetEntryRank(contestID, userID int64, rank int) bool {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.entryByUser[entryKey{contestID: contestID, userID: userID}]
	if !ok {
		return false
	}
	e := s.entries[id]
	e.Rank = &rank
	s.entries[id] = e
	return true
}
