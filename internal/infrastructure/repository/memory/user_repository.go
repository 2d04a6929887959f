package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Upsert(_ context.Context, input user.UpsertInput) (user.User, error) {
	if err := input.Validate(); err != nil {
		return user.User{}, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	signedIn := input.LastSignedIn
	if signedIn.IsZero() {
		signedIn = now
	}

	if id, ok := s.userByOpenID[input.OpenID]; ok {
		u := s.users[id]
		if strings.TrimSpace(input.Name) != "" {
			u.Name = input.Name
		}
		if strings.TrimSpace(input.Email) != "" {
			u.Email = input.Email
		}
		if strings.TrimSpace(input.LoginMethod) != "" {
			u.LoginMethod = input.LoginMethod
		}
		if input.Role != "" {
			u.Role = input.Role
		}
		u.LastSignedIn = signedIn
		u.UpdatedAt = now
		s.users[id] = u
		return u, nil
	}

	role := input.Role
	if role == "" {
		role = user.RoleUser
	}

	s.seq.user++
	u := user.User{
		ID:           s.seq.user,
		OpenID:       input.OpenID,
		Name:         input.Name,
		Email:        input.Email,
		LoginMethod:  input.LoginMethod,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSignedIn: signedIn,
	}
	s.users[u.ID] = u
	s.userByOpenID[u.OpenID] = u.ID
	return u, nil
}

func (r *UserRepository) GetByOpenID(_ context.Context, openID string) (user.User, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userByOpenID[openID]
	if !ok {
		return user.User{}, false, nil
	}
	return s.users[id], true, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	return u, ok, nil
}

func (r *UserRepository) ListTopByPoints(_ context.Context, limit int) ([]user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SetPoints overwrites the scoring counters of a user. Scoring runs outside
// this service, so tests use it to shape leaderboards.
func (r *UserRepository) SetPoints(userID int64, totalPoints, matchesPlayed, contestsWon int) bool {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return false
	}
	u.TotalPoints = totalPoints
	u.MatchesPlayed = matchesPlayed
	u.ContestsWon = contestsWon
	s.users[userID] = u
	return true
}
