package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

const (
	DefaultLeaderboardLimit = 20
	MaxLeaderboardLimit     = 100
)

// LeaderboardEntry is one row of the global ranking.
type LeaderboardEntry struct {
	ID            int64
	Name          string
	TotalPoints   int
	MatchesPlayed int
	ContestsWon   int
}

type LeaderboardService struct {
	userRepo user.Repository
}

func NewLeaderboardService(userRepo user.Repository) *LeaderboardService {
	return &LeaderboardService{userRepo: userRepo}
}

// Global ranks users by total points. A zero limit selects the default.
func (s *LeaderboardService) Global(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Global")
	defer span.End()

	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 1 || limit > MaxLeaderboardLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLeaderboardLimit)
	}

	users, err := s.userRepo.ListTopByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top users: %w", err)
	}

	out := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		out = append(out, LeaderboardEntry{
			ID:            u.ID,
			Name:          u.Name,
			TotalPoints:   u.TotalPoints,
			MatchesPlayed: u.MatchesPlayed,
			ContestsWon:   u.ContestsWon,
		})
	}
	return out, nil
}
