package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
)

type DashboardService struct {
	userRepo    user.Repository
	teamRepo    team.Repository
	contestRepo contest.Repository
}

func NewDashboardService(userRepo user.Repository, teamRepo team.Repository, contestRepo contest.Repository) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		contestRepo: contestRepo,
	}
}

// Stats summarises a user's activity. The three reads are independent and run
// concurrently; a missing user row contributes zero points.
func (s *DashboardService) Stats(ctx context.Context, userID int64) (user.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Stats")
	defer span.End()

	var (
		stats   user.Stats
		profile user.User
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		count, err := s.teamRepo.CountByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count teams: %w", err)
		}
		stats.TotalTeams = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.contestRepo.CountEntriesByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count contest entries: %w", err)
		}
		stats.TotalContests = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		u, _, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		profile = u
		return nil
	})
	if err := p.Wait(); err != nil {
		markUsecaseSpanError(span, err)
		return user.Stats{}, err
	}

	stats.TotalPoints = profile.TotalPoints
	stats.ContestsWon = profile.ContestsWon
	return stats, nil
}
