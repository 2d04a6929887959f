package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

type JoinContestInput struct {
	ContestID int64
	UserID    int64
	TeamID    int64
}

type ContestService struct {
	contestRepo contest.Repository
	teamRepo    team.Repository
	status      store.Status
	logger      *logging.Logger
	now         func() time.Time
}

func NewContestService(
	contestRepo contest.Repository,
	teamRepo team.Repository,
	status store.Status,
	logger *logging.Logger,
) *ContestService {
	if logger == nil {
		logger = logging.Default()
	}
	if status == nil {
		status = store.Attached()
	}

	return &ContestService{
		contestRepo: contestRepo,
		teamRepo:    teamRepo,
		status:      status,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ContestService) ListContests(ctx context.Context, matchID int64) ([]contest.Contest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.ListContests")
	defer span.End()

	if matchID < 0 {
		return nil, fmt.Errorf("%w: match id must not be negative", ErrInvalidInput)
	}

	items, err := s.contestRepo.List(ctx, contest.Filter{MatchID: matchID})
	if err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}
	return items, nil
}

func (s *ContestService) GetContest(ctx context.Context, contestID int64) (contest.Contest, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.GetContest")
	defer span.End()

	if contestID <= 0 {
		return contest.Contest{}, false, fmt.Errorf("%w: contest id is required", ErrInvalidInput)
	}

	item, found, err := s.contestRepo.GetByID(ctx, contestID)
	if err != nil {
		return contest.Contest{}, false, fmt.Errorf("get contest: %w", err)
	}
	return item, found, nil
}

// JoinContest enters the user's team into a contest. Capacity and the one
// entry per user rule are enforced by the repository in a single atomic step.
func (s *ContestService) JoinContest(ctx context.Context, input JoinContestInput) (contest.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.JoinContest")
	defer span.End()

	if input.UserID <= 0 {
		return contest.Entry{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	if input.ContestID <= 0 || input.TeamID <= 0 {
		return contest.Entry{}, fmt.Errorf("%w: contest id and team id are required", ErrInvalidInput)
	}
	if !s.status.Available() {
		s.logger.ErrorContext(ctx, "cannot join contest without store", "contest_id", input.ContestID, "user_id", input.UserID)
		return contest.Entry{}, fmt.Errorf("join contest: %w", store.ErrUnavailable)
	}

	c, found, err := s.contestRepo.GetByID(ctx, input.ContestID)
	if err != nil {
		return contest.Entry{}, fmt.Errorf("get contest: %w", err)
	}
	if !found {
		return contest.Entry{}, fmt.Errorf("%w: %w", ErrNotFound, contest.ErrNotFound)
	}

	t, found, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return contest.Entry{}, fmt.Errorf("get team: %w", err)
	}
	if !found || t.UserID != input.UserID {
		return contest.Entry{}, fmt.Errorf("%w: team id=%d", ErrNotFound, input.TeamID)
	}
	if t.MatchID != c.MatchID {
		return contest.Entry{}, fmt.Errorf("%w: team belongs to another match", ErrInvalidInput)
	}

	entry, err := s.contestRepo.Join(ctx, contest.JoinInput{
		ContestID: input.ContestID,
		UserID:    input.UserID,
		TeamID:    input.TeamID,
		JoinedAt:  s.now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, contest.ErrAlreadyJoined), errors.Is(err, contest.ErrFull):
			s.logger.WarnContext(ctx, "contest join rejected", "contest_id", input.ContestID, "user_id", input.UserID, "error", err)
			return contest.Entry{}, fmt.Errorf("%w: %w", ErrConflict, err)
		case errors.Is(err, contest.ErrNotFound):
			return contest.Entry{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		default:
			markUsecaseSpanError(span, err)
			s.logger.ErrorContext(ctx, "join contest failed", "contest_id", input.ContestID, "user_id", input.UserID, "error", err)
			return contest.Entry{}, fmt.Errorf("join contest: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "contest joined",
		"contest_id", entry.ContestID,
		"user_id", entry.UserID,
		"team_id", entry.TeamID,
	)
	return entry, nil
}

func (s *ContestService) Leaderboard(ctx context.Context, contestID int64) ([]contest.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContestService.Leaderboard")
	defer span.End()

	if contestID <= 0 {
		return nil, fmt.Errorf("%w: contest id is required", ErrInvalidInput)
	}

	rows, err := s.contestRepo.Leaderboard(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("contest leaderboard: %w", err)
	}
	return rows, nil
}
