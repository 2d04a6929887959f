package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// ListMatches returns matches ordered by start time. An empty status lists every
// match and a status no match can have lists none.
func (s *MatchService) ListMatches(ctx context.Context, status string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	filter := match.Filter{Status: match.Status(strings.TrimSpace(status))}
	switch filter.Status {
	case "", match.StatusUpcoming, match.StatusLive, match.StatusCompleted:
	default:
		return []match.Match{}, nil
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (match.Match, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, false, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return item, found, nil
}
