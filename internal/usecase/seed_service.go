package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const (
	SeedMessageAlreadySeeded = "Data already seeded"
	SeedMessageSeeded        = "Data seeded successfully"
)

type SeedResult struct {
	Seeded  bool
	Message string
}

type SeedService struct {
	seeder     match.Seeder
	status     store.Status
	invalidate func(context.Context)
	logger     *logging.Logger
}

// NewSeedService builds the demo data seeder. invalidate runs after a
// successful seed so cached match and player reads are refreshed.
func NewSeedService(seeder match.Seeder, status store.Status, invalidate func(context.Context), logger *logging.Logger) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}
	if status == nil {
		status = store.Attached()
	}
	return &SeedService{
		seeder:     seeder,
		status:     status,
		invalidate: invalidate,
		logger:     logger,
	}
}

func (s *SeedService) SeedMatchData(ctx context.Context) (SeedResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.SeedMatchData")
	defer span.End()

	if !s.status.Available() {
		s.logger.ErrorContext(ctx, "cannot seed match data without store")
		return SeedResult{}, fmt.Errorf("seed match data: %w", store.ErrUnavailable)
	}

	seeded, err := s.seeder.Seed(ctx, SeedBundles())
	if err != nil {
		markUsecaseSpanError(span, err)
		s.logger.ErrorContext(ctx, "seed match data failed", "error", err)
		return SeedResult{}, fmt.Errorf("seed match data: %w", err)
	}
	if !seeded {
		return SeedResult{Seeded: false, Message: SeedMessageAlreadySeeded}, nil
	}

	if s.invalidate != nil {
		s.invalidate(ctx)
	}
	s.logger.InfoContext(ctx, "match data seeded", "matches", len(seedFixtures))
	return SeedResult{Seeded: true, Message: SeedMessageSeeded}, nil
}
