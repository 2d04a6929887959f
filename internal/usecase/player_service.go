package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayersByMatch(ctx context.Context, matchID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByMatch")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list players by match: %w", err)
	}
	return players, nil
}
