package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	contestmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/contest"
	teammock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/team"
	usermock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	t.Parallel()

	userRepo := usermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	contestRepo := contestmock.NewRepository(t)

	const userID int64 = 42
	teamRepo.On("CountByUser", mock.Anything, userID).Return(4, nil).Once()
	contestRepo.On("CountEntriesByUser", mock.Anything, userID).Return(3, nil).Once()
	userRepo.On("GetByID", mock.Anything, userID).Return(user.User{ID: userID, TotalPoints: 512, ContestsWon: 1}, true, nil).Once()

	stats, err := NewDashboardService(userRepo, teamRepo, contestRepo).Stats(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, user.Stats{TotalTeams: 4, TotalContests: 3, TotalPoints: 512, ContestsWon: 1}, stats)
}

func TestDashboardService_Stats_PropagatesReadError(t *testing.T) {
	t.Parallel()

	userRepo := usermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	contestRepo := contestmock.NewRepository(t)

	boom := errors.New("connection reset")
	teamRepo.On("CountByUser", mock.Anything, int64(9)).Return(0, boom).Once()
	contestRepo.On("CountEntriesByUser", mock.Anything, int64(9)).Return(0, nil).Maybe()
	userRepo.On("GetByID", mock.Anything, int64(9)).Return(user.User{}, false, nil).Maybe()

	_, err := NewDashboardService(userRepo, teamRepo, contestRepo).Stats(context.Background(), 9)
	require.ErrorIs(t, err, boom)
}
