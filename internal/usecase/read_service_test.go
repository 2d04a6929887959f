package usecase

import (
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/offline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchService_ListMatches_OrderedAndFiltered(t *testing.T) {
	fx := newTestFixture(t)
	service := NewMatchService(fx.matches)

	items, err := service.ListMatches(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, items, 6)
	for i := 1; i < len(items); i++ {
		if items[i].MatchDate.Before(items[i-1].MatchDate) {
			t.Fatalf("matches not ordered by date at %d: %v before %v", i, items[i].MatchDate, items[i-1].MatchDate)
		}
	}
	assert.Equal(t, "MI", items[0].Team1Short)
	assert.Equal(t, "IND", items[5].Team1Short)

	upcoming, err := service.ListMatches(t.Context(), "upcoming")
	require.NoError(t, err)
	assert.Len(t, upcoming, 6)

	live, err := service.ListMatches(t.Context(), "live")
	require.NoError(t, err)
	assert.Empty(t, live)

	postponed, err := service.ListMatches(t.Context(), "postponed")
	require.NoError(t, err)
	assert.NotNil(t, postponed)
	assert.Empty(t, postponed)
}

func TestReads_StoreAbsentReturnEmpty(t *testing.T) {
	ctx := t.Context()

	matches, err := NewMatchService(offline.MatchRepository{}).ListMatches(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, found, err := NewMatchService(offline.MatchRepository{}).GetMatch(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	players, err := NewPlayerService(offline.PlayerRepository{}).ListPlayersByMatch(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, players)

	contests := NewContestService(offline.ContestRepository{}, offline.TeamRepository{}, store.Detached(), nil)
	list, err := contests.ListContests(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	rows, err := contests.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)

	teams := NewTeamService(offline.MatchRepository{}, offline.PlayerRepository{}, offline.TeamRepository{}, store.Detached(), team.DefaultRules(), nil)
	mine, err := teams.ListUserTeams(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)
	_, found, err = teams.GetTeamWithPlayers(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, found)

	top, err := NewLeaderboardService(offline.UserRepository{}).Global(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	stats, err := NewDashboardService(offline.UserRepository{}, offline.TeamRepository{}, offline.ContestRepository{}).Stats(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestPlayerService_ListPlayersByMatch(t *testing.T) {
	fx := newTestFixture(t)
	service := NewPlayerService(fx.players)

	players, err := service.ListPlayersByMatch(t.Context(), fx.first.ID)
	require.NoError(t, err)
	require.Len(t, players, 22)
	for _, p := range players {
		assert.Equal(t, fx.first.ID, p.MatchID)
	}

	_, err = service.ListPlayersByMatch(t.Context(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

}
