package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wantInsertTeam = oneLine(`INSERT INTO teams (user_id, match_id, name, captain_id, vice_captain_id, total_credits)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, match_id, name, captain_id, vice_captain_id, total_credits, total_points, created_at`)
	wantInsertMembers = oneLine(`INSERT INTO team_players (team_id, player_id, is_captain, is_vice_captain, points)
		VALUES ($1, $2, $3, $4, $5), ($6, $7, $8, $9, $10)`)
)

func newTeam() team.Team {
	return team.Team{UserID: 3, MatchID: 1, Name: "Asha XI", CaptainID: 101, ViceCaptainID: 102, TotalCredits: 17}
}

func newMembers() []team.Member {
	return []team.Member{
		{PlayerID: 101, IsCaptain: true},
		{PlayerID: 102, IsViceCaptain: true},
	}
}

func expectTeamInsert(mock sqlmock.Sqlmock) {
	createdAt := time.Date(2026, 3, 22, 17, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(wantInsertTeam).
		WithArgs(int64(3), int64(1), "Asha XI", int64(101), int64(102), 17).
		WillReturnRows(sqlmock.NewRows(teamSelectColumns).
			AddRow(int64(55), int64(3), int64(1), "Asha XI", int64(101), int64(102), 17, 0, createdAt))
}

func TestTeamRepository_Create_InsertsTeamAndRosterInOneTx(t *testing.T) {
	db, mock := newMockDB(t)

	expectTeamInsert(mock)
	mock.ExpectExec(wantInsertMembers).
		WithArgs(
			int64(55), int64(101), true, false, 0,
			int64(55), int64(102), false, true, 0,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	created, err := NewTeamRepository(db).Create(t.Context(), newTeam(), newMembers())
	require.NoError(t, err)
	assert.Equal(t, int64(55), created.ID)
	assert.Equal(t, 17, created.TotalCredits)
}

func TestTeamRepository_Create_RollsBackWhenRosterInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("foreign key violation")

	expectTeamInsert(mock)
	mock.ExpectExec(wantInsertMembers).WillReturnError(boom)
	mock.ExpectRollback()

	_, err := NewTeamRepository(db).Create(t.Context(), newTeam(), newMembers())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "insert team players team=55")
}

func TestTeamRepository_Create_RollsBackWhenTeamInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("check constraint")

	mock.ExpectBegin()
	mock.ExpectQuery(wantInsertTeam).WillReturnError(boom)
	mock.ExpectRollback()

	_, err := NewTeamRepository(db).Create(t.Context(), newTeam(), newMembers())
	require.ErrorIs(t, err, boom)
}

func TestTeamRepository_Create_RequiresMembers(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := NewTeamRepository(db).Create(t.Context(), newTeam(), nil)
	require.Error(t, err)
}
