package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wantLockContest = oneLine(`SELECT id, match_id, name, description, max_participants, current_participants,
		entry_fee, prize_description, status, created_at FROM contests WHERE id = $1 LIMIT 1 FOR UPDATE`)
	wantHasEntry  = `SELECT 1 FROM contest_entries WHERE contest_id = $1 AND user_id = $2 LIMIT 1`
	wantIncrement = oneLine(`UPDATE contests SET current_participants = current_participants + 1
		WHERE id = $1 AND current_participants < max_participants RETURNING id`)
	wantInsertEntry = oneLine(`INSERT INTO contest_entries (contest_id, user_id, team_id, joined_at)
		VALUES ($1, $2, $3, $4) ON CONFLICT (contest_id, user_id) DO NOTHING
		RETURNING id, contest_id, user_id, team_id, rank, points, joined_at`)
)

var joinedAt = time.Date(2026, 3, 22, 18, 0, 0, 0, time.UTC)

func contestRow(current, max int) *sqlmock.Rows {
	return sqlmock.NewRows(contestSelectColumns).
		AddRow(int64(7), int64(1), "MI vs CSK - Free Contest", nil, max, current, 0, nil, "open", joinedAt)
}

func joinInput() contest.JoinInput {
	return contest.JoinInput{ContestID: 7, UserID: 3, TeamID: 11, JoinedAt: joinedAt}
}

// expectLockedOpenContest scripts the lock and duplicate check for a contest
// with one free slot.
func expectLockedOpenContest(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery(wantLockContest).WithArgs(int64(7)).WillReturnRows(contestRow(0, 1))
	mock.ExpectQuery(wantHasEntry).WithArgs(int64(7), int64(3)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
}

func TestContestRepository_Join_Commits(t *testing.T) {
	db, mock := newMockDB(t)

	expectLockedOpenContest(mock)
	mock.ExpectQuery(wantIncrement).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(wantInsertEntry).
		WithArgs(int64(7), int64(3), int64(11), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(contestEntryColumns).AddRow(int64(40), int64(7), int64(3), int64(11), nil, 0, joinedAt))
	mock.ExpectCommit()

	entry, err := NewContestRepository(db).Join(t.Context(), joinInput())
	require.NoError(t, err)
	assert.Equal(t, int64(40), entry.ID)
	assert.Equal(t, int64(11), entry.TeamID)
	assert.Nil(t, entry.Rank)
}

func TestContestRepository_Join_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		script func(mock sqlmock.Sqlmock)
		want   error
	}{
		{
			name: "missing contest",
			script: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(wantLockContest).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(contestSelectColumns))
				mock.ExpectRollback()
			},
			want: contest.ErrNotFound,
		},
		{
			name: "existing entry is reported before capacity",
			script: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(wantLockContest).WithArgs(int64(7)).WillReturnRows(contestRow(1, 1))
				mock.ExpectQuery(wantHasEntry).WithArgs(int64(7), int64(3)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
				mock.ExpectRollback()
			},
			want: contest.ErrAlreadyJoined,
		},
		{
			name: "locked row already at capacity",
			script: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(wantLockContest).WithArgs(int64(7)).WillReturnRows(contestRow(1, 1))
				mock.ExpectQuery(wantHasEntry).WithArgs(int64(7), int64(3)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
				mock.ExpectRollback()
			},
			want: contest.ErrFull,
		},
		{
			name: "conditional increment updates no row",
			script: func(mock sqlmock.Sqlmock) {
				expectLockedOpenContest(mock)
				mock.ExpectQuery(wantIncrement).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			want: contest.ErrFull,
		},
		{
			name: "insert hits on conflict and the increment is rolled back",
			script: func(mock sqlmock.Sqlmock) {
				expectLockedOpenContest(mock)
				mock.ExpectQuery(wantIncrement).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
				mock.ExpectQuery(wantInsertEntry).
					WithArgs(int64(7), int64(3), int64(11), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(contestEntryColumns))
				mock.ExpectRollback()
			},
			want: contest.ErrAlreadyJoined,
		},
		{
			name: "insert raises unique violation",
			script: func(mock sqlmock.Sqlmock) {
				expectLockedOpenContest(mock)
				mock.ExpectQuery(wantIncrement).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
				mock.ExpectQuery(wantInsertEntry).
					WithArgs(int64(7), int64(3), int64(11), sqlmock.AnyArg()).
					WillReturnError(&pq.Error{Code: "23505", Constraint: contestEntryUniqueConstraint})
				mock.ExpectRollback()
			},
			want: contest.ErrAlreadyJoined,
		},
		{
			name: "commit raises unique violation",
			script: func(mock sqlmock.Sqlmock) {
				expectLockedOpenContest(mock)
				mock.ExpectQuery(wantIncrement).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
				mock.ExpectQuery(wantInsertEntry).
					WithArgs(int64(7), int64(3), int64(11), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(contestEntryColumns).AddRow(int64(40), int64(7), int64(3), int64(11), nil, 0, joinedAt))
				mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505", Constraint: contestEntryUniqueConstraint})
			},
			want: contest.ErrAlreadyJoined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.script(mock)

			_, err := NewContestRepository(db).Join(t.Context(), joinInput())
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestContestRepository_Join_OtherInsertErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("connection reset")

	expectLockedOpenContest(mock)
	mock.ExpectQuery(wantIncrement).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(wantInsertEntry).
		WithArgs(int64(7), int64(3), int64(11), sqlmock.AnyArg()).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := NewContestRepository(db).Join(t.Context(), joinInput())
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, contest.ErrAlreadyJoined)
}

func TestContestRepository_Leaderboard_KeepsStoredRank(t *testing.T) {
	db, mock := newMockDB(t)

	query := oneLine(`SELECT ce.rank AS rank, ce.user_id AS user_id, u.name AS user_name, t.name AS team_name,
		ce.points AS points FROM contest_entries ce LEFT JOIN users u ON u.id = ce.user_id
		LEFT JOIN teams t ON t.id = ce.team_id WHERE ce.contest_id = $1
		ORDER BY ce.points DESC, ce.joined_at ASC, ce.id ASC`)
	mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(
		sqlmock.NewRows([]string{"rank", "user_id", "user_name", "team_name", "points"}).
			AddRow(nil, int64(3), "Asha", "Asha XI", 120).
			AddRow(int64(1), int64(4), nil, nil, 80),
	)

	rows, err := NewContestRepository(db).Leaderboard(t.Context(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Nil(t, rows[0].Rank)
	assert.Equal(t, 1, rows[0].Position)
	require.NotNil(t, rows[1].Rank)
	assert.Equal(t, 1, *rows[1].Rank)
	assert.Equal(t, 2, rows[1].Position)
	assert.Equal(t, "Unknown", rows[1].UserName)
	assert.Equal(t, "Unknown", rows[1].TeamName)
}
