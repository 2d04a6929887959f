// Package offline holds the repositories used when the process starts
// without a reachable database. Reads return empty results and writes fail
// with store.ErrUnavailable.
package offline

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type UserRepository struct{}

func (UserRepository) Upsert(context.Context, user.UpsertInput) (user.User, error) {
	return user.User{}, store.ErrUnavailable
}

func (UserRepository) GetByOpenID(context.Context, string) (user.User, bool, error) {
	return user.User{}, false, nil
}

func (UserRepository) GetByID(context.Context, int64) (user.User, bool, error) {
	return user.User{}, false, nil
}

func (UserRepository) ListTopByPoints(context.Context, int) ([]user.User, error) {
	return []user.User{}, nil
}

type MatchRepository struct{}

func (MatchRepository) List(context.Context, match.Filter) ([]match.Match, error) {
	return []match.Match{}, nil
}

func (MatchRepository) GetByID(context.Context, int64) (match.Match, bool, error) {
	return match.Match{}, false, nil
}

func (MatchRepository) Create(context.Context, match.Match) (match.Match, error) {
	return match.Match{}, store.ErrUnavailable
}

type PlayerRepository struct{}

func (PlayerRepository) ListByMatch(context.Context, int64) ([]player.Player, error) {
	return []player.Player{}, nil
}

func (PlayerRepository) GetByID(context.Context, int64) (player.Player, bool, error) {
	return player.Player{}, false, nil
}

func (PlayerRepository) GetByIDs(context.Context, []int64) ([]player.Player, error) {
	return []player.Player{}, nil
}

func (PlayerRepository) Create(context.Context, player.Player) (player.Player, error) {
	return player.Player{}, store.ErrUnavailable
}

type TeamRepository struct{}

func (TeamRepository) Create(context.Context, team.Team, []team.Member) (team.Team, error) {
	return team.Team{}, store.ErrUnavailable
}

func (TeamRepository) GetByID(context.Context, int64) (team.Team, bool, error) {
	return team.Team{}, false, nil
}

func (TeamRepository) ListByUser(context.Context, int64) ([]team.Team, error) {
	return []team.Team{}, nil
}

func (TeamRepository) ListByUserAndMatch(context.Context, int64, int64) ([]team.Team, error) {
	return []team.Team{}, nil
}

func (TeamRepository) ListMembers(context.Context, int64) ([]team.Member, error) {
	return []team.Member{}, nil
}

func (TeamRepository) CountByUser(context.Context, int64) (int, error) {
	return 0, nil
}

type ContestRepository struct{}

func (ContestRepository) List(context.Context, contest.Filter) ([]contest.Contest, error) {
	return []contest.Contest{}, nil
}

func (ContestRepository) GetByID(context.Context, int64) (contest.Contest, bool, error) {
	return contest.Contest{}, false, nil
}

func (ContestRepository) Create(context.Context, contest.Contest) (contest.Contest, error) {
	return contest.Contest{}, store.ErrUnavailable
}

func (ContestRepository) Join(context.Context, contest.JoinInput) (contest.Entry, error) {
	return contest.Entry{}, store.ErrUnavailable
}

func (ContestRepository) HasEntry(context.Context, int64, int64) (bool, error) {
	return false, nil
}

func (ContestRepository) CountEntriesByUser(context.Context, int64) (int, error) {
	return 0, nil
}

func (ContestRepository) Leaderboard(context.Context, int64) ([]contest.Standing, error) {
	return []contest.Standing{}, nil
}

type ContactRepository struct{}

func (ContactRepository) Create(context.Context, contact.Message) (contact.Message, error) {
	return contact.Message{}, store.ErrUnavailable
}

type SeedRepository struct{}

func (SeedRepository) Seed(context.Context, []match.SeedBundle) (bool, error) {
	return false, store.ErrUnavailable
}
