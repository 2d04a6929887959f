package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const maxTeamNameLength = 50

// CreateTeamInput is the incoming payload for a roster submission.
type CreateTeamInput struct {
	UserID        int64
	MatchID       int64
	Name          string
	CaptainID     int64
	ViceCaptainID int64
	PlayerIDs     []int64
	TotalCredits  int
}

type TeamService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	status     store.Status
	rules      team.Rules
	logger     *logging.Logger
}

func NewTeamService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	status store.Status,
	rules team.Rules,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	if status == nil {
		status = store.Attached()
	}

	return &TeamService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		status:     status,
		rules:      rules,
		logger:     logger,
	}
}

// CreateTeam validates the roster, resolves every player in one lookup and
// stores the team with its members atomically.
func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.UserID <= 0 {
		return team.Team{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	if input.MatchID <= 0 {
		return team.Team{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Name == "" || utf8.RuneCountInString(input.Name) > maxTeamNameLength {
		return team.Team{}, fmt.Errorf("%w: team name must be 1-%d characters", ErrInvalidInput, maxTeamNameLength)
	}
	if err := team.ValidateRoster(team.Roster{
		PlayerIDs:       input.PlayerIDs,
		CaptainID:       input.CaptainID,
		ViceCaptainID:   input.ViceCaptainID,
		DeclaredCredits: input.TotalCredits,
	}, s.rules); err != nil {
		return team.Team{}, classifyRosterError(err)
	}

	if !s.status.Available() {
		s.logger.ErrorContext(ctx, "cannot create team without store", "user_id", input.UserID, "match_id", input.MatchID)
		return team.Team{}, fmt.Errorf("create team: %w", store.ErrUnavailable)
	}

	if _, found, err := s.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return team.Team{}, fmt.Errorf("get match: %w", err)
	} else if !found {
		return team.Team{}, fmt.Errorf("%w: match id=%d", ErrNotFound, input.MatchID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, input.PlayerIDs)
	if err != nil {
		return team.Team{}, fmt.Errorf("get players by ids: %w", err)
	}
	if len(players) != len(input.PlayerIDs) {
		return team.Team{}, fmt.Errorf("%w: some players do not exist", ErrInvalidInput)
	}

	credits, err := team.SumCredits(input.MatchID, players, s.rules)
	if err != nil {
		return team.Team{}, classifyRosterError(err)
	}

	draft := team.Team{
		UserID:        input.UserID,
		MatchID:       input.MatchID,
		Name:          input.Name,
		CaptainID:     input.CaptainID,
		ViceCaptainID: input.ViceCaptainID,
		TotalCredits:  credits,
	}
	created, err := s.teamRepo.Create(ctx, draft, team.BuildMembers(draft, input.PlayerIDs))
	if err != nil {
		markUsecaseSpanError(span, err)
		s.logger.ErrorContext(ctx, "create team failed", "user_id", input.UserID, "match_id", input.MatchID, "error", err)
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created",
		"team_id", created.ID,
		"user_id", created.UserID,
		"match_id", created.MatchID,
		"credits", created.TotalCredits,
	)
	return created, nil
}

func (s *TeamService) ListUserTeams(ctx context.Context, userID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListUserTeams")
	defer span.End()

	items, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by user: %w", err)
	}
	return items, nil
}

func (s *TeamService) ListUserTeamsByMatch(ctx context.Context, userID, matchID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListUserTeamsByMatch")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByUserAndMatch(ctx, userID, matchID)
	if err != nil {
		return nil, fmt.Errorf("list teams by user and match: %w", err)
	}
	return items, nil
}

// GetTeamWithPlayers returns the roster in slot order. Teams owned by another
// user are reported as missing.
func (s *TeamService) GetTeamWithPlayers(ctx context.Context, userID, teamID int64) (team.WithPlayers, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamWithPlayers")
	defer span.End()

	if teamID <= 0 {
		return team.WithPlayers{}, false, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.WithPlayers{}, false, fmt.Errorf("get team: %w", err)
	}
	if !found || t.UserID != userID {
		return team.WithPlayers{}, false, nil
	}

	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return team.WithPlayers{}, false, fmt.Errorf("list team members: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return team.WithPlayers{}, false, fmt.Errorf("get roster players: %w", err)
	}

	byID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := team.WithPlayers{Team: t, Players: make([]team.RosterPlayer, 0, len(members))}
	for _, m := range members {
		p, ok := byID[m.PlayerID]
		if !ok {
			continue
		}
		out.Players = append(out.Players, team.RosterPlayer{
			Player:           p,
			IsCaptain:        m.IsCaptain,
			IsViceCaptain:    m.IsViceCaptain,
			TeamPlayerPoints: m.Points,
		})
	}
	return out, true, nil
}

func classifyRosterError(err error) error {
	switch {
	case errors.Is(err, team.ErrCaptainIsViceCaptain), errors.Is(err, team.ErrCaptainNotInRoster):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
}
