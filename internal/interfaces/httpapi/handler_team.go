package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createTeamRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		UserID:        u.ID,
		MatchID:       req.MatchID,
		Name:          req.Name,
		CaptainID:     req.CaptainID,
		ViceCaptainID: req.ViceCaptainID,
		PlayerIDs:     req.PlayerIDs,
		TotalCredits:  req.TotalCredits,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "user_id", u.ID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, createdTeamDTO{ID: created.ID, Name: created.Name})
}

func (h *Handler) ListMyTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyTeams")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListUserTeams(ctx, u.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user teams failed", "user_id", u.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) ListMyTeamsByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyTeamsByMatch")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := requireQueryInt64(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.teamService.ListUserTeamsByMatch(ctx, u.ID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user teams by match failed", "user_id", u.ID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(teams))
}

func (h *Handler) GetTeamWithPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamWithPlayers")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := requireQueryInt64(r, "teamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if teamID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: teamId must be greater than zero", usecase.ErrInvalidInput))
		return
	}

	roster, found, err := h.teamService.GetTeamWithPlayers(ctx, u.ID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team with players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamWithPlayersToDTO(roster))
}

func teamsToDTO(teams []team.Team) []teamDTO {
	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	return items
}
