package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func (h *Handler) ListContests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContests")
	defer span.End()

	matchID, _, err := queryInt64(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	contests, err := h.contestService.ListContests(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list contests failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]contestDTO, 0, len(contests))
	for _, c := range contests {
		items = append(items, contestToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetContest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContest")
	defer span.End()

	contestID, err := requireQueryInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	c, found, err := h.contestService.GetContest(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "get contest failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, contestToDTO(c))
}

func (h *Handler) JoinContest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinContest")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req joinContestRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if _, err := h.contestService.JoinContest(ctx, usecase.JoinContestInput{
		ContestID: req.ContestID,
		UserID:    u.ID,
		TeamID:    req.TeamID,
	}); err != nil {
		h.logger.WarnContext(ctx, "join contest failed", "user_id", u.ID, "contest_id", req.ContestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, successDTO{Success: true})
}

func (h *Handler) ContestLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ContestLeaderboard")
	defer span.End()

	contestID, err := requireQueryInt64(r, "contestId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.contestService.Leaderboard(ctx, contestID)
	if err != nil {
		h.logger.WarnContext(ctx, "contest leaderboard failed", "contest_id", contestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]contestStandingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GlobalLeaderboard")
	defer span.End()

	limit, provided, err := queryInt64(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := globalLeaderboardQuery{Limit: usecase.DefaultLeaderboardLimit}
	if provided {
		query.Limit = int(limit)
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.leaderboardService.Global(ctx, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "global leaderboard failed", "limit", query.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]globalLeaderboardDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, leaderboardEntryToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
