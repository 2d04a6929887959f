package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	matches, err := h.matchService.ListMatches(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := requireQueryInt64(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, found, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ListPlayersByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByMatch")
	defer span.End()

	matchID, err := requireQueryInt64(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if matchID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: matchId must be greater than zero", usecase.ErrInvalidInput))
		return
	}

	players, err := h.playerService.ListPlayersByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
