package httpapi

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	u, ok := userFromContext(ctx)
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(u))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	h.sessions.ClearCookie(w)
	writeSuccess(ctx, w, http.StatusOK, successDTO{Success: true})
}

// OAuthCallback completes a provider login. state carries the base64 encoded
// redirect URI the flow was started with.
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OAuthCallback")
	defer span.End()

	code := strings.TrimSpace(r.URL.Query().Get("code"))
	state := strings.TrimSpace(r.URL.Query().Get("state"))
	if code == "" || state == "" {
		writeError(ctx, w, fmt.Errorf("%w: code and state are required", usecase.ErrInvalidInput))
		return
	}
	redirectURI, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: malformed state", usecase.ErrInvalidInput))
		return
	}
	if h.login == nil {
		writeError(ctx, w, fmt.Errorf("%w: login provider is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	identity, err := h.login.Exchange(ctx, code, string(redirectURI))
	if err != nil {
		h.logger.WarnContext(ctx, "oauth code exchange failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	u, err := h.userService.Login(ctx, identity)
	if err != nil {
		h.logger.WarnContext(ctx, "oauth login failed", "open_id", identity.OpenID, "error", err)
		writeError(ctx, w, err)
		return
	}

	if err := h.sessions.SetCookie(w, user.Principal{OpenID: u.OpenID, Name: u.Name}); err != nil {
		h.logger.ErrorContext(ctx, "issue session cookie failed", "user_id", u.ID, "error", err)
		writeInternalError(ctx, w)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DashboardStats")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.dashboardService.Stats(ctx, u.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "dashboard stats failed", "user_id", u.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

func (h *Handler) DashboardProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DashboardProfile")
	defer span.End()

	u, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.userService.Profile(ctx, u.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "dashboard profile failed", "user_id", u.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, userToDTO(profile))
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitContact")
	defer span.End()

	var req submitContactRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.contactService.Submit(ctx, usecase.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit contact failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, contactToDTO(created))
}

func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedData")
	defer span.End()

	result, err := h.seedService.SeedMatchData(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "seed match data failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seedResultDTO{Seeded: result.Seeded, Message: result.Message})
}
