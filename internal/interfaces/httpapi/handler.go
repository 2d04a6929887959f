package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// SessionManager issues and clears the session cookie.
type SessionManager interface {
	SessionReader
	SetCookie(w http.ResponseWriter, principal user.Principal) error
	ClearCookie(w http.ResponseWriter)
}

// LoginProvider exchanges an OAuth callback code for the user's identity.
type LoginProvider interface {
	Exchange(ctx context.Context, code, redirectURI string) (usecase.LoginInput, error)
}

type Handler struct {
	matchService       *usecase.MatchService
	playerService      *usecase.PlayerService
	teamService        *usecase.TeamService
	contestService     *usecase.ContestService
	leaderboardService *usecase.LeaderboardService
	dashboardService   *usecase.DashboardService
	userService        *usecase.UserService
	contactService     *usecase.ContactService
	seedService        *usecase.SeedService
	sessions           SessionManager
	login              LoginProvider
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	contestService *usecase.ContestService,
	leaderboardService *usecase.LeaderboardService,
	dashboardService *usecase.DashboardService,
	userService *usecase.UserService,
	contactService *usecase.ContactService,
	seedService *usecase.SeedService,
	sessions SessionManager,
	login LoginProvider,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:       matchService,
		playerService:      playerService,
		teamService:        teamService,
		contestService:     contestService,
		leaderboardService: leaderboardService,
		dashboardService:   dashboardService,
		userService:        userService,
		contactService:     contactService,
		seedService:        seedService,
		sessions:           sessions,
		login:              login,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) UnknownProcedure(w http.ResponseWriter, r *http.Request) {
	procedure := strings.TrimPrefix(r.URL.Path, "/rpc/")
	writeError(r.Context(), w, fmt.Errorf("%w: no %s procedure named %q", usecase.ErrNotFound, r.Method, procedure))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody reads a mutation payload. Unknown fields are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after JSON payload", usecase.ErrInvalidInput)
	}
	return nil
}

// queryInt64 parses an optional integer query parameter.
func queryInt64(r *http.Request, key string) (int64, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, true, nil
}

func requireQueryInt64(r *http.Request, key string) (int64, error) {
	v, ok, err := queryInt64(r, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func currentUser(ctx context.Context) (user.User, error) {
	u, ok := userFromContext(ctx)
	if !ok {
		return user.User{}, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthorized)
	}
	return u, nil
}
