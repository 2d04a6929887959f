package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/store"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// LoginInput is the profile reported by the login provider after a code exchange.
type LoginInput struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

type UserService struct {
	userRepo    user.Repository
	status      store.Status
	ownerOpenID string
	logger      *logging.Logger
	now         func() time.Time
}

func NewUserService(userRepo user.Repository, status store.Status, ownerOpenID string, logger *logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Default()
	}
	if status == nil {
		status = store.Attached()
	}

	return &UserService{
		userRepo:    userRepo,
		status:      status,
		ownerOpenID: strings.TrimSpace(ownerOpenID),
		logger:      logger,
		now:         time.Now,
	}
}

// Login upserts the user behind a provider identity. The configured owner is
// promoted to admin on every login.
func (s *UserService) Login(ctx context.Context, input LoginInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Login")
	defer span.End()

	input.OpenID = strings.TrimSpace(input.OpenID)
	if input.OpenID == "" {
		return user.User{}, fmt.Errorf("%w: open id is required", ErrInvalidInput)
	}
	if !s.status.Available() {
		s.logger.ErrorContext(ctx, "cannot upsert user without store", "open_id", input.OpenID)
		return user.User{}, fmt.Errorf("upsert user: %w", store.ErrUnavailable)
	}

	upsert := user.UpsertInput{
		OpenID:       input.OpenID,
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		LoginMethod:  strings.TrimSpace(input.LoginMethod),
		LastSignedIn: s.now().UTC(),
	}
	if s.ownerOpenID != "" && input.OpenID == s.ownerOpenID {
		upsert.Role = user.RoleAdmin
	}

	u, err := s.userRepo.Upsert(ctx, upsert)
	if err != nil {
		markUsecaseSpanError(span, err)
		if errors.Is(err, store.ErrUnavailable) {
			s.logger.ErrorContext(ctx, "upsert user failed", "open_id", input.OpenID, "error", err)
		}
		return user.User{}, fmt.Errorf("upsert user: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed in", "user_id", u.ID, "role", string(u.Role))
	return u, nil
}

// Resolve maps a session principal to a stored user. A principal without a
// stored user is treated as anonymous.
func (s *UserService) Resolve(ctx context.Context, principal user.Principal) (user.User, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Resolve")
	defer span.End()

	openID := strings.TrimSpace(principal.OpenID)
	if openID == "" {
		return user.User{}, false, nil
	}

	u, found, err := s.userRepo.GetByOpenID(ctx, openID)
	if err != nil {
		return user.User{}, false, fmt.Errorf("get user by open id: %w", err)
	}
	return u, found, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Profile")
	defer span.End()

	u, found, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !found {
		return user.User{}, fmt.Errorf("%w: user id=%d", ErrNotFound, userID)
	}
	return u, nil
}
