package httpapi

import (
	"context"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

type contextKey string

const (
	userContextKey      contextKey = "auth_user"
	requestIDContextKey contextKey = "request_id"
)

func withUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// userFromContext returns the caller resolved by the session middleware.
func userFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userContextKey).(user.User)
	return u, ok
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDContextKey).(string)
	return v
}
