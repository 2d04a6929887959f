package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, input UpsertInput) (User, error)
	GetByOpenID(ctx context.Context, openID string) (User, bool, error)
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	ListTopByPoints(ctx context.Context, limit int) ([]User, error)
}
