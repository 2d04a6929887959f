package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// Create stores the team and its members atomically and returns the stored team.
	Create(ctx context.Context, t Team, members []Member) (Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]Team, error)
	ListByUserAndMatch(ctx context.Context, userID, matchID int64) ([]Team, error)
	ListMembers(ctx context.Context, teamID int64) ([]Member, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
