package contest

import "context"

// Repository describes contest persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Contest, error)
	GetByID(ctx context.Context, contestID int64) (Contest, bool, error)
	Create(ctx context.Context, c Contest) (Contest, error)
	// Join inserts the entry and increments the participant counter in one
	// atomic step. It returns ErrNotFound, ErrFull or ErrAlreadyJoined when
	// the join cannot happen, leaving the counter untouched.
	Join(ctx context.Context, input JoinInput) (Entry, error)
	HasEntry(ctx context.Context, contestID, userID int64) (bool, error)
	CountEntriesByUser(ctx context.Context, userID int64) (int, error)
	// Leaderboard returns entries ordered by points descending, already joined
	// with user and team names.
	Leaderboard(ctx context.Context, contestID int64) ([]Standing, error)
}
