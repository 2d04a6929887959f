package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	// GetByIDs loads players in one round trip. Unknown ids are skipped and
	// the result follows the order of playerIDs.
	GetByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
	Create(ctx context.Context, p Player) (Player, error)
}
