package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
)

type SeedRepository struct {
	db *sqlx.DB
}

func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// Seed writes every bundle in one transaction. The matches table lock keeps
// two concurrent seed calls from both seeing an empty table.
func (r *SeedRepository) Seed(ctx context.Context, bundles []match.SeedBundle) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE matches IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return false, fmt.Errorf("lock matches for seed: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches`); err != nil {
		return false, fmt.Errorf("count matches for seed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, bundle := range bundles {
		created, err := insertMatch(ctx, tx, bundle.Match)
		if err != nil {
			return false, fmt.Errorf("seed match: %w", err)
		}

		for _, p := range bundle.Players {
			p.MatchID = created.ID
			if _, err := insertPlayer(ctx, tx, p); err != nil {
				return false, fmt.Errorf("seed player match=%d: %w", created.ID, err)
			}
		}

		for _, c := range bundle.Contests {
			c.MatchID = created.ID
			if _, err := insertContest(ctx, tx, c); err != nil {
				return false, fmt.Errorf("seed contest match=%d: %w", created.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}
	return true, nil
}
