package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
)

const (
	matchKeyPrefix  = "match:"
	playerKeyPrefix = "player:"
)

// Purge drops every cached match and player read. Seeding calls it after
// writing new fixtures.
func Purge(ctx context.Context, cache *basecache.Store) {
	if cache == nil {
		return
	}
	cache.DeletePrefix(ctx, matchKeyPrefix, playerKeyPrefix)
}

// lookup keeps "not found" answers cacheable next to real rows.
type lookup[T any] struct {
	value  T
	exists bool
}

func idKey(prefix string, id int64) string {
	return prefix + "id:" + strconv.FormatInt(id, 10)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	items, err := basecache.Load(ctx, r.cache, matchKeyPrefix+"list:"+string(filter.Status), func(ctx context.Context) ([]match.Match, error) {
		return r.next.List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	got, err := basecache.Load(ctx, r.cache, idKey(matchKeyPrefix, matchID), func(ctx context.Context) (lookup[match.Match], error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		return lookup[match.Match]{value: item, exists: exists}, err
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return got.value, got.exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	created, err := r.next.Create(ctx, m)
	if err != nil {
		return match.Match{}, err
	}
	r.cache.DeletePrefix(ctx, matchKeyPrefix+"list:")
	r.cache.Delete(ctx, idKey(matchKeyPrefix, created.ID))
	return created, nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByMatch(ctx context.Context, matchID int64) ([]player.Player, error) {
	key := playerKeyPrefix + "match:" + strconv.FormatInt(matchID, 10)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByMatch(ctx, matchID)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	got, err := basecache.Load(ctx, r.cache, idKey(playerKeyPrefix, playerID), func(ctx context.Context) (lookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return lookup[player.Player]{value: item, exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return got.value, got.exists, nil
}

// GetByIDs caches by the sorted id set and restores the caller's order on the way out.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	ids := slices.Clone(playerIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var key strings.Builder
	key.WriteString(playerKeyPrefix + "ids:")
	for i, id := range ids {
		if i > 0 {
			key.WriteByte(',')
		}
		key.WriteString(strconv.FormatInt(id, 10))
	}

	items, err := basecache.Load(ctx, r.cache, key.String(), func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, ids)
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]player.Player, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.Delete(ctx, playerKeyPrefix+"match:"+strconv.FormatInt(created.MatchID, 10))
	return created, nil
}
