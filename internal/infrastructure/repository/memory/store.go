package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/contact"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/contest"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/team"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

// Store is an in-process stand-in for the relational store. Every repository
// built on the same Store shares one lock, so multi-table writes are atomic.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[int64]user.User
	userByOpenID map[string]int64
	matches      map[int64]match.Match
	players      map[int64]player.Player
	teams        map[int64]team.Team
	members      map[int64][]team.Member
	contests     map[int64]contest.Contest
	entries      map[int64]contest.Entry
	entryByUser  map[entryKey]int64
	contacts     []contact.Message

	seq sequences
}

type sequences struct {
	user    int64
	match   int64
	player  int64
	team    int64
	contest int64
	entry   int64
	contact int64
}

type entryKey struct {
	contestID int64
	userID    int64
}

func NewStore() *Store {
	return &Store{
		now:          time.Now,
		users:        make(map[int64]user.User),
		userByOpenID: make(map[string]int64),
		matches:      make(map[int64]match.Match),
		players:      make(map[int64]player.Player),
		teams:        make(map[int64]team.Team),
		members:      make(map[int64][]team.Member),
		contests:     make(map[int64]contest.Contest),
		entries:      make(map[int64]contest.Entry),
		entryByUser:  make(map[entryKey]int64),
	}
}

// SetClock replaces the timestamp source used for created_at style fields.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.now = now
	}
}

func (s *Store) insertMatchLocked(m match.Match) match.Match {
	s.seq.match++
	m.ID = s.seq.match
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now().UTC()
	}
	s.matches[m.ID] = m
	return m
}

func (s *Store) insertPlayerLocked(p player.Player) player.Player {
	s.seq.player++
	p.ID = s.seq.player
	s.players[p.ID] = p
	return p
}

func (s *Store) insertContestLocked(c contest.Contest) contest.Contest {
	s.seq.contest++
	c.ID = s.seq.contest
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now().UTC()
	}
	s.contests[c.ID] = c
	return c
}
