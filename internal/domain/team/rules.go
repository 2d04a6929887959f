package team

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

var (
	ErrInvalidRosterSize    = errors.New("invalid roster size")
	ErrDuplicatePlayer      = errors.New("duplicate player in roster")
	ErrCaptainIsViceCaptain = errors.New("Captain and Vice-Captain must be different players") //nolint:staticcheck // user-facing message
	ErrCaptainNotInRoster   = errors.New("captain and vice-captain must be part of the roster")
	ErrExceededCredits      = errors.New("credit cap exceeded")
	ErrPlayerNotInMatch     = errors.New("player does not belong to the match")
)

// Rules stores roster validation parameters.
type Rules struct {
	RosterSize int
	CreditCap  int
}

func DefaultRules() Rules {
	return Rules{
		RosterSize: 11,
		CreditCap:  100,
	}
}

// Roster is a roster submission before any player lookup.
type Roster struct {
	PlayerIDs       []int64
	CaptainID       int64
	ViceCaptainID   int64
	DeclaredCredits int
}

// ValidateRoster checks the shape of a submission without touching storage.
func ValidateRoster(r Roster, rules Rules) error {
	if r.CaptainID == r.ViceCaptainID {
		return ErrCaptainIsViceCaptain
	}
	if len(r.PlayerIDs) != rules.RosterSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidRosterSize, rules.RosterSize, len(r.PlayerIDs))
	}

	seen := make(map[int64]struct{}, len(r.PlayerIDs))
	for _, id := range r.PlayerIDs {
		if id <= 0 {
			return fmt.Errorf("player id must be greater than zero")
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("%w: %d", ErrDuplicatePlayer, id)
		}
		seen[id] = struct{}{}
	}

	if _, ok := seen[r.CaptainID]; !ok {
		return fmt.Errorf("%w: captain=%d", ErrCaptainNotInRoster, r.CaptainID)
	}
	if _, ok := seen[r.ViceCaptainID]; !ok {
		return fmt.Errorf("%w: vice_captain=%d", ErrCaptainNotInRoster, r.ViceCaptainID)
	}
	if r.DeclaredCredits < 0 || r.DeclaredCredits > rules.CreditCap {
		return fmt.Errorf("%w: cap=%d declared=%d", ErrExceededCredits, rules.CreditCap, r.DeclaredCredits)
	}

	return nil
}

// SumCredits validates resolved players against the match and the credit cap
// and returns the roster's credit total.
func SumCredits(matchID int64, players []player.Player, rules Rules) (int, error) {
	total := 0
	for _, p := range players {
		if p.MatchID != matchID {
			return 0, fmt.Errorf("%w: player=%d match=%d", ErrPlayerNotInMatch, p.ID, matchID)
		}
		total += p.Credits
	}
	if total > rules.CreditCap {
		return 0, fmt.Errorf("%w: cap=%d used=%d", ErrExceededCredits, rules.CreditCap, total)
	}
	return total, nil
}
