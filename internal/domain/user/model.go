package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account created on first login through the external login provider.
type User struct {
	ID            int64
	OpenID        string
	Name          string
	Email         string
	LoginMethod   string
	Role          Role
	Avatar        string
	TotalPoints   int
	MatchesPlayed int
	ContestsWon   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastSignedIn  time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpsertInput carries the profile fields reported by the login provider.
// Empty optional fields leave the stored value untouched.
type UpsertInput struct {
	OpenID       string
	Name         string
	Email        string
	LoginMethod  string
	Role         Role
	LastSignedIn time.Time
}

func (in UpsertInput) Validate() error {
	if strings.TrimSpace(in.OpenID) == "" {
		return fmt.Errorf("user open id is required")
	}
	switch in.Role {
	case "", RoleUser, RoleAdmin:
	default:
		return fmt.Errorf("invalid user role: %s", in.Role)
	}
	return nil
}

// Stats is the per-user dashboard summary.
type Stats struct {
	TotalTeams    int
	TotalContests int
	TotalPoints   int
	ContestsWon   int
}

// Principal is the identity resolved from a session.
type Principal struct {
	OpenID string
	Name   string
}
