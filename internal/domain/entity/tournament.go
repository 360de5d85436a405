package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// Tournament is a scheduled match players can register for
type Tournament struct {
	ID             string
	Slug           string
	Title          string
	Game           string
	Device         string
	Mood           string
	Type           string
	GameVersion    string
	Map            string
	MatchType      string
	TournamentCode string
	Description    string
	Rules          string
	Logo           string
	CoverImage     string
	EntryFee       int64
	WinningPrize   int64
	PerKillPrize   int64
	MaxPlayers     int
	MatchSchedule  *time.Time
	IsActive       bool
	IsCompleted    bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the fields an admin must supply
func (t *Tournament) Validate() error {
	verr := errs.NewValidationError("tournament")
	if strings.TrimSpace(t.Title) == "" {
		verr.Add("title", "is required")
	}
	if strings.TrimSpace(t.Game) == "" {
		verr.Add("game", "is required")
	}
	if strings.TrimSpace(t.TournamentCode) == "" {
		verr.Add("tournamentCode", "is required")
	}
	if t.EntryFee < 0 {
		verr.Add("entryFee", "must not be negative")
	}
	if t.WinningPrize < 0 {
		verr.Add("winningPrize", "must not be negative")
	}
	if t.PerKillPrize < 0 {
		verr.Add("perKillPrize", "must not be negative")
	}
	if t.MaxPlayers < 0 {
		verr.Add("maxPlayers", "must not be negative")
	}
	return verr.OrNil()
}

// CheckRegistrationOpen verifies a new player may join given the current registration count.
// MaxPlayers of zero means unlimited.
func (t *Tournament) CheckRegistrationOpen(registered int64) error {
	if !t.IsActive || t.IsCompleted {
		return errs.ErrTournamentClosed
	}
	if t.MaxPlayers > 0 && registered >= int64(t.MaxPlayers) {
		return errs.ErrTournamentFull
	}
	return nil
}

// Complete marks the tournament finished; completing twice keeps the first completion time
func (t *Tournament) Complete(timeProvider coreport.TimeProvider) {
	if t.IsCompleted {
		return
	}
	now := timeProvider.Now()
	t.IsCompleted = true
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// SetStatus applies an admin status change. At least one flag is required; a completed
// tournament cannot be reopened.
func (t *Tournament) SetStatus(isActive, isCompleted *bool, timeProvider coreport.TimeProvider) error {
	verr := errs.NewValidationError("status")
	if isActive == nil && isCompleted == nil {
		verr.Add("status", "isActive or isCompleted is required")
	}
	if isCompleted != nil && !*isCompleted && t.IsCompleted {
		verr.Add("isCompleted", "a completed tournament cannot be reopened")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	if isActive != nil {
		t.IsActive = *isActive
		t.UpdatedAt = timeProvider.Now()
	}
	if isCompleted != nil && *isCompleted {
		t.Complete(timeProvider)
	}
	return nil
}

// MatchesCode compares a claimed tournament code, ignoring case and surrounding space
func (t *Tournament) MatchesCode(code string) bool {
	return strings.EqualFold(strings.TrimSpace(code), strings.TrimSpace(t.TournamentCode))
}

// Registration is a player's entry into a tournament
type Registration struct {
	ID           string
	TournamentID string
	UserID       string
	PlayerName   string
	PlayerID     string
	EntryFee     int64
	CreatedAt    time.Time
}

// RegistrationDetail is a registration with the registering account's contact details
type RegistrationDetail struct {
	Registration
	UserName  string
	UserPhone string
}

// Roster is a tournament with everyone registered for it, oldest entry first
type Roster struct {
	Tournament    *Tournament
	Registrations []RegistrationDetail
}

// TournamentResult is a finished tournament with its turnout
type TournamentResult struct {
	Tournament        *Tournament
	PlayersRegistered int64
}

// TournamentFilter narrows a tournament listing
type TournamentFilter struct {
	IsCompleted *bool
	IsActive    *bool
}
