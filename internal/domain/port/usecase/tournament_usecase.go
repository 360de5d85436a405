package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// CreateTournamentCommand is the admin input for a new tournament, and the full replacement
// body of an edit. Money fields are decimal strings.
type CreateTournamentCommand struct {
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
	EntryFee       string
	WinningPrize   string
	PerKillPrize   string
	MaxPlayers     int
	MatchSchedule  *time.Time
	IsActive       *bool
}

// TournamentQuery filters the public tournament listing
type TournamentQuery struct {
	IsCompleted *bool
	IsActive    *bool
	Page        int
	Limit       int
}

// TournamentStatusCommand changes the active and completed flags; nil leaves a flag as is
type TournamentStatusCommand struct {
	IsActive    *bool
	IsCompleted *bool
}

// RegisterCommand carries the in-game identity used for a registration
type RegisterCommand struct {
	PlayerName string
	PlayerID   string
}

// TournamentUseCase manages the tournament catalog and registrations
type TournamentUseCase interface {
	Create(ctx context.Context, admin entity.Principal, cmd CreateTournamentCommand) (*entity.Tournament, error)
	List(ctx context.Context, query TournamentQuery) (*entity.Page[*entity.Tournament], error)

	// Get accepts either an id or a slug
	Get(ctx context.Context, idOrSlug string) (*entity.Tournament, error)

	// Update replaces the editable fields of a tournament. The slug stays stable.
	Update(ctx context.Context, admin entity.Principal, id string, cmd CreateTournamentCommand) (*entity.Tournament, error)

	SetStatus(ctx context.Context, admin entity.Principal, id string, cmd TournamentStatusCommand) (*entity.Tournament, error)
	Complete(ctx context.Context, admin entity.Principal, id string) (*entity.Tournament, error)

	// Roster lists everyone registered for a tournament for the admin view
	Roster(ctx context.Context, admin entity.Principal, id string) (*entity.Roster, error)

	// Historical lists recently completed tournaments with their turnout
	Historical(ctx context.Context, limit int) ([]entity.TournamentResult, error)

	// Register joins the caller and charges the entry fee in one transaction
	Register(ctx context.Context, p entity.Principal, tournamentID string, cmd RegisterCommand) (*entity.Registration, error)

	Registrations(ctx context.Context, p entity.Principal) ([]*entity.Registration, error)

	// RecentForPrize lists completed tournaments the caller joined within the claim window
	RecentForPrize(ctx context.Context, p entity.Principal) ([]*entity.Tournament, error)
}
