package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// TournamentRepository stores tournaments and their registrations
type TournamentRepository interface {
	Create(ctx context.Context, tournament *entity.Tournament) error
	Update(ctx context.Context, tournament *entity.Tournament) error

	// GetByID retrieves a tournament
	//
	// Possible errors:
	// - ErrTournamentNotFound: If the tournament doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Tournament, error)

	// GetBySlug retrieves a tournament by its slug
	//
	// Possible errors:
	// - ErrTournamentNotFound: If the tournament doesn't exist
	GetBySlug(ctx context.Context, slug string) (*entity.Tournament, error)

	// GetForUpdate retrieves a tournament and locks its row
	GetForUpdate(ctx context.Context, id string) (*entity.Tournament, error)

	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter entity.TournamentFilter, page entity.PageQuery) ([]*entity.Tournament, int64, error)

	CountRegistrations(ctx context.Context, tournamentID string) (int64, error)
	IsRegistered(ctx context.Context, tournamentID, userID string) (bool, error)

	// CreateRegistration stores a registration
	//
	// Possible errors:
	// - ErrAlreadyRegistered: If the user already joined the tournament
	CreateRegistration(ctx context.Context, registration *entity.Registration) error

	ListRegistrations(ctx context.Context, userID string) ([]*entity.Registration, error)

	// ListTournamentRegistrations returns everyone registered for a tournament, oldest first,
	// with the registering account's name and phone
	ListTournamentRegistrations(ctx context.Context, tournamentID string) ([]entity.RegistrationDetail, error)

	// ListHistorical returns up to limit completed tournaments, most recently completed first
	ListHistorical(ctx context.Context, limit int) ([]*entity.Tournament, error)

	// CountRegistrationsByTournament counts registrations for each id; ids with none are absent
	CountRegistrationsByTournament(ctx context.Context, tournamentIDs []string) (map[string]int64, error)

	// ListCompletedForUser returns tournaments the user joined that completed at or after since
	ListCompletedForUser(ctx context.Context, userID string, since time.Time) ([]*entity.Tournament, error)
}
