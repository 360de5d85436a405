package tournament

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// List returns a page of tournaments, optionally filtered by completion and activity
func (s *Service) List(ctx context.Context, query usecase.TournamentQuery) (*entity.Page[*entity.Tournament], error) {
	page := entity.NewPageQuery(query.Page, query.Limit)
	filter := entity.TournamentFilter{IsCompleted: query.IsCompleted, IsActive: query.IsActive}
	items, total, err := s.uow.GetTournamentRepository(ctx).List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return &entity.Page[*entity.Tournament]{Items: items, Info: entity.NewPageInfo(page, total)}, nil
}

// Get looks a tournament up by id first and by slug second
func (s *Service) Get(ctx context.Context, idOrSlug string) (*entity.Tournament, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	repo := s.uow.GetTournamentRepository(ctx)

	t, err := repo.GetByID(ctx, idOrSlug)
	if err == nil || !errors.Is(err, errs.ErrTournamentNotFound) {
		return t, err
	}
	return repo.GetBySlug(ctx, idOrSlug)
}

// Registrations lists the caller's tournament entries
func (s *Service) Registrations(ctx context.Context, p entity.Principal) ([]*entity.Registration, error) {
	return s.uow.GetTournamentRepository(ctx).ListRegistrations(ctx, p.UserID)
}

// RecentForPrize lists completed tournaments the caller joined within the claim window
func (s *Service) RecentForPrize(ctx context.Context, p entity.Principal) ([]*entity.Tournament, error) {
	since := s.timeProvider.Now().Add(-s.policy.PrizeClaimWindow)
	return s.uow.GetTournamentRepository(ctx).ListCompletedForUser(ctx, p.UserID, since)
}

// Historical lists the most recently completed tournaments with how many players joined each
func (s *Service) Historical(ctx context.Context, limit int) ([]entity.TournamentResult, error) {
	limit = entity.NewPageQuery(1, limit).Limit
	repo := s.uow.GetTournamentRepository(ctx)

	tournaments, err := repo.ListHistorical(ctx, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tournaments))
	for _, t := range tournaments {
		ids = append(ids, t.ID)
	}
	counts, err := repo.CountRegistrationsByTournament(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]entity.TournamentResult, 0, len(tournaments))
	for _, t := range tournaments {
		results = append(results, entity.TournamentResult{Tournament: t, PlayersRegistered: counts[t.ID]})
	}
	return results, nil
}
