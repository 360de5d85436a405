package tournament

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Update replaces the editable fields of a tournament under its row lock. Completed tournaments
// are frozen.
func (s *Service) Update(
	ctx context.Context,
	admin entity.Principal,
	id string,
	cmd usecase.CreateTournamentCommand,
) (*entity.Tournament, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var updated *entity.Tournament
	err := common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		repo := s.uow.GetTournamentRepository(txCtx)
		t, err := repo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if t.IsCompleted {
			verr := errs.NewValidationError("tournament")
			verr.Add("isCompleted", "a completed tournament cannot be edited")
			return verr
		}
		if err := applyCommand(t, cmd); err != nil {
			return err
		}
		if t.MaxPlayers > 0 {
			count, err := repo.CountRegistrations(txCtx, t.ID)
			if err != nil {
				return err
			}
			if count > int64(t.MaxPlayers) {
				verr := errs.NewValidationError("tournament")
				verr.Add("maxPlayers", "is below the number of registered players")
				return verr
			}
		}
		t.UpdatedAt = s.timeProvider.Now()
		if err := repo.Update(txCtx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tournament updated", map[string]any{
		"tournament_id": updated.ID,
		"admin_id":      admin.UserID,
	})
	return updated, nil
}

// SetStatus toggles the active flag and completes a tournament
func (s *Service) SetStatus(
	ctx context.Context,
	admin entity.Principal,
	id string,
	cmd usecase.TournamentStatusCommand,
) (*entity.Tournament, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var changed *entity.Tournament
	err := common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		repo := s.uow.GetTournamentRepository(txCtx)
		t, err := repo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := t.SetStatus(cmd.IsActive, cmd.IsCompleted, s.timeProvider); err != nil {
			return err
		}
		if err := repo.Update(txCtx, t); err != nil {
			return err
		}
		changed = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tournament status changed", map[string]any{
		"tournament_id": changed.ID,
		"is_active":     changed.IsActive,
		"is_completed":  changed.IsCompleted,
		"admin_id":      admin.UserID,
	})
	return changed, nil
}

// Roster lists everyone registered for a tournament
func (s *Service) Roster(ctx context.Context, admin entity.Principal, id string) (*entity.Roster, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	repo := s.uow.GetTournamentRepository(ctx)
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	registrations, err := repo.ListTournamentRegistrations(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	return &entity.Roster{Tournament: t, Registrations: registrations}, nil
}
