package tournament

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Register joins the caller to a tournament and charges the entry fee. The tournament row is
// locked so the player cap holds under concurrent registrations.
func (s *Service) Register(
	ctx context.Context,
	p entity.Principal,
	tournamentID string,
	cmd usecase.RegisterCommand,
) (*entity.Registration, error) {
	verr := errs.NewValidationError("registration")
	if strings.TrimSpace(cmd.PlayerName) == "" {
		verr.Add("playerName", "is required")
	} else if len(cmd.PlayerName) > entity.MaxPlayerNameLen {
		verr.Add("playerName", "is too long")
	}
	if strings.TrimSpace(cmd.PlayerID) == "" {
		verr.Add("playerId", "is required")
	} else if len(cmd.PlayerID) > entity.MaxPlayerIDLen {
		verr.Add("playerId", "is too long")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var (
		registration *entity.Registration
		fee          *entity.LedgerEntry
	)
	err := common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		repo := s.uow.GetTournamentRepository(txCtx)

		t, err := repo.GetForUpdate(txCtx, tournamentID)
		if err != nil {
			return err
		}
		registered, err := repo.IsRegistered(txCtx, t.ID, p.UserID)
		if err != nil {
			return err
		}
		if registered {
			return errs.ErrAlreadyRegistered
		}
		count, err := repo.CountRegistrations(txCtx, t.ID)
		if err != nil {
			return err
		}
		if err := t.CheckRegistrationOpen(count); err != nil {
			return err
		}

		if t.EntryFee > 0 {
			account, err := s.uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, p.UserID)
			if err != nil {
				return err
			}
			effect := entity.BalanceEffect{Type: entity.LedgerEntryFee, Amount: -t.EntryFee}
			if fee, err = s.poster.Post(txCtx, s.uow, account, effect, "Entry fee for "+t.Title, t.ID); err != nil {
				return err
			}
		}

		registration = &entity.Registration{
			ID:           s.ids.NewID("reg"),
			TournamentID: t.ID,
			UserID:       p.UserID,
			PlayerName:   strings.TrimSpace(cmd.PlayerName),
			PlayerID:     strings.TrimSpace(cmd.PlayerID),
			EntryFee:     t.EntryFee,
			CreatedAt:    s.timeProvider.Now(),
		}
		return repo.CreateRegistration(txCtx, registration)
	})
	if err != nil {
		s.logger.Warn("Tournament registration failed", map[string]any{
			"tournament_id": tournamentID,
			"user_id":       p.UserID,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.poster.Observe(fee)
	s.logger.Info("Player registered for tournament", map[string]any{
		"tournament_id": registration.TournamentID,
		"user_id":       p.UserID,
	})
	common.PublishAfterCommit(ctx, s.events, s.logger, coreport.Event{
		Type:       entity.EventPlayerRegistered,
		EntityID:   registration.TournamentID,
		UserID:     p.UserID,
		Amount:     entity.FormatAmount(registration.EntryFee),
		OccurredAt: registration.CreatedAt,
	})

	return registration, nil
}

// Complete marks a tournament finished, opening its prize claim window
func (s *Service) Complete(ctx context.Context, admin entity.Principal, id string) (*entity.Tournament, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var completed *entity.Tournament
	err := common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		repo := s.uow.GetTournamentRepository(txCtx)
		t, err := repo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		t.Complete(s.timeProvider)
		if err := repo.Update(txCtx, t); err != nil {
			return err
		}
		completed = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tournament completed", map[string]any{
		"tournament_id": completed.ID,
		"admin_id":      admin.UserID,
	})
	return completed, nil
}
