package request

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Distribute grants a prize without a player claim. The approved request and the credit
// are written in the same transaction.
func (s *Service) Distribute(ctx context.Context, admin entity.Principal, cmd usecase.DistributeCommand) (*entity.FinancialRequest, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	verr := errs.NewValidationError(string(entity.KindPrizeClaim))
	if strings.TrimSpace(cmd.TournamentID) == "" {
		verr.Add("tournamentId", "is required")
	}
	if strings.TrimSpace(cmd.UserID) == "" {
		verr.Add("userId", "is required")
	}
	prizeType, ok := entity.ParsePrizeType(cmd.PrizeType)
	if !ok {
		verr.Add("prizeType", "must be one of kill_prize, winner_prize, both, other")
	}
	amount, err := entity.ParsePositiveAmount(cmd.Amount, s.policy.MinAmount)
	if err != nil {
		verr.Add("amount", err.Error())
	}
	if cmd.Kills != nil && *cmd.Kills < 0 {
		verr.Add("kills", "must be a non-negative integer")
	}
	if cmd.Position != nil && *cmd.Position < 0 {
		verr.Add("position", "must be a non-negative integer")
	}
	if len(cmd.Notes) > entity.MaxNotesLen {
		verr.Add("notes", "is too long")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var (
		prize  *entity.FinancialRequest
		credit *entity.LedgerEntry
	)
	err = common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		tournament, err := s.uow.GetTournamentRepository(txCtx).GetByID(txCtx, strings.TrimSpace(cmd.TournamentID))
		if err != nil {
			return err
		}
		winner, err := s.uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, strings.TrimSpace(cmd.UserID))
		if err != nil {
			return err
		}

		prize = entity.NewDistributedPrize(
			s.ids.NewID(entity.KindPrizeClaim.IDPrefix()),
			tournament, winner, admin, amount, prizeType, cmd.Kills, cmd.Position, cmd.Notes, s.timeProvider,
		)
		if err := s.uow.GetRequestRepository(txCtx).Create(txCtx, prize); err != nil {
			return err
		}

		credit, err = s.poster.Post(txCtx, s.uow, winner, prize.SettlementEffect(), settlementDescription(prize), prize.ID)
		return err
	})
	if err != nil {
		s.logger.Warn("Failed to distribute prize", map[string]any{
			"tournament_id": cmd.TournamentID,
			"user_id":       cmd.UserID,
			"error":         err.Error(),
		})
		return nil, err
	}

	s.poster.Observe(credit)
	s.metrics.RequestProcessed(string(prize.Kind), string(prize.Status), prize.Amount)
	s.logger.Info("Prize distributed", map[string]any{
		"request_id":    prize.ID,
		"tournament_id": prize.TournamentID,
		"user_id":       prize.RequesterID,
		"admin_id":      admin.UserID,
		"amount":        entity.FormatAmount(prize.Amount),
	})
	common.PublishAfterCommit(ctx, s.events, s.logger, entity.RequestEvent(entity.EventPrizeDistributed, prize, admin.UserID, prize.CreatedAt))

	return prize, nil
}
