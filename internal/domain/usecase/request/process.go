package request

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Process applies an admin decision to a pending request. The request row is locked for the
// whole transaction, so of two concurrent decisions exactly one succeeds and the other sees a
// terminal request.
func (s *Service) Process(
	ctx context.Context,
	admin entity.Principal,
	kind entity.RequestKind,
	id string,
	cmd usecase.ProcessCommand,
) (*entity.FinancialRequest, error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	if err := validateProcessCommand(kind, string(cmd.Action), cmd.Notes); err != nil {
		return nil, err
	}

	var (
		processed *entity.FinancialRequest
		posted    *entity.LedgerEntry
	)
	err := common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		requests := s.uow.GetRequestRepository(txCtx)

		req, err := requests.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if req.Kind != kind {
			return errs.ErrRequestNotFound
		}
		if err := req.CheckVersion(cmd.ExpectedVersion); err != nil {
			return err
		}

		if cmd.Action == usecase.ActionApprove {
			err = req.Approve(admin.UserID, cmd.Overrides, s.policy.MinAmount, cmd.Notes, s.timeProvider)
		} else {
			err = req.Reject(admin.UserID, cmd.Notes, s.timeProvider)
		}
		if err != nil {
			return err
		}

		if effect := req.SettlementEffect(); !effect.None() {
			account, err := s.uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, req.RequesterID)
			if err != nil {
				return err
			}
			if posted, err = s.poster.Post(txCtx, s.uow, account, effect, settlementDescription(req), req.ID); err != nil {
				return err
			}
		}

		if err := requests.Update(txCtx, req); err != nil {
			return err
		}
		processed = req
		return nil
	})
	if err != nil {
		s.recordFailure(kind, id, cmd.Action, err)
		return nil, err
	}

	s.poster.Observe(posted)
	s.metrics.RequestProcessed(string(processed.Kind), string(processed.Status), processed.Amount)
	s.logger.Info("Financial request processed", map[string]any{
		"request_id": processed.ID,
		"kind":       string(processed.Kind),
		"status":     string(processed.Status),
		"admin_id":   admin.UserID,
		"amount":     entity.FormatAmount(processed.Amount),
		"version":    processed.Version,
	})
	common.PublishAfterCommit(ctx, s.events, s.logger,
		entity.RequestEvent(entity.TransitionEventType(processed.Status), processed, admin.UserID, s.timeProvider.Now()))

	return processed, nil
}

func (s *Service) recordFailure(kind entity.RequestKind, id string, action usecase.ProcessAction, err error) {
	fields := errs.LogFieldsOf(err)
	fields["request_id"] = id
	fields["kind"] = string(kind)
	fields["action"] = string(action)

	switch {
	case errors.Is(err, errs.ErrAlreadyProcessed):
		s.metrics.TransitionConflict(string(kind), "already_processed")
		s.logger.Warn("Rejected transition of a processed request", fields)
	case errors.Is(err, errs.ErrVersionConflict):
		s.metrics.TransitionConflict(string(kind), "version_conflict")
		s.logger.Warn("Rejected transition with a stale version", fields)
	case errs.IsClientError(err):
		s.logger.Debug("Rejected invalid transition", fields)
	default:
		s.logger.Error("Failed to process financial request", fields)
	}
}

func settlementDescription(req *entity.FinancialRequest) string {
	switch req.Kind {
	case entity.KindTopUp:
		return "Top-up via " + string(req.PaymentMethod)
	case entity.KindPrizeClaim:
		return "Prize for tournament " + req.TournamentCode
	case entity.KindWithdrawal:
		return "Refund of rejected withdrawal"
	}
	return string(req.Kind)
}
