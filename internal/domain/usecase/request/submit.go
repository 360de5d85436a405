package request

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Submit validates a submission against its kind's schema and stores a pending request.
// Nothing is written, uploaded or debited unless every field passes.
func (s *Service) Submit(
	ctx context.Context,
	requester entity.Principal,
	sub entity.Submission,
	proof *persistence.ProofUpload,
) (*entity.FinancialRequest, error) {
	sub.ProofAttached = proof != nil

	values, err := sub.Validate(s.policy.MinAmount)
	if err != nil {
		s.logger.Debug("Rejected invalid submission", map[string]any{
			"kind":    string(sub.Kind),
			"user_id": requester.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	switch sub.Kind {
	case entity.KindPrizeClaim:
		if err := s.validateClaimTarget(ctx, sub); err != nil {
			return nil, err
		}
	case entity.KindTopUp:
		if err := s.checkDuplicateReference(ctx, values.PaymentMethod, sub.TransactionRef); err != nil {
			return nil, err
		}
	}

	proofRef := ""
	if proof != nil && (sub.Kind == entity.KindTopUp || sub.Kind == entity.KindPrizeClaim) {
		proofRef, err = s.storage.Save(ctx, *proof)
		if err != nil {
			return nil, err
		}
	}

	req := entity.NewFinancialRequest(s.ids.NewID(sub.Kind.IDPrefix()), requester, sub, values, proofRef, s.timeProvider)

	var reserved *entity.LedgerEntry
	err = common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		if effect := req.SubmissionEffect(); !effect.None() {
			account, err := s.uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, requester.UserID)
			if err != nil {
				return err
			}
			if reserved, err = s.poster.Post(txCtx, s.uow, account, effect, "Withdrawal request "+req.ID, req.ID); err != nil {
				return err
			}
		}
		return s.uow.GetRequestRepository(txCtx).Create(txCtx, req)
	})
	if err != nil {
		s.discardProof(ctx, proofRef)
		s.logger.Warn("Failed to store financial request", map[string]any{
			"kind":    string(req.Kind),
			"user_id": requester.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.poster.Observe(reserved)
	s.metrics.RequestSubmitted(string(req.Kind))
	s.logger.Info("Financial request submitted", map[string]any{
		"request_id": req.ID,
		"kind":       string(req.Kind),
		"user_id":    requester.UserID,
		"amount":     entity.FormatAmount(req.Amount),
	})
	common.PublishAfterCommit(ctx, s.events, s.logger, entity.RequestEvent(entity.EventRequestSubmitted, req, requester.UserID, req.CreatedAt))

	return req, nil
}

func (s *Service) discardProof(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.storage.Delete(ctx, ref); err != nil {
		s.logger.Warn("Failed to remove orphaned proof image", map[string]any{
			"proof": ref,
			"error": err.Error(),
		})
	}
}
