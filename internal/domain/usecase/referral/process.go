package referral

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Process applies a referral code for the caller. Each player can be referred once; the
// referrer receives the configured bonus.
func (s *Service) Process(ctx context.Context, p entity.Principal, code string) (*entity.Referral, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		verr := errs.NewValidationError("referral")
		verr.Add("referralCode", "is required")
		return nil, verr
	}

	referrer, err := s.uow.GetAccountRepository(ctx).FindByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrInvalidReferralCode
		}
		return nil, err
	}
	if referrer.UserID == p.UserID {
		return nil, errs.ErrSelfReferral
	}

	var (
		referral *entity.Referral
		bonus    *entity.LedgerEntry
	)
	err = common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		accounts, err := common.LockAccounts(txCtx, s.uow, p.UserID, referrer.UserID)
		if err != nil {
			return err
		}
		referee, owner := accounts[p.UserID], accounts[referrer.UserID]

		if referee.ReferredBy != "" {
			return errs.ErrAlreadyReferred
		}
		exists, err := s.uow.GetReferralRepository(txCtx).ExistsForReferee(txCtx, referee.UserID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrAlreadyReferred
		}

		referee.ReferredBy = owner.UserID
		referee.UpdatedAt = s.timeProvider.Now()
		if err := s.uow.GetAccountRepository(txCtx).Update(txCtx, referee); err != nil {
			return err
		}

		referral = &entity.Referral{
			ID:          s.ids.NewID("ref"),
			ReferrerID:  owner.UserID,
			RefereeID:   referee.UserID,
			RefereeName: referee.Name,
			Bonus:       s.policy.Bonus,
			CreatedAt:   s.timeProvider.Now(),
		}
		if err := s.uow.GetReferralRepository(txCtx).Create(txCtx, referral); err != nil {
			return err
		}

		effect := entity.BalanceEffect{Type: entity.LedgerReferral, Amount: s.policy.Bonus}
		bonus, err = s.poster.Post(txCtx, s.uow, owner, effect, "Referral bonus for inviting "+referee.Name, referral.ID)
		return err
	})
	if err != nil {
		s.logger.Warn("Referral processing failed", map[string]any{
			"user_id": p.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.poster.Observe(bonus)
	s.logger.Info("Referral processed", map[string]any{
		"referrer_id": referral.ReferrerID,
		"referee_id":  referral.RefereeID,
		"bonus":       entity.FormatAmount(referral.Bonus),
	})
	common.PublishAfterCommit(ctx, s.events, s.logger, coreport.Event{
		Type:       entity.EventReferralCredited,
		EntityID:   referral.ID,
		UserID:     referral.ReferrerID,
		ActorID:    referral.RefereeID,
		Amount:     entity.FormatAmount(referral.Bonus),
		OccurredAt: referral.CreatedAt,
	})

	return referral, nil
}
