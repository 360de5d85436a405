package wallet

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

// EnsureAccount returns the caller's wallet, creating it on first use. Token profile fields
// (name, phone, role) are copied onto the account when they change; the write touches
// only those columns so it cannot race a locked balance update.
func (s *Service) EnsureAccount(ctx context.Context, p entity.Principal) (*entity.Account, error) {
	repo := s.uow.GetAccountRepository(ctx)

	account, err := repo.Get(ctx, p.UserID)
	switch {
	case err == nil:
		if account.SyncProfile(p) {
			account.UpdatedAt = s.timeProvider.Now()
			if err := repo.UpdateProfile(ctx, account); err != nil {
				return nil, err
			}
		}
		return account, nil
	case !errors.Is(err, errs.ErrAccountNotFound):
		return nil, err
	}

	account, err = entity.NewAccount(p, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, account); err != nil {
		// a concurrent request provisioned the same wallet
		if errors.Is(err, errs.ErrConstraintViolation) {
			return repo.Get(ctx, p.UserID)
		}
		return nil, err
	}

	s.logger.Info("Wallet account provisioned", map[string]any{
		"user_id": p.UserID,
	})
	return account, nil
}

// GetWallet returns the caller's account with its current balance
func (s *Service) GetWallet(ctx context.Context, p entity.Principal) (*entity.Account, error) {
	return s.uow.GetAccountRepository(ctx).Get(ctx, p.UserID)
}
