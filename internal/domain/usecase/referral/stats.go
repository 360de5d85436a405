package referral

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// Stats returns how many players the caller referred along with the current balance
func (s *Service) Stats(ctx context.Context, p entity.Principal) (*usecase.ReferralStats, error) {
	account, err := s.uow.GetAccountRepository(ctx).Get(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	referrals, err := s.uow.GetReferralRepository(ctx).ListByReferrer(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return &usecase.ReferralStats{
		ReferralCount: len(referrals),
		Balance:       account.Balance(),
		Referrals:     referrals,
	}, nil
}
