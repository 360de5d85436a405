package persistence

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// ReferralRepository stores processed referrals
type ReferralRepository interface {
	// Create stores a referral
	//
	// Possible errors:
	// - ErrAlreadyReferred: If the referee was already referred
	Create(ctx context.Context, referral *entity.Referral) error

	ExistsForReferee(ctx context.Context, refereeID string) (bool, error)
	ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error)
}
