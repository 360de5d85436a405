package usecase

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// ReferralStats summarises a referrer's invitations
type ReferralStats struct {
	ReferralCount int
	Balance       int64
	Referrals     []*entity.Referral
}

// ReferralUseCase manages invite codes and referral bonuses
type ReferralUseCase interface {
	// Invite returns the caller's referral code, generating it once
	Invite(ctx context.Context, p entity.Principal) (string, error)

	// Process applies a referral code for the caller and credits the referrer
	Process(ctx context.Context, p entity.Principal, code string) (*entity.Referral, error)

	Stats(ctx context.Context, p entity.Principal) (*ReferralStats, error)
}
