package dto

import (
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// InviteResponse carries the caller's referral code
type InviteResponse struct {
	ReferralCode string `json:"referralCode"`
}

// ProcessReferralRequest is the body of POST /api/referrals/process
type ProcessReferralRequest struct {
	ReferralCode string `json:"referralCode"`
}

// ReferralResponse represents one completed referral
type ReferralResponse struct {
	ReferrerID  string    `json:"referrerId"`
	RefereeID   string    `json:"refereeId"`
	RefereeName string    `json:"refereeName,omitempty"`
	Bonus       string    `json:"bonus"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewReferralResponse maps a referral to its API shape
func NewReferralResponse(r *entity.Referral) ReferralResponse {
	return ReferralResponse{
		ReferrerID:  r.ReferrerID,
		RefereeID:   r.RefereeID,
		RefereeName: r.RefereeName,
		Bonus:       entity.FormatAmount(r.Bonus),
		CreatedAt:   r.CreatedAt,
	}
}

// ReferralStatsResponse summarises the caller's referrals
type ReferralStatsResponse struct {
	ReferralCount int                `json:"referralCount"`
	Balance       string             `json:"balance"`
	Referrals     []ReferralResponse `json:"referrals"`
}

// NewReferralStatsResponse maps referral stats to their API shape
func NewReferralStatsResponse(s *usecase.ReferralStats) ReferralStatsResponse {
	referrals := make([]ReferralResponse, 0, len(s.Referrals))
	for _, r := range s.Referrals {
		referrals = append(referrals, NewReferralResponse(r))
	}
	return ReferralStatsResponse{
		ReferralCount: s.ReferralCount,
		Balance:       entity.FormatAmount(s.Balance),
		Referrals:     referrals,
	}
}
