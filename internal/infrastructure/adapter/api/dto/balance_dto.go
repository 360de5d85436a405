package dto

import (
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// WalletResponse represents the API response for the caller's wallet
type WalletResponse struct {
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Balance      string    `json:"balance"`
	ReferralCode string    `json:"referralCode,omitempty"`
	ReferredBy   string    `json:"referredBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewWalletResponse maps an account to its API shape
func NewWalletResponse(a *entity.Account) WalletResponse {
	return WalletResponse{
		UserID:       a.UserID,
		Name:         a.Name,
		Phone:        a.Phone,
		Role:         string(a.Role),
		Balance:      a.FormattedBalance(),
		ReferralCode: a.ReferralCode,
		ReferredBy:   a.ReferredBy,
		CreatedAt:    a.CreatedAt,
	}
}
