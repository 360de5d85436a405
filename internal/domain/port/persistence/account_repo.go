package persistence

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// AccountRepository stores player wallets
type AccountRepository interface {
	// Get retrieves an account by user id
	//
	// Possible errors:
	// - ErrAccountNotFound: If no wallet exists for the user
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, userID string) (*entity.Account, error)

	// GetForUpdate retrieves an account and locks its row until the transaction ends
	//
	// Possible errors:
	// - ErrAccountNotFound: If no wallet exists for the user
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, userID string) (*entity.Account, error)

	// Create stores a new account
	//
	// Possible errors:
	// - ErrConstraintViolation: If the account already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// Update persists balance, profile and referral fields
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, account *entity.Account) error

	// UpdateProfile writes only name, phone, role and updated_at, leaving balance and
	// referral columns to writers that hold the row lock
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateProfile(ctx context.Context, account *entity.Account) error

	// FindByPhone looks up the account registered with a phone number
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account uses the phone number
	FindByPhone(ctx context.Context, phone string) (*entity.Account, error)

	// FindByReferralCode looks up the owner of a referral code
	//
	// Possible errors:
	// - ErrAccountNotFound: If the code is unknown
	FindByReferralCode(ctx context.Context, code string) (*entity.Account, error)
}
