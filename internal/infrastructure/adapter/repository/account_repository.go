package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/model"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func accountToEntity(m *model.Account) *entity.Account {
	account := &entity.Account{
		UserID:    m.UserID,
		Name:      m.Name,
		Phone:     m.Phone,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ReferralCode != nil {
		account.ReferralCode = *m.ReferralCode
	}
	if m.ReferredBy != nil {
		account.ReferredBy = *m.ReferredBy
	}
	account.RestoreBalance(m.Balance)
	return account
}

func accountToModel(a *entity.Account) *model.Account {
	return &model.Account{
		UserID:       a.UserID,
		Name:         a.Name,
		Phone:        a.Phone,
		Role:         string(a.Role),
		Balance:      a.Balance(),
		ReferralCode: nullable(a.ReferralCode),
		ReferredBy:   nullable(a.ReferredBy),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *AccountRepository) handleDatabaseError(operation string, err error, userID string) error {
	logDatabaseError(r.logger, operation, err, map[string]any{"user_id": userID})
	return mapError(r.errorClassifier, err, errs.ErrAccountNotFound, nil)
}

func (r *AccountRepository) first(ctx context.Context, operation, key string, query *gorm.DB) (*entity.Account, error) {
	var m model.Account
	if err := query.WithContext(ctx).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, key)
	}
	return accountToEntity(&m), nil
}

// Get retrieves an account by user id
func (r *AccountRepository) Get(ctx context.Context, userID string) (*entity.Account, error) {
	return r.first(ctx, "getting account", userID, r.db.Where("user_id = ?", userID))
}

// GetForUpdate retrieves an account and locks its row
func (r *AccountRepository) GetForUpdate(ctx context.Context, userID string) (*entity.Account, error) {
	return r.first(ctx, "locking account", userID,
		r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID))
}

// Create stores a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating account", map[string]any{"user_id": account.UserID})

	if err := r.db.WithContext(ctx).Create(accountToModel(account)).Error; err != nil {
		return r.handleDatabaseError("creating account", err, account.UserID)
	}
	return nil
}

// Update persists balance, profile and referral fields
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	m := accountToModel(account)
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("user_id = ?", account.UserID).
		Updates(map[string]any{
			"name":          m.Name,
			"phone":         m.Phone,
			"role":          m.Role,
			"balance":       m.Balance,
			"referral_code": m.ReferralCode,
			"referred_by":   m.ReferredBy,
			"updated_at":    m.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error, account.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account updated", map[string]any{
		"user_id": account.UserID,
		"balance": account.FormattedBalance(),
	})
	return nil
}

// UpdateProfile persists the token-derived profile fields only
func (r *AccountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("user_id = ?", account.UserID).
		Updates(map[string]any{
			"name":       account.Name,
			"phone":      account.Phone,
			"role":       string(account.Role),
			"updated_at": account.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating account profile", result.Error, account.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// FindByPhone looks up the account registered with a phone number
func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	return r.first(ctx, "finding account by phone", phone,
		r.db.Where("phone = ?", phone).Order("created_at asc"))
}

// FindByReferralCode looks up the owner of a referral code
func (r *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*entity.Account, error) {
	return r.first(ctx, "finding account by referral code", code, r.db.Where("referral_code = ?", code))
}
