package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/model"
)

// ReferralRepository implements the ReferralRepository port using GORM
type ReferralRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ReferralRepository) handleDatabaseError(operation string, err error, userID string) error {
	logDatabaseError(r.logger, operation, err, map[string]any{"user_id": userID})
	return mapError(r.errorClassifier, err, errs.ErrNotFound, func(string) error {
		return errs.ErrAlreadyReferred
	})
}

// Create stores a referral; a referee can only be referred once
func (r *ReferralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	m := &model.Referral{
		ID:          referral.ID,
		ReferrerID:  referral.ReferrerID,
		RefereeID:   referral.RefereeID,
		RefereeName: referral.RefereeName,
		Bonus:       referral.Bonus,
		CreatedAt:   referral.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating referral", err, referral.RefereeID)
	}
	return nil
}

// ExistsForReferee reports whether the user was already referred
func (r *ReferralRepository) ExistsForReferee(ctx context.Context, refereeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Referral{}).Where("referee_id = ?", refereeID).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking referral", err, refereeID)
	}
	return count > 0, nil
}

// ListByReferrer returns every referral credited to the referrer, newest first
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error) {
	var rows []model.Referral
	err := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing referrals", err, referrerID)
	}

	referrals := make([]*entity.Referral, 0, len(rows))
	for _, m := range rows {
		referrals = append(referrals, &entity.Referral{
			ID:          m.ID,
			ReferrerID:  m.ReferrerID,
			RefereeID:   m.RefereeID,
			RefereeName: m.RefereeName,
			Bonus:       m.Bonus,
			CreatedAt:   m.CreatedAt,
		})
	}
	return referrals, nil
}
