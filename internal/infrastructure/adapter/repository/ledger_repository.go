package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/model"
)

// LedgerRepository implements the LedgerRepository port using GORM
type LedgerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func ledgerToEntity(m *model.LedgerEntry) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.LedgerType(m.Type),
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		Description:  m.Description,
		Reference:    m.Reference,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *LedgerRepository) handleDatabaseError(operation string, err error, userID string) error {
	logDatabaseError(r.logger, operation, err, map[string]any{"user_id": userID})
	return mapError(r.errorClassifier, err, errs.ErrNotFound, nil)
}

// Create appends an entry
func (r *LedgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	m := &model.LedgerEntry{
		ID:           entry.ID,
		UserID:       entry.UserID,
		Type:         string(entry.Type),
		Amount:       entry.Amount,
		BalanceAfter: entry.BalanceAfter,
		Description:  entry.Description,
		Reference:    entry.Reference,
		CreatedAt:    entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("creating ledger entry", err, entry.UserID)
	}
	return nil
}

// List returns one page of a user's entries, newest first
func (r *LedgerRepository) List(
	ctx context.Context,
	filter entity.LedgerFilter,
	page entity.PageQuery,
) ([]*entity.LedgerEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntry{}).Where("user_id = ?", filter.UserID)
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query = query.Where("type IN ?", types)
	}
	if filter.Search != "" {
		query = query.Where(searchCondition(r.db, filter.Search, []string{"description", "reference"}))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting ledger entries", err, filter.UserID)
	}
	if total == 0 {
		return []*entity.LedgerEntry{}, 0, nil
	}

	var rows []model.LedgerEntry
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing ledger entries", err, filter.UserID)
	}

	entries := make([]*entity.LedgerEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, ledgerToEntity(&rows[i]))
	}
	return entries, total, nil
}
