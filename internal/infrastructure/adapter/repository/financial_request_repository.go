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

// topUpReferenceIndex is the partial unique index guarding top-up payment references
const topUpReferenceIndex = "idx_requests_topup_reference"

// searchColumns are matched case-insensitively by the admin queue search
var searchColumns = []string{
	"requester_name",
	"requester_id",
	"account_number",
	"transaction_ref",
	"tournament_code",
	"player_name",
	"player_id",
}

// FinancialRequestRepository implements the FinancialRequestRepository port using GORM
type FinancialRequestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewFinancialRequestRepository creates a new FinancialRequestRepository instance
func NewFinancialRequestRepository(db *gorm.DB, logger coreport.Logger) *FinancialRequestRepository {
	return &FinancialRequestRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func requestToEntity(m *model.FinancialRequest) *entity.FinancialRequest {
	return &entity.FinancialRequest{
		ID:             m.ID,
		RequesterID:    m.RequesterID,
		RequesterName:  m.RequesterName,
		Kind:           entity.RequestKind(m.Kind),
		Amount:         m.Amount,
		Status:         entity.RequestStatus(m.Status),
		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		AccountNumber:  m.AccountNumber,
		TransactionRef: m.TransactionRef,
		ProofImage:     m.ProofImage,
		Notes:          m.Notes,
		ClaimNotes:     m.ClaimNotes,
		TournamentID:   m.TournamentID,
		TournamentCode: m.TournamentCode,
		PrizeType:      entity.PrizeType(m.PrizeType),
		PlayerName:     m.PlayerName,
		PlayerID:       m.PlayerID,
		Kills:          m.Kills,
		Position:       m.Position,
		ProcessedBy:    m.ProcessedBy,
		ProcessedAt:    m.ProcessedAt,
		Version:        m.Version,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func requestToModel(r *entity.FinancialRequest) *model.FinancialRequest {
	return &model.FinancialRequest{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		RequesterName:  r.RequesterName,
		Kind:           string(r.Kind),
		Amount:         r.Amount,
		Status:         string(r.Status),
		PaymentMethod:  string(r.PaymentMethod),
		AccountNumber:  r.AccountNumber,
		TransactionRef: r.TransactionRef,
		ProofImage:     r.ProofImage,
		Notes:          r.Notes,
		ClaimNotes:     r.ClaimNotes,
		TournamentID:   r.TournamentID,
		TournamentCode: r.TournamentCode,
		PrizeType:      string(r.PrizeType),
		PlayerName:     r.PlayerName,
		PlayerID:       r.PlayerID,
		Kills:          r.Kills,
		Position:       r.Position,
		ProcessedBy:    r.ProcessedBy,
		ProcessedAt:    r.ProcessedAt,
		Version:        r.Version,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (r *FinancialRequestRepository) handleDatabaseError(operation string, err error, requestID string) error {
	logDatabaseError(r.logger, operation, err, map[string]any{"request_id": requestID})
	return mapError(r.errorClassifier, err, errs.ErrRequestNotFound, func(constraint string) error {
		if constraint == topUpReferenceIndex {
			return errs.ErrDuplicateReference
		}
		return nil
	})
}

// Create stores a new request
func (r *FinancialRequestRepository) Create(ctx context.Context, request *entity.FinancialRequest) error {
	r.logger.Debug("Creating financial request", map[string]any{
		"request_id": request.ID,
		"kind":       request.Kind,
		"amount":     request.Amount,
	})

	if err := r.db.WithContext(ctx).Create(requestToModel(request)).Error; err != nil {
		return r.handleDatabaseError("creating financial request", err, request.ID)
	}
	return nil
}

// GetByID retrieves a request without locking
func (r *FinancialRequestRepository) GetByID(ctx context.Context, id string) (*entity.FinancialRequest, error) {
	var m model.FinancialRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting financial request", err, id)
	}
	return requestToEntity(&m), nil
}

// FindByProof retrieves the request that references a proof image
func (r *FinancialRequestRepository) FindByProof(ctx context.Context, proofRef string) (*entity.FinancialRequest, error) {
	var m model.FinancialRequest
	if err := r.db.WithContext(ctx).Where("proof_image = ?", proofRef).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("finding financial request by proof", err, proofRef)
	}
	return requestToEntity(&m), nil
}

// GetForUpdate retrieves a request and locks its row
func (r *FinancialRequestRepository) GetForUpdate(ctx context.Context, id string) (*entity.FinancialRequest, error) {
	var m model.FinancialRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking financial request", err, id)
	}
	return requestToEntity(&m), nil
}

// Update writes a transition guarded by the previous version
func (r *FinancialRequestRepository) Update(ctx context.Context, request *entity.FinancialRequest) error {
	m := requestToModel(request)
	result := r.db.WithContext(ctx).Model(&model.FinancialRequest{}).
		Where("id = ? AND version = ?", request.ID, request.Version-1).
		Updates(map[string]any{
			"amount":         m.Amount,
			"status":         m.Status,
			"payment_method": m.PaymentMethod,
			"account_number": m.AccountNumber,
			"notes":          m.Notes,
			"processed_by":   m.ProcessedBy,
			"processed_at":   m.ProcessedAt,
			"version":        m.Version,
			"updated_at":     m.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating financial request", result.Error, request.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Financial request version moved on", map[string]any{
			"request_id": request.ID,
			"expected":   request.Version - 1,
		})
		return errs.NewVersionConflictError(request.ID, request.Version-1, 0)
	}
	return nil
}

// List returns one page of requests matching the filter plus the total count
func (r *FinancialRequestRepository) List(
	ctx context.Context,
	filter entity.RequestFilter,
	page entity.PageQuery,
) ([]*entity.FinancialRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.FinancialRequest{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.RequesterID != "" {
		query = query.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where(searchCondition(r.db, filter.Search, searchColumns))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting financial requests", err, "")
	}
	if total == 0 {
		return []*entity.FinancialRequest{}, 0, nil
	}

	var rows []model.FinancialRequest
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing financial requests", err, "")
	}

	requests := make([]*entity.FinancialRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, requestToEntity(&rows[i]))
	}
	return requests, total, nil
}

// ReferenceInUse reports whether a non-rejected top-up already carries the payment reference
func (r *FinancialRequestRepository) ReferenceInUse(
	ctx context.Context,
	method entity.PaymentMethod,
	reference string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FinancialRequest{}).
		Where("kind = ? AND payment_method = ? AND transaction_ref = ? AND status <> ?",
			entity.KindTopUp, method, reference, entity.StatusRejected).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking payment reference", err, "")
	}
	return count > 0, nil
}
