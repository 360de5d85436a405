package request

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// ListOwn lists the caller's own requests of one kind, newest first
func (s *Service) ListOwn(
	ctx context.Context,
	requester entity.Principal,
	kind entity.RequestKind,
	query usecase.ListQuery,
) (*entity.Page[*entity.FinancialRequest], error) {
	status, err := entity.NormalizeStatusFilter(kind, query.Status)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, entity.RequestFilter{
		Kind:        kind,
		RequesterID: requester.UserID,
		Status:      status,
		Search:      strings.TrimSpace(query.Search),
	}, query)
}

// ListAdmin lists requests across all users. Without a status filter only pending requests
// are returned; "all" lifts the filter.
func (s *Service) ListAdmin(
	ctx context.Context,
	admin entity.Principal,
	kind entity.RequestKind,
	query usecase.ListQuery,
) (*entity.Page[*entity.FinancialRequest], error) {
	if !admin.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	rawStatus := query.Status
	if strings.TrimSpace(rawStatus) == "" {
		rawStatus = string(entity.StatusPending)
	}
	status, err := entity.NormalizeStatusFilter(kind, rawStatus)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, entity.RequestFilter{
		Kind:   kind,
		Status: status,
		Search: strings.TrimSpace(query.Search),
	}, query)
}

func (s *Service) list(ctx context.Context, filter entity.RequestFilter, query usecase.ListQuery) (*entity.Page[*entity.FinancialRequest], error) {
	page := entity.NewPageQuery(query.Page, query.Limit)

	items, total, err := s.uow.GetRequestRepository(ctx).List(ctx, filter, page)
	if err != nil {
		s.logger.Error("Failed to list financial requests", map[string]any{
			"kind":  string(filter.Kind),
			"error": err.Error(),
		})
		return nil, err
	}

	return &entity.Page[*entity.FinancialRequest]{
		Items: items,
		Info:  entity.NewPageInfo(page, total),
	}, nil
}

// Get returns one request if the caller owns it or is an admin. Other callers see not found.
func (s *Service) Get(ctx context.Context, caller entity.Principal, id string) (*entity.FinancialRequest, error) {
	req, err := s.uow.GetRequestRepository(ctx).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanView(req.RequesterID) {
		return nil, errs.ErrRequestNotFound
	}
	return req, nil
}

// OpenProof streams a proof image to the request owner or an admin
func (s *Service) OpenProof(ctx context.Context, caller entity.Principal, ref string) (*persistence.ProofFile, error) {
	req, err := s.uow.GetRequestRepository(ctx).FindByProof(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !caller.CanView(req.RequesterID) {
		s.logger.Warn("Refused proof image to a non-owner", map[string]any{
			"request_id": req.ID,
			"user_id":    caller.UserID,
		})
		return nil, errs.ErrRequestNotFound
	}
	return s.storage.Open(ctx, ref)
}
