package wallet

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

// History lists the caller's ledger entries, newest first
func (s *Service) History(ctx context.Context, p entity.Principal, query usecase.HistoryQuery) (*entity.Page[*entity.LedgerEntry], error) {
	types, err := entity.LedgerTypesForGroup(query.Type)
	if err != nil {
		return nil, err
	}

	page := entity.NewPageQuery(query.Page, query.Limit)
	entries, total, err := s.uow.GetLedgerRepository(ctx).List(ctx, entity.LedgerFilter{
		UserID: p.UserID,
		Types:  types,
		Search: strings.TrimSpace(query.Search),
	}, page)
	if err != nil {
		return nil, err
	}

	return &entity.Page[*entity.LedgerEntry]{
		Items: entries,
		Info:  entity.NewPageInfo(page, total),
	}, nil
}
