package persistence

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// LedgerRepository appends and lists balance changes
type LedgerRepository interface {
	// Create appends an entry
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// List returns one page of a user's entries, newest first, plus the total count
	List(ctx context.Context, filter entity.LedgerFilter, page entity.PageQuery) ([]*entity.LedgerEntry, int64, error)
}
