package common

import (
	"context"
	"slices"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
)

// LedgerPoster applies balance effects to locked accounts and records them in the ledger
type LedgerPoster struct {
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.MetricsRecorder
}

// NewLedgerPoster creates a new LedgerPoster
func NewLedgerPoster(ids coreport.IDGenerator, timeProvider coreport.TimeProvider, metrics coreport.MetricsRecorder) *LedgerPoster {
	return &LedgerPoster{
		ids:          ids,
		timeProvider: timeProvider,
		metrics:      metrics,
	}
}

// Post applies effect to account (which must be locked in txCtx), persists the account and
// appends a ledger entry. A zero effect is a no-op and returns a nil entry. Metrics are not
// recorded here; pass the entries to Observe once the transaction has committed.
func (p *LedgerPoster) Post(
	txCtx context.Context,
	uow persistence.UnitOfWork,
	account *entity.Account,
	effect entity.BalanceEffect,
	description string,
	reference string,
) (*entity.LedgerEntry, error) {
	if effect.None() {
		return nil, nil
	}

	if err := account.Apply(effect, p.timeProvider); err != nil {
		return nil, err
	}
	if err := uow.GetAccountRepository(txCtx).Update(txCtx, account); err != nil {
		return nil, err
	}

	entry := entity.NewLedgerEntry(p.ids.NewID("txn"), account, effect, description, reference, p.timeProvider)
	if err := uow.GetLedgerRepository(txCtx).Create(txCtx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Observe records committed ledger entries; nil entries are skipped
func (p *LedgerPoster) Observe(entries ...*entity.LedgerEntry) {
	for _, e := range entries {
		if e != nil {
			p.metrics.LedgerPosted(string(e.Type), e.Amount)
		}
	}
}

// LockAccounts locks the given accounts in a consistent order to avoid deadlocks and
// returns them keyed by user id
func LockAccounts(txCtx context.Context, uow persistence.UnitOfWork, userIDs ...string) (map[string]*entity.Account, error) {
	ordered := slices.Clone(userIDs)
	slices.Sort(ordered)

	repo := uow.GetAccountRepository(txCtx)
	accounts := make(map[string]*entity.Account, len(ordered))
	for _, id := range ordered {
		if _, ok := accounts[id]; ok {
			continue
		}
		account, err := repo.GetForUpdate(txCtx, id)
		if err != nil {
			return nil, err
		}
		accounts[id] = account
	}
	return accounts, nil
}
