package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// defaultAccounts are provisioned in development so the back office has something to review
var defaultAccounts = []struct {
	principal entity.Principal
	balance   string
}{
	{entity.Principal{UserID: "admin-1", Name: "Arena Admin", Phone: "01700000000", Role: entity.RoleAdmin}, "0.00"},
	{entity.Principal{UserID: "player-1", Name: "Player One", Phone: "01700000001", Role: entity.RoleUser}, "100.00"},
	{entity.Principal{UserID: "player-2", Name: "Player Two", Phone: "01700000002", Role: entity.RoleUser}, "200.00"},
}

// CreateDefaultAccounts provisions the default wallets that do not exist yet; opening
// balances are posted to the ledger as top-ups
func CreateDefaultAccounts(
	ctx context.Context,
	uow persistence.UnitOfWork,
	poster *common.LedgerPoster,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	for _, seed := range defaultAccounts {
		opening, err := entity.ParseAmount(seed.balance)
		if err != nil {
			return fmt.Errorf("invalid opening balance for %s: %w", seed.principal.UserID, err)
		}

		var opened *entity.LedgerEntry
		err = common.WithinTransaction(ctx, uow, logger, func(txCtx context.Context) error {
			repo := uow.GetAccountRepository(txCtx)
			if _, err := repo.Get(txCtx, seed.principal.UserID); err == nil {
				return nil
			} else if !errors.Is(err, errs.ErrAccountNotFound) {
				return err
			}

			account, err := entity.NewAccount(seed.principal, timeProvider)
			if err != nil {
				return err
			}
			if err := repo.Create(txCtx, account); err != nil {
				return err
			}

			effect := entity.BalanceEffect{Type: entity.LedgerTopUp, Amount: opening}
			opened, err = poster.Post(txCtx, uow, account, effect, "Opening balance", "seed")
			return err
		})
		if err != nil {
			return err
		}
		poster.Observe(opened)

		logger.Info("Default account ready", map[string]any{"user_id": seed.principal.UserID})
	}
	return nil
}
