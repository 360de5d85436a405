package common

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
)

// WithinTransaction runs fn inside one unit of work. fn receives the transactional context;
// any error or panic rolls everything back.
func WithinTransaction(
	ctx context.Context,
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	fn func(txCtx context.Context) error,
) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(txCtx, uow, logger)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		rollback(txCtx, uow, logger)
		return err
	}

	if err = uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func rollback(txCtx context.Context, uow persistence.UnitOfWork, logger coreport.Logger) {
	if rbErr := uow.Rollback(txCtx); rbErr != nil {
		logger.Error("Failed to rollback transaction", map[string]any{
			"error": rbErr.Error(),
		})
	}
}
