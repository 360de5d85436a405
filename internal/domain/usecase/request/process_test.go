package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
)

func TestService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("Withdrawal of 500 completes without moving money", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindWithdrawal, 50000)
		f.expectCommit()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.requests.EXPECT().Update(txCtx, stored).Return(nil).Once()
		f.metrics.EXPECT().RequestProcessed("withdrawal", "completed", int64(50000)).Once()
		f.expectPublish()

		req, err := f.service.Process(ctx, admin, entity.KindWithdrawal, stored.ID, usecase.ProcessCommand{
			Action: usecase.ActionApprove,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, req.Status)
		assert.Equal(t, "admin-1", req.ProcessedBy)
		assert.Equal(t, int64(2), req.Version)
		f.accounts.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)

		status, err := entity.NormalizeStatusFilter(entity.KindWithdrawal, "pending")
		require.NoError(t, err)
		assert.NotEqual(t, status, req.Status)
	})

	t.Run("Prize claim of 200 rejected with notes", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindPrizeClaim, 20000)
		f.expectCommit()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.requests.EXPECT().Update(txCtx, stored).Return(nil).Once()
		f.metrics.EXPECT().RequestProcessed("prize-claim", "rejected", int64(20000)).Once()
		f.expectPublish()

		req, err := f.service.Process(ctx, admin, entity.KindPrizeClaim, stored.ID, usecase.ProcessCommand{
			Action: usecase.ActionReject,
			Notes:  "insufficient proof",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, req.Status)
		assert.Equal(t, "insufficient proof", req.Notes)
	})

	t.Run("Approved top-up credits the requester with overrides", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindTopUp, 50000)
		account := accountWithBalance("user-1", 1000)
		amount := int64(45000)
		f.expectCommit()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		f.ledger.EXPECT().Create(txCtx, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Type == entity.LedgerTopUp && e.Amount == 45000 && e.Reference == stored.ID
		})).Return(nil).Once()
		f.requests.EXPECT().Update(txCtx, stored).Return(nil).Once()
		f.metrics.EXPECT().LedgerPosted("top-up", int64(45000)).Once()
		f.metrics.EXPECT().RequestProcessed("top-up", "approved", int64(45000)).Once()
		f.expectPublish()

		req, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{
			Action:          usecase.ActionApprove,
			ExpectedVersion: 1,
			Overrides:       entity.ApprovalOverrides{Amount: &amount},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(45000), req.Amount)
		assert.Equal(t, int64(46000), account.Balance())
	})

	t.Run("Rejected withdrawal refunds the reservation", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindWithdrawal, 50000)
		account := accountWithBalance("user-1", 0)
		f.expectCommit()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		f.ledger.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		f.requests.EXPECT().Update(txCtx, stored).Return(nil).Once()
		f.metrics.EXPECT().LedgerPosted("refund", int64(50000)).Once()
		f.metrics.EXPECT().RequestProcessed("withdrawal", "rejected", int64(50000)).Once()
		f.expectPublish()

		_, err := f.service.Process(ctx, admin, entity.KindWithdrawal, stored.ID, usecase.ProcessCommand{
			Action: usecase.ActionReject,
			Notes:  "number not registered",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(50000), account.Balance())
	})

	t.Run("Override below the configured minimum is refused", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindTopUp, 50000)
		amount := int64(1)
		f.expectRollback()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{
			Action:    usecase.ActionApprove,
			Overrides: entity.ApprovalOverrides{Amount: &amount},
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, int64(50000), stored.Amount)
		f.accounts.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Rolled back credit is not counted", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindTopUp, 50000)
		account := accountWithBalance("user-1", 0)
		f.expectRollback()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(account, nil).Once()
		f.accounts.EXPECT().Update(txCtx, account).Return(nil).Once()
		f.ledger.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		f.requests.EXPECT().Update(txCtx, stored).Return(errs.ErrVersionConflict).Once()
		f.metrics.EXPECT().TransitionConflict("top-up", "version_conflict").Once()

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{
			Action: usecase.ActionApprove,
		})

		assert.ErrorIs(t, err, errs.ErrVersionConflict)
		f.metrics.AssertNotCalled(t, "LedgerPosted", mock.Anything, mock.Anything)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Second decision on the same request conflicts", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindTopUp, 50000)
		stored.Status = entity.StatusApproved
		stored.Version = 2
		snapshot := *stored
		f.expectRollback()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.metrics.EXPECT().TransitionConflict("top-up", "already_processed").Once()

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{
			Action: usecase.ActionReject,
			Notes:  "too late",
		})

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.Equal(t, snapshot, *stored)
		f.requests.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Stale version conflicts", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindTopUp, 50000)
		stored.Version = 3
		f.expectRollback()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()
		f.metrics.EXPECT().TransitionConflict("top-up", "version_conflict").Once()

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{
			Action:          usecase.ActionApprove,
			ExpectedVersion: 2,
		})

		assert.ErrorIs(t, err, errs.ErrVersionConflict)
		assert.Equal(t, entity.StatusPending, stored.Status)
	})

	t.Run("Request of another kind is not found", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindWithdrawal, 50000)
		f.expectRollback()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{Action: usecase.ActionApprove})

		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})

	t.Run("Reject without notes leaves the request pending", func(t *testing.T) {
		f := newFixture(t)
		stored := storedRequest(entity.KindTopUp, 50000)
		f.expectRollback()
		f.requests.EXPECT().GetForUpdate(txCtx, stored.ID).Return(stored, nil).Once()

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, stored.ID, usecase.ProcessCommand{Action: usecase.ActionReject})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, entity.StatusPending, stored.Status)
	})

	t.Run("Players cannot process requests", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Process(ctx, player, entity.KindTopUp, "topup_1", usecase.ProcessCommand{Action: usecase.ActionApprove})

		assert.ErrorIs(t, err, errs.ErrForbidden)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Unknown action", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Process(ctx, admin, entity.KindTopUp, "topup_1", usecase.ProcessCommand{Action: "hold"})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_Distribute(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates an approved claim and credits the winner", func(t *testing.T) {
		f := newFixture(t)
		winner := accountWithBalance("user-7", 0)
		kills := 9
		f.expectCommit()
		f.tournaments.EXPECT().GetByID(txCtx, "trn_1").Return(&entity.Tournament{ID: "trn_1", TournamentCode: "FF-01"}, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-7").Return(winner, nil).Once()
		f.requests.EXPECT().Create(txCtx, mock.MatchedBy(func(r *entity.FinancialRequest) bool {
			return r.Status == entity.StatusApproved && r.ProcessedBy == "admin-1" && r.PlayerName == entity.NotApplicable
		})).Return(nil).Once()
		f.accounts.EXPECT().Update(txCtx, winner).Return(nil).Once()
		f.ledger.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		f.metrics.EXPECT().LedgerPosted("prize", int64(30000)).Once()
		f.metrics.EXPECT().RequestProcessed("prize-claim", "approved", int64(30000)).Once()
		f.expectPublish()

		prize, err := f.service.Distribute(ctx, admin, usecase.DistributeCommand{
			TournamentID: "trn_1",
			UserID:       "user-7",
			PrizeType:    "kill_prize",
			Amount:       "300",
			Kills:        &kills,
		})

		require.NoError(t, err)
		assert.Equal(t, "prize_01TEST", prize.ID)
		assert.Equal(t, int64(30000), winner.Balance())
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Distribute(ctx, admin, usecase.DistributeCommand{PrizeType: "cash", Amount: "0"})

		assert.ErrorIs(t, err, errs.ErrValidation)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Players cannot distribute", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Distribute(ctx, player, usecase.DistributeCommand{})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
