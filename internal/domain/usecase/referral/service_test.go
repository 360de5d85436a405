package referral

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	mcore "github.com/amirhossein-jamali/arena-wallet/mocks/port/core"
	mpers "github.com/amirhossein-jamali/arena-wallet/mocks/port/persistence"
)

type txKey struct{}

var (
	fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	txCtx     = context.WithValue(context.Background(), txKey{}, "tx")
	invitee   = entity.Principal{UserID: "user-2", Name: "Rafi", Role: entity.RoleUser}
)

type fixture struct {
	uow       *mpers.MockUnitOfWork
	accounts  *mpers.MockAccountRepository
	ledger    *mpers.MockLedgerRepository
	referrals *mpers.MockReferralRepository
	ids       *mcore.MockIDGenerator
	events    *mcore.MockEventPublisher
	metrics   *mcore.MockMetricsRecorder
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:       mpers.NewMockUnitOfWork(t),
		accounts:  mpers.NewMockAccountRepository(t),
		ledger:    mpers.NewMockLedgerRepository(t),
		referrals: mpers.NewMockReferralRepository(t),
		ids:       mcore.NewMockIDGenerator(t),
		events:    mcore.NewMockEventPublisher(t),
		metrics:   mcore.NewMockMetricsRecorder(t),
	}

	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	clock := mcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()

	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetLedgerRepository(mock.Anything).Return(f.ledger).Maybe()
	f.uow.EXPECT().GetReferralRepository(mock.Anything).Return(f.referrals).Maybe()

	f.service = NewService(f.uow, f.ids, clock, logger, f.events, f.metrics, Policy{})
	return f
}

func TestService_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("Generates a code once", func(t *testing.T) {
		f := newFixture(t)
		owner := &entity.Account{UserID: "user-1"}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(owner, nil).Once()
		f.ids.EXPECT().NewID("").Return("01JQ3ZK8X4ab12cd34").Once()
		f.accounts.EXPECT().Update(txCtx, owner).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		code, err := f.service.Invite(ctx, entity.Principal{UserID: "user-1"})

		require.NoError(t, err)
		assert.Equal(t, "AWAB12CD34", code)
	})

	t.Run("Existing code is returned unchanged", func(t *testing.T) {
		f := newFixture(t)
		owner := &entity.Account{UserID: "user-1", ReferralCode: "AWKEEPME1"}
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(owner, nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		code, err := f.service.Invite(ctx, entity.Principal{UserID: "user-1"})

		require.NoError(t, err)
		assert.Equal(t, "AWKEEPME1", code)
	})

	t.Run("Collision is retried", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Twice()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").RunAndReturn(func(context.Context, string) (*entity.Account, error) {
			return &entity.Account{UserID: "user-1"}, nil
		}).Twice()
		f.ids.EXPECT().NewID("").Return("01JQ3ZK8X4AAAAAAAA").Once()
		f.ids.EXPECT().NewID("").Return("01JQ3ZK8X4BBBBBBBB").Once()
		f.accounts.EXPECT().Update(txCtx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		f.accounts.EXPECT().Update(txCtx, mock.Anything).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		code, err := f.service.Invite(ctx, entity.Principal{UserID: "user-1"})

		require.NoError(t, err)
		assert.Equal(t, "AWBBBBBBBB", code)
	})
}

func TestService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits the referrer", func(t *testing.T) {
		f := newFixture(t)
		owner := &entity.Account{UserID: "user-1", ReferralCode: "AWAB12CD34"}
		referee := &entity.Account{UserID: "user-2", Name: "Rafi"}

		f.accounts.EXPECT().FindByReferralCode(ctx, "AWAB12CD34").Return(owner, nil).Once()
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(owner, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-2").Return(referee, nil).Once()
		f.referrals.EXPECT().ExistsForReferee(txCtx, "user-2").Return(false, nil).Once()
		f.accounts.EXPECT().Update(txCtx, referee).Return(nil).Once()
		f.ids.EXPECT().NewID("ref").Return("ref_01TEST").Once()
		f.referrals.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		f.accounts.EXPECT().Update(txCtx, owner).Return(nil).Once()
		f.ids.EXPECT().NewID("txn").Return("txn_01TEST").Once()
		f.ledger.EXPECT().Create(txCtx, mock.MatchedBy(func(e *entity.LedgerEntry) bool {
			return e.Type == entity.LedgerReferral && e.UserID == "user-1" && e.Reference == "ref_01TEST"
		})).Return(nil).Once()
		f.metrics.EXPECT().LedgerPosted("referral", int64(2000)).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.events.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		ref, err := f.service.Process(ctx, invitee, " awab12cd34 ")

		require.NoError(t, err)
		assert.Equal(t, int64(2000), ref.Bonus)
		assert.Equal(t, "user-1", referee.ReferredBy)
		assert.Equal(t, int64(2000), owner.Balance())
	})

	t.Run("Second referral is refused", func(t *testing.T) {
		f := newFixture(t)
		owner := &entity.Account{UserID: "user-1"}
		referee := &entity.Account{UserID: "user-2", ReferredBy: "user-9"}

		f.accounts.EXPECT().FindByReferralCode(ctx, "AWAB12CD34").Return(owner, nil).Once()
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-1").Return(owner, nil).Once()
		f.accounts.EXPECT().GetForUpdate(txCtx, "user-2").Return(referee, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.Process(ctx, invitee, "AWAB12CD34")

		assert.ErrorIs(t, err, errs.ErrAlreadyReferred)
		assert.Equal(t, int64(0), owner.Balance())
	})

	t.Run("Own code", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().FindByReferralCode(ctx, "AWAB12CD34").Return(&entity.Account{UserID: "user-2"}, nil).Once()

		_, err := f.service.Process(ctx, invitee, "AWAB12CD34")

		assert.ErrorIs(t, err, errs.ErrSelfReferral)
	})

	t.Run("Unknown code", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().FindByReferralCode(ctx, "AWNOPE").Return(nil, errs.ErrAccountNotFound).Once()

		_, err := f.service.Process(ctx, invitee, "awnope")

		assert.ErrorIs(t, err, errs.ErrInvalidReferralCode)
	})

	t.Run("Empty code", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Process(ctx, invitee, "  ")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := &entity.Account{UserID: "user-1"}
	owner.RestoreBalance(6000)
	referrals := []*entity.Referral{{ID: "ref_1"}, {ID: "ref_2"}, {ID: "ref_3"}}
	f.accounts.EXPECT().Get(ctx, "user-1").Return(owner, nil).Once()
	f.referrals.EXPECT().ListByReferrer(ctx, "user-1").Return(referrals, nil).Once()

	stats, err := f.service.Stats(ctx, entity.Principal{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.ReferralCount)
	assert.Equal(t, int64(6000), stats.Balance)
}
