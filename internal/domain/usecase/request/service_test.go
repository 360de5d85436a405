package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	mcore "github.com/amirhossein-jamali/arena-wallet/mocks/port/core"
	mpers "github.com/amirhossein-jamali/arena-wallet/mocks/port/persistence"
)

type txKey struct{}

var (
	fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	txCtx     = context.WithValue(context.Background(), txKey{}, "tx")
	player    = entity.Principal{UserID: "user-1", Name: "Nadia", Phone: "01700000000", Role: entity.RoleUser}
	admin     = entity.Principal{UserID: "admin-1", Name: "Ops", Role: entity.RoleAdmin}
)

type fixture struct {
	uow         *mpers.MockUnitOfWork
	accounts    *mpers.MockAccountRepository
	requests    *mpers.MockFinancialRequestRepository
	ledger      *mpers.MockLedgerRepository
	tournaments *mpers.MockTournamentRepository
	storage     *mpers.MockProofStorage
	ids         *mcore.MockIDGenerator
	clock       *mcore.MockTimeProvider
	events      *mcore.MockEventPublisher
	metrics     *mcore.MockMetricsRecorder
	service     *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:         mpers.NewMockUnitOfWork(t),
		accounts:    mpers.NewMockAccountRepository(t),
		requests:    mpers.NewMockFinancialRequestRepository(t),
		ledger:      mpers.NewMockLedgerRepository(t),
		tournaments: mpers.NewMockTournamentRepository(t),
		storage:     mpers.NewMockProofStorage(t),
		ids:         mcore.NewMockIDGenerator(t),
		clock:       mcore.NewMockTimeProvider(t),
		events:      mcore.NewMockEventPublisher(t),
		metrics:     mcore.NewMockMetricsRecorder(t),
	}

	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.clock.EXPECT().Now().Return(fixedTime).Maybe()
	f.ids.EXPECT().NewID(mock.Anything).RunAndReturn(func(prefix string) string {
		return prefix + "_01TEST"
	}).Maybe()

	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetRequestRepository(mock.Anything).Return(f.requests).Maybe()
	f.uow.EXPECT().GetLedgerRepository(mock.Anything).Return(f.ledger).Maybe()
	f.uow.EXPECT().GetTournamentRepository(mock.Anything).Return(f.tournaments).Maybe()

	f.service = NewService(f.uow, f.storage, f.ids, f.clock, logger, f.events, f.metrics, Policy{MinAmount: 100})
	return f
}

func (f *fixture) expectCommit() {
	f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
}

func (f *fixture) expectRollback() {
	f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
}

func (f *fixture) expectPublish() {
	f.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
}

func accountWithBalance(userID string, minor int64) *entity.Account {
	account := &entity.Account{UserID: userID, Name: "Nadia", Phone: "01700000000", Role: entity.RoleUser}
	account.RestoreBalance(minor)
	return account
}

func storedRequest(kind entity.RequestKind, amount int64) *entity.FinancialRequest {
	return &entity.FinancialRequest{
		ID:            kind.IDPrefix() + "_01STORED",
		RequesterID:   player.UserID,
		RequesterName: player.Name,
		Kind:          kind,
		Amount:        amount,
		Status:        entity.StatusPending,
		PaymentMethod: entity.PaymentBkash,
		AccountNumber: "01700000000",
		Version:       1,
		CreatedAt:     fixedTime.Add(-time.Hour),
		UpdatedAt:     fixedTime.Add(-time.Hour),
	}
}
