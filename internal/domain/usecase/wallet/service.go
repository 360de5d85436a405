package wallet

import (
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Policy holds wallet limits
type Policy struct {
	// MinTransfer is the smallest transferable amount in minor units
	MinTransfer int64
}

// Service implements balances, transfers and ledger history
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	events       coreport.EventPublisher
	poster       *common.LedgerPoster
	policy       Policy
}

var _ usecase.WalletUseCase = (*Service)(nil)

// NewService creates a new wallet Service
func NewService(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	events coreport.EventPublisher,
	metrics coreport.MetricsRecorder,
	policy Policy,
) *Service {
	if policy.MinTransfer <= 0 {
		policy.MinTransfer = 1
	}
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		events:       events,
		poster:       common.NewLedgerPoster(ids, timeProvider, metrics),
		policy:       policy,
	}
}
