package request

import (
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Policy holds the tunable rules of the request lifecycle
type Policy struct {
	// MinAmount is the smallest accepted amount in minor units
	MinAmount int64
}

// Service implements the financial request lifecycle
type Service struct {
	uow          persistence.UnitOfWork
	storage      persistence.ProofStorage
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	events       coreport.EventPublisher
	metrics      coreport.MetricsRecorder
	poster       *common.LedgerPoster
	policy       Policy
}

var _ usecase.FinancialRequestUseCase = (*Service)(nil)

// NewService creates a new request Service
func NewService(
	uow persistence.UnitOfWork,
	storage persistence.ProofStorage,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	events coreport.EventPublisher,
	metrics coreport.MetricsRecorder,
	policy Policy,
) *Service {
	if policy.MinAmount <= 0 {
		policy.MinAmount = 1
	}
	return &Service{
		uow:          uow,
		storage:      storage,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		events:       events,
		metrics:      metrics,
		poster:       common.NewLedgerPoster(ids, timeProvider, metrics),
		policy:       policy,
	}
}
