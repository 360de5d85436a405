package referral

import (
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Policy holds referral rules
type Policy struct {
	// Bonus is credited to the referrer in minor units
	Bonus int64
}

// Service implements invite codes and referral bonuses
type Service struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	events       coreport.EventPublisher
	poster       *common.LedgerPoster
	policy       Policy
}

var _ usecase.ReferralUseCase = (*Service)(nil)

// NewService creates a new referral Service
func NewService(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	events coreport.EventPublisher,
	metrics coreport.MetricsRecorder,
	policy Policy,
) *Service {
	if policy.Bonus <= 0 {
		policy.Bonus = 2000
	}
	return &Service{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		events:       events,
		poster:       common.NewLedgerPoster(ids, timeProvider, metrics),
		policy:       policy,
	}
}
