package tournament

import (
	"time"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Policy holds tournament rules
type Policy struct {
	// PrizeClaimWindow is how long after completion a player may still claim a prize
	PrizeClaimWindow time.Duration
}

// Service implements the tournament catalog and registrations
type Service struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	events       coreport.EventPublisher
	poster       *common.LedgerPoster
	policy       Policy
}

var _ usecase.TournamentUseCase = (*Service)(nil)

// NewService creates a new tournament Service
func NewService(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	events coreport.EventPublisher,
	metrics coreport.MetricsRecorder,
	policy Policy,
) *Service {
	if policy.PrizeClaimWindow <= 0 {
		policy.PrizeClaimWindow = 7 * 24 * time.Hour
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
