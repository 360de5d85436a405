package usecase

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
)

// ListQuery is a raw listing request as received from a client
type ListQuery struct {
	Page   int
	Limit  int
	Status string
	Search string
}

// ProcessAction is the admin decision on a pending request
type ProcessAction string

// Process actions
const (
	ActionApprove ProcessAction = "approve"
	ActionReject  ProcessAction = "reject"
)

// ProcessCommand carries an admin decision
type ProcessCommand struct {
	Action ProcessAction
	Notes  string
	// ExpectedVersion is the version the admin saw; zero skips the check
	ExpectedVersion int64
	Overrides       entity.ApprovalOverrides
}

// DistributeCommand credits a prize directly without a player claim
type DistributeCommand struct {
	TournamentID string
	UserID       string
	PrizeType    string
	Amount       string
	Kills        *int
	Position     *int
	Notes        string
}

// FinancialRequestUseCase drives the top-up, withdrawal and prize-claim lifecycle
type FinancialRequestUseCase interface {
	// Submit validates and stores a new pending request. proof may be nil for kinds without one.
	Submit(ctx context.Context, requester entity.Principal, sub entity.Submission, proof *persistence.ProofUpload) (*entity.FinancialRequest, error)

	// ListOwn lists the caller's own requests of one kind
	ListOwn(ctx context.Context, requester entity.Principal, kind entity.RequestKind, query ListQuery) (*entity.Page[*entity.FinancialRequest], error)

	// ListAdmin lists requests of one kind across all users; status defaults to pending
	ListAdmin(ctx context.Context, admin entity.Principal, kind entity.RequestKind, query ListQuery) (*entity.Page[*entity.FinancialRequest], error)

	// Get returns a single request visible to the caller
	Get(ctx context.Context, caller entity.Principal, id string) (*entity.FinancialRequest, error)

	// OpenProof opens a proof image for its requester or an admin; anyone else sees not found
	OpenProof(ctx context.Context, caller entity.Principal, ref string) (*persistence.ProofFile, error)

	// Process applies an approve or reject decision exactly once
	Process(ctx context.Context, admin entity.Principal, kind entity.RequestKind, id string, cmd ProcessCommand) (*entity.FinancialRequest, error)

	// Distribute creates an already approved prize claim and credits the winner
	Distribute(ctx context.Context, admin entity.Principal, cmd DistributeCommand) (*entity.FinancialRequest, error)
}
