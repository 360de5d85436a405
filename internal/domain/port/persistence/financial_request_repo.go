package persistence

import (
	"context"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
)

// FinancialRequestRepository stores top-up, withdrawal and prize-claim requests.
// Requests are never deleted.
type FinancialRequestRepository interface {
	// Create stores a new request
	//
	// Possible errors:
	// - ErrDuplicateReference: If the payment reference is already in use
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, request *entity.FinancialRequest) error

	// GetByID retrieves a request without locking
	//
	// Possible errors:
	// - ErrRequestNotFound: If the request doesn't exist
	GetByID(ctx context.Context, id string) (*entity.FinancialRequest, error)

	// GetForUpdate retrieves a request and locks its row until the transaction ends
	//
	// Possible errors:
	// - ErrRequestNotFound: If the request doesn't exist
	GetForUpdate(ctx context.Context, id string) (*entity.FinancialRequest, error)

	// Update persists a transition. The row is only written when the stored version is
	// request.Version-1.
	//
	// Possible errors:
	// - ErrVersionConflict: If the stored version moved on
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, request *entity.FinancialRequest) error

	// List returns one page of requests ordered by createdAt desc, id desc, plus the total count
	List(ctx context.Context, filter entity.RequestFilter, page entity.PageQuery) ([]*entity.FinancialRequest, int64, error)

	// ReferenceInUse reports whether a non-rejected top-up already carries the payment reference
	ReferenceInUse(ctx context.Context, method entity.PaymentMethod, reference string) (bool, error)

	// FindByProof returns the request that owns a stored proof image
	//
	// Possible errors:
	// - ErrRequestNotFound: If no request references the image
	FindByProof(ctx context.Context, proofRef string) (*entity.FinancialRequest, error)
}
