package request

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

// checkDuplicateReference rejects a top-up whose external payment reference was already
// submitted for the same payment method and not rejected. The unique index on the table
// enforces the same rule for concurrent submissions.
func (s *Service) checkDuplicateReference(ctx context.Context, method entity.PaymentMethod, reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil
	}

	inUse, err := s.uow.GetRequestRepository(ctx).ReferenceInUse(ctx, method, reference)
	if err != nil {
		return fmt.Errorf("failed to check payment reference: %w", err)
	}
	if inUse {
		s.logger.Warn("Duplicate payment reference submitted", map[string]any{
			"payment_method": string(method),
			"transaction_id": reference,
		})
		return errs.ErrDuplicateReference
	}
	return nil
}
