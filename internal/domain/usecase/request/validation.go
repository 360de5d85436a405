package request

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

// validateClaimTarget checks that a prize claim points at a real tournament with a matching code
func (s *Service) validateClaimTarget(ctx context.Context, sub entity.Submission) error {
	tournament, err := s.uow.GetTournamentRepository(ctx).GetByID(ctx, sub.TournamentID)
	if err != nil {
		if errors.Is(err, errs.ErrTournamentNotFound) {
			verr := errs.NewValidationError(string(sub.Kind))
			verr.Add("tournamentId", "unknown tournament")
			return verr
		}
		return err
	}

	if !tournament.MatchesCode(sub.TournamentCode) {
		verr := errs.NewValidationError(string(sub.Kind))
		verr.Add("tournamentCode", "does not match the tournament")
		return verr
	}
	return nil
}

// validateProcessCommand rejects malformed admin decisions before any row is locked
func validateProcessCommand(kind entity.RequestKind, action string, notes string) error {
	switch action {
	case "approve", "reject":
	default:
		verr := errs.NewValidationError(string(kind))
		verr.Add("status", "must be approve or reject")
		return verr
	}
	if len(notes) > entity.MaxNotesLen {
		verr := errs.NewValidationError(string(kind))
		verr.Add("notes", "is too long")
		return verr
	}
	return nil
}
