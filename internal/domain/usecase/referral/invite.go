package referral

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

const (
	codePrefix       = "AW"
	codeRandomLength = 8
	maxCodeAttempts  = 3
)

// Invite returns the caller's referral code, generating and storing it on first call
func (s *Service) Invite(ctx context.Context, p entity.Principal) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		var code string
		err := common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
			account, err := s.uow.GetAccountRepository(txCtx).GetForUpdate(txCtx, p.UserID)
			if err != nil {
				return err
			}
			if account.ReferralCode != "" {
				code = account.ReferralCode
				return nil
			}
			account.ReferralCode = s.newCode()
			account.UpdatedAt = s.timeProvider.Now()
			if err := s.uow.GetAccountRepository(txCtx).Update(txCtx, account); err != nil {
				return err
			}
			code = account.ReferralCode
			return nil
		})
		if err == nil {
			return code, nil
		}
		// the generated code collided with an existing one
		if !errors.Is(err, errs.ErrConstraintViolation) {
			return "", err
		}
	}
	return "", errs.ErrInternalServer
}

// newCode builds a short code from the random tail of a fresh ULID
func (s *Service) newCode() string {
	id := s.ids.NewID("")
	if len(id) > codeRandomLength {
		id = id[len(id)-codeRandomLength:]
	}
	return codePrefix + strings.ToUpper(id)
}
