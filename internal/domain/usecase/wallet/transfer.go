package wallet

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
)

// Transfer moves funds from the caller to the account registered with the recipient number
func (s *Service) Transfer(ctx context.Context, p entity.Principal, cmd usecase.TransferCommand) (*usecase.TransferResult, error) {
	verr := errs.NewValidationError("transfer")
	amount, err := entity.ParsePositiveAmount(cmd.Amount, s.policy.MinTransfer)
	if err != nil {
		verr.Add("amount", err.Error())
	}
	phone := strings.TrimSpace(cmd.RecipientNumber)
	if phone == "" {
		verr.Add("recipientNumber", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	recipient, err := s.uow.GetAccountRepository(ctx).FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.ErrRecipientNotFound
		}
		return nil, err
	}
	if recipient.UserID == p.UserID {
		return nil, errs.ErrSelfTransfer
	}

	result := &usecase.TransferResult{RecipientID: recipient.UserID}
	var credit *entity.LedgerEntry
	err = common.WithinTransaction(ctx, s.uow, s.logger, func(txCtx context.Context) error {
		accounts, err := common.LockAccounts(txCtx, s.uow, p.UserID, recipient.UserID)
		if err != nil {
			return err
		}
		sender, receiver := accounts[p.UserID], accounts[recipient.UserID]

		out, err := s.poster.Post(txCtx, s.uow, sender,
			entity.BalanceEffect{Type: entity.LedgerTransferOut, Amount: -amount},
			"Transfer to "+receiver.Phone, receiver.UserID)
		if err != nil {
			return err
		}
		in, err := s.poster.Post(txCtx, s.uow, receiver,
			entity.BalanceEffect{Type: entity.LedgerTransferIn, Amount: amount},
			"Transfer from "+sender.Phone, sender.UserID)
		if err != nil {
			return err
		}

		result.Sender = sender
		result.Entry = out
		credit = in
		return nil
	})
	if err != nil {
		s.logger.Warn("Transfer failed", map[string]any{
			"user_id":      p.UserID,
			"recipient_id": recipient.UserID,
			"amount":       entity.FormatAmount(amount),
			"error":        err.Error(),
		})
		return nil, err
	}

	s.poster.Observe(result.Entry, credit)
	s.logger.Info("Transfer completed", map[string]any{
		"user_id":      p.UserID,
		"recipient_id": recipient.UserID,
		"amount":       entity.FormatAmount(amount),
	})
	common.PublishAfterCommit(ctx, s.events, s.logger, coreport.Event{
		Type:       entity.EventTransferCompleted,
		EntityID:   result.Entry.ID,
		UserID:     p.UserID,
		ActorID:    recipient.UserID,
		Amount:     entity.FormatAmount(amount),
		OccurredAt: result.Entry.CreatedAt,
	})

	return result, nil
}
