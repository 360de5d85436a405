package handler

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles balance, transfer and history HTTP requests
type WalletHandler struct {
	wallets usecase.WalletUseCase
	logger  coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(wallets usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		wallets: wallets,
		logger:  logger,
	}
}

// GetWallet handles GET /api/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	account, err := h.wallets.GetWallet(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, "Error getting wallet", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(account))
}

// Transfer handles POST /api/transfer
func (h *WalletHandler) Transfer(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.wallets.Transfer(c.Request.Context(), principal, usecase.TransferCommand{
		Amount:          req.Amount.String(),
		RecipientNumber: req.RecipientNumber,
	})
	if err != nil {
		respondError(c, h.logger, "Transfer failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		TransactionID: result.Entry.ID,
		RecipientID:   result.RecipientID,
		Amount:        entity.FormatAmount(-result.Entry.Amount),
		Balance:       result.Sender.FormattedBalance(),
	})
}

// History handles GET /api/transactions
func (h *WalletHandler) History(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	page, limit, err := pagination(c)
	if err != nil {
		respondError(c, h.logger, "Invalid history query", err)
		return
	}

	result, err := h.wallets.History(c.Request.Context(), principal, usecase.HistoryQuery{
		Page:   page,
		Limit:  limit,
		Type:   c.Query("type"),
		Search: strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, h.logger, "Error getting transaction history", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(result))
}
