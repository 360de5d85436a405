package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReferralHandler handles invite codes and referral bonuses
type ReferralHandler struct {
	referrals usecase.ReferralUseCase
	logger    coreport.Logger
}

// NewReferralHandler creates a new referral handler instance
func NewReferralHandler(referrals usecase.ReferralUseCase, logger coreport.Logger) *ReferralHandler {
	return &ReferralHandler{
		referrals: referrals,
		logger:    logger,
	}
}

// Invite handles GET /api/referrals/invite
func (h *ReferralHandler) Invite(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	code, err := h.referrals.Invite(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, "Failed to get referral code", err)
		return
	}
	c.JSON(http.StatusOK, dto.InviteResponse{ReferralCode: code})
}

// Process handles POST /api/referrals/process
func (h *ReferralHandler) Process(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.ProcessReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	referral, err := h.referrals.Process(c.Request.Context(), principal, req.ReferralCode)
	if err != nil {
		respondError(c, h.logger, "Referral processing failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReferralResponse(referral))
}

// Stats handles GET /api/referrals/stats
func (h *ReferralHandler) Stats(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	stats, err := h.referrals.Stats(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, "Failed to get referral stats", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReferralStatsResponse(stats))
}
