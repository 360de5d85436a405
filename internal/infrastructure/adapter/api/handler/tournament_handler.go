package handler

import (
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TournamentHandler handles tournament catalog and registration HTTP requests
type TournamentHandler struct {
	tournaments usecase.TournamentUseCase
	logger      coreport.Logger
}

// NewTournamentHandler creates a new tournament handler instance
func NewTournamentHandler(tournaments usecase.TournamentUseCase, logger coreport.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournaments: tournaments,
		logger:      logger,
	}
}

// Create handles POST /api/tournaments
func (h *TournamentHandler) Create(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateTournamentRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidBody(c, err)
		return
	}

	tournament, err := h.tournaments.Create(c.Request.Context(), principal, req.Command())
	if err != nil {
		respondError(c, h.logger, "Failed to create tournament", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTournamentResponse(tournament))
}

// List handles GET /api/tournaments
func (h *TournamentHandler) List(c *gin.Context) {
	page, limit, err := pagination(c)
	if err != nil {
		respondError(c, h.logger, "Invalid tournament query", err)
		return
	}

	query := usecase.TournamentQuery{Page: page, Limit: limit}
	verr := domainerr.NewValidationError("query")
	query.IsCompleted = optionalBool(c, verr, "isCompleted")
	query.IsActive = optionalBool(c, verr, "isActive")
	if err := verr.OrNil(); err != nil {
		respondError(c, h.logger, "Invalid tournament query", err)
		return
	}

	result, err := h.tournaments.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.logger, "Failed to list tournaments", err)
		return
	}

	items := make([]dto.TournamentResponse, 0, len(result.Items))
	for _, t := range result.Items {
		items = append(items, dto.NewTournamentResponse(t))
	}
	c.JSON(http.StatusOK, dto.TournamentListResponse{Tournaments: items, Pagination: result.Info})
}

// Get handles GET /api/tournaments/:idOrSlug
func (h *TournamentHandler) Get(c *gin.Context) {
	tournament, err := h.tournaments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to load tournament", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTournamentResponse(tournament))
}

// Historical handles GET /api/tournaments/historical
func (h *TournamentHandler) Historical(c *gin.Context) {
	verr := domainerr.NewValidationError("query")
	limit := queryInt(c, "limit", verr)
	if err := verr.OrNil(); err != nil {
		respondError(c, h.logger, "Invalid tournament query", err)
		return
	}

	results, err := h.tournaments.Historical(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "Failed to list historical tournaments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournaments": dto.NewHistoricalList(results)})
}

// Update handles PUT /api/tournaments/:id
func (h *TournamentHandler) Update(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateTournamentRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidBody(c, err)
		return
	}

	tournament, err := h.tournaments.Update(c.Request.Context(), principal, c.Param("id"), req.Command())
	if err != nil {
		respondError(c, h.logger, "Failed to update tournament", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTournamentResponse(tournament))
}

// SetStatus handles PUT /api/tournaments/:id/status
func (h *TournamentHandler) SetStatus(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.TournamentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	tournament, err := h.tournaments.SetStatus(c.Request.Context(), principal, c.Param("id"), usecase.TournamentStatusCommand{
		IsActive:    req.IsActive,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondError(c, h.logger, "Failed to change tournament status", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTournamentResponse(tournament))
}

// Roster handles GET /api/tournaments/:id/registrations
func (h *TournamentHandler) Roster(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	roster, err := h.tournaments.Roster(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to list tournament registrations", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRosterResponse(roster))
}

// Complete handles PUT /api/tournaments/:id/complete
func (h *TournamentHandler) Complete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	tournament, err := h.tournaments.Complete(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to complete tournament", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTournamentResponse(tournament))
}

// Register handles POST /api/tournaments/:id/register
func (h *TournamentHandler) Register(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.RegisterTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	registration, err := h.tournaments.Register(c.Request.Context(), principal, c.Param("id"), usecase.RegisterCommand{
		PlayerName: req.PlayerName,
		PlayerID:   req.PlayerID,
	})
	if err != nil {
		respondError(c, h.logger, "Tournament registration failed", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRegistrationResponse(registration))
}

// Registrations handles GET /api/tournaments/user/registrations
func (h *TournamentHandler) Registrations(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	registrations, err := h.tournaments.Registrations(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, "Failed to list registrations", err)
		return
	}

	items := make([]dto.RegistrationResponse, 0, len(registrations))
	for _, r := range registrations {
		items = append(items, dto.NewRegistrationResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"registrations": items})
}

// RecentForPrize handles GET /api/prizes/recent-tournaments
func (h *TournamentHandler) RecentForPrize(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	tournaments, err := h.tournaments.RecentForPrize(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, "Failed to list recent tournaments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tournaments": dto.NewTournamentList(tournaments)})
}

func optionalBool(c *gin.Context, verr *domainerr.ValidationError, name string) *bool {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		verr.Add(name, "must be true or false")
		return nil
	}
	return &v
}
