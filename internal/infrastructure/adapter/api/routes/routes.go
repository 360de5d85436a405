package routes

import (
	"net/http"
	"path"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the API handlers
type Handlers struct {
	Requests    *handler.RequestHandler
	Wallet      *handler.WalletHandler
	Tournaments *handler.TournamentHandler
	Referrals   *handler.ReferralHandler
	Health      *handler.HealthHandler
}

// Guards holds what the authenticated routes need before reaching a handler
type Guards struct {
	Verifier middleware.TokenVerifier
	Wallets  usecase.WalletUseCase
	// Limiter throttles submissions; nil disables rate limiting
	Limiter middleware.RateLimiter
	Counter middleware.RateLimitCounter
	Logger  coreport.Logger
	// UploadsPrefix is where proof images are served; empty disables the route
	UploadsPrefix string
}

// Operational configures the endpoints outside /api
type Operational struct {
	MetricsPath    string
	MetricsHandler http.Handler // nil disables /metrics
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, guards Guards) {
	api := router.Group("/api")

	// Public catalog
	api.GET("/tournaments", h.Tournaments.List)
	api.GET("/tournaments/historical", h.Tournaments.Historical)
	api.GET("/tournaments/:id", h.Tournaments.Get)

	authed := api.Group("",
		middleware.Authenticate(guards.Verifier, guards.Logger),
		middleware.ProvisionAccount(guards.Wallets, guards.Logger),
	)
	admin := authed.Group("", middleware.RequireAdmin())

	throttled := func(scope string, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if guards.Limiter == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{middleware.RateLimit(guards.Limiter, scope, guards.Counter, guards.Logger)}, handlers...)
	}

	// Top-ups
	authed.POST("/topup", throttled("submit", h.Requests.SubmitTopUp)...)
	authed.GET("/topup", h.Requests.ListOwn(entity.KindTopUp))
	admin.GET("/topup/admin", h.Requests.ListAdmin(entity.KindTopUp))
	admin.PUT("/topup/:id/approve", h.Requests.Approve(entity.KindTopUp))
	admin.PUT("/topup/:id/reject", h.Requests.Reject(entity.KindTopUp))

	// Withdrawals
	authed.POST("/withdraw", throttled("submit", h.Requests.SubmitWithdrawal)...)
	authed.GET("/withdraw", h.Requests.ListOwn(entity.KindWithdrawal))
	admin.GET("/withdraw/admin", h.Requests.ListAdmin(entity.KindWithdrawal))
	admin.PUT("/withdraw/:id/process", h.Requests.Process(entity.KindWithdrawal))

	// Prize claims
	authed.POST("/prizes", throttled("submit", h.Requests.SubmitPrizeClaim)...)
	authed.GET("/prizes", h.Requests.ListOwn(entity.KindPrizeClaim))
	authed.GET("/prizes/recent-tournaments", h.Tournaments.RecentForPrize)
	admin.GET("/prizes/admin", h.Requests.ListAdmin(entity.KindPrizeClaim))
	admin.PUT("/prizes/:id/process", h.Requests.Process(entity.KindPrizeClaim))
	admin.POST("/prizes/distribute", h.Requests.Distribute)

	authed.GET("/requests/:id", h.Requests.Get)

	// Wallet
	authed.GET("/wallet", h.Wallet.GetWallet)
	authed.POST("/transfer", throttled("transfer", h.Wallet.Transfer)...)
	authed.GET("/transactions", h.Wallet.History)

	// Tournaments
	admin.POST("/tournaments", h.Tournaments.Create)
	admin.PUT("/tournaments/:id", h.Tournaments.Update)
	admin.PUT("/tournaments/:id/status", h.Tournaments.SetStatus)
	admin.PUT("/tournaments/:id/complete", h.Tournaments.Complete)
	admin.GET("/tournaments/:id/registrations", h.Tournaments.Roster)
	authed.POST("/tournaments/:id/register", h.Tournaments.Register)
	authed.GET("/tournaments/user/registrations", h.Tournaments.Registrations)

	// Referrals
	authed.GET("/referrals/invite", h.Referrals.Invite)
	authed.POST("/referrals/process", h.Referrals.Process)
	authed.GET("/referrals/stats", h.Referrals.Stats)

	// Proof images are visible to their requester and admins only
	if guards.UploadsPrefix != "" {
		router.GET(path.Join("/", guards.UploadsPrefix, ":file"),
			middleware.Authenticate(guards.Verifier, guards.Logger),
			h.Requests.Proof,
		)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupOperationalRoutes configures health and metrics
func SetupOperationalRoutes(router *gin.Engine, h Handlers, ops Operational) {
	router.GET("/healthz", h.Health.Health)

	if ops.MetricsHandler != nil {
		router.GET(ops.MetricsPath, gin.WrapH(ops.MetricsHandler))
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, observer middleware.HTTPObserver) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Metrics(observer))
}
