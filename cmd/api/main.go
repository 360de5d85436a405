package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/common"
	referralUseCase "github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/referral"
	requestUseCase "github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/request"
	tournamentUseCase "github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/tournament"
	walletUseCase "github.com/amirhossein-jamali/arena-wallet/internal/domain/usecase/wallet"

	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// appMetrics is what the recorder must offer to the use cases and the HTTP layer
type appMetrics interface {
	coreport.MetricsRecorder
	ObserveHTTP(method, route, code string, seconds float64)
	RateLimited()
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx := context.Background()
	tp := timeProvider.NewRealTimeProvider()
	ids := id.NewULIDGenerator()

	// Metrics
	registry := prometheus.NewRegistry()
	var recorder appMetrics = metrics.NoopRecorder{}
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewRecorder(registry, cfg.Metrics.Namespace)
	}

	// Connect to the database
	dbManager := database.NewManager(database.ConfigFromApp(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if cfg.Metrics.Enabled {
		if err := dbManager.RegisterMetrics(registry, cfg.Metrics.Namespace); err != nil {
			appLogger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
		}
	}

	// Run migrations
	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Create default accounts
	if cfg.Database.SeedAccounts {
		poster := common.NewLedgerPoster(ids, tp, recorder)
		if err := migration.CreateDefaultAccounts(ctx, uow, poster, tp, appLogger); err != nil {
			appLogger.Error("Failed to create default accounts", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Lifecycle events
	var publisher coreport.EventPublisher = messaging.NewNoopPublisher()
	if cfg.Kafka.Enabled {
		publisher = messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, appLogger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{"error": err.Error()})
		}
	}()

	// Proof storage
	proofStorage, err := storage.NewLocalProofStorage(cfg.Uploads.Dir, cfg.Uploads.URLPrefix, cfg.Uploads.MaxSizeMB<<20, appLogger)
	if err != nil {
		appLogger.Error("Failed to prepare upload directory", map[string]any{
			"dir":   cfg.Uploads.Dir,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	verifier, err := auth.NewJWTVerifier(cfg.Auth)
	if err != nil {
		appLogger.Error("Failed to create token verifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize use cases; amounts were checked by validateConfig
	minRequest, _ := entity.ParseAmount(cfg.Wallet.MinRequestAmount)
	minTransfer, _ := entity.ParseAmount(cfg.Wallet.MinTransferAmount)
	referralBonus, _ := entity.ParseAmount(cfg.Wallet.ReferralBonus)

	requestService := requestUseCase.NewService(uow, proofStorage, ids, tp, appLogger, publisher, recorder,
		requestUseCase.Policy{MinAmount: minRequest})
	walletService := walletUseCase.NewService(uow, ids, tp, appLogger, publisher, recorder,
		walletUseCase.Policy{MinTransfer: minTransfer})
	tournamentService := tournamentUseCase.NewService(uow, ids, tp, appLogger, publisher, recorder,
		tournamentUseCase.Policy{PrizeClaimWindow: cfg.Wallet.PrizeClaimWindow})
	referralService := referralUseCase.NewService(uow, ids, tp, appLogger, publisher, recorder,
		referralUseCase.Policy{Bonus: referralBonus})

	// Initialize API handlers
	handlers := routes.Handlers{
		Requests:    handler.NewRequestHandler(requestService, appLogger, cfg.Uploads.MaxSizeMB<<20),
		Wallet:      handler.NewWalletHandler(walletService, appLogger),
		Tournaments: handler.NewTournamentHandler(tournamentService, appLogger),
		Referrals:   handler.NewReferralHandler(referralService, appLogger),
		Health:      handler.NewHealthHandler(dbManager, appLogger),
	}

	guards := routes.Guards{
		Verifier: verifier,
		Wallets:  walletService,
		Counter:  recorder,
		Logger:   appLogger,

		UploadsPrefix: cfg.Uploads.URLPrefix,
	}
	if cfg.RateLimit.Enabled && cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, rate limiting disabled", map[string]any{"error": err.Error()})
		} else {
			defer func() { _ = redisClient.Close() }()
			guards.Limiter = cache.NewRedisRateLimiter(redisClient, cfg.RateLimit, appLogger)
		}
	}

	ops := routes.Operational{}
	if cfg.Metrics.Enabled {
		ops.MetricsPath = cfg.Metrics.Path
		ops.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	// Initialize Gin router
	router := gin.New()
	router.MaxMultipartMemory = 1 << 20

	// Setup middlewares and routes
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, recorder)
	routes.SetupOperationalRoutes(router, handlers, ops)
	routes.SetupRoutes(router, handlers, guards)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"log_level": appLogger.GetLevel().String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	required := []struct {
		value string
		key   string
		env   string
	}{
		{cfg.Database.Host, "database.host", "AW_DB_HOST"},
		{cfg.Database.Port, "database.port", "AW_DB_PORT"},
		{cfg.Database.Username, "database.username", "AW_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "AW_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "AW_DB_NAME"},
		{cfg.Auth.JWTSecret, "auth.jwtSecret", "AW_JWT_SECRET"},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Uploads.Dir == "" {
		missingConfigs = append(missingConfigs, "uploads.dir")
	}

	if cfg.Uploads.MaxSizeMB <= 0 {
		missingConfigs = append(missingConfigs, "uploads.maxSizeMB")
	}

	if cfg.Kafka.Enabled && (len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "") {
		missingConfigs = append(missingConfigs, "kafka.brokers and kafka.topic")
	}

	if cfg.RateLimit.Enabled && (cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0) {
		missingConfigs = append(missingConfigs, "rateLimit.requests and rateLimit.window")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Money rules must parse
	for key, amount := range map[string]string{
		"wallet.minRequestAmount":  cfg.Wallet.MinRequestAmount,
		"wallet.minTransferAmount": cfg.Wallet.MinTransferAmount,
		"wallet.referralBonus":     cfg.Wallet.ReferralBonus,
	} {
		if _, err := entity.ParsePositiveAmount(amount, 1); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, amount, err)
		}
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
