package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/database/migration"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	sqlDB             *sql.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the pool, retrying transient connection failures
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = m.config.RetryAttempts
	retry.RetryInterval = m.config.RetryDelay
	retry.MaxInterval = max(m.config.RetryDelay*8, retry.MaxInterval)

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retry, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
		return openErr
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retry.MaxRetries, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"port":           m.config.Port,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.sqlDB = sqlDB
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	m.connectionMonitor.Start(30 * time.Second)

	return m.db, nil
}

// RegisterMetrics exports pool stats and query durations to reg
func (m *Manager) RegisterMetrics(reg prometheus.Registerer, namespace string) error {
	if m.db == nil {
		return errors.New("database is not connected")
	}
	if err := reg.Register(collectors.NewDBStatsCollector(m.sqlDB, m.config.Database)); err != nil {
		return fmt.Errorf("failed to register pool collector: %w", err)
	}
	return m.db.Use(NewQueryMetricsPlugin(reg, namespace))
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// HealthCheck pings the database within the configured query timeout
func (m *Manager) HealthCheck(ctx context.Context) error {
	if m.sqlDB == nil {
		return errors.New("database is not connected")
	}
	return Ping(ctx, m.sqlDB, m.config.QueryTimeout)
}

// PoolMetrics returns the latest connection pool snapshot
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.sqlDB == nil {
		return nil
	}
	return m.sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}
