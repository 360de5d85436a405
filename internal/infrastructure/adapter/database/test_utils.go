package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for integration tests against a real Postgres.
// Tests are skipped unless TEST_DB_HOST is set.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager or skips the test
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host, ok := os.LookupEnv("TEST_DB_HOST")
	if !ok || host == "" {
		t.Skip("TEST_DB_HOST not set; skipping database integration test")
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := DefaultConfig()
	config.Host = host
	config.Port = getEnvIntOrDefault("TEST_DB_PORT", 5432)
	config.Username = getEnvOrDefault("TEST_DB_USERNAME", "postgres")
	config.Password = getEnvOrDefault("TEST_DB_PASSWORD", "postgres")
	config.Database = getEnvOrDefault("TEST_DB_DATABASE", "arena_wallet_test")
	config.SSLMode = getEnvOrDefault("TEST_DB_SSL_MODE", "disable")
	config.MaxOpenConns = 10
	config.MaxIdleConns = 5
	config.QueryTimeout = 5 * time.Second
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and registers cleanup
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})
	return db
}

// SetupTestDB drops every table and runs the full migration
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := dropAllTables(m.Manager.DB()); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

// CreateTestAccount inserts a wallet with the given balance in minor units
func (m *TestDBManager) CreateTestAccount(t *testing.T, userID string, balance int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	account := model.Account{
		UserID:    userID,
		Name:      "Test " + userID,
		Role:      "user",
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
