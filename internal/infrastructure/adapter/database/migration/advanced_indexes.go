package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and constraints that GORM tags cannot express
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{logger: logger}
}

type statement struct {
	name string
	sql  string
}

var advancedIndexes = []statement{
	{"pg_trgm extension", `CREATE EXTENSION IF NOT EXISTS pg_trgm`},
	// One live top-up per payment reference; rejected submissions free the reference
	{"top-up reference uniqueness", `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_topup_reference
		ON financial_requests (payment_method, transaction_ref)
		WHERE kind = 'top-up' AND status <> 'rejected' AND transaction_ref <> ''`},
	{"queue ordering", `
		CREATE INDEX IF NOT EXISTS idx_requests_kind_created
		ON financial_requests (kind, created_at DESC, id DESC)`},
	{"pending queue", `
		CREATE INDEX IF NOT EXISTS idx_requests_pending
		ON financial_requests (kind, created_at DESC)
		WHERE status = 'pending'`},
	{"requester search", `
		CREATE INDEX IF NOT EXISTS idx_requests_requester_name_trgm
		ON financial_requests USING GIN (requester_name gin_trgm_ops)`},
	{"account number search", `
		CREATE INDEX IF NOT EXISTS idx_requests_account_number_trgm
		ON financial_requests USING GIN (account_number gin_trgm_ops)`},
	{"transaction ref search", `
		CREATE INDEX IF NOT EXISTS idx_requests_transaction_ref_trgm
		ON financial_requests USING GIN (transaction_ref gin_trgm_ops)`},
	{"player search", `
		CREATE INDEX IF NOT EXISTS idx_requests_player_name_trgm
		ON financial_requests USING GIN (player_name gin_trgm_ops)`},
	{"ledger created_at BRIN", `
		CREATE INDEX IF NOT EXISTS idx_ledger_created_at_brin
		ON ledger_entries USING BRIN (created_at)
		WITH (pages_per_range = 32)`},
	{"ledger type filter", `
		CREATE INDEX IF NOT EXISTS idx_ledger_user_type
		ON ledger_entries (user_id, type)`},
	{"completed tournaments", `
		CREATE INDEX IF NOT EXISTS idx_tournaments_completed_at
		ON tournaments (completed_at)
		WHERE is_completed`},
}

var foreignKeys = []statement{
	{"fk_requests_requester", `
		ALTER TABLE financial_requests ADD CONSTRAINT fk_requests_requester
		FOREIGN KEY (requester_id) REFERENCES accounts (user_id)`},
	{"fk_ledger_account", `
		ALTER TABLE ledger_entries ADD CONSTRAINT fk_ledger_account
		FOREIGN KEY (user_id) REFERENCES accounts (user_id)`},
	{"fk_registrations_tournament", `
		ALTER TABLE tournament_registrations ADD CONSTRAINT fk_registrations_tournament
		FOREIGN KEY (tournament_id) REFERENCES tournaments (id)`},
	{"fk_registrations_account", `
		ALTER TABLE tournament_registrations ADD CONSTRAINT fk_registrations_account
		FOREIGN KEY (user_id) REFERENCES accounts (user_id)`},
	{"fk_referrals_referrer", `
		ALTER TABLE referrals ADD CONSTRAINT fk_referrals_referrer
		FOREIGN KEY (referrer_id) REFERENCES accounts (user_id)`},
	{"fk_referrals_referee", `
		ALTER TABLE referrals ADD CONSTRAINT fk_referrals_referee
		FOREIGN KEY (referee_id) REFERENCES accounts (user_id)`},
}

// CreateAdvancedIndexes creates partial, trigram and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(db *gorm.DB) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, stmt := range advancedIndexes {
		if err := db.Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreateForeignKeys adds the foreign keys that are not yet present
func (m *AdvancedIndexManager) CreateForeignKeys(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		var exists bool
		err := db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, fk.name).Scan(&exists).Error
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := db.Exec(fk.sql).Error; err != nil {
			m.logger.Error("Failed to create foreign key", map[string]any{
				"constraint": fk.name,
				"error":      err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks; failures are logged only
func (m *AdvancedIndexManager) CreatePerformanceTweaks(db *gorm.DB) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []statement{
		// accounts and requests are updated in place on every approval
		{"accounts fillfactor", `ALTER TABLE accounts SET (fillfactor = 90)`},
		{"requests fillfactor", `ALTER TABLE financial_requests SET (fillfactor = 90)`},
		{"ledger user statistics", `ALTER TABLE ledger_entries ALTER COLUMN user_id SET STATISTICS 1000`},
	}
	for _, tweak := range tweaks {
		if err := db.Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}
	return nil
}
