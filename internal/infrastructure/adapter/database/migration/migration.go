package migration

import (
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager manages database migrations
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll performs all migrations
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", nil)
	return nil
}

// autoMigrateModels auto-migrates database models
func (m *Manager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.Player{},
		&model.Payment{},
		&model.CashOut{},
	)
}

// createIndexes creates database indexes not expressed in model tags
func (m *Manager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// Case-insensitive name lookups drive rebuy auto-provisioning
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_players_name_lower ON players (LOWER(name))").Error; err != nil {
		return err
	}

	// Pending listings filter by status, newest first
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_payments_status_timestamp ON payments (status, timestamp DESC)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_cashouts_confirmed_timestamp ON cashouts (confirmed, timestamp DESC)").Error; err != nil {
		return err
	}

	return nil
}
