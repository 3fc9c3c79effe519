package config

import (
	"fmt"
	"time"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	"github.com/mblud/poker-tracker-backend/internal/domain/usecase/ledger"
)

// Storage backends
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Game        GameConfig     `mapstructure:"game"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// StorageConfig selects the persistence backend. The memory backend keeps
// everything in process and loses data on restart; postgres persists via GORM.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// GameConfig contains session ledger settings. The dealer fee is a decimal
// string so operators configure it the same way amounts appear in the API.
type GameConfig struct {
	DealerFee     string `mapstructure:"dealerFee"`
	CashOutPolicy string `mapstructure:"cashOutPolicy"`
}

// DealerFeeCents parses the configured dealer fee into cents
func (g GameConfig) DealerFeeCents() (int64, error) {
	cents, err := entity.ValidateAndConvertAmount(g.DealerFee)
	if err != nil {
		return 0, fmt.Errorf("invalid dealer fee %q: %w", g.DealerFee, err)
	}
	return cents, nil
}

// Policy parses the configured cash-out policy
func (g GameConfig) Policy() (ledger.CashOutPolicy, error) {
	return ledger.ParseCashOutPolicy(g.CashOutPolicy)
}

// Validate checks settings that cannot be defaulted away
func (c *Config) Validate() error {
	if c.Storage.Backend != BackendPostgres && c.Storage.Backend != BackendMemory {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendPostgres {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres backend")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required for the postgres backend")
		}
	}
	if _, err := c.Game.DealerFeeCents(); err != nil {
		return err
	}
	if _, err := c.Game.Policy(); err != nil {
		return err
	}
	return nil
}
