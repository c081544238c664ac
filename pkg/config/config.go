package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the relayer configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Relay      RelayConfig      `mapstructure:"relay"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// EthereumConfig contains origin-chain client settings
type EthereumConfig struct {
	RPCURL            string        `mapstructure:"rpc_url"`
	WSUrl             string        `mapstructure:"ws_url"`
	ChainID           int64         `mapstructure:"chain_id"`
	VaultContract     string        `mapstructure:"vault_contract"`
	RelayerPrivateKey string        `mapstructure:"relayer_private_key"`
	TokenDecimals     int32         `mapstructure:"token_decimals"`
	GasLimit          uint64        `mapstructure:"gas_limit"`
	MaxGasPrice       string        `mapstructure:"max_gas_price"`
	PollingInterval   time.Duration `mapstructure:"polling_interval"`
	StartBlock        int64         `mapstructure:"start_block"`
	LookbackBlocks    int64         `mapstructure:"lookback_blocks"`
}

// LedgerConfig contains destination-ledger settings
type LedgerConfig struct {
	NetworkID    string `mapstructure:"network_id"`
	BridgeSender string `mapstructure:"bridge_sender"`
}

// RelayConfig contains relay operation settings
type RelayConfig struct {
	Workers        int           `mapstructure:"workers"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
	RetryMaxDelay  time.Duration `mapstructure:"retry_max_delay"`
	RescanInterval time.Duration `mapstructure:"rescan_interval"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// =============================================================================
// SCHEDULER API SERVER CONFIG
// =============================================================================

// APIServerConfig represents the scheduler API server configuration
type APIServerConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Shutdown  ShutdownConfig  `mapstructure:"shutdown"`
}

// SchedulerConfig contains native transaction scheduler settings
type SchedulerConfig struct {
	BaseFee         string  `mapstructure:"base_fee"`
	EffortUnitFee   string  `mapstructure:"effort_unit_fee"`
	SurgeFactor     float64 `mapstructure:"surge_factor"`
	MaxEffort       uint64  `mapstructure:"max_effort"`
	MaxLeadTimeDays int     `mapstructure:"max_lead_time_days"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoadAPIServer loads scheduler API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setAPIServerDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config APIServerConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateAPIServer(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setAPIServerDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8081)

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.database", "scheduler_api")

	// Ledger defaults
	viper.SetDefault("ledger.network_id", "local")
	viper.SetDefault("ledger.bridge_sender", "bridge")

	// Native scheduler defaults
	viper.SetDefault("scheduler.base_fee", "0.0001")
	viper.SetDefault("scheduler.effort_unit_fee", "0.000001")
	viper.SetDefault("scheduler.surge_factor", 1.0)
	viper.SetDefault("scheduler.max_effort", 9999)
	viper.SetDefault("scheduler.max_lead_time_days", 365)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_path", "stdout")

	// Shutdown defaults
	viper.SetDefault("shutdown.timeout", "30s")
}

func validateAPIServer(config *APIServerConfig) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Ledger.BridgeSender == "" {
		return fmt.Errorf("ledger.bridge_sender is required")
	}
	return nil
}

// Load loads relayer configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.ssl_mode", "disable")

	// Ethereum defaults
	viper.SetDefault("ethereum.gas_limit", 300000)
	viper.SetDefault("ethereum.token_decimals", 18)
	viper.SetDefault("ethereum.polling_interval", "15s")
	viper.SetDefault("ethereum.start_block", 0)
	viper.SetDefault("ethereum.lookback_blocks", 1000)

	// Ledger defaults
	viper.SetDefault("ledger.network_id", "local")
	viper.SetDefault("ledger.bridge_sender", "bridge")

	// Relay defaults
	viper.SetDefault("relay.workers", 4)
	viper.SetDefault("relay.max_retries", 5)
	viper.SetDefault("relay.retry_base_delay", "500ms")
	viper.SetDefault("relay.retry_max_delay", "30s")
	viper.SetDefault("relay.rescan_interval", "1m")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_port", 9090)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Ethereum.RPCURL == "" {
		return fmt.Errorf("ethereum.rpc_url is required")
	}
	if config.Ethereum.VaultContract == "" {
		return fmt.Errorf("ethereum.vault_contract is required")
	}
	if config.Relay.Workers < 1 {
		return fmt.Errorf("relay.workers must be at least 1")
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
