package config

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/LevanSamadashvili/BitcoinWallet/app/core"
	"github.com/LevanSamadashvili/BitcoinWallet/app/storage/database"
	"github.com/LevanSamadashvili/BitcoinWallet/app/strategies"
	"github.com/LevanSamadashvili/BitcoinWallet/pkg/log"
)

const (
	defaultConfigPath = "./configs/config.yaml"

	defaultRestAddr        = ":8000"
	defaultMigrationsTable = "ledger_schema_migrations"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Admin struct {
	APIKey string `mapstructure:"apiKey"`
}

type Fees struct {
	Percent string `mapstructure:"percent"`
}

func (f *Fees) Validate() error {
	if f.Percent == "" {
		return nil // default applies
	}
	percent, err := decimal.NewFromString(f.Percent)
	if err != nil {
		return errors.Wrap(err, "fee percent must be a decimal number")
	}
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("fee percent must be on the 0-100 scale")
	}
	return nil
}

// FeePercent returns the configured percent, falling back to the default.
func (f *Fees) FeePercent() decimal.Decimal {
	if f.Percent == "" {
		return strategies.DefaultFeePercent
	}
	return decimal.RequireFromString(f.Percent) // validated at startup
}

type Config struct {
	RestAddr string                 `mapstructure:"restAddr"`
	Storage  string                 `mapstructure:"storage"`
	Database database.Config        `mapstructure:"database"`
	Logging  log.Config             `mapstructure:"log"`
	Admin    Admin                  `mapstructure:"admin"`
	Fees     Fees                   `mapstructure:"fees"`
	Rates    strategies.RatesConfig `mapstructure:"rates"`
}

func (c *Config) Validate() error {
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return errors.Errorf("unknown storage backend %q", c.Storage)
	}

	if c.Storage == StoragePostgres {
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			return errors.New("you must provide database host, user and name in a config")
		}
	}

	return c.Fees.Validate()
}

func Parse() (*Config, error) {
	configPath := flag.String("config", defaultConfigPath, "configuration file path")
	flag.Parse()

	// set reasonable defaults
	viper.SetDefault("restAddr", defaultRestAddr)
	viper.SetDefault("storage", StorageMemory)
	viper.SetDefault("database.migrationsTable", defaultMigrationsTable)
	viper.SetDefault("admin.apiKey", core.DefaultAdminAPIKey)

	// read a config file
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read a file")
	}

	// unmarshal to a config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal a config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
