// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultRatesURL is the Korea Eximbank daily exchange rate endpoint.
const DefaultRatesURL = "https://www.koreaexim.go.kr/site/program/financial/exchangeJSON"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Ledger struct {
		DefaultCurrency string `mapstructure:"default_currency" yaml:"default_currency"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Rates struct {
		BaseURL        string             `mapstructure:"base_url" yaml:"base_url"`
		Data           string             `mapstructure:"data" yaml:"data"`
		TimeoutSeconds int                `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		AuthKey        string             `mapstructure:"auth_key" yaml:"-"` // Never serialize API key
		Fallback       map[string]float64 `mapstructure:"fallback" yaml:"fallback"`
	} `mapstructure:"rates" yaml:"rates"`

	Storage struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	} `mapstructure:"storage" yaml:"storage"`

	Advisor struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"advisor" yaml:"advisor"`

	Stats struct {
		WindowDays int `mapstructure:"window_days" yaml:"window_days"`
	} `mapstructure:"stats" yaml:"stats"`

	Export struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile loads configuration, reading configFile instead of
// searching the standard locations when it is not empty.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.accountbook")
		v.AddConfigPath(".accountbook")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("LEDGER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			if configFile != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
			}
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The bank API key always comes from the unprefixed variable
	if err := v.BindEnv("rates.auth_key", "EXIM_API_KEY"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind EXIM_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := GetEnv("ACCOUNTBOOK_HOME", filepath.Join(home, ".accountbook"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ledger.default_currency", string(models.CanonicalCurrency))

	v.SetDefault("rates.base_url", DefaultRatesURL)
	v.SetDefault("rates.data", "AP01")
	v.SetDefault("rates.timeout_seconds", 10)
	v.SetDefault("rates.fallback", map[string]float64{})

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.directory", filepath.Join(base, "data"))
	v.SetDefault("storage.sqlite_path", filepath.Join(base, "ledger.db"))

	v.SetDefault("advisor.rules_file", "")

	v.SetDefault("stats.window_days", 7)

	v.SetDefault("export.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := models.ParseCurrency(config.Ledger.DefaultCurrency); err != nil {
		return fmt.Errorf("ledger.default_currency: %w", err)
	}

	if config.Rates.TimeoutSeconds < 1 || config.Rates.TimeoutSeconds > 120 {
		return fmt.Errorf("rates.timeout_seconds must be between 1 and 120, got: %d", config.Rates.TimeoutSeconds)
	}

	if _, err := config.FallbackRates(); err != nil {
		return err
	}

	switch config.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be one of file, sqlite, memory, got: %s", config.Storage.Backend)
	}

	if config.Stats.WindowDays < 1 || config.Stats.WindowDays > 366 {
		return fmt.Errorf("stats.window_days must be between 1 and 366, got: %d", config.Stats.WindowDays)
	}

	if len(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	return nil
}

// FallbackRates converts the configured fallback overrides, keyed by
// currency code, into decimal rates.
func (c *Config) FallbackRates() (map[models.Currency]decimal.Decimal, error) {
	out := make(map[models.Currency]decimal.Decimal, len(c.Rates.Fallback))
	for code, rate := range c.Rates.Fallback {
		cur, err := models.ParseCurrency(code)
		if err != nil {
			return nil, fmt.Errorf("rates.fallback: %w", err)
		}
		if cur.IsCanonical() {
			return nil, fmt.Errorf("rates.fallback: %s is the ledger currency", cur)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("rates.fallback: rate for %s must be positive, got: %v", cur, rate)
		}
		out[cur] = decimal.NewFromFloat(rate)
	}
	return out, nil
}

// DefaultCurrency returns the parsed default entry currency.
func (c *Config) DefaultCurrency() models.Currency {
	cur, err := models.ParseCurrency(c.Ledger.DefaultCurrency)
	if err != nil {
		return models.CanonicalCurrency
	}
	return cur
}

// DelimiterRune returns the export delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	if c.Export.Delimiter == "" {
		return ','
	}
	return []rune(c.Export.Delimiter)[0]
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	if config == nil {
		return logging.NewLogrusAdapter("info", "text")
	}
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), config.Log.Format)
}
