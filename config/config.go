package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/lotsize/rates"
	"github.com/rustyeddy/lotsize/signal"
)

// Config represents the complete lotsize configuration
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Rates   RatesConfig   `json:"rates" yaml:"rates"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// AccountConfig holds the inputs used when nothing has been saved yet
type AccountConfig struct {
	Balance     string `json:"balance,omitempty" yaml:"balance,omitempty"` // e.g. "10000 USD"
	RiskPercent string `json:"risk_percent,omitempty" yaml:"risk_percent,omitempty"`
}

// RatesConfig selects and configures the conversion rate source
type RatesConfig struct {
	Provider string                        `json:"provider" yaml:"provider"` // "exchangerate", "oanda" or "static"
	URL      string                        `json:"url,omitempty" yaml:"url,omitempty"`
	Timeout  string                        `json:"timeout,omitempty" yaml:"timeout,omitempty"` // e.g. "10s"
	Retries  int                           `json:"retries,omitempty" yaml:"retries,omitempty"`
	OANDA    OANDAConfig                   `json:"oanda,omitempty" yaml:"oanda,omitempty"`
	Static   map[string]map[string]float64 `json:"static,omitempty" yaml:"static,omitempty"`
}

// OANDAConfig contains OANDA pricing parameters. The token usually comes
// from OANDA_TOKEN rather than the file.
type OANDAConfig struct {
	Env       string `json:"env,omitempty" yaml:"env,omitempty"` // "practice" or "live"
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Currency  string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Token     string `json:"-" yaml:"-"`
}

// StoreConfig locates the preferences database
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"` // defaults to store.path
}

// ServerConfig contains HTTP API parameters
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level       string `json:"level" yaml:"level"` // debug|info|warn|error
	Development bool   `json:"development,omitempty" yaml:"development,omitempty"`
	File        string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB   int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups  int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAgeDays  int    `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty"`
}

// ParseTimeout converts the timeout string to time.Duration
func (r RatesConfig) ParseTimeout() (time.Duration, error) {
	if r.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(r.Timeout)
}

// StaticRates converts the static table to decimals
func (r RatesConfig) StaticRates() rates.Static {
	out := make(rates.Static, len(r.Static))
	for base, table := range r.Static {
		row := make(map[string]decimal.Decimal, len(table))
		for quote, rate := range table {
			row[strings.ToUpper(quote)] = decimal.NewFromFloat(rate)
		}
		out[strings.ToUpper(base)] = row
	}
	return out
}

// JournalPath returns the journal database path
func (c *Config) JournalPath() string {
	if c.Journal.Path != "" {
		return c.Journal.Path
	}
	return c.Store.Path
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.ApplyEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Balance != "" {
		if _, err := signal.ParseBalance(c.Account.Balance); err != nil {
			return fmt.Errorf("account.balance: %w", err)
		}
	}
	if c.Account.RiskPercent != "" {
		pct, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(c.Account.RiskPercent), "%"))
		if err != nil || !pct.IsPositive() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("account.risk_percent must be between 0 and 100")
		}
	}

	switch c.Rates.Provider {
	case "exchangerate":
	case "oanda":
		if _, err := rates.BaseURL(c.Rates.OANDA.Env); err != nil {
			return fmt.Errorf("rates.oanda.env: %w", err)
		}
		if c.Rates.OANDA.AccountID == "" {
			return fmt.Errorf("rates.oanda.account_id is required for the oanda provider")
		}
		if c.Rates.OANDA.Token == "" {
			return fmt.Errorf("OANDA_TOKEN is required for the oanda provider")
		}
	case "static":
		if len(c.Rates.Static) == 0 {
			return fmt.Errorf("rates.static table is required for the static provider")
		}
	default:
		return fmt.Errorf("rates.provider must be 'exchangerate', 'oanda' or 'static'")
	}
	if _, err := c.Rates.ParseTimeout(); err != nil {
		return fmt.Errorf("rates.timeout: %w", err)
	}
	if c.Rates.Retries < 0 {
		return fmt.Errorf("rates.retries must not be negative")
	}

	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			RiskPercent: "1",
		},
		Rates: RatesConfig{
			Provider: "exchangerate",
			URL:      rates.DefaultURL,
			Timeout:  "10s",
			Retries:  2,
			OANDA: OANDAConfig{
				Env:      "practice",
				Currency: "USD",
			},
		},
		Store: StoreConfig{
			Path: "./lotsize.sqlite",
		},
		Journal: JournalConfig{
			Enabled: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
