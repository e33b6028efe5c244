package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvRatesURL       = "LOTSIZE_RATES_URL"
	EnvRatesProvider  = "LOTSIZE_RATES_PROVIDER"
	EnvStore          = "LOTSIZE_STORE"
	EnvAddr           = "LOTSIZE_ADDR"
	EnvLogLevel       = "LOTSIZE_LOG_LEVEL"
	EnvOANDAToken     = "OANDA_TOKEN"
	EnvOANDAAccountID = "OANDA_ACCOUNT_ID"
)

// LoadEnv reads .env style files into the process environment. Missing
// files are ignored; variables already set are left alone.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overlays environment variables onto the config.
func (c *Config) ApplyEnv() {
	set := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(EnvRatesURL, &c.Rates.URL)
	set(EnvRatesProvider, &c.Rates.Provider)
	set(EnvStore, &c.Store.Path)
	set(EnvAddr, &c.Server.Addr)
	set(EnvLogLevel, &c.Log.Level)
	set(EnvOANDAToken, &c.Rates.OANDA.Token)
	set(EnvOANDAAccountID, &c.Rates.OANDA.AccountID)
}
