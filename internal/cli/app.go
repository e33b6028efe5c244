package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/calculator"
	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/internal/logging"
	"github.com/rustyeddy/lotsize/journal"
	"github.com/rustyeddy/lotsize/prefs"
	"github.com/rustyeddy/lotsize/rates"
	"github.com/rustyeddy/lotsize/risk"
)

// app is everything a command needs, opened from the config.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *prefs.SQLite
	journal *journal.SQLite // nil when journaling is off
	session *calculator.Session
}

func loadConfig(rc *RootConfig) (*config.Config, error) {
	if err := config.LoadEnv(rc.EnvFile); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg *config.Config
	if rc.ConfigPath != "" {
		c, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		cfg = config.Default()
		cfg.ApplyEnv()
	}

	if rc.DBPath != "" {
		cfg.Store.Path = rc.DBPath
	}
	if rc.LogLevel != "" {
		cfg.Log.Level = rc.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openApp(ctx context.Context, rc *RootConfig) (*app, error) {
	cfg, err := loadConfig(rc)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	lookup, err := newLookup(cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	a.store, err = prefs.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}

	var recorder calculator.Recorder
	if cfg.Journal.Enabled {
		a.journal, err = journal.NewSQLite(cfg.JournalPath())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open journal: %w", err)
		}
		recorder = a.journal
	}

	a.session, err = calculator.New(ctx, risk.NewSizer(lookup, logger), a.store, recorder, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// newLookup builds the configured rate source.
func newLookup(cfg *config.Config, logger *zap.Logger) (rates.Lookup, error) {
	timeout, err := cfg.Rates.ParseTimeout()
	if err != nil {
		return nil, err
	}

	switch cfg.Rates.Provider {
	case "oanda":
		baseURL, err := rates.BaseURL(cfg.Rates.OANDA.Env)
		if err != nil {
			return nil, err
		}
		o, err := rates.NewOANDA(rates.OANDAConfig{
			BaseURL:   baseURL,
			Token:     cfg.Rates.OANDA.Token,
			AccountID: cfg.Rates.OANDA.AccountID,
			Currency:  cfg.Rates.OANDA.Currency,
			Timeout:   timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return o, nil
	case "static":
		return cfg.Rates.StaticRates(), nil
	default:
		return rates.NewClient(rates.ClientConfig{
			BaseURL: cfg.Rates.URL,
			Timeout: timeout,
			Retries: cfg.Rates.Retries,
		}, logger), nil
	}
}

// input fills blank flags from the config when nothing has been saved.
func (a *app) input(balance, riskPct, sig string) calculator.Input {
	saved := a.session.Preferences()
	if balance == "" && saved.AccountBalance == "" {
		balance = a.cfg.Account.Balance
	}
	if riskPct == "" && saved.RiskPercentage == "" {
		riskPct = a.cfg.Account.RiskPercent
	}
	return calculator.Input{Balance: balance, RiskPercent: riskPct, Signal: sig}
}

func (a *app) Close() {
	if a.journal != nil {
		_ = a.journal.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = a.logger.Sync()
}
