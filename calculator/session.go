// Package calculator runs one calculation end to end: parse the inputs,
// size the position, remember the inputs and keep the result on display.
package calculator

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/journal"
	"github.com/rustyeddy/lotsize/prefs"
	"github.com/rustyeddy/lotsize/risk"
	"github.com/rustyeddy/lotsize/signal"
)

// Input is what the user typed.
type Input struct {
	Balance     string `json:"balance"`
	RiskPercent string `json:"risk_percent"`
	Signal      string `json:"signal"`
}

// Calculation is a finished result with the signal it came from.
type Calculation struct {
	EntryID string
	Signal  signal.TradeSignal
	Result  risk.Result
}

// Recorder appends finished calculations somewhere durable.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) error
}

// Session owns the displayed result and the persisted preferences.
// Calculations may run concurrently; the last one to finish wins the
// result slot.
type Session struct {
	sizer    *risk.Sizer
	store    prefs.Store
	recorder Recorder
	logger   *zap.Logger

	mu     sync.Mutex
	saved  prefs.Preferences
	result *Calculation
}

// New loads the stored preferences once and returns a ready session.
// A nil store keeps preferences in memory; a nil recorder disables the
// journal.
func New(ctx context.Context, sizer *risk.Sizer, store prefs.Store, recorder Recorder, logger *zap.Logger) (*Session, error) {
	if sizer == nil {
		return nil, errors.New("sizer is required")
	}
	if store == nil {
		store = prefs.NewMemory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	saved, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	return &Session{
		sizer:    sizer,
		store:    store,
		recorder: recorder,
		logger:   logger,
		saved:    saved,
	}, nil
}

// Preferences returns the last saved balance and risk inputs.
func (s *Session) Preferences() prefs.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}

// UpdatePreferences saves the slots that changed. Both slots are saved
// on change.
func (s *Session) UpdatePreferences(ctx context.Context, balance, riskPct string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := prefs.Preferences{
		AccountBalance: strings.TrimSpace(balance),
		RiskPercentage: strings.TrimSpace(riskPct),
	}
	if next == s.saved {
		return nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return errors.Wrap(err, "save preferences")
	}
	s.saved = next
	return nil
}

// Calculate parses in, sizes the position and puts the result on
// display. Empty balance or risk fields fall back to the saved
// preferences. On failure the previous result stays on display.
func (s *Session) Calculate(ctx context.Context, in Input) (Calculation, error) {
	in = s.fill(in)

	if err := s.UpdatePreferences(ctx, in.Balance, in.RiskPercent); err != nil {
		s.logger.Warn("preferences not saved", zap.Error(err))
	}

	balance, err := signal.ParseBalance(in.Balance)
	if err != nil {
		return Calculation{}, err
	}
	pct, err := ParseRiskPercent(in.RiskPercent)
	if err != nil {
		return Calculation{}, err
	}
	sig, err := signal.Parse(in.Signal)
	if err != nil {
		return Calculation{}, err
	}

	res, err := s.sizer.Size(ctx, risk.Params{Balance: balance, RiskPercent: pct}, sig.Instrument, risk.StopPips(sig))
	if err != nil {
		if errors.Is(err, risk.ErrRateLookupFailed) {
			s.logger.Error("calculation failed",
				zap.String("instrument", sig.Instrument.String()),
				zap.String("account", balance.Currency),
				zap.Error(err))
		}
		return Calculation{}, err
	}

	calc := Calculation{Signal: sig, Result: res}
	if s.recorder != nil {
		e := journal.NewEntry(in.Balance, in.RiskPercent, in.Signal, res)
		if err := s.recorder.Record(ctx, e); err != nil {
			s.logger.Warn("calculation not journaled", zap.Error(err))
		} else {
			calc.EntryID = e.ID
		}
	}

	s.mu.Lock()
	s.result = &calc
	s.mu.Unlock()

	s.logger.Info("calculated",
		zap.String("instrument", res.Instrument.String()),
		zap.String("pips", res.Pips.String()),
		zap.String("lot_size", res.LotSize.String()))

	return calc, nil
}

// Result returns the displayed calculation, if any.
func (s *Session) Result() (Calculation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Calculation{}, false
	}
	return *s.result, true
}

// Reset empties the result panel and clears the stored preferences.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = nil
	if err := s.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear preferences")
	}
	s.saved = prefs.Preferences{}
	return nil
}

func (s *Session) fill(in Input) Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(in.Balance) == "" {
		in.Balance = s.saved.AccountBalance
	}
	if strings.TrimSpace(in.RiskPercent) == "" {
		in.RiskPercent = s.saved.RiskPercentage
	}
	return in
}

// ParseRiskPercent reads "2", "2.5" or "2%". The range is checked by the
// sizer.
func ParseRiskPercent(text string) (decimal.Decimal, error) {
	t := strings.TrimSuffix(strings.TrimSpace(text), "%")
	pct, err := decimal.NewFromString(strings.TrimSpace(t))
	if err != nil {
		return decimal.Zero, errors.Wrapf(risk.ErrInvalidRiskPercent, "%q", text)
	}
	return pct, nil
}

// Preview parses a signal and returns the stop distance it implies,
// without any rate lookup.
func Preview(text string) (signal.TradeSignal, decimal.Decimal, error) {
	sig, err := signal.Parse(text)
	if err != nil {
		return sig, decimal.Zero, err
	}
	return sig, risk.StopPips(sig), nil
}
