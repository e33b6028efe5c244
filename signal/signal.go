// Package signal extracts trade parameters from free-text trading
// signals such as "Buy EURUSD 1.05000, SL 1.04800 (20 pips)".
//
// Parsing is a sequence of independent matchers over the raw text rather
// than a grammar. Keyword matching for prices is permissive; instrument
// matching is strict because a wrong pair corrupts every later figure.
package signal

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/lotsize/market"
)

type Direction int

const (
	Unknown Direction = iota
	Buy
	Sell
)

func (d Direction) String() string {
	switch d {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// TradeSignal is the structured form of a signal.
type TradeSignal struct {
	Instrument market.Instrument
	Direction  Direction
	Entry      decimal.Decimal
	StopLoss   decimal.Decimal

	// ExplicitPips is set when the signal states the stop distance,
	// e.g. "(20 pips)". It overrides the price-derived distance.
	ExplicitPips *decimal.Decimal
}

func (s TradeSignal) String() string {
	str := fmt.Sprintf("%s %s entry=%s sl=%s", s.Direction, s.Instrument, s.Entry, s.StopLoss)
	if s.ExplicitPips != nil {
		str += fmt.Sprintf(" pips=%s", s.ExplicitPips)
	}
	return str
}

// Parse runs the matchers in order: instrument, entry, stop loss and
// the optional explicit pip count.
func Parse(text string) (TradeSignal, error) {
	var sig TradeSignal

	inst, ok := MatchInstrument(text)
	if !ok {
		return sig, errors.Wrap(ErrInvalidInstrument, "no currency pair found")
	}
	sig.Instrument = inst

	entry, ok := MatchEntry(text)
	if !ok {
		return sig, errors.Wrap(ErrInvalidEntryPrice, "no entry price found")
	}
	if !entry.IsPositive() {
		return sig, errors.Wrapf(ErrInvalidEntryPrice, "entry must be positive, got %s", entry)
	}
	sig.Entry = entry

	stop, ok := MatchStopLoss(text)
	if !ok {
		return sig, errors.Wrap(ErrInvalidStopLoss, "no stop loss found")
	}
	if !stop.IsPositive() {
		return sig, errors.Wrapf(ErrInvalidStopLoss, "stop loss must be positive, got %s", stop)
	}
	sig.StopLoss = stop

	if pips, ok := MatchExplicitPips(text); ok {
		sig.ExplicitPips = &pips
	}
	sig.Direction = MatchDirection(text)

	return sig, nil
}
