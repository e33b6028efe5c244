package risk

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/signal"
)

// Pips returns the stop distance |entry - stop| in pips of inst.
func Pips(inst market.Instrument, entry, stop decimal.Decimal) decimal.Decimal {
	return entry.Sub(stop).Abs().Div(market.PipSize(inst))
}

// StopPips returns the signal's explicit pip count when it has one and
// the price-derived distance otherwise.
func StopPips(sig signal.TradeSignal) decimal.Decimal {
	if sig.ExplicitPips != nil {
		return *sig.ExplicitPips
	}
	return Pips(sig.Instrument, sig.Entry, sig.StopLoss)
}

// RiskAmount is the account money put at risk: balance * pct / 100.
func RiskAmount(balance, pct decimal.Decimal) decimal.Decimal {
	return balance.Mul(pct).Div(hundred)
}

var (
	ten     = decimal.NewFromInt(10)
	hundred = decimal.NewFromInt(100)
)
