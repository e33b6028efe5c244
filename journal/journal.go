// journal/journal.go
package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/lotsize/internal/id"
	"github.com/rustyeddy/lotsize/risk"
)

// Entry is one successful calculation: the raw inputs as typed and the
// figures that were shown.
type Entry struct {
	ID   string    `json:"id"`
	Time time.Time `json:"time"`

	BalanceText string `json:"balance_text"`
	RiskText    string `json:"risk_text"`
	SignalText  string `json:"signal_text"`

	Instrument      string `json:"instrument"`
	AccountCurrency string `json:"account_currency"`

	Pips              decimal.Decimal `json:"pips"`
	Rate              decimal.Decimal `json:"rate"`
	LotSize           decimal.Decimal `json:"lot_size"`
	AmountAtRisk      decimal.Decimal `json:"amount_at_risk"`
	PositionSizeUnits decimal.Decimal `json:"position_size_units"`
}

// NewEntry stamps a result with a fresh id and the current time.
func NewEntry(balance, riskPct, sig string, res risk.Result) Entry {
	return Entry{
		ID:                id.New(),
		Time:              time.Now().UTC(),
		BalanceText:       balance,
		RiskText:          riskPct,
		SignalText:        sig,
		Instrument:        res.Instrument.String(),
		AccountCurrency:   res.AccountCurrency,
		Pips:              res.Pips,
		Rate:              res.Rate,
		LotSize:           res.LotSize,
		AmountAtRisk:      res.AmountAtRisk,
		PositionSizeUnits: res.PositionSizeUnits,
	}
}
