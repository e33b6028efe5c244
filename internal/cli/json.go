package cli

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/lotsize/calculator"
)

type calcJSON struct {
	ID                string          `json:"id,omitempty"`
	Instrument        string          `json:"instrument"`
	Direction         string          `json:"direction"`
	Pips              decimal.Decimal `json:"pips"`
	AccountCurrency   string          `json:"account_currency"`
	Rate              decimal.Decimal `json:"rate"`
	LotSize           decimal.Decimal `json:"lot_size"`
	AmountAtRisk      decimal.Decimal `json:"amount_at_risk"`
	PositionSizeUnits decimal.Decimal `json:"position_size_units"`
	StandardLots      decimal.Decimal `json:"standard_lots"`
	MiniLots          decimal.Decimal `json:"mini_lots"`
	MicroLots         decimal.Decimal `json:"micro_lots"`
}

func newCalcJSON(calc calculator.Calculation) calcJSON {
	r := calc.Result
	return calcJSON{
		ID:                calc.EntryID,
		Instrument:        r.Instrument.String(),
		Direction:         calc.Signal.Direction.String(),
		Pips:              r.Pips,
		AccountCurrency:   r.AccountCurrency,
		Rate:              r.Rate,
		LotSize:           r.LotSize,
		AmountAtRisk:      r.AmountAtRisk,
		PositionSizeUnits: r.PositionSizeUnits,
		StandardLots:      r.StandardLots,
		MiniLots:          r.MiniLots,
		MicroLots:         r.MicroLots,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
