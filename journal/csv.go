package journal

import (
	"encoding/csv"
	"io"
	"time"
)

var csvHeader = []string{
	"id", "time", "instrument", "account_currency", "pips", "rate",
	"lot_size", "amount_at_risk", "position_units",
	"balance_text", "risk_text", "signal_text",
}

// WriteCSV writes entries with a header row.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range entries {
		err := cw.Write([]string{
			e.ID,
			e.Time.Format(time.RFC3339),
			e.Instrument,
			e.AccountCurrency,
			e.Pips.String(),
			e.Rate.String(),
			e.LotSize.StringFixed(4),
			e.AmountAtRisk.StringFixed(2),
			e.PositionSizeUnits.StringFixed(4),
			e.BalanceText,
			e.RiskText,
			e.SignalText,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
