package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatOrg renders an Entry as an Org-mode block for pasting into a
// trading journal. Figures go in the PROPERTIES drawer; the signal as it
// was posted goes in a quote block.
func FormatOrg(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Sizing: %s (%s)\n", e.Instrument, shortID(e.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", e.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", e.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":INSTRUMENT: %s\n", e.Instrument)
	fmt.Fprintf(&b, ":BALANCE: %s\n", e.BalanceText)
	fmt.Fprintf(&b, ":RISK_PERCENT: %s\n", e.RiskText)
	fmt.Fprintf(&b, ":PIPS: %s\n", e.Pips)
	fmt.Fprintf(&b, ":RATE: %s\n", e.Rate)
	fmt.Fprintf(&b, ":LOT_SIZE: %s\n", e.LotSize.StringFixed(4))
	fmt.Fprintf(&b, ":UNITS: %s\n", e.PositionSizeUnits.StringFixed(4))
	fmt.Fprintf(&b, ":AMOUNT_AT_RISK: %s %s\n", e.AmountAtRisk.StringFixed(2), e.AccountCurrency)
	b.WriteString(":END:\n")
	b.WriteString("#+begin_quote\n")
	b.WriteString(strings.TrimSpace(e.SignalText))
	b.WriteString("\n#+end_quote\n")
	return b.String()
}

// FormatOrgAll renders entries separated by blank lines.
func FormatOrgAll(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatOrg(e))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
