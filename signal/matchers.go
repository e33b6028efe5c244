package signal

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/lotsize/market"
)

// amount accepts comma thousands grouping, e.g. 2,350.50.
const (
	amount = `(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?`
	number = `(` + amount + `)`
)

var (
	balanceRe = regexp.MustCompile(`^\s*` + number + `(?:\s*([A-Za-z]{3})\b)?`)

	wordRe    = regexp.MustCompile(`[A-Za-z]+`)
	pairSepRe = regexp.MustCompile(`^\s*/?\s*$`)

	entryRe    = regexp.MustCompile(`(?i)\b(entered\s+at|entered|enter|entry\s*\(\s*(?:sell|buy)\s+limit\s*\)|entry|buy(?:\s+(?:limit|stop))?|sell(?:\s+(?:limit|stop))?|long|short)\s*[:@]?\s*` + number)
	entryAltRe = regexp.MustCompile(`(?i)\b(buy|sell|long|short)(?:\s+(?:limit|stop))?\s+[a-z]{6}\s*[:@]?\s*` + number)

	stopLossRe = regexp.MustCompile(`(?i)\b(?:stop\s*loss|sl)\s*[:@]?\s*` + number)
	pipsRe     = regexp.MustCompile(`(?i)\b(?:stop\s*loss|sl)\s*[:@]?\s*` + amount + `\s*\(\s*(\d+)\s*(?:pips?)?\s*\)`)

	directionRe = regexp.MustCompile(`(?i)\b(buy|long|sell|short)\b`)
)

// Words that show up in signals in capitals but are never currency codes.
var reserved = map[string]bool{
	"BUY": true, "PIP": true, "NOW": true, "AND": true, "THE": true,
	"SELL": true, "LONG": true, "SHORT": true, "ENTRY": true, "ENTER": true,
	"STOP": true, "LOSS": true, "LIMIT": true, "PIPS": true,
	"TARGET": true, "SIGNAL": true, "UPDATE": true, "MARKET": true,
	"CLOSED": true, "PROFIT": true,
}

// MatchInstrument finds the first 6-letter uppercase token, or the first
// two consecutive 3-letter uppercase tokens separated by blanks or a
// slash.
func MatchInstrument(text string) (market.Instrument, bool) {
	locs := wordRe.FindAllStringIndex(text, -1)
	for i, loc := range locs {
		w := text[loc[0]:loc[1]]
		if !isCodeWord(w) {
			continue
		}
		switch len(w) {
		case 6:
			return market.Instrument{Base: w[:3], Quote: w[3:]}, true
		case 3:
			if i+1 >= len(locs) {
				continue
			}
			next := locs[i+1]
			nw := text[next[0]:next[1]]
			if len(nw) == 3 && isCodeWord(nw) && pairSepRe.MatchString(text[loc[1]:next[0]]) {
				return market.Instrument{Base: w, Quote: nw}, true
			}
		}
	}
	return market.Instrument{}, false
}

func isCodeWord(w string) bool {
	if len(w) != 3 && len(w) != 6 {
		return false
	}
	if reserved[w] {
		return false
	}
	return w == strings.ToUpper(w)
}

// MatchEntry finds a price after an entry or action keyword, then falls
// back to "Buy EURUSD 1.0500" style.
func MatchEntry(text string) (decimal.Decimal, bool) {
	if m := entryRe.FindStringSubmatch(text); m != nil {
		return parseNumber(m[2])
	}
	if m := entryAltRe.FindStringSubmatch(text); m != nil {
		return parseNumber(m[2])
	}
	return decimal.Zero, false
}

// MatchStopLoss finds a price after "SL" or "Stop Loss".
func MatchStopLoss(text string) (decimal.Decimal, bool) {
	m := stopLossRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	return parseNumber(m[1])
}

// MatchExplicitPips finds "(20 pips)" right after the stop loss price.
func MatchExplicitPips(text string) (decimal.Decimal, bool) {
	m := pipsRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	return parseNumber(m[1])
}

// MatchDirection reports the first action keyword in the text.
func MatchDirection(text string) Direction {
	m := directionRe.FindStringSubmatch(text)
	if m == nil {
		return Unknown
	}
	switch strings.ToLower(m[1]) {
	case "buy", "long":
		return Buy
	default:
		return Sell
	}
}

func parseNumber(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
